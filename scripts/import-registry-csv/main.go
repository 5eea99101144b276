// import-registry-csv loads the annual risk response planning worksheet
// into the risk_registry table.
//
// The worksheet is the Excel export used by the risk committee, saved as
// UTF-8 CSV with a BOM. Column headers are the original Chinese ones;
// rows missing both a strategic objective and a risk scenario are skipped.
//
// Usage: go run ./scripts/import-registry-csv <file.csv>
//
// Database connection: uses standard PG* environment variables; a .env
// file in the working directory is honored when present.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/riskworks/erm-engine/pkg/config"
	"github.com/riskworks/erm-engine/pkg/database"
	"github.com/riskworks/erm-engine/pkg/models"
	"github.com/riskworks/erm-engine/pkg/repositories"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "Parse and report without inserting")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-dry-run] <file.csv>\n", os.Args[0])
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg, err := config.Load("script")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	rows, err := readWorksheet(args[0])
	if err != nil {
		color.Red("Failed to read %s: %v", args[0], err)
		os.Exit(1)
	}
	color.Cyan("Found %d records to import", len(rows))

	if *dryRun {
		color.Yellow("Dry run - nothing will be inserted")
	}

	ctx := context.Background()
	var repo repositories.RiskRegistryRepository
	if !*dryRun {
		db, err := database.NewConnection(ctx, &database.Config{
			URL:            cfg.Database.ConnectionString(),
			MaxConnections: 5,
		})
		if err != nil {
			color.Red("Failed to connect to database: %v", err)
			os.Exit(1)
		}
		defer db.Close()
		repo = repositories.NewRiskRegistryRepository(db)
	}

	imported := 0
	skipped := 0
	for i, row := range rows {
		entry := mapRow(row)

		// Skip filler rows in the worksheet
		if entry.StrategicObjective == "" && entry.RiskScenario == "" {
			skipped++
			continue
		}

		if !*dryRun {
			if err := repo.Create(ctx, entry); err != nil {
				color.Red("Row %d failed: %v", i+2, err)
				continue
			}
		}
		imported++
		if imported%10 == 0 {
			fmt.Printf("Imported %d records...\n", imported)
		}
	}

	color.Green("Successfully imported %d risk registry entries (%d skipped)", imported, skipped)
}

// worksheet column headers as exported from the committee's Excel file
const (
	colStrategicObjective    = "策略目標"
	colSubObjective          = "子策略目標"
	colResponsibleDepartment = "主責 部門 / Leader"
	colRiskOwner             = "風險擁有者"
	colOperationalTarget     = "營運單位目標"
	colSeedMember            = "種子成員\n(風險情境提出人員)"
	colRiskCategory          = "風險類別"
	colLevel1Index           = "項次_Level1"
	colRiskEventSource       = "風險事件來源"
	colLevel2Index           = "項次_Level2"
	colRiskScenario          = "風險情境"
	colExistingMeasures      = "現有風險對策"
	colWarningIndicator      = "監督量測指標：警戒值"
	colActionIndicator       = "監督量測指標：行動值"
	colStakeholders          = "關係方"
	colUnitPossibility       = "可能性－各單位"
	colUnitImpact            = "影響－各單位"
	colUnitRiskLevel         = "風險等級－各單位"
	colRespPossibility       = "可能性－主責單位"
	colRespImpact            = "影響－主責單位"
	colRespRiskLevel         = "風險等級－主責單位"
	colResponseStrategy      = "風險回應方式\n(降低/移轉/接受/拒絕)"
	colNewRiskMeasures       = "新增風險對策"
	colResponsibleUnit       = "負責單位"
	colOptimization          = "優化建議 - 風險回應/控制作業/監督"
	colNotes                 = "2024.11.18筆記"
	colWeightedRiskLevel     = "風險等級-加權"
	colAssessmentOpt         = "優化建議 - 風險評估\n(N/A: 討論後無須優化)"
)

// readWorksheet parses the CSV into header-keyed rows, stripping the BOM
// Excel writes in front of the first header.
func readWorksheet(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("empty file")
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	var rows []map[string]string
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func mapRow(row map[string]string) *models.RiskRegistry {
	return &models.RiskRegistry{
		StrategicObjective:    row[colStrategicObjective],
		SubObjective:          row[colSubObjective],
		ResponsibleDepartment: row[colResponsibleDepartment],
		RiskOwner:             row[colRiskOwner],
		OperationalTarget:     row[colOperationalTarget],
		SeedMember:            row[colSeedMember],
		RiskCategory:          row[colRiskCategory],
		Level1Index:           row[colLevel1Index],
		RiskEventSource:       row[colRiskEventSource],
		Level2Index:           row[colLevel2Index],
		RiskScenario:          row[colRiskScenario],
		ExistingMeasures:      row[colExistingMeasures],
		WarningIndicator:      optStr(row[colWarningIndicator]),
		ActionIndicator:       optStr(row[colActionIndicator]),
		Stakeholders:          optStr(row[colStakeholders]),

		UnitPossibility: optInt(row[colUnitPossibility]),
		UnitImpact:      optInt(row[colUnitImpact]),
		UnitRiskLevel:   optInt(row[colUnitRiskLevel]),

		ResponsiblePossibility: optInt(row[colRespPossibility]),
		ResponsibleImpact:      optInt(row[colRespImpact]),
		ResponsibleRiskLevel:   optInt(row[colRespRiskLevel]),

		ResponseStrategy: optStr(row[colResponseStrategy]),
		NewRiskMeasures:  optStr(row[colNewRiskMeasures]),
		ResponsibleUnit:  optStr(row[colResponsibleUnit]),
		// The worksheet reuses the indicator columns for the new cycle
		NewWarningIndicator: optStr(row[colWarningIndicator]),
		NewActionIndicator:  optStr(row[colActionIndicator]),

		OptimizationSuggestion: optStr(row[colOptimization]),
		Notes:                  optStr(row[colNotes]),
		WeightedRiskLevel:      optDecimal(row[colWeightedRiskLevel]),
		AssessmentOptimization: optStr(row[colAssessmentOpt]),
	}
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optInt(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func optDecimal(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}
