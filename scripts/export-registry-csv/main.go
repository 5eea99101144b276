// export-registry-csv writes the full risk registry to a CSV file the
// committee can open in Excel (UTF-8 with BOM), then prints category and
// weighted-level statistics.
//
// Usage: go run ./scripts/export-registry-csv [-out file.csv]
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
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"github.com/riskworks/erm-engine/pkg/config"
	"github.com/riskworks/erm-engine/pkg/database"
	"github.com/riskworks/erm-engine/pkg/models"
	"github.com/riskworks/erm-engine/pkg/repositories"
)

// exportHeaders is the fixed column set the committee's downstream
// spreadsheets key off. It differs from the import worksheet's headers
// and must not drift.
var exportHeaders = []string{
	"風險ID", "戰略目標", "子目標", "主責部門", "風險擁有者", "營運目標",
	"風險類別", "風險情境", "現有控制措施", "警戒指標", "行動指標", "關係方",
	"各單位可能性", "各單位影響度", "各單位風險等級",
	"主責單位可能性", "主責單位影響度", "主責單位風險等級",
	"回應策略", "新增對策", "優化建議", "加權風險等級", "評估優化",
}

func main() {
	out := flag.String("out", "risk_registry_export.csv", "Output CSV path")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load("script")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := database.NewConnection(ctx, &database.Config{
		URL:            cfg.Database.ConnectionString(),
		MaxConnections: 5,
	})
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := repositories.NewRiskRegistryRepository(db)
	entries, err := repo.GetAll(ctx)
	if err != nil {
		color.Red("Failed to load risk registry: %v", err)
		os.Exit(1)
	}
	color.Cyan("Found %d risk registry entries", len(entries))

	if err := writeCSV(*out, entries); err != nil {
		color.Red("Failed to write %s: %v", *out, err)
		os.Exit(1)
	}
	color.Green("Exported %d entries to %s", len(entries), *out)

	printStats(entries)
}

func writeCSV(path string, entries []*models.RiskRegistry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	// BOM so Excel renders the Chinese headers correctly
	if _, err := f.WriteString("\uFEFF"); err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(exportHeaders); err != nil {
		return err
	}

	for _, e := range entries {
		row := []string{
			strconv.Itoa(e.ID),
			e.StrategicObjective,
			e.SubObjective,
			e.ResponsibleDepartment,
			e.RiskOwner,
			e.OperationalTarget,
			e.RiskCategory,
			e.RiskScenario,
			e.ExistingMeasures,
			deref(e.WarningIndicator),
			deref(e.ActionIndicator),
			deref(e.Stakeholders),
			derefInt(e.UnitPossibility),
			derefInt(e.UnitImpact),
			derefInt(e.UnitRiskLevel),
			derefInt(e.ResponsiblePossibility),
			derefInt(e.ResponsibleImpact),
			derefInt(e.ResponsibleRiskLevel),
			deref(e.ResponseStrategy),
			deref(e.NewRiskMeasures),
			deref(e.OptimizationSuggestion),
			weightedString(e),
			deref(e.AssessmentOptimization),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// printStats summarizes the export: entries per category and the
// weighted-level distribution the committee reports on (>=9 high,
// >=6 medium, below that low).
func printStats(entries []*models.RiskRegistry) {
	categories := make(map[string]int)
	var high, medium, low int

	for _, e := range entries {
		category := e.RiskCategory
		if category == "" {
			category = "未分類"
		}
		categories[category]++

		var weighted float64
		if e.WeightedRiskLevel != nil {
			weighted, _ = e.WeightedRiskLevel.Float64()
		}
		switch {
		case weighted >= 9:
			high++
		case weighted >= 6:
			medium++
		default:
			low++
		}
	}

	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println()
	categoryTable := tablewriter.NewWriter(os.Stdout)
	categoryTable.SetHeader([]string{"風險類別", "項數"})
	for _, name := range names {
		categoryTable.Append([]string{name, strconv.Itoa(categories[name])})
	}
	categoryTable.Render()

	levelTable := tablewriter.NewWriter(os.Stdout)
	levelTable.SetHeader([]string{"加權風險等級", "項數"})
	levelTable.Append([]string{"高 (>=9)", strconv.Itoa(high)})
	levelTable.Append([]string{"中 (>=6)", strconv.Itoa(medium)})
	levelTable.Append([]string{"低", strconv.Itoa(low)})
	levelTable.Render()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func weightedString(e *models.RiskRegistry) string {
	if e.WeightedRiskLevel == nil {
		return ""
	}
	return e.WeightedRiskLevel.String()
}
