package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskworks/erm-engine/pkg/models"
)

func TestWriteCSV_HeadersMatchCommitteeFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, writeCSV(path, nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(raw)
	require.True(t, strings.HasPrefix(content, "\uFEFF"), "expected UTF-8 BOM")

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(content, "\uFEFF")))
	header, err := reader.Read()
	require.NoError(t, err)

	want := []string{
		"風險ID", "戰略目標", "子目標", "主責部門", "風險擁有者", "營運目標",
		"風險類別", "風險情境", "現有控制措施", "警戒指標", "行動指標", "關係方",
		"各單位可能性", "各單位影響度", "各單位風險等級",
		"主責單位可能性", "主責單位影響度", "主責單位風險等級",
		"回應策略", "新增對策", "優化建議", "加權風險等級", "評估優化",
	}
	assert.Equal(t, want, header)
}

func TestWriteCSV_RowValues(t *testing.T) {
	weighted := decimal.RequireFromString("7.25")
	warning := "庫存低於兩個月"
	strategy := models.ResponseReduce
	possibility := 3
	impact := 4
	level := 12

	entry := &models.RiskRegistry{
		ID:                    7,
		StrategicObjective:    "穩健經營",
		SubObjective:          "供應鏈韌性",
		ResponsibleDepartment: "採購部",
		RiskOwner:             "王小明",
		OperationalTarget:     "關鍵料件雙供應商",
		RiskCategory:          "營運",
		RiskScenario:          "關鍵原料斷供導致停線",
		ExistingMeasures:      "安全庫存三個月",
		WarningIndicator:      &warning,
		UnitPossibility:       &possibility,
		UnitImpact:            &impact,
		UnitRiskLevel:         &level,
		ResponseStrategy:      &strategy,
		WeightedRiskLevel:     &weighted,
	}

	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, writeCSV(path, []*models.RiskRegistry{entry}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(raw), "\uFEFF")))
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	row := records[1]
	require.Len(t, row, len(exportHeaders))
	assert.Equal(t, "7", row[0])
	assert.Equal(t, "穩健經營", row[1])
	assert.Equal(t, "安全庫存三個月", row[8])
	assert.Equal(t, "庫存低於兩個月", row[9])
	// Absent optional fields export as empty cells
	assert.Equal(t, "", row[10])
	assert.Equal(t, "3", row[12])
	assert.Equal(t, "12", row[14])
	assert.Equal(t, "", row[15])
	assert.Equal(t, models.ResponseReduce, row[18])
	assert.Equal(t, "7.25", row[21])
}
