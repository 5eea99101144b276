//go:build integration

package repositories

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskworks/erm-engine/pkg/apperrors"
	"github.com/riskworks/erm-engine/pkg/models"
	"github.com/riskworks/erm-engine/pkg/testhelpers"
)

func strPtr(s string) *string { return &s }
func iPtr(v int) *int         { return &v }

func sampleRegistryEntry() *models.RiskRegistry {
	weighted := decimal.RequireFromString("7.25")
	return &models.RiskRegistry{
		StrategicObjective:    "穩健經營",
		SubObjective:          "供應鏈韌性",
		ResponsibleDepartment: "採購部",
		RiskOwner:             "王小明",
		OperationalTarget:     "關鍵料件雙供應商",
		SeedMember:            "李委員",
		RiskCategory:          "營運",
		Level1Index:           "供應鏈",
		RiskEventSource:       "外部",
		Level2Index:           "原物料",
		RiskScenario:          "關鍵原料斷供導致停線",
		ExistingMeasures:      "安全庫存三個月",
		WarningIndicator:      strPtr("庫存低於兩個月"),
		UnitPossibility:       iPtr(3),
		UnitImpact:            iPtr(4),
		UnitRiskLevel:         iPtr(12),
		ResponsiblePossibility: iPtr(2),
		ResponsibleImpact:      iPtr(3),
		ResponsibleRiskLevel:   iPtr(6),
		ResponseStrategy:       strPtr(models.ResponseReduce),
		WeightedRiskLevel:      &weighted,
	}
}

func TestRiskRegistryRepository_CreateAndGet(t *testing.T) {
	testDB := testhelpers.GetTestDB(t)
	testhelpers.TruncateAll(t, testDB.DB)
	repo := NewRiskRegistryRepository(testDB.DB)
	ctx := context.Background()

	entry := sampleRegistryEntry()
	require.NoError(t, repo.Create(ctx, entry))
	require.NotZero(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry.RiskScenario, got.RiskScenario)
	assert.Equal(t, entry.StrategicObjective, got.StrategicObjective)
	require.NotNil(t, got.UnitRiskLevel)
	assert.Equal(t, 12, *got.UnitRiskLevel)
	require.NotNil(t, got.ResponseStrategy)
	assert.Equal(t, models.ResponseReduce, *got.ResponseStrategy)
	require.NotNil(t, got.WeightedRiskLevel)
	assert.True(t, got.WeightedRiskLevel.Equal(decimal.RequireFromString("7.25")))
	assert.Nil(t, got.Notes)
}

func TestRiskRegistryRepository_GetByID_Missing(t *testing.T) {
	testDB := testhelpers.GetTestDB(t)
	testhelpers.TruncateAll(t, testDB.DB)
	repo := NewRiskRegistryRepository(testDB.DB)

	got, err := repo.GetByID(context.Background(), 12345)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRiskRegistryRepository_GetAllStableBetweenReads(t *testing.T) {
	testDB := testhelpers.GetTestDB(t)
	testhelpers.TruncateAll(t, testDB.DB)
	repo := NewRiskRegistryRepository(testDB.DB)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		entry := sampleRegistryEntry()
		require.NoError(t, repo.Create(ctx, entry))
	}

	first, err := repo.GetAll(ctx)
	require.NoError(t, err)
	second, err := repo.GetAll(ctx)
	require.NoError(t, err)

	ids := func(entries []*models.RiskRegistry) []int {
		out := make([]int, 0, len(entries))
		for _, e := range entries {
			out = append(out, e.ID)
		}
		return out
	}
	require.Len(t, first, 3)
	assert.Equal(t, ids(first), ids(second))
}

func TestRiskRegistryRepository_Update(t *testing.T) {
	testDB := testhelpers.GetTestDB(t)
	testhelpers.TruncateAll(t, testDB.DB)
	repo := NewRiskRegistryRepository(testDB.DB)
	ctx := context.Background()

	entry := sampleRegistryEntry()
	require.NoError(t, repo.Create(ctx, entry))

	patch := &models.RiskRegistryPatch{
		RiskScenario:      strPtr("更新後情境"),
		ResponsibleImpact: iPtr(5),
	}
	require.NoError(t, repo.Update(ctx, entry.ID, patch))

	got, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "更新後情境", got.RiskScenario)
	require.NotNil(t, got.ResponsibleImpact)
	assert.Equal(t, 5, *got.ResponsibleImpact)
	// Untouched fields survive a partial update
	assert.Equal(t, entry.RiskOwner, got.RiskOwner)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))
}

func TestRiskRegistryRepository_EmptyPatchRefreshesUpdatedAt(t *testing.T) {
	testDB := testhelpers.GetTestDB(t)
	testhelpers.TruncateAll(t, testDB.DB)
	repo := NewRiskRegistryRepository(testDB.DB)
	ctx := context.Background()

	entry := sampleRegistryEntry()
	require.NoError(t, repo.Create(ctx, entry))

	require.NoError(t, repo.Update(ctx, entry.ID, &models.RiskRegistryPatch{}))

	got, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.UpdatedAt.Before(entry.UpdatedAt))
}

func TestRiskRegistryRepository_Update_Missing(t *testing.T) {
	testDB := testhelpers.GetTestDB(t)
	testhelpers.TruncateAll(t, testDB.DB)
	repo := NewRiskRegistryRepository(testDB.DB)

	err := repo.Update(context.Background(), 999, &models.RiskRegistryPatch{
		RiskScenario: strPtr("x"),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRiskRegistryRepository_Delete(t *testing.T) {
	testDB := testhelpers.GetTestDB(t)
	testhelpers.TruncateAll(t, testDB.DB)
	repo := NewRiskRegistryRepository(testDB.DB)
	ctx := context.Background()

	entry := sampleRegistryEntry()
	require.NoError(t, repo.Create(ctx, entry))
	require.NoError(t, repo.Delete(ctx, entry.ID))

	got, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, repo.Delete(ctx, entry.ID), apperrors.ErrNotFound)
}

func TestRegistryAssessmentRepository_RoundTrip(t *testing.T) {
	testDB := testhelpers.GetTestDB(t)
	testhelpers.TruncateAll(t, testDB.DB)
	registryRepo := NewRiskRegistryRepository(testDB.DB)
	assessmentRepo := NewRegistryAssessmentRepository(testDB.DB)
	ctx := context.Background()

	entry := sampleRegistryEntry()
	require.NoError(t, registryRepo.Create(ctx, entry))

	assessment := &models.RegistryAssessment{
		RiskRegistryID:     entry.ID,
		AssessorEmail:      "assessor@example.com",
		AssessorName:       "陳評估",
		AssessorDepartment: "風管部",
		CurrentImpact:      4,
		CurrentLikelihood:  3,
		RiskLevel:          12,
		TargetImpact:       iPtr(2),
		TargetLikelihood:   iPtr(2),
		TargetRiskLevel:    iPtr(4),
		AssessmentNotes:    strPtr("庫存水位改善中"),
		RealAssessorName:   strPtr("陳本人"),
	}
	require.NoError(t, assessmentRepo.Create(ctx, assessment))
	require.NotZero(t, assessment.ID)

	got, err := assessmentRepo.GetByID(ctx, assessment.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 12, got.RiskLevel)
	require.NotNil(t, got.TargetRiskLevel)
	assert.Equal(t, 4, *got.TargetRiskLevel)
	require.NotNil(t, got.RealAssessorName)
	assert.Equal(t, "陳本人", *got.RealAssessorName)

	byRisk, err := assessmentRepo.GetByRiskID(ctx, entry.ID)
	require.NoError(t, err)
	require.Len(t, byRisk, 1)
	assert.Equal(t, assessment.ID, byRisk[0].ID)
}

func TestRegistryAssessmentRepository_NoForeignKey(t *testing.T) {
	testDB := testhelpers.GetTestDB(t)
	testhelpers.TruncateAll(t, testDB.DB)
	repo := NewRegistryAssessmentRepository(testDB.DB)
	ctx := context.Background()

	// The registry row does not exist; the insert still succeeds.
	assessment := &models.RegistryAssessment{
		RiskRegistryID:     424242,
		AssessorEmail:      "assessor@example.com",
		AssessorName:       "陳評估",
		AssessorDepartment: "風管部",
		CurrentImpact:      1,
		CurrentLikelihood:  1,
		RiskLevel:          1,
	}
	require.NoError(t, repo.Create(ctx, assessment))
	require.NotZero(t, assessment.ID)
}

func TestRiskAssessmentRepository_RoundTrip(t *testing.T) {
	testDB := testhelpers.GetTestDB(t)
	testhelpers.TruncateAll(t, testDB.DB)
	repo := NewRiskAssessmentRepository(testDB.DB)
	ctx := context.Background()

	assessment := &models.RiskAssessment{
		Email:              "respondent@example.com",
		Name:               "張回覆",
		Department:         "財務部",
		Acknowledgement:    true,
		CurrencyImpact:     iPtr(4),
		CurrencyLikelihood: iPtr(2),
	}
	require.NoError(t, repo.Create(ctx, assessment))
	require.NotZero(t, assessment.ID)
	assert.False(t, assessment.SubmittedAt.IsZero())

	got, err := repo.GetByID(ctx, assessment.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.CurrencyImpact)
	assert.Equal(t, 4, *got.CurrencyImpact)
	assert.Nil(t, got.CreditImpact)
	assert.True(t, got.Acknowledgement)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStrategicRepository_ReferenceDataFlow(t *testing.T) {
	testDB := testhelpers.GetTestDB(t)
	testhelpers.TruncateAll(t, testDB.DB)
	repo := NewStrategicRepository(testDB.DB)
	ctx := context.Background()

	objective := &models.StrategicObjective{Name: "永續成長", Leader: "執行長", Year: 2024}
	require.NoError(t, repo.CreateObjective(ctx, objective))
	require.NotZero(t, objective.ID)
	assert.True(t, objective.IsActive)

	sub := &models.SubStrategicObjective{
		StrategicObjectiveID: objective.ID,
		Name:                 "綠色製造",
		Year:                 2024,
	}
	require.NoError(t, repo.CreateSubObjective(ctx, sub))

	category := &models.RiskCategory{Name: "新興風險", Year: 2024}
	require.NoError(t, repo.CreateCategory(ctx, category))

	mapping := &models.StrategicRiskMapping{
		StrategicObjectiveID:    objective.ID,
		SubStrategicObjectiveID: sub.ID,
		RiskCategoryID:          category.ID,
		Year:                    2024,
	}
	require.NoError(t, repo.CreateMapping(ctx, mapping))

	objectives, err := repo.GetObjectives(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, objectives, 1)

	// Other years see nothing
	objectives, err = repo.GetObjectives(ctx, 2023)
	require.NoError(t, err)
	assert.Empty(t, objectives)

	subs, err := repo.GetSubObjectives(ctx, objective.ID, 2024)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "綠色製造", subs[0].Name)

	mappings, err := repo.GetMappingsByPair(ctx, objective.ID, sub.ID, 2024)
	require.NoError(t, err)
	require.Len(t, mappings, 1)
	assert.Equal(t, "永續成長", mappings[0].StrategicObjectiveName)
	assert.Equal(t, "綠色製造", mappings[0].SubStrategicObjectiveName)
	assert.Equal(t, "新興風險", mappings[0].RiskCategoryName)
}

func TestUserRepository_RoundTrip(t *testing.T) {
	testDB := testhelpers.GetTestDB(t)
	testhelpers.TruncateAll(t, testDB.DB)
	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	user := &models.User{Username: "riskadmin", Email: "admin@example.com"}
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	got, err := repo.GetByUsername(ctx, "riskadmin")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "admin@example.com", got.Email)
}
