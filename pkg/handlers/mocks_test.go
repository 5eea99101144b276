package handlers

import (
	"context"

	"github.com/riskworks/erm-engine/pkg/models"
	"github.com/riskworks/erm-engine/pkg/services"
)

// mockRegistryService is a configurable mock for all handler tests.
type mockRegistryService struct {
	entry    *models.RiskRegistry
	entries  []*models.RiskRegistry
	analysis *services.RiskAnalysis
	err      error

	created *models.RiskRegistry
	deleted []int
}

func (m *mockRegistryService) CreateEntry(ctx context.Context, entry *models.RiskRegistry) error {
	if m.err != nil {
		return m.err
	}
	entry.ID = 1
	m.created = entry
	return nil
}

func (m *mockRegistryService) GetEntry(ctx context.Context, id int) (*models.RiskRegistry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.entry, nil
}

func (m *mockRegistryService) GetEntries(ctx context.Context) ([]*models.RiskRegistry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func (m *mockRegistryService) UpdateEntry(ctx context.Context, id int, patch *models.RiskRegistryPatch) (*models.RiskRegistry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.entry, nil
}

func (m *mockRegistryService) DeleteEntry(ctx context.Context, id int) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockRegistryService) AnalyzeEntry(ctx context.Context, id int) (*services.RiskAnalysis, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.analysis, nil
}

// mockAssessmentService is a configurable mock for assessment handler tests.
type mockAssessmentService struct {
	registryAssessment  *models.RegistryAssessment
	registryAssessments []*models.RegistryAssessment
	questionnaire       *models.RiskAssessment
	questionnaires      []*models.RiskAssessment
	err                 error

	createdRegistry      *models.RegistryAssessment
	createdQuestionnaire *models.RiskAssessment
}

func (m *mockAssessmentService) CreateRegistryAssessment(ctx context.Context, assessment *models.RegistryAssessment) error {
	if m.err != nil {
		return m.err
	}
	assessment.ID = 1
	assessment.RiskLevel = assessment.CurrentImpact * assessment.CurrentLikelihood
	m.createdRegistry = assessment
	return nil
}

func (m *mockAssessmentService) GetRegistryAssessment(ctx context.Context, id int) (*models.RegistryAssessment, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.registryAssessment, nil
}

func (m *mockAssessmentService) GetRegistryAssessments(ctx context.Context) ([]*models.RegistryAssessment, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.registryAssessments, nil
}

func (m *mockAssessmentService) GetRegistryAssessmentsByRisk(ctx context.Context, riskRegistryID int) ([]*models.RegistryAssessment, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.registryAssessments, nil
}

func (m *mockAssessmentService) CreateQuestionnaire(ctx context.Context, assessment *models.RiskAssessment) error {
	if m.err != nil {
		return m.err
	}
	assessment.ID = 1
	m.createdQuestionnaire = assessment
	return nil
}

func (m *mockAssessmentService) GetQuestionnaire(ctx context.Context, id int) (*models.RiskAssessment, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.questionnaire, nil
}

func (m *mockAssessmentService) GetQuestionnaires(ctx context.Context) ([]*models.RiskAssessment, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.questionnaires, nil
}

// mockStrategicService is a configurable mock for strategic handler tests.
type mockStrategicService struct {
	objectives []*models.StrategicObjective
	subs       []*models.SubStrategicObjective
	categories []*models.RiskCategory
	mappings   []*models.StrategicRiskMapping
	err        error

	lastYear     int
	lastParentID int
}

func (m *mockStrategicService) CreateObjective(ctx context.Context, objective *models.StrategicObjective) error {
	if m.err != nil {
		return m.err
	}
	objective.ID = 1
	objective.IsActive = true
	return nil
}

func (m *mockStrategicService) GetObjectives(ctx context.Context, year int) ([]*models.StrategicObjective, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastYear = year
	return m.objectives, nil
}

func (m *mockStrategicService) CreateSubObjective(ctx context.Context, sub *models.SubStrategicObjective) error {
	if m.err != nil {
		return m.err
	}
	sub.ID = 1
	sub.IsActive = true
	return nil
}

func (m *mockStrategicService) GetSubObjectives(ctx context.Context, strategicObjectiveID, year int) ([]*models.SubStrategicObjective, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastParentID = strategicObjectiveID
	m.lastYear = year
	return m.subs, nil
}

func (m *mockStrategicService) CreateCategory(ctx context.Context, category *models.RiskCategory) error {
	if m.err != nil {
		return m.err
	}
	category.ID = 1
	category.IsActive = true
	return nil
}

func (m *mockStrategicService) GetCategories(ctx context.Context, year int) ([]*models.RiskCategory, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastYear = year
	return m.categories, nil
}

func (m *mockStrategicService) CreateMapping(ctx context.Context, mapping *models.StrategicRiskMapping) error {
	if m.err != nil {
		return m.err
	}
	mapping.ID = 1
	mapping.IsActive = true
	return nil
}

func (m *mockStrategicService) GetMappings(ctx context.Context, year int) ([]*models.StrategicRiskMapping, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastYear = year
	return m.mappings, nil
}

func (m *mockStrategicService) GetMappingsByPair(ctx context.Context, objectiveID, subObjectiveID, year int) ([]*models.StrategicRiskMapping, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastYear = year
	return m.mappings, nil
}
