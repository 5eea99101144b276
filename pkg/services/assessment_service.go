package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/riskworks/erm-engine/pkg/models"
	"github.com/riskworks/erm-engine/pkg/repositories"
	"github.com/riskworks/erm-engine/pkg/scoring"
)

// AssessmentService manages registry self-assessments and the legacy
// questionnaire submissions.
type AssessmentService interface {
	CreateRegistryAssessment(ctx context.Context, assessment *models.RegistryAssessment) error
	GetRegistryAssessment(ctx context.Context, id int) (*models.RegistryAssessment, error)
	GetRegistryAssessments(ctx context.Context) ([]*models.RegistryAssessment, error)
	GetRegistryAssessmentsByRisk(ctx context.Context, riskRegistryID int) ([]*models.RegistryAssessment, error)

	CreateQuestionnaire(ctx context.Context, assessment *models.RiskAssessment) error
	GetQuestionnaire(ctx context.Context, id int) (*models.RiskAssessment, error)
	GetQuestionnaires(ctx context.Context) ([]*models.RiskAssessment, error)
}

type assessmentService struct {
	registryAssessmentRepo repositories.RegistryAssessmentRepository
	riskAssessmentRepo     repositories.RiskAssessmentRepository
	logger                 *zap.Logger
}

// NewAssessmentService creates a new AssessmentService.
func NewAssessmentService(
	registryAssessmentRepo repositories.RegistryAssessmentRepository,
	riskAssessmentRepo repositories.RiskAssessmentRepository,
	logger *zap.Logger,
) AssessmentService {
	return &assessmentService{
		registryAssessmentRepo: registryAssessmentRepo,
		riskAssessmentRepo:     riskAssessmentRepo,
		logger:                 logger,
	}
}

var _ AssessmentService = (*assessmentService)(nil)

// CreateRegistryAssessment persists a self-assessment. The risk levels are
// computed here from the submitted impact and likelihood; any client-sent
// product is ignored so the stored level always satisfies
// level = impact x likelihood. The referenced registry id is NOT checked
// for existence.
func (s *assessmentService) CreateRegistryAssessment(ctx context.Context, assessment *models.RegistryAssessment) error {
	assessment.RiskLevel = scoring.Level(assessment.CurrentImpact, assessment.CurrentLikelihood)

	if assessment.TargetImpact != nil && assessment.TargetLikelihood != nil {
		target := scoring.Level(*assessment.TargetImpact, *assessment.TargetLikelihood)
		assessment.TargetRiskLevel = &target
	} else {
		assessment.TargetRiskLevel = nil
	}

	if err := s.registryAssessmentRepo.Create(ctx, assessment); err != nil {
		return err
	}

	s.logger.Info("Created registry assessment",
		zap.Int("id", assessment.ID),
		zap.Int("risk_registry_id", assessment.RiskRegistryID),
		zap.Int("risk_level", assessment.RiskLevel),
		zap.String("band", scoring.Classify(&assessment.RiskLevel).String()))
	return nil
}

func (s *assessmentService) GetRegistryAssessment(ctx context.Context, id int) (*models.RegistryAssessment, error) {
	return s.registryAssessmentRepo.GetByID(ctx, id)
}

func (s *assessmentService) GetRegistryAssessments(ctx context.Context) ([]*models.RegistryAssessment, error) {
	return s.registryAssessmentRepo.GetAll(ctx)
}

func (s *assessmentService) GetRegistryAssessmentsByRisk(ctx context.Context, riskRegistryID int) ([]*models.RegistryAssessment, error) {
	return s.registryAssessmentRepo.GetByRiskID(ctx, riskRegistryID)
}

func (s *assessmentService) CreateQuestionnaire(ctx context.Context, assessment *models.RiskAssessment) error {
	if err := s.riskAssessmentRepo.Create(ctx, assessment); err != nil {
		return err
	}

	s.logger.Info("Created questionnaire response",
		zap.Int("id", assessment.ID),
		zap.String("department", assessment.Department))
	return nil
}

func (s *assessmentService) GetQuestionnaire(ctx context.Context, id int) (*models.RiskAssessment, error) {
	return s.riskAssessmentRepo.GetByID(ctx, id)
}

func (s *assessmentService) GetQuestionnaires(ctx context.Context) ([]*models.RiskAssessment, error) {
	return s.riskAssessmentRepo.GetAll(ctx)
}
