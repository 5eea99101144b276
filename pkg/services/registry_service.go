package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/riskworks/erm-engine/pkg/models"
	"github.com/riskworks/erm-engine/pkg/repositories"
	"github.com/riskworks/erm-engine/pkg/scoring"
)

// RiskAnalysis is the scored view of one registry entry: the current band
// from the latest self-assessment and the movement against the prior-year
// responsible-unit level.
type RiskAnalysis struct {
	RiskRegistryID int     `json:"riskRegistryId"`
	CurrentLevel   *int    `json:"currentLevel,omitempty"`
	CurrentBand    string  `json:"currentBand"`
	CurrentLabel   string  `json:"currentLabel"`
	PriorLevel     *int    `json:"priorLevel,omitempty"`
	PriorBand      string  `json:"priorBand"`
	Delta          *int    `json:"delta,omitempty"`
	Trend          *string `json:"trend,omitempty"`
	Assessments    int     `json:"assessments"`
}

// RegistryService manages risk registry entries.
type RegistryService interface {
	CreateEntry(ctx context.Context, entry *models.RiskRegistry) error
	GetEntry(ctx context.Context, id int) (*models.RiskRegistry, error)
	GetEntries(ctx context.Context) ([]*models.RiskRegistry, error)
	UpdateEntry(ctx context.Context, id int, patch *models.RiskRegistryPatch) (*models.RiskRegistry, error)
	DeleteEntry(ctx context.Context, id int) error
	AnalyzeEntry(ctx context.Context, id int) (*RiskAnalysis, error)
}

type registryService struct {
	registryRepo   repositories.RiskRegistryRepository
	assessmentRepo repositories.RegistryAssessmentRepository
	logger         *zap.Logger
}

// NewRegistryService creates a new RegistryService.
func NewRegistryService(
	registryRepo repositories.RiskRegistryRepository,
	assessmentRepo repositories.RegistryAssessmentRepository,
	logger *zap.Logger,
) RegistryService {
	return &registryService{
		registryRepo:   registryRepo,
		assessmentRepo: assessmentRepo,
		logger:         logger,
	}
}

var _ RegistryService = (*registryService)(nil)

func (s *registryService) CreateEntry(ctx context.Context, entry *models.RiskRegistry) error {
	if err := s.registryRepo.Create(ctx, entry); err != nil {
		return err
	}

	s.logger.Info("Created risk registry entry",
		zap.Int("id", entry.ID),
		zap.String("category", entry.RiskCategory))
	return nil
}

func (s *registryService) GetEntry(ctx context.Context, id int) (*models.RiskRegistry, error) {
	return s.registryRepo.GetByID(ctx, id)
}

func (s *registryService) GetEntries(ctx context.Context) ([]*models.RiskRegistry, error) {
	return s.registryRepo.GetAll(ctx)
}

func (s *registryService) UpdateEntry(ctx context.Context, id int, patch *models.RiskRegistryPatch) (*models.RiskRegistry, error) {
	if err := s.registryRepo.Update(ctx, id, patch); err != nil {
		return nil, err
	}

	entry, err := s.registryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		// Deleted between update and read; treat as the update failing.
		return nil, fmt.Errorf("risk registry entry %d disappeared after update", id)
	}

	return entry, nil
}

func (s *registryService) DeleteEntry(ctx context.Context, id int) error {
	if err := s.registryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Deleted risk registry entry", zap.Int("id", id))
	return nil
}

// AnalyzeEntry classifies the entry's latest self-assessment and compares it
// against the prior-year responsible-unit level. With no assessments yet the
// current band is "unassessed" and no delta is reported.
func (s *registryService) AnalyzeEntry(ctx context.Context, id int) (*RiskAnalysis, error) {
	entry, err := s.registryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil // Entry not found
	}

	assessments, err := s.assessmentRepo.GetByRiskID(ctx, id)
	if err != nil {
		return nil, err
	}

	analysis := &RiskAnalysis{
		RiskRegistryID: id,
		PriorLevel:     entry.ResponsibleRiskLevel,
		PriorBand:      scoring.Classify(entry.ResponsibleRiskLevel).String(),
		Assessments:    len(assessments),
	}

	var current *int
	if len(assessments) > 0 {
		level := assessments[len(assessments)-1].RiskLevel
		current = &level
	}

	band := scoring.Classify(current)
	analysis.CurrentLevel = current
	analysis.CurrentBand = band.String()
	analysis.CurrentLabel = band.Label()

	if current != nil {
		delta, trend := scoring.Delta(*current, entry.ResponsibleRiskLevel)
		trendStr := trend.String()
		analysis.Delta = &delta
		analysis.Trend = &trendStr
	}

	return analysis, nil
}
