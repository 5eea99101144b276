package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/riskworks/erm-engine/pkg/models"
	"github.com/riskworks/erm-engine/pkg/repositories"
)

// StrategicService manages the year-scoped strategic reference data.
type StrategicService interface {
	CreateObjective(ctx context.Context, objective *models.StrategicObjective) error
	GetObjectives(ctx context.Context, year int) ([]*models.StrategicObjective, error)

	CreateSubObjective(ctx context.Context, sub *models.SubStrategicObjective) error
	GetSubObjectives(ctx context.Context, strategicObjectiveID, year int) ([]*models.SubStrategicObjective, error)

	CreateCategory(ctx context.Context, category *models.RiskCategory) error
	GetCategories(ctx context.Context, year int) ([]*models.RiskCategory, error)

	CreateMapping(ctx context.Context, mapping *models.StrategicRiskMapping) error
	GetMappings(ctx context.Context, year int) ([]*models.StrategicRiskMapping, error)
	GetMappingsByPair(ctx context.Context, objectiveID, subObjectiveID, year int) ([]*models.StrategicRiskMapping, error)
}

type strategicService struct {
	repo   repositories.StrategicRepository
	logger *zap.Logger
}

// NewStrategicService creates a new StrategicService.
func NewStrategicService(repo repositories.StrategicRepository, logger *zap.Logger) StrategicService {
	return &strategicService{repo: repo, logger: logger}
}

var _ StrategicService = (*strategicService)(nil)

func (s *strategicService) CreateObjective(ctx context.Context, objective *models.StrategicObjective) error {
	if err := s.repo.CreateObjective(ctx, objective); err != nil {
		return err
	}
	s.logger.Info("Created strategic objective",
		zap.Int("id", objective.ID), zap.Int("year", objective.Year))
	return nil
}

func (s *strategicService) GetObjectives(ctx context.Context, year int) ([]*models.StrategicObjective, error) {
	return s.repo.GetObjectives(ctx, year)
}

func (s *strategicService) CreateSubObjective(ctx context.Context, sub *models.SubStrategicObjective) error {
	if err := s.repo.CreateSubObjective(ctx, sub); err != nil {
		return err
	}
	s.logger.Info("Created sub-strategic objective",
		zap.Int("id", sub.ID), zap.Int("parent_id", sub.StrategicObjectiveID))
	return nil
}

func (s *strategicService) GetSubObjectives(ctx context.Context, strategicObjectiveID, year int) ([]*models.SubStrategicObjective, error) {
	return s.repo.GetSubObjectives(ctx, strategicObjectiveID, year)
}

func (s *strategicService) CreateCategory(ctx context.Context, category *models.RiskCategory) error {
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return err
	}
	s.logger.Info("Created risk category",
		zap.Int("id", category.ID), zap.Int("year", category.Year))
	return nil
}

func (s *strategicService) GetCategories(ctx context.Context, year int) ([]*models.RiskCategory, error) {
	return s.repo.GetCategories(ctx, year)
}

func (s *strategicService) CreateMapping(ctx context.Context, mapping *models.StrategicRiskMapping) error {
	if err := s.repo.CreateMapping(ctx, mapping); err != nil {
		return err
	}
	s.logger.Info("Created strategic risk mapping",
		zap.Int("id", mapping.ID), zap.Int("year", mapping.Year))
	return nil
}

func (s *strategicService) GetMappings(ctx context.Context, year int) ([]*models.StrategicRiskMapping, error) {
	return s.repo.GetMappings(ctx, year)
}

func (s *strategicService) GetMappingsByPair(ctx context.Context, objectiveID, subObjectiveID, year int) ([]*models.StrategicRiskMapping, error) {
	return s.repo.GetMappingsByPair(ctx, objectiveID, subObjectiveID, year)
}
