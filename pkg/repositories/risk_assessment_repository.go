package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/riskworks/erm-engine/pkg/database"
	"github.com/riskworks/erm-engine/pkg/models"
)

// RiskAssessmentRepository provides data access for the legacy questionnaire.
type RiskAssessmentRepository interface {
	Create(ctx context.Context, assessment *models.RiskAssessment) error
	GetByID(ctx context.Context, id int) (*models.RiskAssessment, error)
	GetAll(ctx context.Context) ([]*models.RiskAssessment, error)
}

type riskAssessmentRepository struct {
	db *database.DB
}

// NewRiskAssessmentRepository creates a new RiskAssessmentRepository.
func NewRiskAssessmentRepository(db *database.DB) RiskAssessmentRepository {
	return &riskAssessmentRepository{db: db}
}

var _ RiskAssessmentRepository = (*riskAssessmentRepository)(nil)

const riskAssessmentColumns = `
	id, email, name, department, acknowledgement,
	competition_impact, competition_likelihood,
	market_demand_impact, market_demand_likelihood,
	raw_material_impact, raw_material_likelihood,
	material_shortage_impact, material_shortage_likelihood,
	new_product_development_impact, new_product_development_likelihood,
	credit_impact, credit_likelihood,
	currency_impact, currency_likelihood,
	funding_cost_impact, funding_cost_likelihood,
	geopolitical_conflict_impact, geopolitical_conflict_likelihood,
	technology_cold_war_impact, technology_cold_war_likelihood,
	ai_transformation_impact, ai_transformation_likelihood,
	carbon_pricing_impact, carbon_pricing_likelihood,
	submitted_at`

func (r *riskAssessmentRepository) Create(ctx context.Context, assessment *models.RiskAssessment) error {
	query := `
		INSERT INTO risk_assessments (
			email, name, department, acknowledgement,
			competition_impact, competition_likelihood,
			market_demand_impact, market_demand_likelihood,
			raw_material_impact, raw_material_likelihood,
			material_shortage_impact, material_shortage_likelihood,
			new_product_development_impact, new_product_development_likelihood,
			credit_impact, credit_likelihood,
			currency_impact, currency_likelihood,
			funding_cost_impact, funding_cost_likelihood,
			geopolitical_conflict_impact, geopolitical_conflict_likelihood,
			technology_cold_war_impact, technology_cold_war_likelihood,
			ai_transformation_impact, ai_transformation_likelihood,
			carbon_pricing_impact, carbon_pricing_likelihood
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28
		)
		RETURNING id, submitted_at`

	err := r.db.QueryRow(ctx, query,
		assessment.Email,
		assessment.Name,
		assessment.Department,
		assessment.Acknowledgement,
		assessment.CompetitionImpact,
		assessment.CompetitionLikelihood,
		assessment.MarketDemandImpact,
		assessment.MarketDemandLikelihood,
		assessment.RawMaterialImpact,
		assessment.RawMaterialLikelihood,
		assessment.MaterialShortageImpact,
		assessment.MaterialShortageLikelihood,
		assessment.NewProductDevelopmentImpact,
		assessment.NewProductDevelopmentLikelihood,
		assessment.CreditImpact,
		assessment.CreditLikelihood,
		assessment.CurrencyImpact,
		assessment.CurrencyLikelihood,
		assessment.FundingCostImpact,
		assessment.FundingCostLikelihood,
		assessment.GeopoliticalConflictImpact,
		assessment.GeopoliticalConflictLikelihood,
		assessment.TechnologyColdWarImpact,
		assessment.TechnologyColdWarLikelihood,
		assessment.AiTransformationImpact,
		assessment.AiTransformationLikelihood,
		assessment.CarbonPricingImpact,
		assessment.CarbonPricingLikelihood,
	).Scan(&assessment.ID, &assessment.SubmittedAt)
	if err != nil {
		return fmt.Errorf("failed to create risk assessment: %w", err)
	}

	return nil
}

func (r *riskAssessmentRepository) GetByID(ctx context.Context, id int) (*models.RiskAssessment, error) {
	query := `SELECT` + riskAssessmentColumns + `
		FROM risk_assessments
		WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	assessment, err := scanRiskAssessment(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Assessment not found
		}
		return nil, err
	}

	return assessment, nil
}

func (r *riskAssessmentRepository) GetAll(ctx context.Context) ([]*models.RiskAssessment, error) {
	query := `SELECT` + riskAssessmentColumns + `
		FROM risk_assessments
		ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query risk assessments: %w", err)
	}
	defer rows.Close()

	var assessments []*models.RiskAssessment
	for rows.Next() {
		assessment, err := scanRiskAssessment(rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, assessment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating risk assessments: %w", err)
	}

	return assessments, nil
}

func scanRiskAssessment(row pgx.Row) (*models.RiskAssessment, error) {
	var a models.RiskAssessment

	err := row.Scan(
		&a.ID,
		&a.Email,
		&a.Name,
		&a.Department,
		&a.Acknowledgement,
		&a.CompetitionImpact,
		&a.CompetitionLikelihood,
		&a.MarketDemandImpact,
		&a.MarketDemandLikelihood,
		&a.RawMaterialImpact,
		&a.RawMaterialLikelihood,
		&a.MaterialShortageImpact,
		&a.MaterialShortageLikelihood,
		&a.NewProductDevelopmentImpact,
		&a.NewProductDevelopmentLikelihood,
		&a.CreditImpact,
		&a.CreditLikelihood,
		&a.CurrencyImpact,
		&a.CurrencyLikelihood,
		&a.FundingCostImpact,
		&a.FundingCostLikelihood,
		&a.GeopoliticalConflictImpact,
		&a.GeopoliticalConflictLikelihood,
		&a.TechnologyColdWarImpact,
		&a.TechnologyColdWarLikelihood,
		&a.AiTransformationImpact,
		&a.AiTransformationLikelihood,
		&a.CarbonPricingImpact,
		&a.CarbonPricingLikelihood,
		&a.SubmittedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan risk assessment: %w", err)
	}

	return &a, nil
}
