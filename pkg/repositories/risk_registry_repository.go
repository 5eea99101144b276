package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/riskworks/erm-engine/pkg/apperrors"
	"github.com/riskworks/erm-engine/pkg/database"
	"github.com/riskworks/erm-engine/pkg/models"
)

// RiskRegistryRepository provides data access for risk registry entries.
type RiskRegistryRepository interface {
	Create(ctx context.Context, entry *models.RiskRegistry) error
	GetByID(ctx context.Context, id int) (*models.RiskRegistry, error)
	GetAll(ctx context.Context) ([]*models.RiskRegistry, error)
	Update(ctx context.Context, id int, patch *models.RiskRegistryPatch) error
	Delete(ctx context.Context, id int) error
}

type riskRegistryRepository struct {
	db *database.DB
}

// NewRiskRegistryRepository creates a new RiskRegistryRepository.
func NewRiskRegistryRepository(db *database.DB) RiskRegistryRepository {
	return &riskRegistryRepository{db: db}
}

var _ RiskRegistryRepository = (*riskRegistryRepository)(nil)

const riskRegistryColumns = `
	id, strategic_objective, sub_objective, responsible_department, risk_owner,
	operational_target, seed_member, risk_category, level1_index,
	risk_event_source, level2_index, risk_scenario, existing_measures,
	warning_indicator, action_indicator, stakeholders,
	unit_possibility, unit_impact, unit_risk_level,
	responsible_possibility, responsible_impact, responsible_risk_level,
	response_strategy, new_risk_measures, responsible_unit,
	new_warning_indicator, new_action_indicator,
	optimization_suggestion, notes, weighted_risk_level::text, assessment_optimization,
	created_at, updated_at`

// ============================================================================
// CRUD Operations
// ============================================================================

func (r *riskRegistryRepository) Create(ctx context.Context, entry *models.RiskRegistry) error {
	query := `
		INSERT INTO risk_registry (
			strategic_objective, sub_objective, responsible_department, risk_owner,
			operational_target, seed_member, risk_category, level1_index,
			risk_event_source, level2_index, risk_scenario, existing_measures,
			warning_indicator, action_indicator, stakeholders,
			unit_possibility, unit_impact, unit_risk_level,
			responsible_possibility, responsible_impact, responsible_risk_level,
			response_strategy, new_risk_measures, responsible_unit,
			new_warning_indicator, new_action_indicator,
			optimization_suggestion, notes, weighted_risk_level, assessment_optimization
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30
		)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		entry.StrategicObjective,
		entry.SubObjective,
		entry.ResponsibleDepartment,
		entry.RiskOwner,
		entry.OperationalTarget,
		entry.SeedMember,
		entry.RiskCategory,
		entry.Level1Index,
		entry.RiskEventSource,
		entry.Level2Index,
		entry.RiskScenario,
		entry.ExistingMeasures,
		entry.WarningIndicator,
		entry.ActionIndicator,
		entry.Stakeholders,
		entry.UnitPossibility,
		entry.UnitImpact,
		entry.UnitRiskLevel,
		entry.ResponsiblePossibility,
		entry.ResponsibleImpact,
		entry.ResponsibleRiskLevel,
		entry.ResponseStrategy,
		entry.NewRiskMeasures,
		entry.ResponsibleUnit,
		entry.NewWarningIndicator,
		entry.NewActionIndicator,
		entry.OptimizationSuggestion,
		entry.Notes,
		decimalValue(entry.WeightedRiskLevel),
		entry.AssessmentOptimization,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create risk registry entry: %w", err)
	}

	return nil
}

func (r *riskRegistryRepository) GetByID(ctx context.Context, id int) (*models.RiskRegistry, error) {
	query := `SELECT` + riskRegistryColumns + `
		FROM risk_registry
		WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	entry, err := scanRiskRegistry(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Entry not found
		}
		return nil, err
	}

	return entry, nil
}

func (r *riskRegistryRepository) GetAll(ctx context.Context) ([]*models.RiskRegistry, error) {
	query := `SELECT` + riskRegistryColumns + `
		FROM risk_registry
		ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query risk registry: %w", err)
	}
	defer rows.Close()

	var entries []*models.RiskRegistry
	for rows.Next() {
		entry, err := scanRiskRegistry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating risk registry: %w", err)
	}

	return entries, nil
}

// Update applies the non-nil patch fields and always refreshes updated_at,
// even when the patch is empty.
func (r *riskRegistryRepository) Update(ctx context.Context, id int, patch *models.RiskRegistryPatch) error {
	set := []string{"updated_at = NOW()"}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.StrategicObjective != nil {
		add("strategic_objective", *patch.StrategicObjective)
	}
	if patch.SubObjective != nil {
		add("sub_objective", *patch.SubObjective)
	}
	if patch.ResponsibleDepartment != nil {
		add("responsible_department", *patch.ResponsibleDepartment)
	}
	if patch.RiskOwner != nil {
		add("risk_owner", *patch.RiskOwner)
	}
	if patch.OperationalTarget != nil {
		add("operational_target", *patch.OperationalTarget)
	}
	if patch.SeedMember != nil {
		add("seed_member", *patch.SeedMember)
	}
	if patch.RiskCategory != nil {
		add("risk_category", *patch.RiskCategory)
	}
	if patch.Level1Index != nil {
		add("level1_index", *patch.Level1Index)
	}
	if patch.RiskEventSource != nil {
		add("risk_event_source", *patch.RiskEventSource)
	}
	if patch.Level2Index != nil {
		add("level2_index", *patch.Level2Index)
	}
	if patch.RiskScenario != nil {
		add("risk_scenario", *patch.RiskScenario)
	}
	if patch.ExistingMeasures != nil {
		add("existing_measures", *patch.ExistingMeasures)
	}
	if patch.WarningIndicator != nil {
		add("warning_indicator", *patch.WarningIndicator)
	}
	if patch.ActionIndicator != nil {
		add("action_indicator", *patch.ActionIndicator)
	}
	if patch.Stakeholders != nil {
		add("stakeholders", *patch.Stakeholders)
	}
	if patch.UnitPossibility != nil {
		add("unit_possibility", *patch.UnitPossibility)
	}
	if patch.UnitImpact != nil {
		add("unit_impact", *patch.UnitImpact)
	}
	if patch.UnitRiskLevel != nil {
		add("unit_risk_level", *patch.UnitRiskLevel)
	}
	if patch.ResponsiblePossibility != nil {
		add("responsible_possibility", *patch.ResponsiblePossibility)
	}
	if patch.ResponsibleImpact != nil {
		add("responsible_impact", *patch.ResponsibleImpact)
	}
	if patch.ResponsibleRiskLevel != nil {
		add("responsible_risk_level", *patch.ResponsibleRiskLevel)
	}
	if patch.ResponseStrategy != nil {
		add("response_strategy", *patch.ResponseStrategy)
	}
	if patch.NewRiskMeasures != nil {
		add("new_risk_measures", *patch.NewRiskMeasures)
	}
	if patch.ResponsibleUnit != nil {
		add("responsible_unit", *patch.ResponsibleUnit)
	}
	if patch.NewWarningIndicator != nil {
		add("new_warning_indicator", *patch.NewWarningIndicator)
	}
	if patch.NewActionIndicator != nil {
		add("new_action_indicator", *patch.NewActionIndicator)
	}
	if patch.OptimizationSuggestion != nil {
		add("optimization_suggestion", *patch.OptimizationSuggestion)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}
	if patch.WeightedRiskLevel != nil {
		add("weighted_risk_level", patch.WeightedRiskLevel.String())
	}
	if patch.AssessmentOptimization != nil {
		add("assessment_optimization", *patch.AssessmentOptimization)
	}

	query := fmt.Sprintf("UPDATE risk_registry SET %s WHERE id = $1", strings.Join(set, ", "))

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update risk registry entry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

func (r *riskRegistryRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM risk_registry WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete risk registry entry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// ============================================================================
// Helper Functions
// ============================================================================

func scanRiskRegistry(row pgx.Row) (*models.RiskRegistry, error) {
	var e models.RiskRegistry
	var weighted *string

	err := row.Scan(
		&e.ID,
		&e.StrategicObjective,
		&e.SubObjective,
		&e.ResponsibleDepartment,
		&e.RiskOwner,
		&e.OperationalTarget,
		&e.SeedMember,
		&e.RiskCategory,
		&e.Level1Index,
		&e.RiskEventSource,
		&e.Level2Index,
		&e.RiskScenario,
		&e.ExistingMeasures,
		&e.WarningIndicator,
		&e.ActionIndicator,
		&e.Stakeholders,
		&e.UnitPossibility,
		&e.UnitImpact,
		&e.UnitRiskLevel,
		&e.ResponsiblePossibility,
		&e.ResponsibleImpact,
		&e.ResponsibleRiskLevel,
		&e.ResponseStrategy,
		&e.NewRiskMeasures,
		&e.ResponsibleUnit,
		&e.NewWarningIndicator,
		&e.NewActionIndicator,
		&e.OptimizationSuggestion,
		&e.Notes,
		&weighted,
		&e.AssessmentOptimization,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan risk registry entry: %w", err)
	}

	if weighted != nil {
		d, err := decimal.NewFromString(*weighted)
		if err != nil {
			return nil, fmt.Errorf("failed to parse weighted risk level: %w", err)
		}
		e.WeightedRiskLevel = &d
	}

	return &e, nil
}

// decimalValue converts an optional decimal to a driver value, keeping NULL
// for absent weights.
func decimalValue(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}
