package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/riskworks/erm-engine/pkg/database"
	"github.com/riskworks/erm-engine/pkg/models"
)

// StrategicRepository provides data access for the year-scoped strategic
// reference tables: objectives, sub-objectives, risk categories, and their
// mappings. List reads return active rows for one year.
type StrategicRepository interface {
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

type strategicRepository struct {
	db *database.DB
}

// NewStrategicRepository creates a new StrategicRepository.
func NewStrategicRepository(db *database.DB) StrategicRepository {
	return &strategicRepository{db: db}
}

var _ StrategicRepository = (*strategicRepository)(nil)

// ============================================================================
// Strategic Objectives
// ============================================================================

func (r *strategicRepository) CreateObjective(ctx context.Context, objective *models.StrategicObjective) error {
	query := `
		INSERT INTO strategic_objectives (name, leader, year)
		VALUES ($1, $2, $3)
		RETURNING id, is_active, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, objective.Name, objective.Leader, objective.Year).
		Scan(&objective.ID, &objective.IsActive, &objective.CreatedAt, &objective.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create strategic objective: %w", err)
	}

	return nil
}

func (r *strategicRepository) GetObjectives(ctx context.Context, year int) ([]*models.StrategicObjective, error) {
	query := `
		SELECT id, name, leader, year, is_active, created_at, updated_at
		FROM strategic_objectives
		WHERE year = $1 AND is_active = true
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query strategic objectives: %w", err)
	}
	defer rows.Close()

	var objectives []*models.StrategicObjective
	for rows.Next() {
		var o models.StrategicObjective
		if err := rows.Scan(&o.ID, &o.Name, &o.Leader, &o.Year, &o.IsActive, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan strategic objective: %w", err)
		}
		objectives = append(objectives, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating strategic objectives: %w", err)
	}

	return objectives, nil
}

// ============================================================================
// Sub-Strategic Objectives
// ============================================================================

func (r *strategicRepository) CreateSubObjective(ctx context.Context, sub *models.SubStrategicObjective) error {
	query := `
		INSERT INTO sub_strategic_objectives (strategic_objective_id, name, year)
		VALUES ($1, $2, $3)
		RETURNING id, is_active, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, sub.StrategicObjectiveID, sub.Name, sub.Year).
		Scan(&sub.ID, &sub.IsActive, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create sub-strategic objective: %w", err)
	}

	return nil
}

func (r *strategicRepository) GetSubObjectives(ctx context.Context, strategicObjectiveID, year int) ([]*models.SubStrategicObjective, error) {
	query := `
		SELECT id, strategic_objective_id, name, year, is_active, created_at, updated_at
		FROM sub_strategic_objectives
		WHERE strategic_objective_id = $1 AND year = $2 AND is_active = true
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, strategicObjectiveID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query sub-strategic objectives: %w", err)
	}
	defer rows.Close()

	var subs []*models.SubStrategicObjective
	for rows.Next() {
		var s models.SubStrategicObjective
		if err := rows.Scan(&s.ID, &s.StrategicObjectiveID, &s.Name, &s.Year, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sub-strategic objective: %w", err)
		}
		subs = append(subs, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sub-strategic objectives: %w", err)
	}

	return subs, nil
}

// ============================================================================
// Risk Categories
// ============================================================================

func (r *strategicRepository) CreateCategory(ctx context.Context, category *models.RiskCategory) error {
	query := `
		INSERT INTO risk_categories (name, description, year)
		VALUES ($1, $2, $3)
		RETURNING id, is_active, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, category.Name, category.Description, category.Year).
		Scan(&category.ID, &category.IsActive, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create risk category: %w", err)
	}

	return nil
}

func (r *strategicRepository) GetCategories(ctx context.Context, year int) ([]*models.RiskCategory, error) {
	query := `
		SELECT id, name, description, year, is_active, created_at, updated_at
		FROM risk_categories
		WHERE year = $1 AND is_active = true
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query risk categories: %w", err)
	}
	defer rows.Close()

	var categories []*models.RiskCategory
	for rows.Next() {
		var c models.RiskCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Year, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan risk category: %w", err)
		}
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating risk categories: %w", err)
	}

	return categories, nil
}

// ============================================================================
// Strategic Risk Mappings
// ============================================================================

func (r *strategicRepository) CreateMapping(ctx context.Context, mapping *models.StrategicRiskMapping) error {
	query := `
		INSERT INTO strategic_risk_mappings (strategic_objective_id, sub_strategic_objective_id, risk_category_id, year)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		mapping.StrategicObjectiveID,
		mapping.SubStrategicObjectiveID,
		mapping.RiskCategoryID,
		mapping.Year,
	).Scan(&mapping.ID, &mapping.IsActive, &mapping.CreatedAt, &mapping.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create strategic risk mapping: %w", err)
	}

	return nil
}

const mappingSelect = `
	SELECT m.id, m.strategic_objective_id, m.sub_strategic_objective_id, m.risk_category_id,
	       m.year, m.is_active, m.created_at, m.updated_at,
	       o.name, s.name, c.name
	FROM strategic_risk_mappings m
	JOIN strategic_objectives o ON o.id = m.strategic_objective_id
	JOIN sub_strategic_objectives s ON s.id = m.sub_strategic_objective_id
	JOIN risk_categories c ON c.id = m.risk_category_id`

func (r *strategicRepository) GetMappings(ctx context.Context, year int) ([]*models.StrategicRiskMapping, error) {
	query := mappingSelect + `
	WHERE m.year = $1 AND m.is_active = true
	ORDER BY m.id`

	return r.queryMappings(ctx, query, year)
}

func (r *strategicRepository) GetMappingsByPair(ctx context.Context, objectiveID, subObjectiveID, year int) ([]*models.StrategicRiskMapping, error) {
	query := mappingSelect + `
	WHERE m.strategic_objective_id = $1 AND m.sub_strategic_objective_id = $2
	  AND m.year = $3 AND m.is_active = true
	ORDER BY m.id`

	return r.queryMappings(ctx, query, objectiveID, subObjectiveID, year)
}

func (r *strategicRepository) queryMappings(ctx context.Context, query string, args ...any) ([]*models.StrategicRiskMapping, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query strategic risk mappings: %w", err)
	}
	defer rows.Close()

	var mappings []*models.StrategicRiskMapping
	for rows.Next() {
		mapping, err := scanMapping(rows)
		if err != nil {
			return nil, err
		}
		mappings = append(mappings, mapping)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating strategic risk mappings: %w", err)
	}

	return mappings, nil
}

func scanMapping(row pgx.Row) (*models.StrategicRiskMapping, error) {
	var m models.StrategicRiskMapping
	err := row.Scan(
		&m.ID,
		&m.StrategicObjectiveID,
		&m.SubStrategicObjectiveID,
		&m.RiskCategoryID,
		&m.Year,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.StrategicObjectiveName,
		&m.SubStrategicObjectiveName,
		&m.RiskCategoryName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan strategic risk mapping: %w", err)
	}

	return &m, nil
}
