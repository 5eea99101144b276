package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/riskworks/erm-engine/pkg/database"
	"github.com/riskworks/erm-engine/pkg/models"
)

// RegistryAssessmentRepository provides data access for registry assessments.
type RegistryAssessmentRepository interface {
	Create(ctx context.Context, assessment *models.RegistryAssessment) error
	GetByID(ctx context.Context, id int) (*models.RegistryAssessment, error)
	GetAll(ctx context.Context) ([]*models.RegistryAssessment, error)
	GetByRiskID(ctx context.Context, riskRegistryID int) ([]*models.RegistryAssessment, error)
}

type registryAssessmentRepository struct {
	db *database.DB
}

// NewRegistryAssessmentRepository creates a new RegistryAssessmentRepository.
func NewRegistryAssessmentRepository(db *database.DB) RegistryAssessmentRepository {
	return &registryAssessmentRepository{db: db}
}

var _ RegistryAssessmentRepository = (*registryAssessmentRepository)(nil)

const registryAssessmentColumns = `
	id, risk_registry_id, assessor_email, assessor_name, assessor_department,
	current_impact, current_likelihood, risk_level,
	target_impact, target_likelihood, target_risk_level,
	assessment_notes, mitigation_actions,
	real_assessor_name, real_assessor_department, real_assessor_email,
	created_at, updated_at`

func (r *registryAssessmentRepository) Create(ctx context.Context, assessment *models.RegistryAssessment) error {
	query := `
		INSERT INTO registry_assessments (
			risk_registry_id, assessor_email, assessor_name, assessor_department,
			current_impact, current_likelihood, risk_level,
			target_impact, target_likelihood, target_risk_level,
			assessment_notes, mitigation_actions,
			real_assessor_name, real_assessor_department, real_assessor_email
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		assessment.RiskRegistryID,
		assessment.AssessorEmail,
		assessment.AssessorName,
		assessment.AssessorDepartment,
		assessment.CurrentImpact,
		assessment.CurrentLikelihood,
		assessment.RiskLevel,
		assessment.TargetImpact,
		assessment.TargetLikelihood,
		assessment.TargetRiskLevel,
		assessment.AssessmentNotes,
		assessment.MitigationActions,
		assessment.RealAssessorName,
		assessment.RealAssessorDepartment,
		assessment.RealAssessorEmail,
	).Scan(&assessment.ID, &assessment.CreatedAt, &assessment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create registry assessment: %w", err)
	}

	return nil
}

func (r *registryAssessmentRepository) GetByID(ctx context.Context, id int) (*models.RegistryAssessment, error) {
	query := `SELECT` + registryAssessmentColumns + `
		FROM registry_assessments
		WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	assessment, err := scanRegistryAssessment(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Assessment not found
		}
		return nil, err
	}

	return assessment, nil
}

func (r *registryAssessmentRepository) GetAll(ctx context.Context) ([]*models.RegistryAssessment, error) {
	query := `SELECT` + registryAssessmentColumns + `
		FROM registry_assessments
		ORDER BY id`

	return r.queryAssessments(ctx, query)
}

func (r *registryAssessmentRepository) GetByRiskID(ctx context.Context, riskRegistryID int) ([]*models.RegistryAssessment, error) {
	query := `SELECT` + registryAssessmentColumns + `
		FROM registry_assessments
		WHERE risk_registry_id = $1
		ORDER BY id`

	return r.queryAssessments(ctx, query, riskRegistryID)
}

func (r *registryAssessmentRepository) queryAssessments(ctx context.Context, query string, args ...any) ([]*models.RegistryAssessment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query registry assessments: %w", err)
	}
	defer rows.Close()

	var assessments []*models.RegistryAssessment
	for rows.Next() {
		assessment, err := scanRegistryAssessment(rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, assessment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registry assessments: %w", err)
	}

	return assessments, nil
}

func scanRegistryAssessment(row pgx.Row) (*models.RegistryAssessment, error) {
	var a models.RegistryAssessment

	err := row.Scan(
		&a.ID,
		&a.RiskRegistryID,
		&a.AssessorEmail,
		&a.AssessorName,
		&a.AssessorDepartment,
		&a.CurrentImpact,
		&a.CurrentLikelihood,
		&a.RiskLevel,
		&a.TargetImpact,
		&a.TargetLikelihood,
		&a.TargetRiskLevel,
		&a.AssessmentNotes,
		&a.MitigationActions,
		&a.RealAssessorName,
		&a.RealAssessorDepartment,
		&a.RealAssessorEmail,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan registry assessment: %w", err)
	}

	return &a, nil
}
