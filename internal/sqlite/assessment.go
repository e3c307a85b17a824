package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/govassure/delivery-tracker/internal/domain/assessment"
	"github.com/govassure/delivery-tracker/internal/repository"
)

// AssessmentRepository stores current assessments in SQLite
type AssessmentRepository struct {
	db *DB
}

// NewAssessmentRepository creates a new AssessmentRepository
func NewAssessmentRepository(db *DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// Get retrieves the current assessment for one scope
func (r *AssessmentRepository) Get(ctx context.Context, projectID string, standardNumber int, professionID string) (*assessment.Assessment, error) {
	query := `
		SELECT project_id, standard_number, profession_id, status, commentary, updated_at, changed_by
		FROM assessments
		WHERE project_id = ? AND standard_number = ? AND profession_id = ?
	`

	a, err := scanAssessment(r.db.QueryRowContext(ctx, query, projectID, standardNumber, professionID))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}

	return a, nil
}

// Upsert writes the current assessment, overwriting any previous state
func (r *AssessmentRepository) Upsert(ctx context.Context, a *assessment.Assessment) error {
	query := `
		INSERT INTO assessments (project_id, standard_number, profession_id, status, commentary, updated_at, changed_by)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (project_id, standard_number, profession_id) DO UPDATE SET
			status = excluded.status,
			commentary = excluded.commentary,
			updated_at = excluded.updated_at,
			changed_by = excluded.changed_by
	`

	_, err := r.db.ExecContext(ctx, query,
		a.ProjectID,
		a.StandardNumber,
		a.ProfessionID,
		a.Status,
		a.Commentary,
		a.UpdatedAt,
		a.ChangedBy,
	)
	if isForeignKeyViolation(err) {
		return repository.ErrInvalidInput
	}
	if err != nil {
		return fmt.Errorf("failed to upsert assessment: %w", err)
	}

	return nil
}

// Delete removes the current assessment for one scope
func (r *AssessmentRepository) Delete(ctx context.Context, projectID string, standardNumber int, professionID string) error {
	query := `
		DELETE FROM assessments
		WHERE project_id = ? AND standard_number = ? AND profession_id = ?
	`

	result, err := r.db.ExecContext(ctx, query, projectID, standardNumber, professionID)
	if err != nil {
		return fmt.Errorf("failed to delete assessment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// ListForStandard returns every profession's current assessment for one
// (project, standard)
func (r *AssessmentRepository) ListForStandard(ctx context.Context, projectID string, standardNumber int) ([]assessment.Assessment, error) {
	query := `
		SELECT project_id, standard_number, profession_id, status, commentary, updated_at, changed_by
		FROM assessments
		WHERE project_id = ? AND standard_number = ?
		ORDER BY profession_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID, standardNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer rows.Close()

	var assessments []assessment.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		assessments = append(assessments, *a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assessment rows: %w", err)
	}

	return assessments, nil
}

func scanAssessment(row rowScanner) (*assessment.Assessment, error) {
	var a assessment.Assessment
	var commentary sql.NullString
	if err := row.Scan(
		&a.ProjectID,
		&a.StandardNumber,
		&a.ProfessionID,
		&a.Status,
		&commentary,
		&a.UpdatedAt,
		&a.ChangedBy,
	); err != nil {
		return nil, err
	}
	a.Commentary = commentary.String
	return &a, nil
}
