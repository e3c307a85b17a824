package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/govassure/delivery-tracker/internal/domain/assessment"
	"github.com/govassure/delivery-tracker/internal/repository"
)

// SummaryRepository stores standard summaries in SQLite.
// Contributions are stored as a JSON column: the summary is a cache, the
// assessments table stays the source of truth.
type SummaryRepository struct {
	db *DB
}

// NewSummaryRepository creates a new SummaryRepository
func NewSummaryRepository(db *DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// Put writes a summary, replacing any previous one for the same standard
func (r *SummaryRepository) Put(ctx context.Context, s *assessment.StandardSummary) error {
	contributions, err := json.Marshal(s.Contributions)
	if err != nil {
		return fmt.Errorf("failed to encode contributions: %w", err)
	}

	query := `
		INSERT INTO standard_summaries (project_id, standard_number, status, commentary, updated_at, contributions)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (project_id, standard_number) DO UPDATE SET
			status = excluded.status,
			commentary = excluded.commentary,
			updated_at = excluded.updated_at,
			contributions = excluded.contributions
	`

	_, err = r.db.ExecContext(ctx, query,
		s.ProjectID,
		s.StandardNumber,
		s.Status,
		s.Commentary,
		s.UpdatedAt,
		string(contributions),
	)
	if err != nil {
		return fmt.Errorf("failed to put summary: %w", err)
	}

	return nil
}

// Get retrieves one standard's summary
func (r *SummaryRepository) Get(ctx context.Context, projectID string, standardNumber int) (*assessment.StandardSummary, error) {
	query := `
		SELECT project_id, standard_number, status, commentary, updated_at, contributions
		FROM standard_summaries
		WHERE project_id = ? AND standard_number = ?
	`

	s, err := scanSummary(r.db.QueryRowContext(ctx, query, projectID, standardNumber))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}

	return s, nil
}

// ListForProject returns all summaries for a project, by standard number
func (r *SummaryRepository) ListForProject(ctx context.Context, projectID string) ([]assessment.StandardSummary, error) {
	query := `
		SELECT project_id, standard_number, status, commentary, updated_at, contributions
		FROM standard_summaries
		WHERE project_id = ?
		ORDER BY standard_number ASC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}
	defer rows.Close()

	var summaries []assessment.StandardSummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		summaries = append(summaries, *s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating summary rows: %w", err)
	}

	return summaries, nil
}

// Delete removes one standard's summary
func (r *SummaryRepository) Delete(ctx context.Context, projectID string, standardNumber int) error {
	query := `
		DELETE FROM standard_summaries
		WHERE project_id = ? AND standard_number = ?
	`

	result, err := r.db.ExecContext(ctx, query, projectID, standardNumber)
	if err != nil {
		return fmt.Errorf("failed to delete summary: %w", err)
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

func scanSummary(row rowScanner) (*assessment.StandardSummary, error) {
	var s assessment.StandardSummary
	var commentary sql.NullString
	var contributions string
	if err := row.Scan(
		&s.ProjectID,
		&s.StandardNumber,
		&s.Status,
		&commentary,
		&s.UpdatedAt,
		&contributions,
	); err != nil {
		return nil, err
	}
	s.Commentary = commentary.String
	if err := json.Unmarshal([]byte(contributions), &s.Contributions); err != nil {
		return nil, fmt.Errorf("failed to decode contributions: %w", err)
	}
	return &s, nil
}
