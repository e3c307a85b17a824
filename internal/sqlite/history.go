package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/govassure/delivery-tracker/internal/domain/history"
	"github.com/govassure/delivery-tracker/internal/repository"
)

// HistoryRepository stores the ledger in SQLite.
// Entries are never deleted or reordered; Archive flips the one mutable
// column.
type HistoryRepository struct {
	db *DB
}

// NewHistoryRepository creates a new HistoryRepository
func NewHistoryRepository(db *DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Append inserts one immutable ledger entry
func (r *HistoryRepository) Append(ctx context.Context, entry *history.Entry) error {
	changes, err := json.Marshal(entry.Changes)
	if err != nil {
		return fmt.Errorf("failed to encode changes: %w", err)
	}

	query := `
		INSERT INTO history (id, project_id, standard_number, profession_id, timestamp, actor, changes, archived)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0)
	`

	_, err = r.db.ExecContext(ctx, query,
		entry.ID,
		entry.Scope.ProjectID,
		nullableInt(entry.Scope.StandardNumber),
		nullableString(entry.Scope.ProfessionID),
		entry.Timestamp,
		entry.Actor,
		string(changes),
	)
	if err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}

	return nil
}

// List returns the non-archived entries for a scope, newest first
func (r *HistoryRepository) List(ctx context.Context, scope history.Scope) ([]history.Entry, error) {
	query := selectEntry + scopeFilter(scope) + ` AND archived = 0 ORDER BY timestamp DESC`

	rows, err := r.db.QueryContext(ctx, query, scopeArgs(scope)...)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// Latest returns the newest non-archived entry for a scope
func (r *HistoryRepository) Latest(ctx context.Context, scope history.Scope) (*history.Entry, error) {
	query := selectEntry + scopeFilter(scope) + ` AND archived = 0 ORDER BY timestamp DESC LIMIT 1`

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, scopeArgs(scope)...))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest history entry: %w", err)
	}

	return entry, nil
}

// Archive marks one entry archived and reports whether it matched
func (r *HistoryRepository) Archive(ctx context.Context, scope history.Scope, entryID string) (bool, error) {
	query := `UPDATE history SET archived = 1 WHERE id = ?` + scopeFilterAnd(scope)

	args := append([]any{entryID}, scopeArgs(scope)...)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to archive history entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected > 0, nil
}

// LatestAssessmentEntry returns the newest non-archived entry across all of a
// project's assessment scopes
func (r *HistoryRepository) LatestAssessmentEntry(ctx context.Context, projectID string) (*history.Entry, error) {
	query := selectEntry + `
		WHERE project_id = ? AND standard_number IS NOT NULL AND archived = 0
		ORDER BY timestamp DESC LIMIT 1`

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, projectID))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest assessment entry: %w", err)
	}

	return entry, nil
}

// AssessmentEntries returns every non-archived assessment-scoped entry for a
// project, newest first
func (r *HistoryRepository) AssessmentEntries(ctx context.Context, projectID string) ([]history.Entry, error) {
	query := selectEntry + `
		WHERE project_id = ? AND standard_number IS NOT NULL AND archived = 0
		ORDER BY timestamp DESC`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessment entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

const selectEntry = `
	SELECT id, project_id, standard_number, profession_id, timestamp, actor, changes, archived
	FROM history`

func scopeFilter(scope history.Scope) string {
	if scope.Assessment() {
		return ` WHERE project_id = ? AND standard_number = ? AND profession_id = ?`
	}
	return ` WHERE project_id = ? AND standard_number IS NULL AND profession_id IS NULL`
}

func scopeFilterAnd(scope history.Scope) string {
	if scope.Assessment() {
		return ` AND project_id = ? AND standard_number = ? AND profession_id = ?`
	}
	return ` AND project_id = ? AND standard_number IS NULL AND profession_id IS NULL`
}

func scopeArgs(scope history.Scope) []any {
	if scope.Assessment() {
		return []any{scope.ProjectID, scope.StandardNumber, scope.ProfessionID}
	}
	return []any{scope.ProjectID}
}

func collectEntries(rows *sql.Rows) ([]history.Entry, error) {
	var entries []history.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history rows: %w", err)
	}

	return entries, nil
}

func scanEntry(row rowScanner) (*history.Entry, error) {
	var entry history.Entry
	var standardNumber sql.NullInt64
	var professionID sql.NullString
	var changes string
	if err := row.Scan(
		&entry.ID,
		&entry.Scope.ProjectID,
		&standardNumber,
		&professionID,
		&entry.Timestamp,
		&entry.Actor,
		&changes,
		&entry.Archived,
	); err != nil {
		return nil, err
	}
	entry.Scope.StandardNumber = int(standardNumber.Int64)
	entry.Scope.ProfessionID = professionID.String
	if err := json.Unmarshal([]byte(changes), &entry.Changes); err != nil {
		return nil, fmt.Errorf("failed to decode changes: %w", err)
	}
	return &entry, nil
}

func nullableInt(n int) any {
	if n == 0 {
		return nil
	}
	return n
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
