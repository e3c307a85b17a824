package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/govassure/delivery-tracker/internal/domain/standard"
	"github.com/govassure/delivery-tracker/internal/repository"
)

// StandardRepository reads the seeded definitions from SQLite.
// Definitions are seeded by migration and read-only at runtime.
type StandardRepository struct {
	db *DB
}

// NewStandardRepository creates a new StandardRepository
func NewStandardRepository(db *DB) *StandardRepository {
	return &StandardRepository{db: db}
}

// ListStandards returns all standard definitions by number
func (r *StandardRepository) ListStandards(ctx context.Context) ([]standard.Standard, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT number, name FROM standards ORDER BY number ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list standards: %w", err)
	}
	defer rows.Close()

	var standards []standard.Standard
	for rows.Next() {
		var s standard.Standard
		if err := rows.Scan(&s.Number, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan standard: %w", err)
		}
		standards = append(standards, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating standard rows: %w", err)
	}

	return standards, nil
}

// GetStandard returns one standard definition
func (r *StandardRepository) GetStandard(ctx context.Context, number int) (*standard.Standard, error) {
	var s standard.Standard
	err := r.db.QueryRowContext(ctx, `SELECT number, name FROM standards WHERE number = ?`, number).
		Scan(&s.Number, &s.Name)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get standard: %w", err)
	}

	return &s, nil
}

// ListProfessions returns all profession definitions by name
func (r *StandardRepository) ListProfessions(ctx context.Context) ([]standard.Profession, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM professions ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list professions: %w", err)
	}
	defer rows.Close()

	var professions []standard.Profession
	for rows.Next() {
		var p standard.Profession
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan profession: %w", err)
		}
		professions = append(professions, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profession rows: %w", err)
	}

	return professions, nil
}

// GetProfession returns one profession definition
func (r *StandardRepository) GetProfession(ctx context.Context, id string) (*standard.Profession, error) {
	var p standard.Profession
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM professions WHERE id = ?`, id).
		Scan(&p.ID, &p.Name)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profession: %w", err)
	}

	return &p, nil
}
