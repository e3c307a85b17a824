package assessment

import (
	"context"

	"github.com/govassure/delivery-tracker/internal/domain/history"
	"github.com/govassure/delivery-tracker/internal/domain/standard"
)

// Repository provides persistence for current assessments.
type Repository interface {
	Get(ctx context.Context, projectID string, standardNumber int, professionID string) (*Assessment, error)
	Upsert(ctx context.Context, a *Assessment) error
	Delete(ctx context.Context, projectID string, standardNumber int, professionID string) error
	ListForStandard(ctx context.Context, projectID string, standardNumber int) ([]Assessment, error)
}

// SummaryRepository provides persistence for the derived summary cache.
type SummaryRepository interface {
	Put(ctx context.Context, s *StandardSummary) error
	Get(ctx context.Context, projectID string, standardNumber int) (*StandardSummary, error)
	ListForProject(ctx context.Context, projectID string) ([]StandardSummary, error)
	Delete(ctx context.Context, projectID string, standardNumber int) error
}

// DefinitionReader resolves standard and profession definitions for
// validation.
type DefinitionReader interface {
	GetStandard(ctx context.Context, number int) (*standard.Standard, error)
	GetProfession(ctx context.Context, id string) (*standard.Profession, error)
}

// Ledger is the slice of the history service the write path needs. Satisfied
// by *history.Service.
type Ledger interface {
	Append(ctx context.Context, entry *history.Entry) error
	LatestFor(ctx context.Context, scope history.Scope) (*history.Entry, error)
	Archive(ctx context.Context, scope history.Scope, entryID string) (bool, error)
}
