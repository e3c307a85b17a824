package project

import (
	"context"

	"github.com/govassure/delivery-tracker/internal/domain/assessment"
	"github.com/govassure/delivery-tracker/internal/domain/history"
)

// Repository provides persistence for projects.
type Repository interface {
	Create(ctx context.Context, proj *Project) error
	Get(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context) ([]Project, error)
	Update(ctx context.Context, proj *Project) error
}

// Ledger is the slice of the history service project writes need. Satisfied
// by *history.Service.
type Ledger interface {
	Append(ctx context.Context, entry *history.Entry) error
}

// SummaryReader supplies the standard summaries the status view is computed
// from. Satisfied by *assessment.Service.
type SummaryReader interface {
	Summaries(ctx context.Context, projectID string) ([]assessment.StandardSummary, error)
}
