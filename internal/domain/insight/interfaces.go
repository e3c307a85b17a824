package insight

import (
	"context"

	"github.com/govassure/delivery-tracker/internal/domain/assessment"
	"github.com/govassure/delivery-tracker/internal/domain/history"
	"github.com/govassure/delivery-tracker/internal/domain/project"
	"github.com/govassure/delivery-tracker/internal/domain/standard"
)

// ProjectReader supplies the full project list for a scan. Satisfied by
// *project.Service.
type ProjectReader interface {
	List(ctx context.Context) ([]project.Project, error)
}

// LedgerScanner is the cross-scope read access the insight queries need:
// everything is non-archived and newest first, spanning all of a project's
// assessment scopes.
type LedgerScanner interface {
	LatestAssessmentEntry(ctx context.Context, projectID string) (*history.Entry, error)
	AssessmentEntries(ctx context.Context, projectID string) ([]history.Entry, error)
}

// SummaryReader supplies standard summaries for display status. Satisfied by
// *assessment.Service.
type SummaryReader interface {
	Summaries(ctx context.Context, projectID string) ([]assessment.StandardSummary, error)
}

// StandardReader labels worsening output with standard definitions.
type StandardReader interface {
	ListStandards(ctx context.Context) ([]standard.Standard, error)
}
