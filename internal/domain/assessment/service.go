package assessment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/govassure/delivery-tracker/internal/domain/history"
	"github.com/govassure/delivery-tracker/internal/domain/rag"
	"github.com/govassure/delivery-tracker/internal/repository"
)

// Service handles assessment writes and the summary recompute that follows
// every one of them.
type Service struct {
	assessments Repository
	summaries   SummaryRepository
	definitions DefinitionReader
	ledger      Ledger
	logger      *slog.Logger
}

// NewService creates a new assessment service.
func NewService(
	assessments Repository,
	summaries SummaryRepository,
	definitions DefinitionReader,
	ledger Ledger,
	logger *slog.Logger,
) *Service {
	return &Service{
		assessments: assessments,
		summaries:   summaries,
		definitions: definitions,
		ledger:      ledger,
		logger:      logger,
	}
}

// SubmitRequest describes one assessment submission.
type SubmitRequest struct {
	ProjectID      string
	StandardNumber int
	ProfessionID   string
	Status         string
	Commentary     string
	Actor          string
}

// Submit upserts one (project, standard, profession) assessment. The ledger
// entry is appended before the assessment write; a crash between the two
// leaves an entry with no matching write, which readers must tolerate. A
// submission that changes nothing produces no ledger entry and no write.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*Assessment, error) {
	if req.ProjectID == "" || req.ProfessionID == "" || req.StandardNumber == 0 {
		return nil, ErrInvalidInput
	}

	status, err := rag.ParseStatus(req.Status)
	if err != nil {
		return nil, ErrInvalidStatus
	}

	if _, err := s.definitions.GetStandard(ctx, req.StandardNumber); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownStandard
		}
		return nil, fmt.Errorf("loading standard definition: %w", err)
	}
	if _, err := s.definitions.GetProfession(ctx, req.ProfessionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownProfession
		}
		return nil, fmt.Errorf("loading profession definition: %w", err)
	}

	current, err := s.assessments.Get(ctx, req.ProjectID, req.StandardNumber, req.ProfessionID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading assessment: %w", err)
	}

	changes := map[history.Field]history.Change{}
	if current == nil {
		changes[history.FieldStatus] = history.Change{To: string(status)}
		if req.Commentary != "" {
			changes[history.FieldCommentary] = history.Change{To: req.Commentary}
		}
	} else {
		if current.Status != status {
			changes[history.FieldStatus] = history.Change{From: string(current.Status), To: string(status)}
		}
		if current.Commentary != req.Commentary {
			changes[history.FieldCommentary] = history.Change{From: current.Commentary, To: req.Commentary}
		}
	}
	if len(changes) == 0 {
		return current, nil
	}

	now := time.Now()
	entry := &history.Entry{
		Scope: history.Scope{
			ProjectID:      req.ProjectID,
			StandardNumber: req.StandardNumber,
			ProfessionID:   req.ProfessionID,
		},
		Timestamp: now,
		Actor:     req.Actor,
		Changes:   changes,
	}
	if err := s.ledger.Append(ctx, entry); err != nil {
		return nil, err
	}

	updated := &Assessment{
		ProjectID:      req.ProjectID,
		StandardNumber: req.StandardNumber,
		ProfessionID:   req.ProfessionID,
		Status:         status,
		Commentary:     req.Commentary,
		UpdatedAt:      now,
		ChangedBy:      req.Actor,
	}
	if err := s.assessments.Upsert(ctx, updated); err != nil {
		return nil, fmt.Errorf("writing assessment: %w", err)
	}

	if err := s.recomputeSummary(ctx, req.ProjectID, req.StandardNumber); err != nil {
		return nil, err
	}

	return updated, nil
}

// Get returns the current assessment for one scope.
func (s *Service) Get(ctx context.Context, projectID string, standardNumber int, professionID string) (*Assessment, error) {
	a, err := s.assessments.Get(ctx, projectID, standardNumber, professionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("getting assessment: %w", err)
	}
	return a, nil
}

// Summary returns the cached summary for one standard.
func (s *Service) Summary(ctx context.Context, projectID string, standardNumber int) (*StandardSummary, error) {
	summary, err := s.summaries.Get(ctx, projectID, standardNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSummaryNotFound
		}
		return nil, fmt.Errorf("getting summary: %w", err)
	}
	return summary, nil
}

// Summaries returns all cached summaries for a project.
func (s *Service) Summaries(ctx context.Context, projectID string) ([]StandardSummary, error) {
	summaries, err := s.summaries.ListForProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing summaries: %w", err)
	}
	return summaries, nil
}

// ArchiveEntry archives one ledger entry and, for assessment-scoped entries,
// re-derives the current assessment from whatever the latest non-archived
// entry now is: its "to" values overwrite the fields it carries, or the
// assessment is removed entirely when no entries remain.
func (s *Service) ArchiveEntry(ctx context.Context, scope history.Scope, entryID string) error {
	found, err := s.ledger.Archive(ctx, scope, entryID)
	if err != nil {
		return err
	}
	if !found {
		return history.ErrEntryNotFound
	}

	if !scope.Assessment() {
		return nil
	}

	latest, err := s.ledger.LatestFor(ctx, scope)
	if err != nil {
		if !errors.Is(err, history.ErrEntryNotFound) {
			return err
		}
		if err := s.assessments.Delete(ctx, scope.ProjectID, scope.StandardNumber, scope.ProfessionID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("removing assessment: %w", err)
		}
		return s.recomputeSummary(ctx, scope.ProjectID, scope.StandardNumber)
	}

	current, err := s.assessments.Get(ctx, scope.ProjectID, scope.StandardNumber, scope.ProfessionID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("loading assessment: %w", err)
	}

	derived := &Assessment{
		ProjectID:      scope.ProjectID,
		StandardNumber: scope.StandardNumber,
		ProfessionID:   scope.ProfessionID,
	}
	if current != nil {
		*derived = *current
	}
	if to, ok := latest.StatusTo(); ok {
		status, perr := rag.ParseStatus(to)
		if perr == nil {
			derived.Status = status
		}
	}
	if c, ok := latest.Changes[history.FieldCommentary]; ok {
		derived.Commentary = c.To
	}
	derived.UpdatedAt = latest.Timestamp
	derived.ChangedBy = latest.Actor

	if err := s.assessments.Upsert(ctx, derived); err != nil {
		return fmt.Errorf("rederiving assessment: %w", err)
	}
	return s.recomputeSummary(ctx, scope.ProjectID, scope.StandardNumber)
}

func (s *Service) recomputeSummary(ctx context.Context, projectID string, standardNumber int) error {
	assessments, err := s.assessments.ListForStandard(ctx, projectID, standardNumber)
	if err != nil {
		return fmt.Errorf("listing assessments: %w", err)
	}

	summary := Aggregate(projectID, standardNumber, assessments)
	if summary == nil {
		if err := s.summaries.Delete(ctx, projectID, standardNumber); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("removing summary: %w", err)
		}
		return nil
	}
	if err := s.summaries.Put(ctx, summary); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
