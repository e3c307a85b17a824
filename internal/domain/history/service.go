package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/govassure/delivery-tracker/internal/repository"
	"github.com/google/uuid"
)

// Service handles ledger operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new history service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Append records one immutable entry. Entries with no field changes are
// rejected before they reach the store: a no-op write must leave no trace in
// the ledger.
func (s *Service) Append(ctx context.Context, entry *Entry) error {
	if entry == nil || entry.Scope.ProjectID == "" {
		return ErrInvalidInput
	}
	if len(entry.Changes) == 0 {
		return ErrInvalidInput
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if err := s.repo.Append(ctx, entry); err != nil {
		if s.logger != nil {
			s.logger.Error("ledger append failed", "project", entry.Scope.ProjectID, "error", err)
		}
		return fmt.Errorf("appending history entry: %w", err)
	}
	return nil
}

// EntriesFor returns the non-archived entries for a scope, newest first.
func (s *Service) EntriesFor(ctx context.Context, scope Scope) ([]Entry, error) {
	entries, err := s.repo.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	return entries, nil
}

// LatestFor returns the single newest non-archived entry for a scope.
func (s *Service) LatestFor(ctx context.Context, scope Scope) (*Entry, error) {
	entry, err := s.repo.Latest(ctx, scope)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("loading latest history entry: %w", err)
	}
	return entry, nil
}

// Archive marks one entry archived and reports whether a matching entry was
// found. Re-deriving current state after an archive is the assessment
// service's job, not the ledger's.
func (s *Service) Archive(ctx context.Context, scope Scope, entryID string) (bool, error) {
	if entryID == "" {
		return false, ErrInvalidInput
	}
	found, err := s.repo.Archive(ctx, scope, entryID)
	if err != nil {
		return false, fmt.Errorf("archiving history entry: %w", err)
	}
	return found, nil
}
