package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/govassure/delivery-tracker/internal/domain/history"
	"github.com/govassure/delivery-tracker/internal/domain/rag"
	"github.com/govassure/delivery-tracker/internal/repository"
	"github.com/google/uuid"
)

// Service handles project operations.
type Service struct {
	repo      Repository
	ledger    Ledger
	summaries SummaryReader
	logger    *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, ledger Ledger, summaries SummaryReader, logger *slog.Logger) *Service {
	return &Service{repo: repo, ledger: ledger, summaries: summaries, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	ID          string
	Name        string
	Description string
	Phase       string
	Tags        []string
	Actor       string
}

// UpdateRequest defines a partial project update. Nil fields are untouched.
type UpdateRequest struct {
	ID     string
	Name   *string
	Phase  *string
	Tags   []string
	Status *string
	Actor  string
}

// Create creates a new project.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}

	phase := PhaseDiscovery
	if req.Phase != "" {
		p, err := parsePhase(req.Phase)
		if err != nil {
			return nil, err
		}
		phase = p
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	now := time.Now()
	proj := &Project{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Phase:       phase,
		Tags:        req.Tags,
		Status:      rag.StatusTBC,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return proj, nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// List returns all projects.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx)
}

// Update applies a partial update. Changed tracked fields are recorded in the
// project-scoped ledger before the write; an update that changes nothing
// writes nothing and leaves no ledger entry.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Project, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}

	current, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	updated := *current
	changes := map[history.Field]history.Change{}

	if req.Name != nil && *req.Name != current.Name {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrInvalidInput
		}
		changes[history.FieldName] = history.Change{From: current.Name, To: *req.Name}
		updated.Name = *req.Name
	}
	if req.Phase != nil {
		phase, perr := parsePhase(*req.Phase)
		if perr != nil {
			return nil, perr
		}
		if phase != current.Phase {
			changes[history.FieldPhase] = history.Change{From: string(current.Phase), To: string(phase)}
			updated.Phase = phase
		}
	}
	if req.Tags != nil {
		from := strings.Join(current.Tags, ",")
		to := strings.Join(req.Tags, ",")
		if from != to {
			changes[history.FieldTags] = history.Change{From: from, To: to}
			updated.Tags = req.Tags
		}
	}
	if req.Status != nil {
		status, perr := rag.ParseStatus(*req.Status)
		if perr != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, perr)
		}
		if status != current.Status {
			changes[history.FieldStatus] = history.Change{From: string(current.Status), To: string(status)}
			updated.Status = status
		}
	}

	if len(changes) == 0 {
		return current, nil
	}

	updated.UpdatedAt = time.Now()
	entry := &history.Entry{
		Scope:     history.Scope{ProjectID: req.ID},
		Timestamp: updated.UpdatedAt,
		Actor:     req.Actor,
		Changes:   changes,
	}
	if err := s.ledger.Append(ctx, entry); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	return &updated, nil
}

// Status computes the project-level view from the current standard summaries.
func (s *Service) Status(ctx context.Context, id string) (*Status, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	summaries, err := s.summaries.Summaries(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading summaries: %w", err)
	}

	status := ComputeStatus(id, summaries)
	return &status, nil
}

func parsePhase(s string) (Phase, error) {
	switch Phase(s) {
	case PhaseDiscovery, PhaseAlpha, PhaseBeta, PhaseLive:
		return Phase(s), nil
	}
	return "", ErrInvalidPhase
}
