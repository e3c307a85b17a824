package mocks

import (
	"context"

	"github.com/govassure/delivery-tracker/internal/domain/assessment"
	"github.com/govassure/delivery-tracker/internal/domain/history"
	"github.com/govassure/delivery-tracker/internal/domain/project"
	"github.com/govassure/delivery-tracker/internal/domain/standard"
	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock project store.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Update(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

// AssessmentRepository is a mock assessment store.
type AssessmentRepository struct {
	mock.Mock
}

func (m *AssessmentRepository) Get(ctx context.Context, projectID string, standardNumber int, professionID string) (*assessment.Assessment, error) {
	args := m.Called(ctx, projectID, standardNumber, professionID)
	if a, ok := args.Get(0).(*assessment.Assessment); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AssessmentRepository) Upsert(ctx context.Context, a *assessment.Assessment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *AssessmentRepository) Delete(ctx context.Context, projectID string, standardNumber int, professionID string) error {
	args := m.Called(ctx, projectID, standardNumber, professionID)
	return args.Error(0)
}

func (m *AssessmentRepository) ListForStandard(ctx context.Context, projectID string, standardNumber int) ([]assessment.Assessment, error) {
	args := m.Called(ctx, projectID, standardNumber)
	if list, ok := args.Get(0).([]assessment.Assessment); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// SummaryRepository is a mock summary store.
type SummaryRepository struct {
	mock.Mock
}

func (m *SummaryRepository) Put(ctx context.Context, s *assessment.StandardSummary) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *SummaryRepository) Get(ctx context.Context, projectID string, standardNumber int) (*assessment.StandardSummary, error) {
	args := m.Called(ctx, projectID, standardNumber)
	if s, ok := args.Get(0).(*assessment.StandardSummary); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SummaryRepository) ListForProject(ctx context.Context, projectID string) ([]assessment.StandardSummary, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]assessment.StandardSummary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SummaryRepository) Delete(ctx context.Context, projectID string, standardNumber int) error {
	args := m.Called(ctx, projectID, standardNumber)
	return args.Error(0)
}

// HistoryRepository is a mock ledger store.
type HistoryRepository struct {
	mock.Mock
}

func (m *HistoryRepository) Append(ctx context.Context, entry *history.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *HistoryRepository) List(ctx context.Context, scope history.Scope) ([]history.Entry, error) {
	args := m.Called(ctx, scope)
	if list, ok := args.Get(0).([]history.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *HistoryRepository) Latest(ctx context.Context, scope history.Scope) (*history.Entry, error) {
	args := m.Called(ctx, scope)
	if entry, ok := args.Get(0).(*history.Entry); ok {
		return entry, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *HistoryRepository) Archive(ctx context.Context, scope history.Scope, entryID string) (bool, error) {
	args := m.Called(ctx, scope, entryID)
	return args.Bool(0), args.Error(1)
}

func (m *HistoryRepository) LatestAssessmentEntry(ctx context.Context, projectID string) (*history.Entry, error) {
	args := m.Called(ctx, projectID)
	if entry, ok := args.Get(0).(*history.Entry); ok {
		return entry, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *HistoryRepository) AssessmentEntries(ctx context.Context, projectID string) ([]history.Entry, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]history.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// StandardRepository is a mock definitions store.
type StandardRepository struct {
	mock.Mock
}

func (m *StandardRepository) ListStandards(ctx context.Context) ([]standard.Standard, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]standard.Standard); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StandardRepository) GetStandard(ctx context.Context, number int) (*standard.Standard, error) {
	args := m.Called(ctx, number)
	if s, ok := args.Get(0).(*standard.Standard); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StandardRepository) ListProfessions(ctx context.Context) ([]standard.Profession, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]standard.Profession); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StandardRepository) GetProfession(ctx context.Context, id string) (*standard.Profession, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*standard.Profession); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
