package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/govassure/delivery-tracker/internal/domain/project"
	"github.com/govassure/delivery-tracker/internal/domain/rag"
	"github.com/govassure/delivery-tracker/internal/repository"
	"github.com/stretchr/testify/require"
)

func insertProject(t *testing.T, db *DB, id, name string) {
	t.Helper()
	repo := NewProjectRepository(db)
	now := time.Now()
	err := repo.Create(context.Background(), &project.Project{
		ID:        id,
		Name:      name,
		Phase:     project.PhaseAlpha,
		Status:    rag.StatusTBC,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
}

func TestProjectRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)

	now := time.Now()
	proj := &project.Project{
		ID:          "p1",
		Name:        "Apply for a licence",
		Description: "Licensing service rebuild",
		Phase:       project.PhaseBeta,
		Tags:        []string{"licensing", "priority"},
		Status:      rag.StatusAmber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, repo.Create(ctx, proj))

	got, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "Apply for a licence", got.Name)
	require.Equal(t, project.PhaseBeta, got.Phase)
	require.Equal(t, []string{"licensing", "priority"}, got.Tags)
	require.Equal(t, rag.StatusAmber, got.Status)
}

func TestProjectRepository_GetNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)

	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectRepository_DuplicateID(t *testing.T) {
	db := NewTestDB(t)
	insertProject(t, db, "p1", "First")

	repo := NewProjectRepository(db)
	err := repo.Create(context.Background(), &project.Project{
		ID:     "p1",
		Name:   "Second",
		Phase:  project.PhaseAlpha,
		Status: rag.StatusTBC,
	})
	require.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestProjectRepository_ListOrdered(t *testing.T) {
	db := NewTestDB(t)
	insertProject(t, db, "p2", "Zeta service")
	insertProject(t, db, "p1", "Alpha service")

	repo := NewProjectRepository(db)
	projects, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	require.Equal(t, "Alpha service", projects[0].Name)
	require.Equal(t, "Zeta service", projects[1].Name)
}

func TestProjectRepository_Update(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertProject(t, db, "p1", "Before")

	repo := NewProjectRepository(db)
	got, err := repo.Get(ctx, "p1")
	require.NoError(t, err)

	got.Name = "After"
	got.Phase = project.PhaseLive
	got.Status = rag.StatusGreen
	got.UpdatedAt = time.Now()
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "After", updated.Name)
	require.Equal(t, project.PhaseLive, updated.Phase)

	missing := *updated
	missing.ID = "nope"
	require.ErrorIs(t, repo.Update(ctx, &missing), repository.ErrNotFound)
}
