package sqlite

import (
	"context"
	"testing"

	"github.com/govassure/delivery-tracker/internal/domain/standard"
	"github.com/govassure/delivery-tracker/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestStandardRepository_ListStandards(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStandardRepository(db)

	standards, err := repo.ListStandards(context.Background())
	require.NoError(t, err)
	require.Len(t, standards, standard.Count)
	require.Equal(t, 1, standards[0].Number)
	require.Equal(t, "Understand users and their needs", standards[0].Name)
	require.Equal(t, 14, standards[13].Number)
}

func TestStandardRepository_GetStandard(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStandardRepository(db)
	ctx := context.Background()

	s, err := repo.GetStandard(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, 10, s.Number)
	require.NotEmpty(t, s.Name)

	_, err = repo.GetStandard(ctx, 15)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStandardRepository_Professions(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStandardRepository(db)
	ctx := context.Background()

	professions, err := repo.ListProfessions(ctx)
	require.NoError(t, err)
	require.Len(t, professions, 7)

	p, err := repo.GetProfession(ctx, "delivery")
	require.NoError(t, err)
	require.Equal(t, "Delivery", p.Name)

	_, err = repo.GetProfession(ctx, "astrology")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
