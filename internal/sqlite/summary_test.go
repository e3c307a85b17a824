package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/govassure/delivery-tracker/internal/domain/assessment"
	"github.com/govassure/delivery-tracker/internal/domain/rag"
	"github.com/govassure/delivery-tracker/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestSummaryRepository_PutGetRoundTrip(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertProject(t, db, "p1", "Apply")

	repo := NewSummaryRepository(db)
	updated := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	summary := &assessment.StandardSummary{
		ProjectID:      "p1",
		StandardNumber: 5,
		Status:         rag.AggregatedAmber,
		Commentary:     "accessibility audit pending",
		UpdatedAt:      updated,
		Contributions: []assessment.Contribution{
			{ProfessionID: "delivery", Status: rag.StatusAmber, Commentary: "accessibility audit pending", UpdatedAt: updated},
			{ProfessionID: "product", Status: rag.StatusGreen, UpdatedAt: updated},
		},
	}
	require.NoError(t, repo.Put(ctx, summary))

	got, err := repo.Get(ctx, "p1", 5)
	require.NoError(t, err)
	require.Equal(t, rag.AggregatedAmber, got.Status)
	require.Len(t, got.Contributions, 2)
	require.Equal(t, "delivery", got.Contributions[0].ProfessionID)

	// Put replaces in place.
	summary.Status = rag.AggregatedGreen
	require.NoError(t, repo.Put(ctx, summary))
	got, err = repo.Get(ctx, "p1", 5)
	require.NoError(t, err)
	require.Equal(t, rag.AggregatedGreen, got.Status)
}

func TestSummaryRepository_ListForProjectOrdered(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertProject(t, db, "p1", "Apply")

	repo := NewSummaryRepository(db)
	for _, number := range []int{9, 2, 5} {
		require.NoError(t, repo.Put(ctx, &assessment.StandardSummary{
			ProjectID:      "p1",
			StandardNumber: number,
			Status:         rag.AggregatedGreen,
			UpdatedAt:      time.Now(),
		}))
	}

	summaries, err := repo.ListForProject(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	require.Equal(t, 2, summaries[0].StandardNumber)
	require.Equal(t, 5, summaries[1].StandardNumber)
	require.Equal(t, 9, summaries[2].StandardNumber)
}

func TestSummaryRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertProject(t, db, "p1", "Apply")

	repo := NewSummaryRepository(db)
	require.NoError(t, repo.Put(ctx, &assessment.StandardSummary{
		ProjectID:      "p1",
		StandardNumber: 1,
		Status:         rag.AggregatedGreen,
		UpdatedAt:      time.Now(),
	}))

	require.NoError(t, repo.Delete(ctx, "p1", 1))
	_, err := repo.Get(ctx, "p1", 1)
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, "p1", 1), repository.ErrNotFound)
}
