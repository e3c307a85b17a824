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

func TestAssessmentRepository_UpsertOverwrites(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertProject(t, db, "p1", "Apply")

	repo := NewAssessmentRepository(db)
	a := &assessment.Assessment{
		ProjectID:      "p1",
		StandardNumber: 1,
		ProfessionID:   "delivery",
		Status:         rag.StatusAmber,
		Commentary:     "slipping",
		UpdatedAt:      time.Now(),
		ChangedBy:      "jo",
	}
	require.NoError(t, repo.Upsert(ctx, a))

	a.Status = rag.StatusGreen
	a.Commentary = "recovered"
	a.ChangedBy = "sam"
	require.NoError(t, repo.Upsert(ctx, a))

	got, err := repo.Get(ctx, "p1", 1, "delivery")
	require.NoError(t, err)
	require.Equal(t, rag.StatusGreen, got.Status)
	require.Equal(t, "recovered", got.Commentary)
	require.Equal(t, "sam", got.ChangedBy)
}

func TestAssessmentRepository_GetNotFound(t *testing.T) {
	db := NewTestDB(t)
	insertProject(t, db, "p1", "Apply")

	repo := NewAssessmentRepository(db)
	_, err := repo.Get(context.Background(), "p1", 1, "delivery")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAssessmentRepository_ListForStandard(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertProject(t, db, "p1", "Apply")

	repo := NewAssessmentRepository(db)
	now := time.Now()
	for _, profession := range []string{"product", "delivery"} {
		require.NoError(t, repo.Upsert(ctx, &assessment.Assessment{
			ProjectID:      "p1",
			StandardNumber: 2,
			ProfessionID:   profession,
			Status:         rag.StatusGreen,
			UpdatedAt:      now,
			ChangedBy:      "jo",
		}))
	}
	// A different standard stays out of the listing.
	require.NoError(t, repo.Upsert(ctx, &assessment.Assessment{
		ProjectID:      "p1",
		StandardNumber: 3,
		ProfessionID:   "product",
		Status:         rag.StatusRed,
		UpdatedAt:      now,
		ChangedBy:      "jo",
	}))

	list, err := repo.ListForStandard(ctx, "p1", 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "delivery", list[0].ProfessionID)
	require.Equal(t, "product", list[1].ProfessionID)
}

func TestAssessmentRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertProject(t, db, "p1", "Apply")

	repo := NewAssessmentRepository(db)
	require.NoError(t, repo.Upsert(ctx, &assessment.Assessment{
		ProjectID:      "p1",
		StandardNumber: 1,
		ProfessionID:   "delivery",
		Status:         rag.StatusGreen,
		UpdatedAt:      time.Now(),
		ChangedBy:      "jo",
	}))

	require.NoError(t, repo.Delete(ctx, "p1", 1, "delivery"))
	_, err := repo.Get(ctx, "p1", 1, "delivery")
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, "p1", 1, "delivery"), repository.ErrNotFound)
}

func TestAssessmentRepository_ForeignKeys(t *testing.T) {
	db := NewTestDB(t)
	repo := NewAssessmentRepository(db)

	err := repo.Upsert(context.Background(), &assessment.Assessment{
		ProjectID:      "no-such-project",
		StandardNumber: 1,
		ProfessionID:   "delivery",
		Status:         rag.StatusGreen,
		UpdatedAt:      time.Now(),
		ChangedBy:      "jo",
	})
	require.ErrorIs(t, err, repository.ErrInvalidInput, "should fail with invalid project_id")
}
