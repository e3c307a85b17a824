package project_test

import (
	"testing"

	"github.com/govassure/delivery-tracker/internal/domain/assessment"
	"github.com/govassure/delivery-tracker/internal/domain/project"
	"github.com/govassure/delivery-tracker/internal/domain/rag"
	"github.com/stretchr/testify/require"
)

func summaries(statuses ...rag.Aggregated) []assessment.StandardSummary {
	out := make([]assessment.StandardSummary, len(statuses))
	for i, s := range statuses {
		out[i] = assessment.StandardSummary{
			ProjectID:      "p1",
			StandardNumber: i + 1,
			Status:         s,
		}
	}
	return out
}

func repeated(status rag.Aggregated, n int) []rag.Aggregated {
	out := make([]rag.Aggregated, n)
	for i := range out {
		out[i] = status
	}
	return out
}

func TestComputeStatus_AllGreen(t *testing.T) {
	status := project.ComputeStatus("p1", summaries(repeated(rag.AggregatedGreen, 14)...))

	require.Equal(t, 42, status.TotalScore)
	require.Equal(t, 14, status.CompletedCount)
	require.Equal(t, 100.0, status.PercentageAcrossAll)
	require.Equal(t, 100.0, status.PercentageAcrossCompleted)
	require.Equal(t, rag.AggregatedGreen, status.CalculatedRag)
	require.Equal(t, rag.AggregatedGreen, status.LowestRag)
}

func TestComputeStatus_OneAmberDragsLowestNotCalculated(t *testing.T) {
	statuses := append(repeated(rag.AggregatedGreen, 13), rag.AggregatedAmber)
	status := project.ComputeStatus("p1", summaries(statuses...))

	require.Equal(t, 41, status.TotalScore)
	require.Equal(t, rag.AggregatedAmber, status.LowestRag)
	require.Equal(t, rag.AggregatedGreen, status.CalculatedRag)
}

func TestComputeStatus_RedBeatsAmberForLowest(t *testing.T) {
	status := project.ComputeStatus("p1", summaries(
		rag.AggregatedAmber, rag.AggregatedRed, rag.AggregatedAmber, rag.AggregatedGreen,
	))
	require.Equal(t, rag.AggregatedRed, status.LowestRag)
}

func TestComputeStatus_ZeroScoreShortCircuits(t *testing.T) {
	status := project.ComputeStatus("p1", summaries(repeated(rag.AggregatedTBC, 14)...))

	require.Equal(t, 0, status.TotalScore)
	require.Equal(t, 0, status.CompletedCount)
	require.Equal(t, 0.0, status.PercentageAcrossAll)
	require.Equal(t, 0.0, status.PercentageAcrossCompleted)
	require.Equal(t, rag.AggregatedRed, status.CalculatedRag)
	require.Equal(t, rag.AggregatedGreen, status.LowestRag)
}

func TestComputeStatus_ExcludedStandardsDoNotCount(t *testing.T) {
	status := project.ComputeStatus("p1", summaries(
		rag.AggregatedGreen, rag.AggregatedExcluded, rag.AggregatedExcluded,
	))

	require.Equal(t, 3, status.TotalScore)
	require.Equal(t, 1, status.CompletedCount)
	require.Equal(t, 100.0, status.PercentageAcrossCompleted)
}

func TestComputeStatus_Rounding(t *testing.T) {
	// One green standard: 3 of 42 is 7.142857...
	status := project.ComputeStatus("p1", summaries(rag.AggregatedGreen))
	require.Equal(t, 7.14, status.PercentageAcrossAll)
	require.Equal(t, 100.0, status.PercentageAcrossCompleted)

	// Two standards, one amber one red: 3 of 6 across completed.
	status = project.ComputeStatus("p1", summaries(rag.AggregatedAmber, rag.AggregatedRed))
	require.Equal(t, 50.0, status.PercentageAcrossCompleted)
	require.Equal(t, rag.AggregatedAmber, status.CalculatedRag)
}

func TestComputeStatus_CalculatedThresholds(t *testing.T) {
	// All red across completed: 33.33 percent, below 50.
	status := project.ComputeStatus("p1", summaries(rag.AggregatedRed, rag.AggregatedRed))
	require.Equal(t, 33.33, status.PercentageAcrossCompleted)
	require.Equal(t, rag.AggregatedRed, status.CalculatedRag)

	// Three green one red: 10 of 12 is 83.33 percent.
	status = project.ComputeStatus("p1", summaries(
		rag.AggregatedGreen, rag.AggregatedGreen, rag.AggregatedGreen, rag.AggregatedRed,
	))
	require.Equal(t, 83.33, status.PercentageAcrossCompleted)
	require.Equal(t, rag.AggregatedGreen, status.CalculatedRag)
}
