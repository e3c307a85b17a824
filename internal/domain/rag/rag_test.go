package rag_test

import (
	"testing"

	"github.com/govassure/delivery-tracker/internal/domain/rag"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"RED", "AMBER_RED", "AMBER", "GREEN_AMBER", "GREEN", "TBC"} {
		s, err := rag.ParseStatus(valid)
		require.NoError(t, err)
		require.Equal(t, valid, string(s))
	}

	_, err := rag.ParseStatus("green")
	require.Error(t, err)
	_, err = rag.ParseStatus("PURPLE")
	require.Error(t, err)
}

func TestCollapse(t *testing.T) {
	cases := map[rag.Status]rag.Aggregated{
		rag.StatusRed:        rag.AggregatedRed,
		rag.StatusAmberRed:   rag.AggregatedAmber,
		rag.StatusAmber:      rag.AggregatedAmber,
		rag.StatusGreenAmber: rag.AggregatedAmber,
		rag.StatusGreen:      rag.AggregatedGreen,
		rag.StatusTBC:        rag.AggregatedTBC,
	}
	for status, want := range cases {
		require.Equal(t, want, status.Collapse(), "collapse of %s", status)
	}
}

func TestWorstOf(t *testing.T) {
	tests := []struct {
		name     string
		statuses []rag.Aggregated
		want     rag.Aggregated
	}{
		{"red beats everything", []rag.Aggregated{rag.AggregatedGreen, rag.AggregatedRed, rag.AggregatedGreen}, rag.AggregatedRed},
		{"amber beats green", []rag.Aggregated{rag.AggregatedGreen, rag.AggregatedAmber}, rag.AggregatedAmber},
		{"green beats tbc", []rag.Aggregated{rag.AggregatedTBC, rag.AggregatedGreen}, rag.AggregatedGreen},
		{"tbc only when all tbc", []rag.Aggregated{rag.AggregatedTBC, rag.AggregatedTBC}, rag.AggregatedTBC},
		{"empty is tbc", nil, rag.AggregatedTBC},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, rag.WorstOf(tt.statuses))
		})
	}
}

func TestScore(t *testing.T) {
	score, counted := rag.Score(rag.AggregatedGreen)
	require.True(t, counted)
	require.Equal(t, 3, score)

	score, counted = rag.Score(rag.AggregatedAmber)
	require.True(t, counted)
	require.Equal(t, 2, score)

	score, counted = rag.Score(rag.AggregatedRed)
	require.True(t, counted)
	require.Equal(t, 1, score)

	for _, zero := range []rag.Aggregated{rag.AggregatedTBC, rag.AggregatedPending} {
		score, counted = rag.Score(zero)
		require.True(t, counted)
		require.Equal(t, 0, score)
	}

	_, counted = rag.Score(rag.AggregatedExcluded)
	require.False(t, counted, "excluded standards do not enter the score")
}

func TestCompleted(t *testing.T) {
	require.True(t, rag.Completed(rag.AggregatedGreen))
	require.True(t, rag.Completed(rag.AggregatedAmber))
	require.True(t, rag.Completed(rag.AggregatedRed))
	require.False(t, rag.Completed(rag.AggregatedTBC))
	require.False(t, rag.Completed(rag.AggregatedPending))
	require.False(t, rag.Completed(rag.AggregatedExcluded))
}

func TestTrendRank(t *testing.T) {
	ranks := map[string]int{"GREEN": 3, "AMBER": 2, "RED": 1, "PENDING": 0}
	for status, want := range ranks {
		rank, ok := rag.TrendRank(status)
		require.True(t, ok)
		require.Equal(t, want, rank)
	}

	_, ok := rag.TrendRank("NOT_A_STATUS")
	require.False(t, ok)
	_, ok = rag.TrendRank("")
	require.False(t, ok)
}
