package project

import (
	"math"

	"github.com/govassure/delivery-tracker/internal/domain/assessment"
	"github.com/govassure/delivery-tracker/internal/domain/rag"
	"github.com/govassure/delivery-tracker/internal/domain/standard"
)

// ComputeStatus rolls a project's standard summaries up into the single
// project-level view. Percentages are out of the fixed standard count, rounded
// to two decimal places and bounded to [0,100]. A zero total score
// short-circuits both percentages, which guarantees the completed-only
// percentage never divides by zero: a positive score implies at least one
// completed standard.
func ComputeStatus(projectID string, summaries []assessment.StandardSummary) Status {
	status := Status{
		ProjectID:     projectID,
		CalculatedRag: rag.AggregatedRed,
		LowestRag:     rag.AggregatedGreen,
	}

	for _, s := range summaries {
		score, counted := rag.Score(s.Status)
		if counted {
			status.TotalScore += score
		}
		if rag.Completed(s.Status) {
			status.CompletedCount++
		}
		switch s.Status {
		case rag.AggregatedRed:
			status.LowestRag = rag.AggregatedRed
		case rag.AggregatedAmber:
			if status.LowestRag != rag.AggregatedRed {
				status.LowestRag = rag.AggregatedAmber
			}
		}
	}

	if status.TotalScore > 0 {
		status.PercentageAcrossAll = percentage(status.TotalScore, standard.MaxScore)
		status.PercentageAcrossCompleted = percentage(status.TotalScore, status.CompletedCount*3)
	}

	switch {
	case status.PercentageAcrossCompleted >= 75:
		status.CalculatedRag = rag.AggregatedGreen
	case status.PercentageAcrossCompleted >= 50:
		status.CalculatedRag = rag.AggregatedAmber
	}

	return status
}

func percentage(score, outOf int) float64 {
	if outOf <= 0 {
		return 0
	}
	pct := math.Round(float64(score)/float64(outOf)*100*100) / 100
	return math.Min(math.Max(pct, 0), 100)
}
