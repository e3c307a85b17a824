package assessment

import (
	"sort"
	"strings"

	"github.com/govassure/delivery-tracker/internal/domain/rag"
)

// Aggregate rolls the current assessments for one (project, standard) up into
// a summary: worst collapsed status wins, commentaries are concatenated, and
// last-updated is the max across contributors. Returns nil when there are no
// contributors left.
func Aggregate(projectID string, standardNumber int, assessments []Assessment) *StandardSummary {
	if len(assessments) == 0 {
		return nil
	}

	sorted := make([]Assessment, len(assessments))
	copy(sorted, assessments)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ProfessionID < sorted[j].ProfessionID
	})

	summary := &StandardSummary{
		ProjectID:      projectID,
		StandardNumber: standardNumber,
	}

	statuses := make([]rag.Aggregated, 0, len(sorted))
	comments := make([]string, 0, len(sorted))
	for _, a := range sorted {
		statuses = append(statuses, a.Status.Collapse())
		if c := strings.TrimSpace(a.Commentary); c != "" {
			comments = append(comments, c)
		}
		if a.UpdatedAt.After(summary.UpdatedAt) {
			summary.UpdatedAt = a.UpdatedAt
		}
		summary.Contributions = append(summary.Contributions, Contribution{
			ProfessionID: a.ProfessionID,
			Status:       a.Status,
			Commentary:   a.Commentary,
			UpdatedAt:    a.UpdatedAt,
		})
	}

	summary.Status = rag.WorstOf(statuses)
	summary.Commentary = strings.Join(comments, "; ")

	return summary
}
