package insight

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/govassure/delivery-tracker/internal/domain/history"
	"github.com/govassure/delivery-tracker/internal/domain/project"
	"github.com/govassure/delivery-tracker/internal/domain/rag"
	"github.com/govassure/delivery-tracker/internal/repository"
)

const greenRank = 3

// Service runs the insight scans.
type Service struct {
	projects  ProjectReader
	ledger    LedgerScanner
	summaries SummaryReader
	standards StandardReader
	logger    *slog.Logger
}

// NewService creates a new insight service.
func NewService(
	projects ProjectReader,
	ledger LedgerScanner,
	summaries SummaryReader,
	standards StandardReader,
	logger *slog.Logger,
) *Service {
	return &Service{
		projects:  projects,
		ledger:    ledger,
		summaries: summaries,
		standards: standards,
		logger:    logger,
	}
}

// NeedingUpdate returns every delivery whose newest ledger entry across all
// assessment scopes is older than the threshold, sorted most-stale first. A
// delivery with no history at all carries the StalenessNever sentinel and is
// always included.
func (s *Service) NeedingUpdate(ctx context.Context, thresholdDays int) ([]DeliveryNeedingUpdate, error) {
	if thresholdDays <= 0 {
		thresholdDays = DefaultStalenessThresholdDays
	}

	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	now := time.Now()
	cutoff := now.AddDate(0, 0, -thresholdDays)

	results := make([]DeliveryNeedingUpdate, 0, len(projects))
	for _, p := range projects {
		latest, err := s.ledger.LatestAssessmentEntry(ctx, p.ID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			// A single unreadable delivery degrades the scan, never aborts it.
			if s.logger != nil {
				s.logger.Warn("skipping unreadable delivery", "project", p.ID, "error", err)
			}
			continue
		}

		row := DeliveryNeedingUpdate{
			ProjectID: p.ID,
			Name:      p.Name,
		}

		if latest == nil {
			row.DaysSinceUpdate = StalenessNever
		} else {
			if !latest.Timestamp.Before(cutoff) {
				continue
			}
			ts := latest.Timestamp
			row.LastUpdate = &ts
			row.DaysSinceUpdate = int(now.Sub(ts).Hours() / 24)
		}

		row.Status = s.displayStatus(ctx, p)
		results = append(results, row)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DaysSinceUpdate > results[j].DaysSinceUpdate
	})

	return results, nil
}

// Worsening returns every delivery with at least one standard trending worse
// within the window. A standard qualifies on a strict rank decrease between
// its two newest entries, or, for a single-entry history, on a first
// assessment already below GREEN.
func (s *Service) Worsening(ctx context.Context, windowDays, historyDepth int) ([]WorseningDelivery, error) {
	if windowDays <= 0 {
		windowDays = DefaultWorseningWindowDays
	}
	if historyDepth <= 0 {
		historyDepth = DefaultHistoryDepth
	}

	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	names, err := s.standardNames(ctx)
	if err != nil {
		return nil, err
	}

	windowStart := time.Now().AddDate(0, 0, -windowDays)

	var results []WorseningDelivery
	for _, p := range projects {
		entries, err := s.ledger.AssessmentEntries(ctx, p.ID)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("skipping unreadable delivery", "project", p.ID, "error", err)
			}
			continue
		}

		byStandard := map[int][]history.Entry{}
		var numbers []int
		for _, e := range entries {
			n := e.Scope.StandardNumber
			if _, seen := byStandard[n]; !seen {
				numbers = append(numbers, n)
			}
			byStandard[n] = append(byStandard[n], e)
		}
		sort.Ints(numbers)

		var worsening []WorseningStandard
		for _, n := range numbers {
			std := byStandard[n]
			if !anyWithin(std, windowStart) {
				continue
			}
			if !isWorsening(std) {
				continue
			}
			worsening = append(worsening, WorseningStandard{
				Number:        n,
				Name:          names[n],
				StatusHistory: recentStatuses(std, historyDepth),
			})
		}

		if len(worsening) > 0 {
			results = append(results, WorseningDelivery{
				ProjectID: p.ID,
				Name:      p.Name,
				Standards: worsening,
			})
		}
	}

	return results, nil
}

// isWorsening applies the trend test to one standard's entries, newest first.
// A single-entry history worsens iff its status ranks below GREEN: a first
// assessment is measured against an implied GREEN baseline. Entries whose
// status cannot be ranked make the standard not worsening.
func isWorsening(entries []history.Entry) bool {
	if len(entries) == 0 {
		return false
	}

	newest, ok := entryRank(&entries[0])
	if !ok {
		return false
	}

	if len(entries) == 1 {
		return newest < greenRank
	}

	previous, ok := entryRank(&entries[1])
	if !ok {
		return false
	}
	return newest < previous
}

func entryRank(e *history.Entry) (int, bool) {
	status, ok := e.StatusTo()
	if !ok {
		return 0, false
	}
	return rag.TrendRank(status)
}

// recentStatuses returns up to depth most recent recorded statuses in
// chronological order. Only entries that exist and carry a status contribute;
// there is no padding for missing slots.
func recentStatuses(entries []history.Entry, depth int) []string {
	var recent []string
	for i := 0; i < len(entries) && len(recent) < depth; i++ {
		if status, ok := entries[i].StatusTo(); ok {
			recent = append(recent, status)
		}
	}
	// Collected newest first; flip to oldest first.
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}
	return recent
}

func anyWithin(entries []history.Entry, windowStart time.Time) bool {
	for _, e := range entries {
		if !e.Timestamp.Before(windowStart) {
			return true
		}
	}
	return false
}

// displayStatus prefers the computed lowest RAG when the delivery has any
// summaries, falling back to the raw project status.
func (s *Service) displayStatus(ctx context.Context, p project.Project) string {
	summaries, err := s.summaries.Summaries(ctx, p.ID)
	if err != nil || len(summaries) == 0 {
		return string(p.Status)
	}
	return string(project.ComputeStatus(p.ID, summaries).LowestRag)
}

func (s *Service) standardNames(ctx context.Context) (map[int]string, error) {
	standards, err := s.standards.ListStandards(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing standards: %w", err)
	}
	names := make(map[int]string, len(standards))
	for _, std := range standards {
		names[std.Number] = std.Name
	}
	return names, nil
}
