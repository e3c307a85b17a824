// Package insight mines the history ledger for the two governance views:
// deliveries gone stale and deliveries whose standards are trending worse.
// Results are computed fresh on every query, never persisted.
package insight

import (
	"math"
	"time"
)

// Defaults for the query tunables.
const (
	DefaultStalenessThresholdDays = 14
	DefaultWorseningWindowDays    = 14
	DefaultHistoryDepth           = 5
)

// StalenessNever is the sentinel for a delivery with no ledger history at
// all. It sorts before any finite staleness value.
const StalenessNever = math.MaxInt32

// DeliveryNeedingUpdate is one row of the staleness view.
type DeliveryNeedingUpdate struct {
	ProjectID       string     `json:"project_id"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	LastUpdate      *time.Time `json:"last_update"`
	DaysSinceUpdate int        `json:"days_since_update"`
}

// WorseningStandard is one standard currently trending worse, with its most
// recent statuses oldest-first.
type WorseningStandard struct {
	Number        int      `json:"number"`
	Name          string   `json:"name"`
	StatusHistory []string `json:"status_history"`
}

// WorseningDelivery is one project with at least one worsening standard.
type WorseningDelivery struct {
	ProjectID string              `json:"project_id"`
	Name      string              `json:"name"`
	Standards []WorseningStandard `json:"standards"`
}
