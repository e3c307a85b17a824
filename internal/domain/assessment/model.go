// Package assessment owns the profession-level assessments and the derived
// per-standard summaries rolled up from them.
package assessment

import (
	"time"

	"github.com/govassure/delivery-tracker/internal/domain/rag"
)

// Assessment is the current judgement of one profession on one standard for
// one project. It is overwritten in place on each submission; the full change
// history lives in the ledger.
type Assessment struct {
	ProjectID      string     `json:"project_id"`
	StandardNumber int        `json:"standard_number"`
	ProfessionID   string     `json:"profession_id"`
	Status         rag.Status `json:"status"`
	Commentary     string     `json:"commentary,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`
	ChangedBy      string     `json:"changed_by"`
}

// Contribution is one profession's input to a standard summary.
type Contribution struct {
	ProfessionID string     `json:"profession_id"`
	Status       rag.Status `json:"status"`
	Commentary   string     `json:"commentary,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// StandardSummary is the aggregated status of one standard for one project.
// It is a cache over the contributing assessments, recomputed in full on
// every contributing write, never independently authored.
type StandardSummary struct {
	ProjectID      string         `json:"project_id"`
	StandardNumber int            `json:"standard_number"`
	Status         rag.Aggregated `json:"status"`
	Commentary     string         `json:"commentary,omitempty"`
	UpdatedAt      time.Time      `json:"updated_at"`
	Contributions  []Contribution `json:"contributions,omitempty"`
}
