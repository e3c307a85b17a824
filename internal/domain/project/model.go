// Package project owns delivery projects and the project-level status view
// rolled up from standard summaries.
package project

import (
	"time"

	"github.com/govassure/delivery-tracker/internal/domain/rag"
)

// Phase is the delivery phase a project is in.
type Phase string

const (
	PhaseDiscovery Phase = "discovery"
	PhaseAlpha     Phase = "alpha"
	PhaseBeta      Phase = "beta"
	PhaseLive      Phase = "live"
)

// Project is one tracked delivery.
type Project struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Phase       Phase      `json:"phase"`
	Tags        []string   `json:"tags,omitempty"`
	Status      rag.Status `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Status is the derived project-level view. It is computed on every read from
// the standard summaries and never persisted.
type Status struct {
	ProjectID                 string         `json:"project_id"`
	TotalScore                int            `json:"total_score"`
	CompletedCount            int            `json:"completed_count"`
	PercentageAcrossAll       float64        `json:"percentage_across_all"`
	PercentageAcrossCompleted float64        `json:"percentage_across_completed"`
	CalculatedRag             rag.Aggregated `json:"calculated_rag"`
	LowestRag                 rag.Aggregated `json:"lowest_rag"`
}
