// Package history is the append-only change ledger. Every tracked-field
// change on a project or an assessment lands here as an immutable entry;
// the only mutation ever applied to an entry is the archived flag.
package history

import "time"

// Field names a tracked attribute recorded in a ledger entry.
type Field string

const (
	FieldStatus     Field = "status"
	FieldCommentary Field = "commentary"
	FieldName       Field = "name"
	FieldPhase      Field = "phase"
	FieldTags       Field = "tags"
)

// Change is one before/after pair. Only fields that actually changed are
// present on an entry.
type Change struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Scope identifies the owner of a ledger entry: a project as a whole, or one
// (project, standard, profession) assessment.
type Scope struct {
	ProjectID      string `json:"project_id"`
	StandardNumber int    `json:"standard_number,omitempty"`
	ProfessionID   string `json:"profession_id,omitempty"`
}

// Assessment reports whether the scope is the fine-grained assessment scope.
func (s Scope) Assessment() bool {
	return s.StandardNumber != 0 && s.ProfessionID != ""
}

// Entry is one ledger record.
type Entry struct {
	ID        string           `json:"id"`
	Scope     Scope            `json:"scope"`
	Timestamp time.Time        `json:"timestamp"`
	Actor     string           `json:"actor"`
	Changes   map[Field]Change `json:"changes"`
	Archived  bool             `json:"archived"`
}

// StatusTo returns the recorded post-change status, if this entry carried a
// status change at all.
func (e *Entry) StatusTo() (string, bool) {
	c, ok := e.Changes[FieldStatus]
	if !ok {
		return "", false
	}
	return c.To, true
}
