// Package rag defines the status scales deliveries are assessed against and
// the rank tables the aggregation and insight logic depend on. Ordering lives
// here as explicit tables rather than string comparison.
package rag

import "fmt"

// Status is the five-point scale a single profession assesses a standard
// against, plus TBC for not-yet-assessed.
type Status string

const (
	StatusRed        Status = "RED"
	StatusAmberRed   Status = "AMBER_RED"
	StatusAmber      Status = "AMBER"
	StatusGreenAmber Status = "GREEN_AMBER"
	StatusGreen      Status = "GREEN"
	StatusTBC        Status = "TBC"
)

// Aggregated is the collapsed scale a standard or project rolls up to.
// PENDING and EXCLUDED only appear at the standard level: PENDING marks a
// standard nobody has assessed yet, EXCLUDED marks one agreed not to apply.
type Aggregated string

const (
	AggregatedRed      Aggregated = "RED"
	AggregatedAmber    Aggregated = "AMBER"
	AggregatedGreen    Aggregated = "GREEN"
	AggregatedTBC      Aggregated = "TBC"
	AggregatedPending  Aggregated = "PENDING"
	AggregatedExcluded Aggregated = "EXCLUDED"
)

// ParseStatus validates a raw string against the assessment scale.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusRed, StatusAmberRed, StatusAmber, StatusGreenAmber, StatusGreen, StatusTBC:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown assessment status %q", s)
}

// Collapse maps the assessment scale onto the aggregated scale. The
// intermediate values both collapse to AMBER.
func (s Status) Collapse() Aggregated {
	switch s {
	case StatusRed:
		return AggregatedRed
	case StatusAmberRed, StatusAmber, StatusGreenAmber:
		return AggregatedAmber
	case StatusGreen:
		return AggregatedGreen
	default:
		return AggregatedTBC
	}
}

// WorstOf selects the worst aggregated status present, with priority
// RED > AMBER > GREEN > TBC. TBC wins only when every contributor is TBC.
func WorstOf(statuses []Aggregated) Aggregated {
	worst := AggregatedTBC
	for _, s := range statuses {
		switch s {
		case AggregatedRed:
			return AggregatedRed
		case AggregatedAmber:
			worst = AggregatedAmber
		case AggregatedGreen:
			if worst != AggregatedAmber {
				worst = AggregatedGreen
			}
		}
	}
	return worst
}

// Score returns the project scoring weight for an aggregated status. The
// second return is false for EXCLUDED standards, which do not contribute to
// the score at all.
func Score(a Aggregated) (int, bool) {
	switch a {
	case AggregatedGreen:
		return 3, true
	case AggregatedAmber:
		return 2, true
	case AggregatedRed:
		return 1, true
	case AggregatedExcluded:
		return 0, false
	default:
		return 0, true
	}
}

// Completed reports whether an aggregated status counts as a completed
// assessment for percentage purposes.
func Completed(a Aggregated) bool {
	switch a {
	case AggregatedPending, AggregatedTBC, AggregatedExcluded:
		return false
	}
	return true
}

// TrendRank maps a historical status string onto the trend scale used by the
// worsening detector. Values outside the table are unrankable and the second
// return is false.
func TrendRank(s string) (int, bool) {
	switch s {
	case "GREEN":
		return 3, true
	case "AMBER":
		return 2, true
	case "RED":
		return 1, true
	case "PENDING":
		return 0, true
	}
	return 0, false
}
