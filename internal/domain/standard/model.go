// Package standard holds the read-only definitions deliveries are assessed
// against: the fixed set of service standard points and the professions that
// assess them.
package standard

// Count is the fixed number of service standard points. Project-level
// percentages are always computed out of this total.
const Count = 14

// MaxScore is the best possible project score: every standard GREEN.
const MaxScore = Count * 3

// Standard is one service standard point.
type Standard struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// Profession is an assessing profession.
type Profession struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
