package history

import "errors"

var (
	// ErrEntryNotFound indicates no ledger entry matched the scope and id.
	ErrEntryNotFound = errors.New("history entry not found")
	// ErrInvalidInput indicates invalid ledger input.
	ErrInvalidInput = errors.New("invalid history input")
)
