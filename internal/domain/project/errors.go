package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidInput indicates invalid project input.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrInvalidPhase indicates a phase outside the delivery lifecycle.
	ErrInvalidPhase = errors.New("invalid project phase")
)
