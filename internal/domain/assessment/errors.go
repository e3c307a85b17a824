package assessment

import "errors"

var (
	// ErrAssessmentNotFound indicates no current assessment for the scope.
	ErrAssessmentNotFound = errors.New("assessment not found")
	// ErrSummaryNotFound indicates no summary exists for the standard.
	ErrSummaryNotFound = errors.New("standard summary not found")
	// ErrUnknownStandard indicates the standard number is not defined.
	ErrUnknownStandard = errors.New("unknown standard")
	// ErrUnknownProfession indicates the profession is not defined.
	ErrUnknownProfession = errors.New("unknown profession")
	// ErrInvalidStatus indicates a status outside the assessment scale.
	ErrInvalidStatus = errors.New("invalid assessment status")
	// ErrInvalidInput indicates invalid assessment input.
	ErrInvalidInput = errors.New("invalid assessment input")
)
