package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/govassure/delivery-tracker/internal/domain/assessment"
	"github.com/govassure/delivery-tracker/internal/domain/history"
	"github.com/govassure/delivery-tracker/internal/domain/project"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, project.ErrProjectNotFound),
		errors.Is(err, assessment.ErrAssessmentNotFound),
		errors.Is(err, assessment.ErrSummaryNotFound),
		errors.Is(err, history.ErrEntryNotFound):
		status = http.StatusNotFound
	case errors.Is(err, project.ErrInvalidInput),
		errors.Is(err, project.ErrInvalidPhase),
		errors.Is(err, assessment.ErrInvalidInput),
		errors.Is(err, assessment.ErrInvalidStatus),
		errors.Is(err, assessment.ErrUnknownStandard),
		errors.Is(err, assessment.ErrUnknownProfession),
		errors.Is(err, history.ErrInvalidInput):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}
