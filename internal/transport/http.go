package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/govassure/delivery-tracker/internal/domain/assessment"
	"github.com/govassure/delivery-tracker/internal/domain/history"
	"github.com/govassure/delivery-tracker/internal/domain/insight"
	"github.com/govassure/delivery-tracker/internal/domain/project"
	"github.com/govassure/delivery-tracker/internal/domain/standard"
)

// Services bundles the domain services the HTTP layer exposes.
type Services struct {
	Projects    *project.Service
	Assessments *assessment.Service
	History     *history.Service
	Standards   standard.Repository
	Insights    *insight.Service
}

// Server wires HTTP handlers.
type Server struct {
	svc    Services
	logger *slog.Logger
}

// NewRouter creates the HTTP router with middleware.
func NewRouter(svc Services, authMiddleware func(http.Handler) http.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	srv := &Server{svc: svc, logger: logger}

	r.Get("/health", srv.handleHealth)

	r.Group(func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}

		r.Route("/projects", func(r chi.Router) {
			r.Post("/", srv.createProject)
			r.Get("/", srv.listProjects)
			r.Route("/{projectID}", func(r chi.Router) {
				r.Get("/", srv.getProject)
				r.Patch("/", srv.updateProject)
				r.Get("/status", srv.projectStatus)
				r.Get("/history", srv.projectHistory)
				r.Delete("/history/{entryID}", srv.archiveProjectEntry)
				r.Route("/standards/{standardNumber}", func(r chi.Router) {
					r.Get("/", srv.getSummary)
					r.Route("/professions/{professionID}", func(r chi.Router) {
						r.Put("/", srv.submitAssessment)
						r.Get("/", srv.getAssessment)
						r.Get("/history", srv.assessmentHistory)
						r.Delete("/history/{entryID}", srv.archiveAssessmentEntry)
					})
				})
			})
		})

		r.Get("/standards", srv.listStandards)
		r.Get("/professions", srv.listProfessions)

		r.Route("/insights", func(r chi.Router) {
			r.Get("/needing-update", srv.needingUpdate)
			r.Get("/worsening", srv.worsening)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type createProjectBody struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Phase       string   `json:"phase,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var body createProjectBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	proj, err := s.svc.Projects.Create(r.Context(), project.CreateRequest{
		ID:          body.ID,
		Name:        body.Name,
		Description: body.Description,
		Phase:       body.Phase,
		Tags:        body.Tags,
		Actor:       actor(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, proj)
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.svc.Projects.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	proj, err := s.svc.Projects.Get(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, proj)
}

type updateProjectBody struct {
	Name   *string  `json:"name,omitempty"`
	Phase  *string  `json:"phase,omitempty"`
	Tags   []string `json:"tags,omitempty"`
	Status *string  `json:"status,omitempty"`
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	var body updateProjectBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	proj, err := s.svc.Projects.Update(r.Context(), project.UpdateRequest{
		ID:     chi.URLParam(r, "projectID"),
		Name:   body.Name,
		Phase:  body.Phase,
		Tags:   body.Tags,
		Status: body.Status,
		Actor:  actor(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, proj)
}

func (s *Server) projectStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.svc.Projects.Status(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) projectHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := s.svc.History.EntriesFor(r.Context(), history.Scope{
		ProjectID: chi.URLParam(r, "projectID"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) archiveProjectEntry(w http.ResponseWriter, r *http.Request) {
	scope := history.Scope{ProjectID: chi.URLParam(r, "projectID")}
	if err := s.svc.Assessments.ArchiveEntry(r.Context(), scope, chi.URLParam(r, "entryID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type submitAssessmentBody struct {
	Status     string `json:"status"`
	Commentary string `json:"commentary,omitempty"`
}

func (s *Server) submitAssessment(w http.ResponseWriter, r *http.Request) {
	number, ok := standardNumber(w, r)
	if !ok {
		return
	}

	var body submitAssessmentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	if _, err := s.svc.Projects.Get(r.Context(), chi.URLParam(r, "projectID")); err != nil {
		writeError(w, err)
		return
	}

	a, err := s.svc.Assessments.Submit(r.Context(), assessment.SubmitRequest{
		ProjectID:      chi.URLParam(r, "projectID"),
		StandardNumber: number,
		ProfessionID:   chi.URLParam(r, "professionID"),
		Status:         body.Status,
		Commentary:     body.Commentary,
		Actor:          actor(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, a)
}

func (s *Server) getAssessment(w http.ResponseWriter, r *http.Request) {
	number, ok := standardNumber(w, r)
	if !ok {
		return
	}

	a, err := s.svc.Assessments.Get(r.Context(),
		chi.URLParam(r, "projectID"), number, chi.URLParam(r, "professionID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) assessmentHistory(w http.ResponseWriter, r *http.Request) {
	number, ok := standardNumber(w, r)
	if !ok {
		return
	}

	entries, err := s.svc.History.EntriesFor(r.Context(), history.Scope{
		ProjectID:      chi.URLParam(r, "projectID"),
		StandardNumber: number,
		ProfessionID:   chi.URLParam(r, "professionID"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) archiveAssessmentEntry(w http.ResponseWriter, r *http.Request) {
	number, ok := standardNumber(w, r)
	if !ok {
		return
	}

	scope := history.Scope{
		ProjectID:      chi.URLParam(r, "projectID"),
		StandardNumber: number,
		ProfessionID:   chi.URLParam(r, "professionID"),
	}
	if err := s.svc.Assessments.ArchiveEntry(r.Context(), scope, chi.URLParam(r, "entryID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getSummary(w http.ResponseWriter, r *http.Request) {
	number, ok := standardNumber(w, r)
	if !ok {
		return
	}

	summary, err := s.svc.Assessments.Summary(r.Context(), chi.URLParam(r, "projectID"), number)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) listStandards(w http.ResponseWriter, r *http.Request) {
	standards, err := s.svc.Standards.ListStandards(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, standards)
}

func (s *Server) listProfessions(w http.ResponseWriter, r *http.Request) {
	professions, err := s.svc.Standards.ListProfessions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, professions)
}

func (s *Server) needingUpdate(w http.ResponseWriter, r *http.Request) {
	threshold := intQuery(r, "threshold", insight.DefaultStalenessThresholdDays)
	results, err := s.svc.Insights.NeedingUpdate(r.Context(), threshold)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) worsening(w http.ResponseWriter, r *http.Request) {
	window := intQuery(r, "window", insight.DefaultWorseningWindowDays)
	depth := intQuery(r, "depth", insight.DefaultHistoryDepth)
	results, err := s.svc.Insights.Worsening(r.Context(), window, depth)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func standardNumber(w http.ResponseWriter, r *http.Request) (int, bool) {
	number, err := strconv.Atoi(chi.URLParam(r, "standardNumber"))
	if err != nil || number < 1 {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid standard number"})
		return 0, false
	}
	return number, true
}

func intQuery(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// actor returns the authenticated caller, or "anonymous" when auth is off.
func actor(r *http.Request) string {
	if a, ok := ActorFromContext(r.Context()); ok && a != "" {
		return a
	}
	return "anonymous"
}
