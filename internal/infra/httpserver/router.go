package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lumelab/focuswatch/internal/application/monitor"
	"github.com/lumelab/focuswatch/internal/domain/analysis"
	"github.com/lumelab/focuswatch/internal/middleware"
)

const (
	defaultSnapshotLimit = 20
	maxSnapshotLimit     = 100
)

type Router struct {
	svc    *monitor.Service
	logger *slog.Logger
}

func NewRouter(svc *monitor.Service, logger *slog.Logger, checkers map[string]middleware.HealthChecker) http.Handler {
	r := &Router{svc: svc, logger: logger}
	mux := chi.NewRouter()

	mux.Get("/health", middleware.HealthHandler(checkers))
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/v1", func(rt chi.Router) {
		rt.Post("/sessions", r.wrap(r.handleStartSession))
		rt.Post("/sessions/{id}/frames", r.wrap(r.handleAnalyzeFrame))
		rt.Get("/sessions/{id}/snapshots", r.wrap(r.handleSnapshots))
		rt.Get("/sessions/{id}/summary", r.wrap(r.handleSummary))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			switch {
			case errors.Is(err, analysis.ErrInvalidFrame):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, analysis.ErrSessionNotFound):
				http.Error(w, "session not found", http.StatusNotFound)
			default:
				r.logger.Error("request failed",
					"path", req.URL.Path,
					"err", err,
				)
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		}
	}
}

// POST /v1/sessions
func (r *Router) handleStartSession(w http.ResponseWriter, req *http.Request) error {
	id := r.svc.StartSession()
	return writeJSON(w, map[string]any{"session_id": id})
}

// POST /v1/sessions/{id}/frames
// Body: {"image": "<base64, optionally data-URI prefixed>"}
// ERROR-status verdicts are delivered as 200 bodies; only an invalid
// frame or an unknown session becomes an HTTP error.
func (r *Router) handleAnalyzeFrame(w http.ResponseWriter, req *http.Request) error {
	id := analysis.SessionID(chi.URLParam(req, "id"))

	var body struct {
		Image string `json:"image"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: malformed request body", analysis.ErrInvalidFrame)
	}

	middleware.IncrementAnalyses()
	res, err := r.svc.AnalyzeFrame(req.Context(), id, body.Image)
	if err != nil {
		return err
	}
	if res.Status == analysis.StatusError {
		middleware.IncrementAnalysesErrored()
	}
	return writeJSON(w, res)
}

// GET /v1/sessions/{id}/snapshots?limit=20
func (r *Router) handleSnapshots(w http.ResponseWriter, req *http.Request) error {
	id := analysis.SessionID(chi.URLParam(req, "id"))
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	limit = clampLimit(limit)

	list, err := r.svc.Snapshots(id, limit)
	if err != nil {
		return err
	}
	return writeJSON(w, list)
}

// GET /v1/sessions/{id}/summary
func (r *Router) handleSummary(w http.ResponseWriter, req *http.Request) error {
	id := analysis.SessionID(chi.URLParam(req, "id"))

	summary, err := r.svc.Summary(id)
	if err != nil {
		return err
	}
	return writeJSON(w, summary)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultSnapshotLimit
	}
	if limit > maxSnapshotLimit {
		return maxSnapshotLimit
	}
	return limit
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}
