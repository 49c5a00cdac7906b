package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/easycontrols-gateway/internal/auth"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/metrics", s.handleMetrics)

		// Read-only access to the record
		r.Get("/record", s.handleGetRecord)
		r.Get("/record/{name}", s.handleGetField)
		r.Get("/labels/{label}", s.handleGetLabel)
		r.Get("/fields", s.handleListFields)
		r.Get("/views", s.handleListViews)
		r.Get("/views/{view}", s.handleGetView)
		r.Get("/history", s.handleListHistory)

		r.Get(s.wsPath(), s.handleWebSocket)

		r.With(s.requireToken).Get("/auth/me", s.handleMe)

		// Device control
		r.With(s.requirePermission(auth.PermPoll)).Post("/poll", s.handlePoll)
		r.With(s.requirePermission(auth.PermParameterWrite)).Put("/parameters/{name}", s.handleSetParameter)
	})

	return r
}

// wsPath returns the WebSocket route below /api/v1.
func (s *Server) wsPath() string {
	if s.wsCfg.Path == "" {
		return "/ws"
	}
	return s.wsCfg.Path
}

// handleHealth returns the server and gateway health.
//
// The status is "degraded" while the most recent poll failed.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	st := s.gateway.Status()
	status := "ok"
	if st.LastError != "" {
		status = "degraded"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  status,
		"version": s.version,
		"gateway": st,
	})
}
