package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/secure-pipeline/sample-api/internal/constants"
)

// healthHandler handles liveness check requests
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.StartSpan(r.Context(), "health_check")
	defer span.End()

	s.writeJSON(w, http.StatusOK, HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   s.config.App.Version,
		Uptime:    time.Since(s.startTime).String(),
	})
}

// readinessHandler handles readiness check requests. There are no external
// dependencies to probe, so a running process is a ready process.
func (s *Server) readinessHandler(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.StartSpan(r.Context(), "readiness_check")
	defer span.End()

	s.writeJSON(w, http.StatusOK, ReadinessStatus{
		Status:    "ready",
		Timestamp: time.Now().UTC(),
	})
}

// indexHandler serves the root endpoint
func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.StartSpan(r.Context(), "index")
	defer span.End()

	s.writeJSON(w, http.StatusOK, IndexInfo{
		Message:     constants.IndexMessage,
		Version:     s.config.App.Version,
		Environment: s.config.App.Environment,
	})
}

// dataHandler serves the fixed sample data listing
func (s *Server) dataHandler(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.StartSpan(r.Context(), "get_data")
	defer span.End()

	s.logger.Logger.Info("Data endpoint accessed")

	s.writeJSON(w, http.StatusOK, DataListing{
		Data: []DataItem{
			{ID: 1, Name: "Item 1"},
			{ID: 2, Name: "Item 2"},
			{ID: 3, Name: "Item 3"},
		},
		Timestamp: time.Now().UTC(),
	})
}

// notFoundHandler answers every unmatched path or method. Method
// mismatches on defined paths deliberately map here rather than to a 405.
func (s *Server) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	s.logger.Logger.Debug("Route not found",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("remote_addr", r.RemoteAddr),
	)

	s.writeError(w, http.StatusNotFound, "Not found")
}
