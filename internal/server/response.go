package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/secure-pipeline/sample-api/internal/constants"
)

// HealthStatus is the /health response body
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime,omitempty"`
}

// ReadinessStatus is the /ready response body
type ReadinessStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// IndexInfo is the root endpoint response body
type IndexInfo struct {
	Message     string `json:"message"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// DataItem is a single element of the sample data listing
type DataItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DataListing is the /api/data response body
type DataListing struct {
	Data      []DataItem `json:"data"`
	Timestamp time.Time  `json:"timestamp"`
}

// ErrorBody is the generic error response shape. It is the only error
// payload ever sent to clients.
type ErrorBody struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// writeJSON sends a JSON response with the specified status code
func (s *Server) writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError sends the generic error shape for the given status code
func (s *Server) writeError(w http.ResponseWriter, statusCode int, message string) {
	s.writeJSON(w, statusCode, ErrorBody{
		Error:  message,
		Status: statusCode,
	})
}
