package middleware

import (
	"net/http"
	"time"

	"github.com/secure-pipeline/sample-api/internal/observability"
)

// Metrics creates a middleware that records request count, duration and
// response size for every request
func Metrics(m *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &ResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			m.RecordRequest(r.Method, r.URL.Path, wrapped.statusCode, time.Since(start), wrapped.bytes)
		})
	}
}
