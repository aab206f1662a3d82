package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/secure-pipeline/sample-api/internal/constants"
)

// RequestSizeLimit creates a middleware that rejects request bodies larger
// than maxRequestSize bytes
func RequestSizeLimit(maxRequestSize int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if maxRequestSize > 0 && r.ContentLength > maxRequestSize {
				w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_ = json.NewEncoder(w).Encode(map[string]interface{}{
					"error":  "Request body too large",
					"status": http.StatusRequestEntityTooLarge,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
