package middleware

import (
	"net/http"

	"github.com/secure-pipeline/sample-api/internal/constants"
)

// SecurityHeaders creates a middleware that injects the fixed security
// header set into every outgoing response. It runs unconditionally for all
// routes, including the 404 and 500 responders, and overwrites any prior
// value for the same header names.
func SecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(constants.HeaderContentTypeOptions, constants.ContentTypeOptionsValue)
			h.Set(constants.HeaderFrameOptions, constants.FrameOptionsValue)
			h.Set(constants.HeaderXSSProtection, constants.XSSProtectionValue)
			h.Set(constants.HeaderHSTS, constants.HSTSValue)

			next.ServeHTTP(w, r)
		})
	}
}
