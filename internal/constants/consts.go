package constants

import "time"

// Application defaults
const (
	DefaultVersion     = "1.0.0"
	DefaultEnvironment = "development"
	IndexMessage       = "Secure CI/CD Pipeline Demo"
	ServiceName        = "sample-api"
)

// Route paths
const (
	PathHealth  = "/health"
	PathReady   = "/ready"
	PathIndex   = "/"
	PathData    = "/api/data"
	PathMetrics = "/metrics"
)

// HTTP header constants
const (
	HeaderContentType        = "Content-Type"
	HeaderContentTypeOptions = "X-Content-Type-Options"
	HeaderFrameOptions       = "X-Frame-Options"
	HeaderXSSProtection      = "X-XSS-Protection"
	HeaderHSTS               = "Strict-Transport-Security"
)

// Security header values applied to every response
const (
	ContentTypeOptionsValue = "nosniff"
	FrameOptionsValue       = "DENY"
	XSSProtectionValue      = "1; mode=block"
	HSTSValue               = "max-age=31536000; includeSubDomains"
)

// Content type constants
const (
	ContentTypeJSON = "application/json"
)

// Server timeout constants (internal use only - not user configurable)
const (
	// ServerMaxHeaderBytes is the maximum header size (1MB)
	ServerMaxHeaderBytes = 1 << 20
	// MetricsReadHeaderTimeout is the read header timeout for the metrics server
	MetricsReadHeaderTimeout = 5 * time.Second
)
