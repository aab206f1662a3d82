package observability

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewMetrics(t *testing.T) {
	metrics := NewMetrics()

	if metrics == nil {
		t.Fatal("NewMetrics() returned nil")
	}

	if metrics.RequestCount == nil {
		t.Error("RequestCount metric is nil")
	}
	if metrics.RequestDuration == nil {
		t.Error("RequestDuration metric is nil")
	}
	if metrics.ResponseSize == nil {
		t.Error("ResponseSize metric is nil")
	}
	if metrics.HealthStatus == nil {
		t.Error("HealthStatus metric is nil")
	}
}

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("Expected status 200 from metrics handler, got %d", rec.Code)
	}

	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("Failed to read metrics body: %v", err)
	}
	return string(body)
}

func TestMetrics_RecordRequest(t *testing.T) {
	metrics := NewMetrics()

	metrics.RecordRequest("GET", "/health", 200, 100*time.Millisecond, 64)
	metrics.RecordRequest("GET", "/health", 200, 50*time.Millisecond, 64)

	body := scrape(t, metrics)

	if !strings.Contains(body, `http_requests_total{endpoint="/health",method="GET",status_code="200"} 2`) {
		t.Errorf("Expected request counter for /health in output:\n%s", body)
	}
	if !strings.Contains(body, "http_request_duration_seconds") {
		t.Error("Expected request duration histogram in output")
	}
	if !strings.Contains(body, "http_response_size_bytes") {
		t.Error("Expected response size histogram in output")
	}
}

func TestMetrics_SetHealthStatus(t *testing.T) {
	metrics := NewMetrics()

	metrics.SetHealthStatus(true)
	if body := scrape(t, metrics); !strings.Contains(body, "app_health_status 1") {
		t.Errorf("Expected health gauge 1 in output:\n%s", body)
	}

	metrics.SetHealthStatus(false)
	if body := scrape(t, metrics); !strings.Contains(body, "app_health_status 0") {
		t.Errorf("Expected health gauge 0 in output:\n%s", body)
	}
}

func TestMetrics_HandlerIsolatedRegistry(t *testing.T) {
	metrics := NewMetrics()

	// Go runtime metrics come from the default registry and must not leak
	// through the custom one.
	if body := scrape(t, metrics); strings.Contains(body, "go_goroutines") {
		t.Error("Expected custom registry without default Go collector metrics")
	}
}
