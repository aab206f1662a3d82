package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config represents the unified configuration structure. All values come
// from environment variables; the service takes no CLI flags and reads no
// config files.
type Config struct {
	App           AppConfig
	Server        ServerConfig
	Observability ObservabilityConfig
	CORS          CORSConfig
}

// AppConfig contains application identity surfaced in responses
type AppConfig struct {
	Version     string `env:"APP_VERSION" envDefault:"1.0.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
}

// ServerConfig contains server-specific configuration
type ServerConfig struct {
	Host            string        `env:"HOST" envDefault:"0.0.0.0"`
	Port            string        `env:"PORT" envDefault:"8080"`
	MetricsPort     string        `env:"METRICS_PORT" envDefault:"9090"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	MaxRequestSize  int64         `env:"MAX_REQUEST_SIZE" envDefault:"10485760"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// ObservabilityConfig contains logging, metrics and tracing configuration
type ObservabilityConfig struct {
	Logging LoggingConfig
	Metrics MetricsConfig
	Tracing TracingConfig
}

// LoggingConfig controls the structured logger. There is no development or
// debug mode switch: the logger always runs with the production encoder so
// fault detail never reaches clients.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// MetricsConfig controls the Prometheus metrics listener
type MetricsConfig struct {
	Enabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

// TracingConfig controls OpenTelemetry tracing
type TracingConfig struct {
	Enabled bool `env:"TRACING_ENABLED" envDefault:"false"`
}

// CORSConfig controls cross-origin request handling, disabled unless
// explicitly turned on
type CORSConfig struct {
	Enabled        bool     `env:"CORS_ENABLED" envDefault:"false"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
}

// Load parses configuration from the environment and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate validates the entire configuration
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}
	return nil
}
