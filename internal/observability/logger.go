package observability

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/secure-pipeline/sample-api/internal/config"
)

type Logger struct {
	*zap.Logger
}

// NewLogger builds the structured logger. The production config is used
// unconditionally: zap's development mode (DPanic panics, verbose stack
// traces) must never be enabled, whatever ENVIRONMENT says.
func NewLogger(cfg config.LoggingConfig) (*Logger, error) {
	zapConfig := zap.NewProductionConfig()

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	if cfg.Format == "console" {
		zapConfig.Encoding = "console"
	} else {
		zapConfig.Encoding = "json"
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{logger}, nil
}

func (l *Logger) Sync() error {
	return l.Logger.Sync()
}
