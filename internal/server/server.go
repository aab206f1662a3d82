package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/secure-pipeline/sample-api/internal/config"
	"github.com/secure-pipeline/sample-api/internal/constants"
	"github.com/secure-pipeline/sample-api/internal/observability"
	"github.com/secure-pipeline/sample-api/internal/server/middleware"
)

type Server struct {
	config *config.Config
	server *http.Server

	// Observability
	logger    *observability.Logger
	metrics   *observability.Metrics
	tracer    *observability.Tracer
	startTime time.Time
}

func New(cfg *config.Config) (*Server, error) {
	logger, err := observability.NewLogger(cfg.Observability.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	tracer, err := observability.NewTracer(cfg.Observability.Tracing, cfg.App)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracer: %w", err)
	}

	return &Server{
		config:    cfg,
		logger:    logger,
		metrics:   observability.NewMetrics(),
		tracer:    tracer,
		startTime: time.Now(),
	}, nil
}

// Handler assembles the router with the full middleware chain. The security
// header injector wraps every route, the 404 responder included; a method
// mismatch on a defined path also falls through to the 404 responder.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	if s.config.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.config.CORS.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", constants.HeaderContentType},
			MaxAge:         300,
		}))
	}
	r.Use(middleware.Logging(s.logger.Logger))
	r.Use(middleware.Metrics(s.metrics))
	r.Use(middleware.RequestSizeLimit(s.config.Server.MaxRequestSize))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.Recover(s.logger.Logger))

	r.Get(constants.PathHealth, s.healthHandler)
	r.Get(constants.PathReady, s.readinessHandler)
	r.Get(constants.PathIndex, s.indexHandler)
	r.Get(constants.PathData, s.dataHandler)

	r.NotFound(s.notFoundHandler)
	r.MethodNotAllowed(s.notFoundHandler)

	return r
}

func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:           fmt.Sprintf("%s:%s", s.config.Server.Host, s.config.Server.Port),
		Handler:        s.Handler(),
		ReadTimeout:    s.config.Server.ReadTimeout,
		WriteTimeout:   s.config.Server.WriteTimeout,
		IdleTimeout:    s.config.Server.IdleTimeout,
		MaxHeaderBytes: constants.ServerMaxHeaderBytes,
	}

	s.logger.Logger.Info("Starting server",
		zap.String("host", s.config.Server.Host),
		zap.String("port", s.config.Server.Port),
		zap.String("version", s.config.App.Version),
		zap.String("environment", s.config.App.Environment),
	)

	s.metrics.SetHealthStatus(true)

	// Start metrics server in background
	var metricsServer *http.Server
	if s.config.Observability.Metrics.Enabled {
		metricsMux := http.NewServeMux()
		metricsMux.Handle(constants.PathMetrics, s.metrics.Handler())
		metricsServer = &http.Server{
			Addr:              fmt.Sprintf(":%s", s.config.Server.MetricsPort),
			Handler:           metricsMux,
			ReadHeaderTimeout: constants.MetricsReadHeaderTimeout,
		}
		s.logger.Logger.Info("Starting metrics server",
			zap.String("port", s.config.Server.MetricsPort),
		)
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Logger.Error("Metrics server failed", zap.Error(err))
			}
		}()
	}

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	s.logger.Logger.Info("Shutting down server...")
	s.metrics.SetHealthStatus(false)

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	var wg sync.WaitGroup
	errChan := make(chan error, 2)

	if metricsServer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := metricsServer.Shutdown(ctx); err != nil {
				s.logger.Logger.Error("Failed to shutdown metrics server", zap.Error(err))
				errChan <- fmt.Errorf("metrics server shutdown: %w", err)
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := s.server.Shutdown(ctx); err != nil {
			s.logger.Logger.Error("Failed to shutdown main server", zap.Error(err))
			errChan <- fmt.Errorf("main server shutdown: %w", err)
		}
	}()

	wg.Wait()
	close(errChan)

	if err := s.tracer.Shutdown(ctx); err != nil {
		s.logger.Logger.Error("Failed to shutdown tracer", zap.Error(err))
	}
	_ = s.logger.Sync()

	for err := range errChan {
		if err != nil {
			return err
		}
	}
	return nil
}
