// Package server wires configuration, store, providers, jobs and HTTP
// surface into a runnable service.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"football-fan-service/internal/config"
	httpserver "football-fan-service/internal/http"
	"football-fan-service/internal/http/handlers"
	"football-fan-service/internal/http/middleware"
	"football-fan-service/internal/jobs"
	"football-fan-service/internal/logging"
	"football-fan-service/internal/metrics"
	"football-fan-service/internal/providers"
	"football-fan-service/internal/providers/espn"
	"football-fan-service/internal/providers/footballdata"
	"football-fan-service/internal/scheduler"
	"football-fan-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.FSStore
	httpServer    httpServer
	metricsServer httpServer
	scheduler     *scheduler.Scheduler
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider wiring.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	provider := footballdata.NewClient(footballdata.Config{
		BaseURL: cfg.FootballData.BaseURL,
		APIKey:  cfg.FootballData.APIKey,
	})
	scraper := espn.NewClient(espn.Config{
		BaseURL:    cfg.ESPN.BaseURL,
		APIBaseURL: cfg.ESPN.APIBaseURL,
		Logger:     logger,
	})
	return newServerWithDeps(cfg, logger, provider, scraper, nil)
}

func newServerWithDeps(cfg config.Config, logger *slog.Logger, provider providers.CompetitionProvider, scraper providers.FixtureScraper, recorder *metrics.Recorder) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	fsStore, err := store.NewFSStore(cfg.DatabaseDir, logger)
	if err != nil {
		return nil, err
	}

	loadJob := jobs.NewLoadJob(provider, fsStore, cfg.Competitions, logger)
	sched := scheduler.New(loadJob, logger, recorder, cfg.LoadInterval, cfg.LoadOnBoot)
	httpSrv := buildHTTPServer(cfg, scraper, loadJob, logger, recorder, sched)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         fsStore,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		scheduler:     sched,
		metricsStop:   metricsShutdown,
	}, nil
}

func buildHTTPServer(cfg config.Config, scraper providers.FixtureScraper, loadJob *jobs.LoadJob, logger *slog.Logger, recorder *metrics.Recorder, sched *scheduler.Scheduler) httpServer {
	var statusFn func() scheduler.Status
	if sched != nil {
		statusFn = sched.Status
	}

	handler := handlers.NewHandler(scraper, logger, statusFn)
	var admin *handlers.AdminHandler
	if cfg.AdminToken != "" {
		admin = handlers.NewAdminHandler(loadJob, cfg.AdminToken, logger)
	}
	router := httpserver.NewRouter(handler, admin)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{Server: srv}
}

// Run starts the scheduler and HTTP server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.scheduler.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.scheduler.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop scheduler", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = netHTTPServer{
			Server: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: mux,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// Store exposes the file-backed store (useful for tests and the CLI).
func (s *Server) Store() *store.FSStore {
	return s.store
}
