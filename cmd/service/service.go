package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/urlmap-dev/urlmap/internal/api"
	"github.com/urlmap-dev/urlmap/internal/config"
	"github.com/urlmap-dev/urlmap/internal/database"
	"github.com/urlmap-dev/urlmap/internal/logger"
	"github.com/urlmap-dev/urlmap/internal/pages"
	"github.com/urlmap-dev/urlmap/internal/records"
	"github.com/urlmap-dev/urlmap/internal/routes"
	"github.com/urlmap-dev/urlmap/internal/server"
	"github.com/urlmap-dev/urlmap/web"
)

// Service coordinates the lifecycle of all subsystems.
type Service struct {
	ctx        context.Context
	cancel     context.CancelFunc
	shutdownWg sync.WaitGroup

	logger logger.System
	db     database.System
	server server.System
}

// NewService creates and initializes the service with all subsystems. The
// route table is built once here; it is immutable for the life of the
// process.
func NewService(cfg *config.Config) (*Service, error) {
	ctx, cancel := context.WithCancel(context.Background())

	loggerSys := logger.New(&cfg.Logging)
	slogger := loggerSys.Logger()

	db, err := database.New(&cfg.Database, slogger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	templates, err := web.NewTemplateSet("")
	if err != nil {
		cancel()
		db.Close()
		return nil, fmt.Errorf("template init failed: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	table := routes.New(slogger)
	viewsHandler := pages.NewHandler(templates, table, slogger)
	recordsHandler := records.NewHandler(
		records.New(db.DB(), slogger, cfg.Pagination),
		templates,
		slogger,
		cfg.Pagination,
	)

	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	api.RegisterRoutes(table, viewsHandler, recordsHandler, metricsHandler)

	middlewareSys := buildMiddleware(slogger, cfg, registry)
	handler := middlewareSys.Apply(table.Build())

	serverSys := server.New(&cfg.Server, handler, slogger)

	return &Service{
		ctx:    ctx,
		cancel: cancel,
		logger: loggerSys,
		db:     db,
		server: serverSys,
	}, nil
}

// Start begins all subsystems and returns when they are ready.
func (s *Service) Start() error {
	s.logger.Logger().Info("starting service")

	if err := s.server.Start(s.ctx, &s.shutdownWg); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	s.logger.Logger().Info("service started")
	return nil
}

// Shutdown gracefully stops all subsystems within the provided context deadline.
func (s *Service) Shutdown(ctx context.Context) error {
	s.logger.Logger().Info("initiating shutdown")

	s.cancel()

	done := make(chan struct{})
	go func() {
		s.shutdownWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if err := s.db.Close(); err != nil {
			s.logger.Logger().Error("database close error", "error", err)
		}
		s.logger.Logger().Info("all subsystems shut down successfully")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %w", ctx.Err())
	}
}
