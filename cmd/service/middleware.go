package main

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urlmap-dev/urlmap/internal/config"
	"github.com/urlmap-dev/urlmap/internal/middleware"
)

// buildMiddleware creates and configures the middleware stack.
func buildMiddleware(logger *slog.Logger, cfg *config.Config, registry prometheus.Registerer) middleware.System {
	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.TrimSlash())
	middlewareSys.Use(middleware.Logger(logger))
	middlewareSys.Use(middleware.Metrics(middleware.NewRequestMetrics(registry)))
	middlewareSys.Use(middleware.CORS(&cfg.CORS))
	middlewareSys.Use(middleware.BodyLimit(cfg.Server.MaxRequestBodyBytes()))
	return middlewareSys
}
