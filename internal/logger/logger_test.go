package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/urlmap-dev/urlmap/internal/config"
	"github.com/urlmap-dev/urlmap/internal/logger"
)

func TestNew(t *testing.T) {
	cfg := &config.LoggingConfig{
		Level:  config.LogLevelWarn,
		Format: config.LogFormatText,
	}

	sys := logger.New(cfg)
	if sys.Logger() == nil {
		t.Fatal("Expected logger instance")
	}

	if sys.Logger().Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Expected info suppressed at warn level")
	}
	if !sys.Logger().Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Expected warn enabled at warn level")
	}
}

func TestNewJSONFormat(t *testing.T) {
	cfg := &config.LoggingConfig{
		Level:  config.LogLevelDebug,
		Format: config.LogFormatJSON,
	}

	sys := logger.New(cfg)
	if !sys.Logger().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Expected debug enabled at debug level")
	}
}
