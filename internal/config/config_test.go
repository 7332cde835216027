package config_test

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/urlmap-dev/urlmap/internal/config"
)

func TestServerDefaults(t *testing.T) {
	var cfg config.ServerConfig
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Addr() != "0.0.0.0:8000" {
		t.Errorf("Expected default addr 0.0.0.0:8000, got %q", cfg.Addr())
	}
	if cfg.ReadTimeoutDuration().Seconds() != 10 {
		t.Errorf("Expected 10s read timeout, got %v", cfg.ReadTimeoutDuration())
	}
	if cfg.MaxRequestBodyBytes() != 1000000 {
		t.Errorf("Expected 1MB body limit, got %d", cfg.MaxRequestBodyBytes())
	}
}

func TestServerEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvServerHost, "127.0.0.1")
	t.Setenv(config.EnvServerPort, "9090")
	t.Setenv(config.EnvServerMaxRequestBody, "4MB")

	var cfg config.ServerConfig
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Addr() != "127.0.0.1:9090" {
		t.Errorf("Expected addr 127.0.0.1:9090, got %q", cfg.Addr())
	}
	if cfg.MaxRequestBodyBytes() != 4000000 {
		t.Errorf("Expected 4MB body limit, got %d", cfg.MaxRequestBodyBytes())
	}
}

func TestServerValidation(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.ServerConfig
		contains string
	}{
		{"invalid port", config.ServerConfig{Port: 70000}, "invalid port"},
		{"invalid read timeout", config.ServerConfig{ReadTimeout: "soon"}, "read_timeout"},
		{"invalid body size", config.ServerConfig{MaxRequestBody: "lots"}, "max_request_body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Finalize()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("Expected error mentioning %q, got %v", tt.contains, err)
			}
		})
	}
}

func TestServerMerge(t *testing.T) {
	cfg := config.ServerConfig{Host: "0.0.0.0", Port: 8000, ReadTimeout: "10s"}
	cfg.Merge(&config.ServerConfig{Port: 9000})

	if cfg.Port != 9000 {
		t.Errorf("Expected merged port 9000, got %d", cfg.Port)
	}
	if cfg.Host != "0.0.0.0" {
		t.Errorf("Expected host preserved, got %q", cfg.Host)
	}
	if cfg.ReadTimeout != "10s" {
		t.Errorf("Expected read timeout preserved, got %q", cfg.ReadTimeout)
	}
}

func TestDatabaseDsn(t *testing.T) {
	cfg := config.DatabaseConfig{Name: "urlmap", User: "postgres"}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	dsn := cfg.Dsn()
	if !strings.Contains(dsn, "host=localhost") {
		t.Errorf("Expected localhost in dsn, got %q", dsn)
	}
	if !strings.Contains(dsn, "sslmode=disable") {
		t.Errorf("Expected sslmode in dsn, got %q", dsn)
	}
}

func TestLogLevelToSlogLevel(t *testing.T) {
	tests := []struct {
		level    config.LogLevel
		expected slog.Level
	}{
		{config.LogLevelDebug, slog.LevelDebug},
		{config.LogLevelInfo, slog.LevelInfo},
		{config.LogLevelWarn, slog.LevelWarn},
		{config.LogLevelError, slog.LevelError},
		{config.LogLevel("unknown"), slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := tt.level.ToSlogLevel(); got != tt.expected {
			t.Errorf("%s: expected %v, got %v", tt.level, tt.expected, got)
		}
	}
}

func TestLoggingValidation(t *testing.T) {
	cfg := config.LoggingConfig{Level: "verbose"}
	if err := cfg.Finalize(); err == nil {
		t.Error("Expected error for invalid log level")
	}

	cfg = config.LoggingConfig{Format: "xml"}
	if err := cfg.Finalize(); err == nil {
		t.Error("Expected error for invalid log format")
	}
}

func TestLoggingEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvLogFormat, "json")

	var cfg config.LoggingConfig
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Level != config.LogLevelDebug {
		t.Errorf("Expected debug level, got %q", cfg.Level)
	}
	if cfg.Format != config.LogFormatJSON {
		t.Errorf("Expected json format, got %q", cfg.Format)
	}
}

func TestDatabaseValidation(t *testing.T) {
	var cfg config.DatabaseConfig
	if err := cfg.Finalize(); err == nil {
		t.Error("Expected error for missing database name")
	}

	cfg = config.DatabaseConfig{Name: "urlmap"}
	if err := cfg.Finalize(); err == nil {
		t.Error("Expected error for missing database user")
	}
}

func TestConfigFinalize(t *testing.T) {
	var cfg config.Config
	cfg.Database.Name = "urlmap"
	cfg.Database.User = "postgres"
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("Expected default port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Pagination.DefaultPageSize == 0 {
		t.Error("Expected pagination defaults applied")
	}
}
