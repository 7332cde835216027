// Package database provides PostgreSQL connection management and embedded
// schema migrations.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/urlmap-dev/urlmap/internal/config"
)

// System provides access to the connection pool.
type System interface {
	DB() *sql.DB
	Close() error
}

type system struct {
	db     *sql.DB
	logger *slog.Logger
}

// New opens the connection pool, verifies connectivity, and applies pending
// migrations. The pool is tuned from configuration before first use.
func New(cfg *config.DatabaseConfig, logger *slog.Logger) (System, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnTimeoutDuration())
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := Migrate(db, logger); err != nil {
		db.Close()
		return nil, err
	}

	return &system{
		db:     db,
		logger: logger,
	}, nil
}

// DB returns the underlying connection pool.
func (s *system) DB() *sql.DB {
	return s.db
}

// Close closes the connection pool.
func (s *system) Close() error {
	s.logger.Info("closing database")
	return s.db.Close()
}
