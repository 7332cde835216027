package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// seedRecords inserts count sample records within a single transaction.
func seedRecords(ctx context.Context, db *sql.DB, count int) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := `INSERT INTO records (label, value) VALUES ($1, $2)`
	for i := 1; i <= count; i++ {
		label := fmt.Sprintf("sample-%03d", i)
		value := fmt.Sprintf("value for sample record %d", i)
		if _, err := tx.ExecContext(ctx, q, label, value); err != nil {
			return fmt.Errorf("insert record %s: %w", label, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}
