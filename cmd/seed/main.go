// Package main provides the seed command for populating the database with
// sample records.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/urlmap-dev/urlmap/internal/database"
)

const EnvDatabaseDSN = "DATABASE_DSN"

func main() {
	var (
		dsn   = flag.String("dsn", "", "Database connection string")
		count = flag.Int("count", 10, "Number of sample records to insert")
	)
	flag.Parse()

	if *dsn == "" {
		*dsn = os.Getenv(EnvDatabaseDSN)
	}
	if *dsn == "" {
		log.Fatalf("database connection string required: use -dsn flag or %s env var", EnvDatabaseDSN)
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	ctx := context.Background()

	if err := database.Migrate(db, newLogger()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if err := seedRecords(ctx, db, *count); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	fmt.Printf("seeded %d records\n", *count)
}
