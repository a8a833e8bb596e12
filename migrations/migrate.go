// Package migrations applies the database schema with goose. Migration
// files are embedded per dialect: PostgreSQL and SQLite get separate SQL
// because their type systems and autoincrement syntax differ.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Run applies all pending migrations for the given driver ("pgx" or
// "sqlite3").
func Run(ctx context.Context, db *sql.DB, driver string) error {
	var dialect, dir string
	switch driver {
	case "pgx":
		dialect, dir = "postgres", "postgres"
	case "sqlite3":
		dialect, dir = "sqlite3", "sqlite"
	default:
		return fmt.Errorf("unsupported db driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
