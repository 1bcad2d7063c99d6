// Package migrations embeds the goose migrations for each supported
// database and applies them.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Up applies all pending migrations for the dialect ("postgres" or "sqlite")
// and returns the number of migrations applied.
func Up(ctx context.Context, db *sql.DB, dialect string) (int, error) {
	var gooseDialect goose.Dialect
	switch dialect {
	case "postgres":
		gooseDialect = goose.DialectPostgres
	case "sqlite":
		gooseDialect = goose.DialectSQLite3
	default:
		return 0, fmt.Errorf("migrations: unsupported dialect %q", dialect)
	}

	dir, err := fs.Sub(files, dialect)
	if err != nil {
		return 0, fmt.Errorf("migrations: %w", err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, dir)
	if err != nil {
		return 0, fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}
	return len(results), nil
}
