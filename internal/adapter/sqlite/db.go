// Package sqlite provides the embedded single-file store used when
// database.driver is "sqlite".
package sqlite

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/heartmarshall/langy-backend/migrations"
)

// Open opens (creating if needed) the SQLite database at dsn, enables
// foreign keys and applies pending migrations. Use ":memory:" for an
// ephemeral database.
func Open(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", dsn, err)
	}

	// SQLite has a single writer; one connection also keeps :memory: alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if _, err := migrations.Up(ctx, db.DB, "sqlite"); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Builder returns a squirrel statement builder using ? placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
