// Package migrations embeds the SQL schema migrations and applies them with
// goose. Migration is a deployment-time concern: the running server never
// calls into this package after startup, only the migrate stage of the
// deployment pipeline does.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations up to head. Applying against an
// already-migrated database is a no-op success, so the migrate stage can be
// re-run safely. Any failure — connection loss, conflicting concurrent
// migration, bad SQL — surfaces as a single error with no partial-success
// state exposed to the caller.
func Migrate(db *sql.DB) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
