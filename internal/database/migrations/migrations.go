// Package migrations holds the embedded Postgres schema.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jmoiron/sqlx"
)

//go:embed *.sql
var Files embed.FS

// Names returns the embedded migration files in the order they are applied.
func Names() ([]string, error) {
	names, err := fs.Glob(Files, "*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Apply runs every embedded migration inside one transaction. The schema uses
// IF NOT EXISTS throughout, so re-running is harmless.
func Apply(ctx context.Context, db *sqlx.DB) ([]string, error) {
	names, err := Names()
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	for _, name := range names {
		body, err := Files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, string(body)); err != nil {
			return nil, fmt.Errorf("apply %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return names, nil
}
