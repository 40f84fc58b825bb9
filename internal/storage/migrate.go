// ABOUTME: Versioned schema migrations tracked in the schema_migrations table.
// ABOUTME: Each migration runs once, in order, inside its own transaction.
package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	stmts   []string
}

// migrations is append-only; never edit a released entry.
var migrations = []migration{
	{version: 1, name: "initial schema", stmts: schemaV1},
	{version: 2, name: "log time indexes", stmts: schemaV2},
}

// SchemaVersion is the latest migration version.
func SchemaVersion() int {
	return migrations[len(migrations)-1].version
}

// migrate brings the schema up to SchemaVersion.
func (d *DB) migrate(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TEXT NOT NULL
		)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	current, err := d.currentVersion(ctx)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		err := d.withTx(ctx, func(tx *sql.Tx) error {
			for _, stmt := range m.stmts {
				if _, err := tx.ExecContext(ctx, stmt); err != nil {
					return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
				}
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)`,
				m.version, formatTime(d.now()))
			if err != nil {
				return fmt.Errorf("record schema version %d: %w", m.version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *DB) currentVersion(ctx context.Context) (int, error) {
	var current int
	err := d.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return current, nil
}
