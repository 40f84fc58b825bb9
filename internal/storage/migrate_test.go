// ABOUTME: Tests for versioned schema migrations.
// ABOUTME: Verifies each migration is recorded once and later ones apply to older databases.
package storage

import (
	"context"
	"testing"
)

func TestMigrationsRecordedOnce(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.migrate(ctx); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}

	var rows int
	if err := db.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&rows); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if rows != len(migrations) {
		t.Errorf("schema_migrations has %d rows, want %d", rows, len(migrations))
	}
}

func TestMigrateUpgradesOlderSchema(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	// Roll the database back to version 1.
	for _, stmt := range []string{
		`DROP INDEX idx_food_logged`,
		`DELETE FROM schema_migrations WHERE version > 1`,
	} {
		if _, err := db.db.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("%s: %v", stmt, err)
		}
	}
	if v, _ := db.currentVersion(ctx); v != 1 {
		t.Fatalf("expected version 1 after rollback, got %d", v)
	}

	if err := db.migrate(ctx); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	v, err := db.currentVersion(ctx)
	if err != nil {
		t.Fatalf("currentVersion failed: %v", err)
	}
	if v != SchemaVersion() {
		t.Errorf("version = %d, want %d", v, SchemaVersion())
	}

	var name string
	err = db.db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'index' AND name = 'idx_food_logged'`).Scan(&name)
	if err != nil {
		t.Errorf("idx_food_logged not recreated: %v", err)
	}
}

func TestSchemaVersionIsLatest(t *testing.T) {
	for i := 1; i < len(migrations); i++ {
		if migrations[i].version <= migrations[i-1].version {
			t.Fatalf("migration %d is not after %d", migrations[i].version, migrations[i-1].version)
		}
	}
	if SchemaVersion() != migrations[len(migrations)-1].version {
		t.Errorf("SchemaVersion = %d", SchemaVersion())
	}
}
