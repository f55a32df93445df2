package shared

import (
	"testing"
)

func TestMigrations(t *testing.T) {
	t.Run("MigrateUp", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		if err := MigrateUp(db); err != nil {
			t.Fatalf("failed to migrate up: %v", err)
		}

		for _, table := range []string{"tracks", "tracks_sequence", "schema_migrations"} {
			var name string
			err := db.QueryRow(
				"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
			).Scan(&name)
			if err != nil {
				t.Errorf("table %s should exist after migration: %v", table, err)
			}
		}

		version, err := currentVersion(db)
		if err != nil {
			t.Fatalf("failed to read schema version: %v", err)
		}
		if version < 0 {
			t.Errorf("expected applied version >= 0, got %d", version)
		}
	})

	t.Run("MigrateUpIdempotent", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		if err := MigrateUp(db); err != nil {
			t.Fatalf("first migration failed: %v", err)
		}
		if err := MigrateUp(db); err != nil {
			t.Fatalf("second migration should be a no-op: %v", err)
		}
	})

	t.Run("MigrateDown", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		if err := MigrateUp(db); err != nil {
			t.Fatalf("failed to migrate up: %v", err)
		}
		if err := MigrateDown(db); err != nil {
			t.Fatalf("failed to migrate down: %v", err)
		}

		var name string
		err = db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name='tracks'",
		).Scan(&name)
		if err == nil {
			t.Error("tracks table should not exist after rollback")
		}

		version, err := currentVersion(db)
		if err != nil {
			t.Fatalf("failed to read schema version: %v", err)
		}
		if version != -1 {
			t.Errorf("expected version -1 after rollback, got %d", version)
		}
	})

	t.Run("MigrateDownOnEmpty", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		if err := MigrateDown(db); err != nil {
			t.Errorf("rolling back with nothing applied should be a no-op: %v", err)
		}
	})
}
