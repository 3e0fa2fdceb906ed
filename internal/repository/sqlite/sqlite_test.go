package sqlite_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/msomdec/daily-diet/internal/domain"
	"github.com/msomdec/daily-diet/internal/repository/sqlite"
)

// Verify that *sqlite.DB implements domain.Database at compile time.
var _ domain.Database = (*sqlite.DB)(nil)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNew(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer db.Close()

	// Verify the file was created.
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file was not created")
	}

	// Verify foreign keys are enabled.
	var fkEnabled int
	if err := db.SqlDB.QueryRow("PRAGMA foreign_keys").Scan(&fkEnabled); err != nil {
		t.Fatalf("check foreign_keys: %v", err)
	}
	if fkEnabled != 1 {
		t.Fatalf("expected foreign_keys=1, got %d", fkEnabled)
	}
}

func TestMigrate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// Verify the users table exists by inserting a row.
	_, err := db.SqlDB.ExecContext(ctx,
		"INSERT INTO users (id, session_id, name, email) VALUES (?, ?, ?, ?)",
		"u1", "s1", "Test User", "test@example.com",
	)
	if err != nil {
		t.Fatalf("insert into users: %v", err)
	}

	// And the meals table, referencing the user.
	_, err = db.SqlDB.ExecContext(ctx,
		"INSERT INTO meals (id, name, description, is_on_diet, datetime, user_id) VALUES (?, ?, ?, ?, ?, ?)",
		"m1", "Lunch", "salad", true, "2024-01-01 12:00", "u1",
	)
	if err != nil {
		t.Fatalf("insert into meals: %v", err)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// Second run should be a no-op.
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate (idempotent): %v", err)
	}

	var count int
	err := db.SqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	if err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 migration records, got %d", count)
	}
}

func TestForeignKeyEnforced(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// A meal must reference an existing user.
	_, err := db.SqlDB.ExecContext(ctx,
		"INSERT INTO meals (id, name, description, is_on_diet, datetime, user_id) VALUES (?, ?, ?, ?, ?, ?)",
		"m1", "Lunch", "salad", true, "2024-01-01 12:00", "no-such-user",
	)
	if err == nil {
		t.Fatal("expected foreign key violation for meal with unknown user")
	}
}
