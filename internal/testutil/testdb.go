package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/lmorales/jornada/internal/db"
	"github.com/lmorales/jornada/internal/repository"
)

// NewTestDB creates an in-memory SQLite database with all migrations
// applied. The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestSQLiteBackend creates a SQLite backend over a fresh in-memory
// database.
func NewTestSQLiteBackend(t *testing.T) *repository.SQLiteBackend {
	t.Helper()
	return repository.NewSQLiteBackend(NewTestDB(t))
}

// NewTestBoltBackend creates a Bolt backend over a store file in a
// test-scoped temporary directory.
func NewTestBoltBackend(t *testing.T) *repository.BoltBackend {
	t.Helper()
	backend, err := repository.NewBoltBackend(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("failed to create test bolt backend: %v", err)
	}
	t.Cleanup(func() {
		backend.Close()
	})
	return backend
}
