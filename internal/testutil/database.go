package testutil

import (
	"testing"

	"gigawall/internal/database"
	"gigawall/internal/gigawall"
)

// NewTestDatabase creates a new in-memory SQLite history database with the
// schema applied. The database is automatically closed when the test
// completes.
func NewTestDatabase(t *testing.T) gigawall.HistoryDB {
	t.Helper()

	db, err := database.NewSQLiteDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}
