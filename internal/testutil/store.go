package testutil

import (
	"testing"

	"gigawall/internal/gigawall"
	"gigawall/internal/store"
)

// NewTestStore creates a Badger-backed store in a temp directory. The store
// is automatically closed when the test completes.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open(t.TempDir(), gigawall.NewNopLogger(), FixedClock(), NewStubIDGenerator())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	t.Cleanup(func() {
		s.Close()
	})

	return s
}
