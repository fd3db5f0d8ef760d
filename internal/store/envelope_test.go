package store

import (
	"encoding/json"
	"testing"

	"github.com/dgraph-io/badger/v4"

	"gigawall/internal/gigawall"
)

func openRaw(t *testing.T) *Store {
	t.Helper()

	s, err := Open(t.TempDir(), gigawall.NewNopLogger(), gigawall.RealClock{}, gigawall.UUIDGenerator{})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func setRaw(t *testing.T, s *Store, key string, value []byte) {
	t.Helper()

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		t.Fatalf("failed to write raw value: %v", err)
	}
}

func TestGet_CorruptValueFallsBackToDefault(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		s := openRaw(t)
		setRaw(t, s, keyContent, []byte("{not json"))

		items, err := s.GetContent()
		if err != nil {
			t.Fatalf("GetContent() error = %v", err)
		}
		if len(items) != len(SeedContent()) {
			t.Errorf("got %d items, want seed catalog", len(items))
		}
	})

	t.Run("unknown envelope version", func(t *testing.T) {
		t.Parallel()
		s := openRaw(t)
		raw, _ := json.Marshal(envelope{Version: 99, Data: json.RawMessage("[]")})
		setRaw(t, s, keyContent, raw)

		items, err := s.GetContent()
		if err != nil {
			t.Fatalf("GetContent() error = %v", err)
		}
		if len(items) != len(SeedContent()) {
			t.Errorf("got %d items, want seed catalog", len(items))
		}
	})

	t.Run("payload of the wrong shape", func(t *testing.T) {
		t.Parallel()
		s := openRaw(t)
		raw, _ := json.Marshal(envelope{Version: envelopeVersion, Data: json.RawMessage(`"a string"`)})
		setRaw(t, s, keyContent, raw)

		items, err := s.GetContent()
		if err != nil {
			t.Fatalf("GetContent() error = %v", err)
		}
		if len(items) != len(SeedContent()) {
			t.Errorf("got %d items, want seed catalog", len(items))
		}
	})

	t.Run("corrupt value is repaired on next write", func(t *testing.T) {
		t.Parallel()
		s := openRaw(t)
		setRaw(t, s, keyLikes, []byte("garbage"))

		liked, err := s.ToggleLike("c-001")
		if err != nil {
			t.Fatalf("ToggleLike() error = %v", err)
		}
		if !liked {
			t.Error("ToggleLike() = false, want true on empty set")
		}

		got, err := s.IsLiked("c-001")
		if err != nil {
			t.Fatalf("IsLiked() error = %v", err)
		}
		if !got {
			t.Error("like should persist after rewrite")
		}
	})
}
