// Package store implements the portal's durable local store on Badger.
// Every domain collection lives under one fixed key as a versioned JSON
// envelope; the store is the single source of truth for portal data.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"gigawall/internal/gigawall"
)

// Fixed keys, one per entity family.
const (
	keyContent       = "content"
	keyNotifications = "notifications"
	keyLikes         = "likes"
	keyChat          = "chat"
	keyRepoURL       = "remote:repo_url"
	keyRepoPrivate   = "remote:private"
	keyToken         = "remote:token"

	// Comment threads are stored per content item.
	commentsPrefix = "comments:"
)

// envelopeVersion is bumped when a stored shape changes; readers treat an
// unknown version the same as a corrupt value and fall back to defaults.
const envelopeVersion = 1

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// Store wraps a Badger database instance and owns the change-event bus.
type Store struct {
	db     *badger.DB
	logger gigawall.Logger
	clock  gigawall.Clock
	idgen  gigawall.IDGenerator
	bus    *gigawall.Bus
}

// Open opens (or creates) the store at path.
func Open(path string, logger gigawall.Logger, clock gigawall.Clock, idgen gigawall.IDGenerator) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil      // Badger's own logging is too chatty for a CLI
	opts.SyncWrites = true // portal data is small; durability wins

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening store at %s: %w", path, err)
	}

	return &Store{
		db:     db,
		logger: logger,
		clock:  clock,
		idgen:  idgen,
		bus:    gigawall.NewBus(),
	}, nil
}

// Subscribe registers fn for change events and returns an unsubscribe func.
func (s *Store) Subscribe(fn func(gigawall.Event)) func() {
	return s.bus.Subscribe(fn)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// get reads the envelope at key into out. found is false when the key has
// never been written, or when the stored value is corrupt or of an unknown
// version — callers supply the default in both cases.
func (s *Store) get(key string, out any) (found bool, err error) {
	var raw []byte
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", key, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Version != envelopeVersion {
		s.logger.Warn("discarding corrupt stored value", "key", key)
		return false, nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		s.logger.Warn("discarding corrupt stored value", "key", key)
		return false, nil
	}
	return true, nil
}

// put replaces the value at key with a fresh envelope around v.
func (s *Store) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	raw, err := json.Marshal(envelope{Version: envelopeVersion, Data: data})
	if err != nil {
		return fmt.Errorf("encoding %s envelope: %w", key, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), raw)
	})
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// delete removes key entirely. Deleting an absent key is a no-op.
func (s *Store) delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// Compile-time check that Store implements the service-facing interface.
var _ gigawall.Store = (*Store)(nil)
