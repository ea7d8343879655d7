// Package kvstore persists small client-side values, such as the active
// baby, in an embedded badger database.
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"
)

// ErrNotFound is returned by Get when the key was never set.
var ErrNotFound = errors.New("key not found")

// Store is a JSON-valued key-value store.
type Store struct {
	db     *badger.DB
	logger logger.Logger
}

// Open opens the store at dir, or an in-memory store when dir is empty
func Open(dir string, logger logger.Logger) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open kv store: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Close flushes and closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Get decodes the value stored under key into out
func (s *Store) Get(key string, out interface{}) error {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			return json.Unmarshal(v, out)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	return nil
}

// Set stores value under key
func (s *Store) Set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	}); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	}); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// GetOr returns the value under key, or fallback when it is missing or
// unreadable. Read failures are logged, never returned.
func GetOr[T any](s *Store, key string, fallback T) T {
	var v T
	err := s.Get(key, &v)
	switch {
	case err == nil:
		return v
	case errors.Is(err, ErrNotFound):
		return fallback
	default:
		s.logger.Warn("Error reading ", key, " from kv store: ", err)
		return fallback
	}
}
