// Package store persists board snapshots and user settings in a local
// Badger database. The board state lives under a single versioned key; it is
// written whole and read whole.
package store

import (
	"context"
	"encoding/json/jsontext"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"

	apperrors "github.com/npaulus/kanban-server/internal/errors"
)

// Versioned keys. Bumping the version orphans old records instead of
// reinterpreting them.
const (
	keyState         = "state:v1:kanban"
	settingsPrefix   = "settings:v1:"
	recordTimeLayout = "2006-01-02T15:04:05.000Z"
)

// Record is the stored envelope around a serialized value. Timestamp is the
// write time, kept for inspection; reads do not interpret it.
type Record struct {
	Key       string         `json:"key"`
	Value     jsontext.Value `json:"value"`
	Timestamp string         `json:"timestamp"`
}

// Store wraps a Badger database holding the board snapshot and settings.
// When the environment has no usable data path the store is permanently
// unsupported: Init fails once, writes and clears become no-ops, and reads
// report nothing stored.
type Store struct {
	path   string
	logger *slog.Logger

	mu   sync.Mutex
	db   *badger.DB
	init bool
	now  func() time.Time
}

// New creates a store rooted at path. The database is not opened until the
// first operation needs it. An empty path means local persistence is
// unavailable on this host.
func New(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
		now:    time.Now,
	}
}

// IsSupported reports whether this host can persist at all. The answer does
// not change over the process lifetime.
func (s *Store) IsSupported() bool {
	return s.path != ""
}

// Init opens the database. It is safe to call more than once; after the
// first success it does nothing. On an unsupported host it fails without
// side effects.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initLocked(ctx)
}

func (s *Store) initLocked(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.init {
		return nil
	}
	if !s.IsSupported() {
		return apperrors.StorageUnavailable("no data path configured")
	}

	opts := badger.DefaultOptions(s.path)
	opts.Logger = nil
	opts.SyncWrites = true
	opts.CompactL0OnClose = true

	db, err := badger.Open(opts)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.CodeStorageUnavailable, "opening badger db at %s", s.path)
	}

	s.db = db
	s.init = true
	if s.logger != nil {
		s.logger.Info("Badger database opened successfully", "path", s.path)
	}
	return nil
}

// Close closes the database if it was ever opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	err := s.db.Close()
	s.db = nil
	s.init = false
	return err
}

// SetState writes the serialized board snapshot, replacing whatever was
// stored before. On an unsupported host it is a silent no-op.
func (s *Store) SetState(ctx context.Context, value []byte) error {
	if !s.IsSupported() {
		return nil
	}
	return s.setRecord(ctx, keyState, value)
}

// GetState reads the stored board snapshot. It returns (nil, false, nil)
// when nothing is stored or the host is unsupported.
func (s *Store) GetState(ctx context.Context) ([]byte, bool, error) {
	if !s.IsSupported() {
		return nil, false, nil
	}
	return s.getRecord(ctx, keyState)
}

// ClearState removes the stored snapshot. Clearing an empty store succeeds.
func (s *Store) ClearState(ctx context.Context) error {
	if !s.IsSupported() {
		return nil
	}
	return s.deleteKey(ctx, keyState)
}

func (s *Store) setRecord(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.initLocked(ctx); err != nil {
		return err
	}

	record := Record{
		Key:       key,
		Value:     jsontext.Value(value),
		Timestamp: s.now().UTC().Format(recordTimeLayout),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record %s: %w", key, err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func (s *Store) getRecord(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.initLocked(ctx); err != nil {
		return nil, false, err
	}

	var record Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(record.Value), true, nil
}

func (s *Store) deleteKey(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.initLocked(ctx); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}
