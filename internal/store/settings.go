package store

import (
	"context"
	"encoding/json/v2"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// Settings live in their own key namespace beside the board snapshot. Each
// setting is a small standalone record, so individual preferences can change
// without rewriting the snapshot.

// SetSetting stores a single named setting. On an unsupported host it is a
// silent no-op, matching SetState.
func (s *Store) SetSetting(ctx context.Context, name string, value []byte) error {
	if !s.IsSupported() {
		return nil
	}
	return s.setRecord(ctx, settingsPrefix+name, value)
}

// GetSetting reads a single named setting. It returns (nil, false, nil) when
// the setting does not exist or the host is unsupported.
func (s *Store) GetSetting(ctx context.Context, name string) ([]byte, bool, error) {
	if !s.IsSupported() {
		return nil, false, nil
	}
	return s.getRecord(ctx, settingsPrefix+name)
}

// DeleteSetting removes a named setting. Deleting a missing setting succeeds.
func (s *Store) DeleteSetting(ctx context.Context, name string) error {
	if !s.IsSupported() {
		return nil
	}
	return s.deleteKey(ctx, settingsPrefix+name)
}

// ClearSettings removes every stored setting, leaving the board snapshot
// untouched.
func (s *Store) ClearSettings(ctx context.Context) error {
	if !s.IsSupported() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.initLocked(ctx); err != nil {
		return err
	}

	prefix := []byte(settingsPrefix)
	return s.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)

		var keys [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		it.Close()

		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

// AllSettings returns every stored setting keyed by name.
func (s *Store) AllSettings(ctx context.Context) (map[string][]byte, error) {
	if !s.IsSupported() {
		return map[string][]byte{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.initLocked(ctx); err != nil {
		return nil, err
	}

	out := map[string][]byte{}
	prefix := []byte(settingsPrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			name := strings.TrimPrefix(string(item.Key()), settingsPrefix)

			err := item.Value(func(val []byte) error {
				var record Record
				if err := json.Unmarshal(val, &record); err != nil {
					return err
				}
				out[name] = []byte(record.Value)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
