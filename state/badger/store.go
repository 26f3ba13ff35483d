// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package badger implements state.Store on BadgerDB. Entry expiry maps
// directly onto Badger's native TTL support.
package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/adaptivesearch/core"
	"github.com/poiesic/adaptivesearch/state"
)

// Store implements state.Store for BadgerDB.
type Store struct {
	backend *Backend
}

var _ state.Store = (*Store)(nil)

// NewStore creates a Store over an open backend.
func NewStore(backend *Backend) *Store {
	return &Store{backend: backend}
}

// Put stores an entry, stamping its UpdatedAt. A non-zero ttl makes
// the entry expire; Badger enforces expiry on read.
func (s *Store) Put(ctx context.Context, entry core.StateEntry, ttl time.Duration) error {
	if entry.Key == "" {
		return state.ErrEmptyKey
	}
	if s.backend.IsClosed() {
		return state.ErrStoreClosed
	}

	entry.UpdatedAt = time.Now().UTC()
	value := state.MarshalStateEntry(&entry)

	return s.backend.WithTx(func(tx *badger.Txn) error {
		e := badger.NewEntry(makeEntryKey(entry.Key), value)
		if ttl > 0 {
			e = e.WithTTL(ttl)
		}
		if err := tx.SetEntry(e); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Get retrieves an entry by key.
func (s *Store) Get(ctx context.Context, key string) (*core.StateEntry, error) {
	if key == "" {
		return nil, state.ErrEmptyKey
	}
	if s.backend.IsClosed() {
		return nil, state.ErrStoreClosed
	}

	var entry *core.StateEntry
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeEntryKey(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return state.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			entry, err = state.UnmarshalStateEntry(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete removes an entry by key. Missing keys are not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return state.ErrEmptyKey
	}
	if s.backend.IsClosed() {
		return state.ErrStoreClosed
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeEntryKey(key)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// AppendIteration adds one record to a request's iteration log. The
// iteration number orders the log, so records land sorted regardless
// of write order.
func (s *Store) AppendIteration(ctx context.Context, requestID string, record core.IterationRecord) error {
	if s.backend.IsClosed() {
		return state.ErrStoreClosed
	}

	value := state.MarshalIterationRecord(&record)
	return s.backend.WithTx(func(tx *badger.Txn) error {
		key := makeIterationKey(requestID, record.Iteration)
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Iterations returns a request's iteration log in iteration order.
func (s *Store) Iterations(ctx context.Context, requestID string) ([]core.IterationRecord, error) {
	if s.backend.IsClosed() {
		return nil, state.ErrStoreClosed
	}

	records := []core.IterationRecord{}
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeIterationScanPrefix(requestID)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				record, err := state.UnmarshalIterationRecord(val)
				if err != nil {
					return err
				}
				records = append(records, *record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
