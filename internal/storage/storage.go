package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/chris-regnier/moodctl/internal/entry"
	"github.com/chris-regnier/moodctl/internal/kv"
	"github.com/chris-regnier/moodctl/internal/logging"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation error")
	ErrStorageRead     = errors.New("storage read error")
	ErrStorageWrite    = errors.New("storage write error")
	ErrDeserialization = errors.New("stored data is corrupt")
)

// Fixed storage keys.
const (
	EntriesKey = "mood_journal_entries"
	HabitsKey  = "@habits"
)

// Collection is an ordered list of T persisted as one JSON array under one
// key. Position in the list carries no meaning beyond display order.
type Collection[T any] struct {
	kv  kv.Store
	key string
	mu  sync.Mutex
}

// NewCollection returns a collection stored under key.
func NewCollection[T any](store kv.Store, key string) *Collection[T] {
	return &Collection[T]{kv: store, key: key}
}

// EntryStore is the journal's single source of truth.
type EntryStore = Collection[entry.Entry]

// NewEntryStore returns the entry collection backed by store.
func NewEntryStore(store kv.Store) *EntryStore {
	return NewCollection[entry.Entry](store, EntriesKey)
}

// Key returns the storage key of the collection.
func (c *Collection[T]) Key() string {
	return c.key
}

// LoadAll returns the full collection. A key that was never written is an
// empty collection, not an error.
func (c *Collection[T]) LoadAll(ctx context.Context) ([]T, error) {
	raw, found, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("%w: loading %s: %v", ErrStorageRead, c.key, err)
	}
	if !found {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrDeserialization, c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// LoadAllOrEmpty is the display-path fallback: a read or decode failure is
// logged and reported as an empty collection. History may appear to vanish
// after a transient storage fault. Write paths must use LoadAll instead.
func (c *Collection[T]) LoadAllOrEmpty(ctx context.Context) []T {
	items, err := c.LoadAll(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn("showing empty collection after load failure",
			zap.String("key", c.key),
			zap.Error(err),
		)
		return []T{}
	}
	return items
}

// SaveAll overwrites the whole collection with items.
func (c *Collection[T]) SaveAll(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", ErrStorageWrite, c.key, err)
	}
	if err := c.kv.Set(ctx, c.key, string(data)); err != nil {
		return fmt.Errorf("%w: saving %s: %v", ErrStorageWrite, c.key, err)
	}
	logging.FromContext(ctx).Debug("saved collection",
		zap.String("key", c.key),
		zap.Int("count", len(items)),
	)
	return nil
}

// Append prepends item to the collection. It does not deduplicate.
func (c *Collection[T]) Append(ctx context.Context, item T) error {
	return c.Update(ctx, func(items []T) ([]T, error) {
		return append([]T{item}, items...), nil
	})
}

// Update runs a guarded read-modify-write: load, apply fn, save. Only one
// Update per collection runs at a time in this process, and backends that
// implement kv.Locker also exclude other processes. If fn returns an error
// nothing is written.
func (c *Collection[T]) Update(ctx context.Context, fn func([]T) ([]T, error)) error {
	unlock, err := c.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	items, err := c.LoadAll(ctx)
	if err != nil {
		return err
	}
	updated, err := fn(items)
	if err != nil {
		return err
	}
	return c.SaveAll(ctx, updated)
}

// Clear wipes the collection.
func (c *Collection[T]) Clear(ctx context.Context) error {
	unlock, err := c.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if err := c.kv.Delete(ctx, c.key); err != nil {
		return fmt.Errorf("%w: clearing %s: %v", ErrStorageWrite, c.key, err)
	}
	logging.FromContext(ctx).Info("cleared collection", zap.String("key", c.key))
	return nil
}

// lock takes the in-process mutex and, when the backend implements
// kv.Locker, the cross-process lock for the collection's key.
func (c *Collection[T]) lock(ctx context.Context) (func(), error) {
	c.mu.Lock()
	locker, ok := c.kv.(kv.Locker)
	if !ok {
		return c.mu.Unlock, nil
	}
	unlock, err := locker.Lock(ctx, c.key)
	if err != nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: locking %s: %v", ErrStorageWrite, c.key, err)
	}
	return func() {
		unlock()
		c.mu.Unlock()
	}, nil
}
