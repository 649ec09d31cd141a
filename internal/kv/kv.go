// Package kv defines the key-value primitive the journal persists through:
// UTF-8 string values keyed by string, last write wins per key.
package kv

import "context"

// Store is a string key-value store. A missing key is reported as
// found == false, never as an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Locker is implemented by backends that can serialize read-modify-write
// cycles across processes. The returned function releases the lock.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
