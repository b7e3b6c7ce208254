// Package recordstore is the device-local key-value store that holds
// serialized records.
//
// Values are opaque bytes addressed by string keys. A missing key is not an
// error: Get returns (nil, nil). Backends that can run a read-modify-write
// atomically also implement Updater.
package recordstore

import (
	"context"
	"errors"
)

// ErrConflict is returned by Update when a concurrent writer kept changing
// the key and the update could not be applied.
var ErrConflict = errors.New("record changed concurrently")

// Store is the get/set/remove surface every backend provides.
type Store interface {
	// Get returns the value stored under key, or (nil, nil) if there is none.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// UpdateFunc receives the current value (nil when absent) and returns the
// value to store. Returning an error aborts the update and leaves the
// stored value untouched.
type UpdateFunc func(current []byte) ([]byte, error)

// Updater is implemented by stores that can apply an UpdateFunc without
// another writer slipping in between the read and the write.
type Updater interface {
	Update(ctx context.Context, key string, fn UpdateFunc) error
}

// Update applies fn atomically when s implements Updater and falls back to
// a plain Get followed by Set otherwise. In the fallback the last writer
// wins.
func Update(ctx context.Context, s Store, key string, fn UpdateFunc) error {
	if u, ok := s.(Updater); ok {
		return u.Update(ctx, key, fn)
	}

	current, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	next, err := fn(current)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, next)
}
