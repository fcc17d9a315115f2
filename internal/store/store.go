// Package store provides the key/value storage areas the minigames persist into.
//
// Two areas exist: a persistent one backed by SQLite that survives restarts
// (scores), and volatile in-memory ones whose lifetime is bounded by a browser
// session (game state). Both implement Storage.
package store

import "context"

// Storage is a string key/value area with single-key atomic reads and writes.
type Storage interface {
	// GetItem returns the value for key. ok is false when the key is absent.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	// SetItem stores value under key, overwriting any previous value.
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
	// Clear removes every key in the area.
	Clear(ctx context.Context) error
	// Keys returns all keys in ascending order.
	Keys(ctx context.Context) ([]string, error)
}
