package store

import "context"

// Store is a string key-value store with last-write-wins semantics.
type Store interface {
	// Get returns the value for key and whether the key existed.
	// A missing key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
