package kv

import "context"

// Entry is one key/value pair for SetMany.
type Entry struct {
	Key   string
	Value []byte
}

// Store is the backing key-value store.
type Store interface {
	// Get returns the value stored under key, or (nil, nil) if absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// SetMany stores every entry atomically.
	SetMany(ctx context.Context, entries ...Entry) error

	// Delete removes the given keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error

	// List returns every key/value pair.
	List(ctx context.Context) (map[string][]byte, error)
}
