package credstore

import "context"

// Store is the key-value contract for persisting opaque session tokens.
// All operations are fallible; policy for failures (fail-open on Get,
// log-and-continue on Set/Remove) belongs to the caller, not the adapter.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the value stored under key. Removing a missing key
	// is not an error.
	Remove(ctx context.Context, key string) error
}
