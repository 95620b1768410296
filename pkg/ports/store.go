package ports

import (
	"context"
)

// KeyValueStore defines the interface of a backing cache store.
// Values are opaque bytes; expiration, eviction and replication are the store's own concern.
type KeyValueStore interface {
	// Read retrieves the value stored under key.
	// Returns domain.ErrNotFound if the key does not exist.
	Read(ctx context.Context, key string) ([]byte, error)

	// Write replaces the value stored under key.
	Write(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns the keys starting with prefix, in no particular order.
	Keys(ctx context.Context, prefix string) ([]string, error)
}
