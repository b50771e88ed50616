// Package provider defines the storage abstraction used by localstorage.
//
// Implementations MUST be transparent: GetItem must return exactly the text
// previously passed to SetItem for a key (no prepended/appended metadata, no
// re-encoding). If a store performs internal transforms (e.g. compression),
// they MUST be fully reversed.
//
// Concrete backends live in subpackages (memory, bolt, redis, bigcache,
// ristretto). Backends that own resources expose Close; it is not part of
// the contract because the service never owns its provider.
package provider

import "context"

// Provider is a string-keyed, string-valued store.
type Provider interface {
	// GetItem returns (text, true, nil) on hit; ("", false, nil) on miss.
	// If an IO/remote error happens, return ("", false, err).
	GetItem(ctx context.Context, key string) (string, bool, error)

	// SetItem stores text under key, replacing any previous entry.
	SetItem(ctx context.Context, key, text string) error

	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(ctx context.Context, key string) error

	// Clear deletes every entry.
	Clear(ctx context.Context) error

	// Length returns the number of stored entries.
	Length(ctx context.Context) (int, error)

	// Key returns the key at index; ("", false, nil) when index is out of
	// range. Ordering is backend-defined but stable while the store is not
	// mutated.
	Key(ctx context.Context, index int) (string, bool, error)
}
