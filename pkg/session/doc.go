/*
Package session implements the device session cache accessor.

A Cache reads and writes the set of active transport sessions of a device in a backing
key-value store. It is a stateless pass-through: it derives the key, encodes the entry and
performs one store round trip per call. Expiration, eviction and consistency belong to the
store.

A lookup for a device that was never written returns an empty entry, not an error. Only a
failing store produces an error, and that error always matches domain.ErrStoreUnavailable:

	entry, err := cache.Get(ctx, "device-42")
	if errors.Is(err, domain.ErrStoreUnavailable) {
		// retry or back off; do not treat as "no sessions"
	}
*/
package session
