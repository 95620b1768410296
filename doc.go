/*
Package devsession caches the transport sessions each device currently holds.

A sync server keeps, per device, a list of opaque session descriptors so it can
answer "which sessions is this device part of?" without querying the transport
layer. The cache is a thin accessor over a key-value store: entries are read and
written whole, keyed by device, with no merge and no locking. Concurrent writers
for one device resolve last-writer-wins at the store.

# Packages

  - pkg/session: the Cache accessor (Get, Put, Devices).
  - pkg/domain: device identifiers, cache entries and sentinel errors.
  - pkg/ports: the KeyValueStore port and its conformance suite.
  - pkg/adapters: memory, file and Redis stores.
  - pkg/persistence/middleware: encryption and Prometheus metrics decorators.

# Usage

	store := memory.NewStore()
	cache, err := session.New(session.Config{Store: store})
	if err != nil {
		log.Fatal(err)
	}

	entry, err := cache.Get(ctx, "device-1")
	// entry.Sessions is empty when nothing was cached yet.

	_, err = cache.Put(ctx, "device-1", domain.NewEntry(
		domain.SessionDescriptor(`{"id":"s1"}`),
	))

A store outage surfaces as an error matching domain.ErrStoreUnavailable, while a
device that was never cached is not an error.

The devsession command (cmd/devsession) exposes the same operations on the
command line and over HTTP.
*/
package devsession
