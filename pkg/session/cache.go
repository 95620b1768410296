package session

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/aretw0/devsession/internal/logging"
	"github.com/aretw0/devsession/pkg/domain"
	"github.com/aretw0/devsession/pkg/ports"
)

// DefaultNamespace prefixes cache keys when Config.Namespace is empty.
const DefaultNamespace = "sessions"

// Config is the explicit configuration of a Cache.
type Config struct {
	// Store is the backing key-value store. Required.
	Store ports.KeyValueStore
	// Namespace separates session entries from other data in a shared store.
	Namespace string
}

// Cache reads and writes per-device session entries.
// It holds no mutable state and is safe for concurrent use; concurrent writes for the
// same device are resolved by the store (last writer wins).
type Cache struct {
	store     ports.KeyValueStore
	namespace string
	codec     Codec
	logger    *slog.Logger
}

// Option configures the Cache.
type Option func(*Cache)

// WithLogger configures a logger for the Cache.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// WithCodec replaces the default JSON codec.
func WithCodec(codec Codec) Option {
	return func(c *Cache) {
		c.codec = codec
	}
}

// New creates a Cache over the configured store.
func New(cfg Config, opts ...Option) (*Cache, error) {
	if cfg.Store == nil {
		return nil, ErrNilStore
	}
	c := &Cache{
		store:     cfg.Store,
		namespace: cfg.Namespace,
		codec:     JSONCodec{},
		logger:    logging.NewNop(),
	}
	if c.namespace == "" {
		c.namespace = DefaultNamespace
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Namespace returns the key namespace of the cache.
func (c *Cache) Namespace() string {
	return c.namespace
}

// Key returns the store key holding the entry of a device.
func (c *Cache) Key(id domain.DeviceID) string {
	return c.keyPrefix() + string(id)
}

func (c *Cache) keyPrefix() string {
	return c.namespace + ":"
}

// Get returns the cached entry of a device.
// A device with no cached entry yields an empty entry and a nil error.
func (c *Cache) Get(ctx context.Context, id domain.DeviceID) (domain.Entry, error) {
	c.logger.Debug("Fetching session data from cache", "device_id", id)

	data, err := c.store.Read(ctx, c.Key(id))
	if errors.Is(err, domain.ErrNotFound) {
		return domain.EmptyEntry(), nil
	}
	if err != nil {
		return domain.Entry{}, c.fail("get", id, err)
	}

	entry, err := c.codec.Unmarshal(data)
	if err != nil {
		return domain.Entry{}, c.fail("get", id, err)
	}
	return entry, nil
}

// Put replaces the cached entry of a device and returns the entry that was written.
func (c *Cache) Put(ctx context.Context, id domain.DeviceID, entry domain.Entry) (domain.Entry, error) {
	c.logger.Debug("Pushing session data to cache", "device_id", id, "sessions", entry.Len())

	data, err := c.codec.Marshal(entry)
	if err != nil {
		return domain.Entry{}, c.fail("put", id, err)
	}
	if err := c.store.Write(ctx, c.Key(id), data); err != nil {
		return domain.Entry{}, c.fail("put", id, err)
	}
	return entry, nil
}

// Devices lists the devices with a cached entry, sorted.
func (c *Cache) Devices(ctx context.Context) ([]domain.DeviceID, error) {
	keys, err := c.store.Keys(ctx, c.keyPrefix())
	if err != nil {
		return nil, c.fail("list", "", err)
	}

	ids := make([]domain.DeviceID, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, domain.DeviceID(strings.TrimPrefix(k, c.keyPrefix())))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (c *Cache) fail(op string, id domain.DeviceID, err error) error {
	c.logger.Warn("Session store operation failed", "op", op, "device_id", id, "err", err)
	return &StoreError{Op: op, DeviceID: id, Err: err}
}
