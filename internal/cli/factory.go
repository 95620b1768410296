package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/devsession/internal/config"
	"github.com/aretw0/devsession/pkg/adapters/file"
	"github.com/aretw0/devsession/pkg/adapters/memory"
	"github.com/aretw0/devsession/pkg/adapters/redis"
	"github.com/aretw0/devsession/pkg/persistence/middleware"
	"github.com/aretw0/devsession/pkg/ports"
	"github.com/aretw0/devsession/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Service bundles a session cache with the store stack it runs on.
type Service struct {
	Cache *session.Cache
	// Store is the fully wrapped store the cache talks to.
	Store ports.KeyValueStore
	// Registry is nil when metrics are disabled.
	Registry *prometheus.Registry
	// Backend is the raw adapter, before middleware.
	Backend ports.KeyValueStore

	closers []func() error
}

// Open builds the store stack described by cfg and a cache on top of it.
func Open(cfg *config.Config, logger *slog.Logger) (*Service, error) {
	svc := &Service{}

	switch cfg.Store.Backend {
	case config.BackendMemory:
		svc.Backend = memory.NewStore(memory.WithMaxEntries(cfg.Store.MaxEntries))
	case config.BackendRedis:
		rs := redis.New(cfg.Store.Redis.Addr, cfg.Store.Redis.Password, cfg.Store.Redis.DB,
			redis.WithPrefix(cfg.Store.Redis.Prefix),
			redis.WithTTL(cfg.Store.Redis.TTL),
		)
		svc.Backend = rs
		svc.closers = append(svc.closers, rs.Close)
	case config.BackendFile:
		svc.Backend = file.New(cfg.Store.File.Dir)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	var mws []middleware.Middleware
	if cfg.Metrics.Enabled {
		svc.Registry = prometheus.NewRegistry()
		svc.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		mws = append(mws, middleware.NewMetricsMiddleware(middleware.NewMetrics(svc.Registry)))
	}

	keys, err := cfg.Encryption.Keys()
	if err != nil {
		_ = svc.Close()
		return nil, err
	}
	if keys != nil {
		mws = append(mws, middleware.NewEncryptionMiddleware(*keys))
	}

	svc.Store = middleware.Chain(mws...)(svc.Backend)

	svc.Cache, err = session.New(
		session.Config{Store: svc.Store, Namespace: cfg.Namespace},
		session.WithLogger(logger),
	)
	if err != nil {
		_ = svc.Close()
		return nil, err
	}

	logger.Debug("Session cache ready",
		"backend", cfg.Store.Backend,
		"namespace", svc.Cache.Namespace(),
		"encrypted", keys != nil,
		"metrics", cfg.Metrics.Enabled,
	)
	return svc, nil
}

// Close releases backend connections.
func (s *Service) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c())
	}
	s.closers = nil
	return errors.Join(errs...)
}
