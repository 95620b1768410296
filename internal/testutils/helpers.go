package testutils

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/devsession/pkg/adapters/redis"
	backend "github.com/redis/go-redis/v9"
)

// ErrBackendDown is returned by every DownStore operation.
var ErrBackendDown = errors.New("connection refused")

// DownStore rejects every operation like an unreachable backend.
type DownStore struct{}

func (DownStore) Read(context.Context, string) ([]byte, error) { return nil, ErrBackendDown }
func (DownStore) Write(context.Context, string, []byte) error { return ErrBackendDown }
func (DownStore) Delete(context.Context, string) error { return ErrBackendDown }
func (DownStore) Keys(context.Context, string) ([]string, error) { return nil, ErrBackendDown }

// SetupRedisStore starts an in-process Redis server and returns a store connected to it.
// The client does not retry, so closing the server makes the next call fail immediately.
// Both are shut down when the test ends.
func SetupRedisStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr(), MaxRetries: -1})
	store := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = store.Close() })

	return store, mr
}
