package memory

import (
	"container/list"
	"context"
	"strings"
	"sync"

	"github.com/aretw0/devsession/pkg/domain"
)

// Store implements ports.KeyValueStore in memory.
// Safe for concurrent use.
type Store struct {
	mu         sync.RWMutex
	data       map[string]*list.Element
	order      *list.List // front = most recently written
	maxEntries int
}

type item struct {
	key   string
	value []byte
}

// Option configures the Store.
type Option func(*Store)

// WithMaxEntries bounds the store to n keys. When a write exceeds the bound, the
// least recently written key is evicted. Zero means unbounded.
func WithMaxEntries(n int) Option {
	return func(s *Store) {
		s.maxEntries = n
	}
}

// NewStore creates a new in-memory store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		data:  make(map[string]*list.Element),
		order: list.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read retrieves a copy of the value so callers can't mutate store state.
func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	el, ok := s.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte{}, el.Value.(*item).value...), nil
}

// Write stores a copy of value under key.
func (s *Store) Write(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	copied := append([]byte{}, value...)

	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.data[key]; ok {
		el.Value.(*item).value = copied
		s.order.MoveToFront(el)
		return nil
	}

	s.data[key] = s.order.PushFront(&item{key: key, value: copied})
	if s.maxEntries > 0 && s.order.Len() > s.maxEntries {
		oldest := s.order.Back()
		s.order.Remove(oldest)
		delete(s.data, oldest.Value.(*item).key)
	}
	return nil
}

// Delete removes the key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.data[key]; ok {
		s.order.Remove(el)
		delete(s.data, key)
	}
	return nil
}

// Keys returns the stored keys starting with prefix.
func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
