package ports_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/aretw0/devsession/pkg/domain"
	"github.com/aretw0/devsession/pkg/ports"
)

// MockStore is a minimal map-backed KeyValueStore used to exercise the contract itself.
type MockStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMockStore() *MockStore {
	return &MockStore{data: make(map[string][]byte)}
}

func (m *MockStore) Read(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte{}, v...), nil
}

func (m *MockStore) Write(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	// Copy to simulate serialization
	m.data[key] = append([]byte{}, value...)
	return nil
}

func (m *MockStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MockStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func TestKeyValueStore_Contract(t *testing.T) {
	ports.RunKeyValueStoreContract(t, NewMockStore())
}
