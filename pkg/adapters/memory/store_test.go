package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/devsession/pkg/adapters/memory"
	"github.com/aretw0/devsession/pkg/domain"
	"github.com/aretw0/devsession/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunKeyValueStoreContract(t, store)
}

func TestMemoryStore_Eviction(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(memory.WithMaxEntries(3))

	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, store.Write(ctx, k, []byte(k)))
	}

	// Rewriting "a" makes "b" the least recently written key.
	require.NoError(t, store.Write(ctx, "a", []byte("a2")))
	require.NoError(t, store.Write(ctx, "d", []byte("d")))

	assert.Equal(t, 3, store.Len())
	_, err := store.Read(ctx, "b")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	v, err := store.Read(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a2", string(v))
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := memory.NewStore()
	_, err := store.Read(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Write(ctx, "k", []byte("v")), context.Canceled)
}
