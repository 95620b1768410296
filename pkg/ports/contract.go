package ports

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/devsession/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunKeyValueStoreContract runs a suite of tests to verify that a KeyValueStore implementation
// adheres to the defined interface contract.
func RunKeyValueStoreContract(t *testing.T, store KeyValueStore) {
	ctx := context.Background()
	prefix := "contract-" + time.Now().Format("20060102150405") + ":"
	key := prefix + "device/42"

	t.Run("Read Non-Existent", func(t *testing.T) {
		_, err := store.Read(ctx, prefix+"missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Write and Read", func(t *testing.T) {
		value := []byte(`{"sessions":[{"id":"s1"}]}`)
		require.NoError(t, store.Write(ctx, key, value), "Write should not return error")

		loaded, err := store.Read(ctx, key)
		require.NoError(t, err, "Read should not return error")
		assert.Equal(t, value, loaded)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, key, []byte("first")))
		require.NoError(t, store.Write(ctx, key, []byte("second")))

		loaded, err := store.Read(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "second", string(loaded))
	})

	t.Run("Empty Value Is Not A Miss", func(t *testing.T) {
		emptyKey := prefix + "empty"
		require.NoError(t, store.Write(ctx, emptyKey, []byte{}))
		defer func() { _ = store.Delete(ctx, emptyKey) }()

		loaded, err := store.Read(ctx, emptyKey)
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})

	t.Run("Caller Mutation Does Not Leak", func(t *testing.T) {
		value := []byte("original")
		require.NoError(t, store.Write(ctx, key, value))
		value[0] = 'X'

		loaded, err := store.Read(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "original", string(loaded))

		loaded[0] = 'Y'
		again, err := store.Read(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "original", string(again))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, key, []byte("doomed")))

		require.NoError(t, store.Delete(ctx, key), "Delete should not return error")
		_, err := store.Read(ctx, key)
		assert.ErrorIs(t, err, domain.ErrNotFound, "Read after Delete should return ErrNotFound")

		assert.NoError(t, store.Delete(ctx, key), "Delete of a missing key should succeed")
	})

	t.Run("Keys", func(t *testing.T) {
		k1 := prefix + "list-1"
		k2 := prefix + "list-2"
		other := "other-" + prefix + "list-3"
		require.NoError(t, store.Write(ctx, k1, []byte("1")))
		require.NoError(t, store.Write(ctx, k2, []byte("2")))
		require.NoError(t, store.Write(ctx, other, []byte("3")))
		defer func() {
			_ = store.Delete(ctx, k1)
			_ = store.Delete(ctx, k2)
			_ = store.Delete(ctx, other)
		}()

		keys, err := store.Keys(ctx, prefix+"list-")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{k1, k2}, keys)
	})

	t.Run("Concurrent Writes Keep One Value", func(t *testing.T) {
		raceKey := prefix + "race"
		defer func() { _ = store.Delete(ctx, raceKey) }()

		const writers = 8
		candidates := make(map[string]bool, writers)
		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			value := fmt.Sprintf(`{"writer":%d}`, i)
			candidates[value] = true
			wg.Add(1)
			go func(v string) {
				defer wg.Done()
				assert.NoError(t, store.Write(ctx, raceKey, []byte(v)))
			}(value)
		}
		wg.Wait()

		loaded, err := store.Read(ctx, raceKey)
		require.NoError(t, err)
		assert.True(t, candidates[string(loaded)], "unexpected value %q", loaded)
	})
}
