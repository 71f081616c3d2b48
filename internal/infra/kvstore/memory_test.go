//go:build unit

package kvstore_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cusco-tours/internal/infra"
	"cusco-tours/internal/infra/kvstore"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()

	t.Run("get on a missing slot reports absent and leaves dest untouched", func(t *testing.T) {
		store := kvstore.NewMemoryStore()

		dest := []int64{42}
		found, err := store.Get(ctx, profileID, kvstore.SlotFavorites, &dest)

		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, []int64{42}, dest)
	})

	t.Run("set then get round-trips the value", func(t *testing.T) {
		store := kvstore.NewMemoryStore()

		require.NoError(t, store.Set(ctx, profileID, kvstore.SlotFavorites, []int64{1, 2, 3}))

		var dest []int64
		found, err := store.Get(ctx, profileID, kvstore.SlotFavorites, &dest)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []int64{1, 2, 3}, dest)
	})

	t.Run("set replaces the previous value wholesale", func(t *testing.T) {
		store := kvstore.NewMemoryStore()

		require.NoError(t, store.Set(ctx, profileID, kvstore.SlotFavorites, []int64{1, 2}))
		require.NoError(t, store.Set(ctx, profileID, kvstore.SlotFavorites, []int64{9}))

		var dest []int64
		_, err := store.Get(ctx, profileID, kvstore.SlotFavorites, &dest)
		require.NoError(t, err)
		assert.Equal(t, []int64{9}, dest)
	})

	t.Run("slots are isolated per profile", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		other := uuid.New()

		require.NoError(t, store.Set(ctx, profileID, kvstore.SlotFavorites, []int64{1}))

		var dest []int64
		found, err := store.Get(ctx, other, kvstore.SlotFavorites, &dest)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("remove deletes the slot and tolerates absent slots", func(t *testing.T) {
		store := kvstore.NewMemoryStore()

		require.NoError(t, store.Set(ctx, profileID, kvstore.SlotUser, map[string]string{"name": "Ana"}))
		require.NoError(t, store.Remove(ctx, profileID, kvstore.SlotUser))
		require.NoError(t, store.Remove(ctx, profileID, kvstore.SlotUser))

		var dest map[string]string
		found, err := store.Get(ctx, profileID, kvstore.SlotUser, &dest)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("failed writes surface as storage failures", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		store.FailWrites = true

		err := store.Set(ctx, profileID, kvstore.SlotCart, []int64{1})
		assert.True(t, infra.IsKind(err, infra.KindStorageFailure))

		err = store.Remove(ctx, profileID, kvstore.SlotCart)
		assert.True(t, infra.IsKind(err, infra.KindStorageFailure))
	})
}
