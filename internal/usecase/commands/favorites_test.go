//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cusco-tours/internal/infra/kvstore"
	"cusco-tours/internal/usecase/commands"
	"cusco-tours/internal/usecase/queries"
)

func TestToggleFavorite(t *testing.T) {
	ctx := context.Background()

	setup := func() (commands.FavoritesCommands, queries.FavoritesQueries, uuid.UUID) {
		store := kvstore.NewMemoryStore()
		return commands.NewFavoritesCommands(store), queries.NewFavoritesQueries(store), uuid.New()
	}

	t.Run("first toggle adds the tour", func(t *testing.T) {
		cmds, _, profileID := setup()

		favorites, err := cmds.ToggleFavorite(ctx, profileID, 7)
		require.NoError(t, err)
		assert.Equal(t, []int64{7}, favorites)
	})

	t.Run("second toggle removes it again", func(t *testing.T) {
		cmds, _, profileID := setup()

		_, err := cmds.ToggleFavorite(ctx, profileID, 7)
		require.NoError(t, err)
		favorites, err := cmds.ToggleFavorite(ctx, profileID, 7)
		require.NoError(t, err)

		assert.Empty(t, favorites)
	})

	t.Run("toggling one tour leaves the others", func(t *testing.T) {
		cmds, _, profileID := setup()

		_, err := cmds.ToggleFavorite(ctx, profileID, 1)
		require.NoError(t, err)
		_, err = cmds.ToggleFavorite(ctx, profileID, 2)
		require.NoError(t, err)
		favorites, err := cmds.ToggleFavorite(ctx, profileID, 1)
		require.NoError(t, err)

		assert.Equal(t, []int64{2}, favorites)
	})

	t.Run("the list survives via the store", func(t *testing.T) {
		cmds, favQueries, profileID := setup()

		_, err := cmds.ToggleFavorite(ctx, profileID, 5)
		require.NoError(t, err)

		favorites, err := favQueries.ListFavorites(ctx, profileID)
		require.NoError(t, err)
		assert.Equal(t, []int64{5}, favorites)
	})

	t.Run("listing with nothing stored yields an empty list", func(t *testing.T) {
		_, favQueries, profileID := setup()

		favorites, err := favQueries.ListFavorites(ctx, profileID)
		require.NoError(t, err)
		assert.NotNil(t, favorites)
		assert.Empty(t, favorites)
	})
}
