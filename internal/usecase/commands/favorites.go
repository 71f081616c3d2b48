package commands

import (
	"context"

	"github.com/google/uuid"

	"cusco-tours/internal/infra/kvstore"
)

type FavoritesCommands interface {
	// ToggleFavorite adds the tour to the favorites list or removes it when
	// already present, and returns the resulting list.
	ToggleFavorite(ctx context.Context, profileID uuid.UUID, tourID int64) ([]int64, error)
}

type favoritesCommandsImpl struct {
	store kvstore.Store
}

func NewFavoritesCommands(store kvstore.Store) FavoritesCommands {
	return &favoritesCommandsImpl{store: store}
}

func (f *favoritesCommandsImpl) ToggleFavorite(ctx context.Context, profileID uuid.UUID, tourID int64) ([]int64, error) {
	var favorites []int64
	if _, err := f.store.Get(ctx, profileID, kvstore.SlotFavorites, &favorites); err != nil {
		return nil, err
	}

	kept := favorites[:0]
	removed := false
	for _, id := range favorites {
		if id == tourID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	favorites = kept
	if !removed {
		favorites = append(favorites, tourID)
	}
	if favorites == nil {
		favorites = []int64{}
	}

	if err := f.store.Set(ctx, profileID, kvstore.SlotFavorites, favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}
