package queries

import (
	"context"

	"github.com/google/uuid"

	"cusco-tours/internal/infra/kvstore"
)

type FavoritesQueries interface {
	ListFavorites(ctx context.Context, profileID uuid.UUID) ([]int64, error)
}

type favoritesQueriesImpl struct {
	store kvstore.Store
}

func NewFavoritesQueries(store kvstore.Store) FavoritesQueries {
	return &favoritesQueriesImpl{store: store}
}

func (q *favoritesQueriesImpl) ListFavorites(ctx context.Context, profileID uuid.UUID) ([]int64, error) {
	var favorites []int64
	if _, err := q.store.Get(ctx, profileID, kvstore.SlotFavorites, &favorites); err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []int64{}
	}
	return favorites, nil
}
