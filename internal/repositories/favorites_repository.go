package repositories

import (
	"context"

	"github.com/redis/go-redis/v9"

	"shinaBack/internal/models"
)

type FavoritesRepository struct {
	RDB *redis.Client
}

func (r *FavoritesRepository) Get(ctx context.Context, userID int) ([]models.FavoriteItem, error) {
	items := make([]models.FavoriteItem, 0)
	if _, err := getDoc(ctx, r.RDB, stateKey(keyFavorites, userID), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *FavoritesRepository) Save(ctx context.Context, userID int, items []models.FavoriteItem) error {
	if items == nil {
		items = make([]models.FavoriteItem, 0)
	}
	return setDoc(ctx, r.RDB, stateKey(keyFavorites, userID), items)
}
