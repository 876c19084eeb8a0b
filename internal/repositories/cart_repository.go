package repositories

import (
	"context"

	"github.com/redis/go-redis/v9"

	"shinaBack/internal/models"
)

type CartRepository struct {
	RDB *redis.Client
}

// Get returns the user's cart; absent or unreadable documents come back as
// an empty cart.
func (r *CartRepository) Get(ctx context.Context, userID int) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0)
	if _, err := getDoc(ctx, r.RDB, stateKey(keyCart, userID), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartRepository) Save(ctx context.Context, userID int, items []models.CartItem) error {
	if items == nil {
		items = make([]models.CartItem, 0)
	}
	return setDoc(ctx, r.RDB, stateKey(keyCart, userID), items)
}

func (r *CartRepository) Clear(ctx context.Context, userID int) error {
	return r.Save(ctx, userID, nil)
}
