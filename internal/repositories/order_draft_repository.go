package repositories

import (
	"context"

	"github.com/redis/go-redis/v9"

	"shinaBack/internal/models"
)

// OrderDraftRepository keeps the checkout draft a user fills in before
// placing the order.
type OrderDraftRepository struct {
	RDB *redis.Client
}

func (r *OrderDraftRepository) Get(ctx context.Context, userID int) (models.OrderDetails, error) {
	var details models.OrderDetails
	if _, err := getDoc(ctx, r.RDB, stateKey(keyOrderDetails, userID), &details); err != nil {
		return models.OrderDetails{}, err
	}
	return details, nil
}

func (r *OrderDraftRepository) Save(ctx context.Context, userID int, details models.OrderDetails) error {
	return setDoc(ctx, r.RDB, stateKey(keyOrderDetails, userID), details)
}

func (r *OrderDraftRepository) Clear(ctx context.Context, userID int) error {
	return r.RDB.Del(ctx, stateKey(keyOrderDetails, userID)).Err()
}
