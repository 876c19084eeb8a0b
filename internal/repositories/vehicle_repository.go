package repositories

import (
	"context"

	"github.com/redis/go-redis/v9"

	"shinaBack/internal/models"
)

type VehicleRepository struct {
	RDB *redis.Client
}

func (r *VehicleRepository) Get(ctx context.Context, userID int) ([]models.Vehicle, error) {
	cars := make([]models.Vehicle, 0)
	if _, err := getDoc(ctx, r.RDB, stateKey(keyUserCars, userID), &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *VehicleRepository) Save(ctx context.Context, userID int, cars []models.Vehicle) error {
	if cars == nil {
		cars = make([]models.Vehicle, 0)
	}
	return setDoc(ctx, r.RDB, stateKey(keyUserCars, userID), cars)
}
