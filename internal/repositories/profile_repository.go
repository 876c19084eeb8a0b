package repositories

import (
	"context"

	"github.com/redis/go-redis/v9"

	"shinaBack/internal/models"
)

// ProfileRepository keeps the client-facing user document and the per-user
// city selection.
type ProfileRepository struct {
	RDB *redis.Client
}

func (r *ProfileRepository) Get(ctx context.Context, userID int) (models.Profile, bool, error) {
	var profile models.Profile
	found, err := getDoc(ctx, r.RDB, stateKey(keyCurrentUser, userID), &profile)
	if err != nil {
		return models.Profile{}, false, err
	}
	return profile, found, nil
}

func (r *ProfileRepository) Save(ctx context.Context, userID int, profile models.Profile) error {
	return setDoc(ctx, r.RDB, stateKey(keyCurrentUser, userID), profile)
}

func (r *ProfileRepository) GetSelectedCity(ctx context.Context, userID int) (models.SelectedCity, bool, error) {
	var city models.SelectedCity
	found, err := getDoc(ctx, r.RDB, stateKey(keySelectedCity, userID), &city)
	if err != nil {
		return models.SelectedCity{}, false, err
	}
	return city, found, nil
}

func (r *ProfileRepository) SaveSelectedCity(ctx context.Context, userID int, city models.SelectedCity) error {
	return setDoc(ctx, r.RDB, stateKey(keySelectedCity, userID), city)
}
