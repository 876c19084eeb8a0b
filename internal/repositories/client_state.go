package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// State store key prefixes. One JSON document per user per collection,
// mirroring the storage keys the mobile client used locally.
const (
	keyCart         = "cart"
	keyFavorites    = "favorites"
	keyUserCars     = "userCars"
	keyCurrentUser  = "currentUser"
	keySelectedCity = "selectedCity"
	keyOrderDetails = "orderDetails"
)

func stateKey(prefix string, userID int) string {
	return fmt.Sprintf("%s:%d", prefix, userID)
}

// getDoc reads and unmarshals one state document. A missing key or a
// corrupted value both report found=false so callers fall back to the
// collection default; corruption is logged, never surfaced.
func getDoc(ctx context.Context, rdb *redis.Client, key string, out interface{}) (bool, error) {
	val, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		log.Printf("state: corrupted document at %s, resetting: %v", key, err)
		return false, nil
	}
	return true, nil
}

// setDoc marshals and writes one state document in a single SET. This is the
// whole write path: no multi-client locking, concurrent writers race just as
// concurrent browser tabs did.
func setDoc(ctx context.Context, rdb *redis.Client, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, data, 0).Err()
}
