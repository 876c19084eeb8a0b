package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"shinaBack/internal/models"
)

// codeTTL bounds how long an SMS verification code stays valid.
const codeTTL = 5 * time.Minute

// VerificationRepository stores one-time SMS codes with an explicit expiry.
type VerificationRepository struct {
	RDB *redis.Client
}

func verifyKey(phone string) string {
	return fmt.Sprintf("verify:%s", phone)
}

func (r *VerificationRepository) SaveCode(ctx context.Context, phone, code string) error {
	return r.RDB.Set(ctx, verifyKey(phone), code, codeTTL).Err()
}

// CheckCode compares the submitted code against the stored one. A match
// consumes the code; a missing key reports expiry.
func (r *VerificationRepository) CheckCode(ctx context.Context, phone, code string) error {
	stored, err := r.RDB.Get(ctx, verifyKey(phone)).Result()
	if err == redis.Nil {
		return models.ErrCodeExpired
	}
	if err != nil {
		return err
	}
	if stored != code {
		return models.ErrCodeMismatch
	}
	return r.RDB.Del(ctx, verifyKey(phone)).Err()
}
