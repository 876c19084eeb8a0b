package models

import (
	"time"

	"github.com/golang-jwt/jwt"
)

// Loyalty tiers derived from accumulated points.
const (
	TierBronze   = "Bronze"
	TierSilver   = "Silver"
	TierGold     = "Gold"
	TierPlatinum = "Platinum"
)

// LoyaltyTier maps a point total to a tier name.
func LoyaltyTier(points int) string {
	switch {
	case points >= 5000:
		return TierPlatinum
	case points >= 2000:
		return TierGold
	case points >= 500:
		return TierSilver
	default:
		return TierBronze
	}
}

// Account is the persisted user row.
type Account struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email,omitempty"`
	Password  string     `json:"password,omitempty"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Profile is the client-facing user document kept in the state store under
// the currentUser key. LoyaltyLevel is recomputed from Points before the
// document is handed out.
type Profile struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	CityID       int    `json:"city_id,omitempty"`
	Points       int    `json:"points"`
	LoyaltyLevel string `json:"loyalty_level"`
}

// DefaultProfile is the record persisted when the stored profile is missing
// or unreadable. New users start with a welcome bonus.
func DefaultProfile(id int, name, phone string) Profile {
	const welcomePoints = 1000
	return Profile{
		ID:           id,
		Name:         name,
		Phone:        phone,
		Points:       welcomePoints,
		LoyaltyLevel: LoyaltyTier(welcomePoints),
	}
}

type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Session struct {
	UserID       int       `json:"user_id"`
	Role         string    `json:"role"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type SignUpRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Code     string `json:"code"`
}

type SignInRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}
