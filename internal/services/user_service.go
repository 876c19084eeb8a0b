package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/rand"

	"shinaBack/internal/events"
	"shinaBack/internal/models"
	"shinaBack/utils"
)

// UserAccounts is the persisted account store.
type UserAccounts interface {
	CreateUser(ctx context.Context, user models.Account) (models.Account, error)
	GetUserByID(ctx context.Context, id int) (models.Account, error)
	GetUserByPhone(ctx context.Context, phone string) (models.Account, error)
	UpdateUser(ctx context.Context, user models.Account) error
	SaveSession(ctx context.Context, session models.Session) error
	DeleteSession(ctx context.Context, userID int) error
}

// ProfileStore keeps the client-facing user document.
type ProfileStore interface {
	Get(ctx context.Context, userID int) (models.Profile, bool, error)
	Save(ctx context.Context, userID int, profile models.Profile) error
}

// VerificationCodeStore keeps one-time SMS codes with expiry.
type VerificationCodeStore interface {
	SaveCode(ctx context.Context, phone, code string) error
	CheckCode(ctx context.Context, phone, code string) error
}

type UserService struct {
	UserRepo UserAccounts
	Profiles ProfileStore
	Codes    VerificationCodeStore
	Tokens   *utils.TokenManager
	Bus      *events.Bus
}

// RequestCode issues a fresh SMS verification code for the phone number.
// The SMS gateway call is out of process; the code is logged for the
// operator console.
func (s *UserService) RequestCode(ctx context.Context, phone string) error {
	code := fmt.Sprintf("%04d", rand.Intn(10000))
	if err := s.Codes.SaveCode(ctx, phone, code); err != nil {
		return err
	}
	log.Printf("verification code for %s: %s", phone, code)
	return nil
}

// SignUp registers a new account after checking the SMS code, bootstraps the
// client profile and issues a token pair.
func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (models.Profile, models.Tokens, error) {
	if err := s.Codes.CheckCode(ctx, req.Phone, req.Code); err != nil {
		return models.Profile{}, models.Tokens{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Profile{}, models.Tokens{}, err
	}

	account, err := s.UserRepo.CreateUser(ctx, models.Account{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: string(hash),
		Role:     "user",
	})
	if err != nil {
		return models.Profile{}, models.Tokens{}, err
	}

	profile := models.DefaultProfile(account.ID, account.Name, account.Phone)
	if err := s.Profiles.Save(ctx, account.ID, profile); err != nil {
		return models.Profile{}, models.Tokens{}, err
	}

	tokens, err := s.issueTokens(ctx, account.ID, account.Role)
	return profile, tokens, err
}

// SignIn checks credentials and issues a token pair.
func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.Profile, models.Tokens, error) {
	account, err := s.UserRepo.GetUserByPhone(ctx, req.Phone)
	if err != nil {
		return models.Profile{}, models.Tokens{}, models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return models.Profile{}, models.Tokens{}, models.ErrInvalidCredentials
	}

	profile, err := s.GetProfile(ctx, account.ID)
	if err != nil {
		return models.Profile{}, models.Tokens{}, err
	}

	tokens, err := s.issueTokens(ctx, account.ID, account.Role)
	return profile, tokens, err
}

func (s *UserService) issueTokens(ctx context.Context, userID int, role string) (models.Tokens, error) {
	access, err := s.Tokens.NewAccessToken(userID, role)
	if err != nil {
		return models.Tokens{}, err
	}
	refresh, err := s.Tokens.NewRefreshToken()
	if err != nil {
		return models.Tokens{}, err
	}
	session := models.Session{
		UserID:       userID,
		Role:         role,
		RefreshToken: refresh,
		ExpiresAt:    time.Now().Add(s.Tokens.RefreshTTL()),
	}
	if err := s.UserRepo.SaveSession(ctx, session); err != nil {
		return models.Tokens{}, err
	}
	return models.Tokens{AccessToken: access, RefreshToken: refresh}, nil
}

// GetProfile reads the client profile, bootstrapping the default document
// when the stored one is missing or unreadable.
func (s *UserService) GetProfile(ctx context.Context, userID int) (models.Profile, error) {
	profile, found, err := s.Profiles.Get(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}
	if !found {
		account, err := s.UserRepo.GetUserByID(ctx, userID)
		if err != nil {
			return models.Profile{}, err
		}
		profile = models.DefaultProfile(account.ID, account.Name, account.Phone)
		if err := s.Profiles.Save(ctx, userID, profile); err != nil {
			return models.Profile{}, err
		}
	}
	profile.LoyaltyLevel = models.LoyaltyTier(profile.Points)
	return profile, nil
}

// UpdateProfile applies editable fields and mirrors them onto the account
// row.
func (s *UserService) UpdateProfile(ctx context.Context, userID int, update models.Profile) (models.Profile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}

	if update.Name != "" {
		profile.Name = update.Name
	}
	if update.Email != "" {
		profile.Email = update.Email
	}
	if update.CityID != 0 {
		profile.CityID = update.CityID
	}

	if err := s.Profiles.Save(ctx, userID, profile); err != nil {
		return models.Profile{}, err
	}
	if err := s.UserRepo.UpdateUser(ctx, models.Account{ID: userID, Name: profile.Name, Email: profile.Email}); err != nil {
		log.Printf("user %d: account sync failed: %v", userID, err)
	}

	s.publish(userID, profile)
	return profile, nil
}

// AddPoints credits loyalty points unconditionally.
func (s *UserService) AddPoints(ctx context.Context, userID, points int) (models.Profile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}

	profile.Points += points
	profile.LoyaltyLevel = models.LoyaltyTier(profile.Points)
	if err := s.Profiles.Save(ctx, userID, profile); err != nil {
		return models.Profile{}, err
	}
	s.publish(userID, profile)
	return profile, nil
}

// DeductPoints debits loyalty points; insufficient balance fails without
// mutating the stored profile.
func (s *UserService) DeductPoints(ctx context.Context, userID, points int) (models.Profile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}
	if profile.Points < points {
		return models.Profile{}, models.ErrInsufficientPoints
	}

	profile.Points -= points
	profile.LoyaltyLevel = models.LoyaltyTier(profile.Points)
	if err := s.Profiles.Save(ctx, userID, profile); err != nil {
		return models.Profile{}, err
	}
	s.publish(userID, profile)
	return profile, nil
}

func (s *UserService) SignOut(ctx context.Context, userID int) error {
	return s.UserRepo.DeleteSession(ctx, userID)
}

func (s *UserService) publish(userID int, profile models.Profile) {
	if s.Bus == nil {
		return
	}
	s.Bus.Publish(events.Event{Topic: events.TopicUserUpdated, UserID: userID, Payload: profile})
}
