package services

import (
	"context"
	"errors"
	"testing"

	"shinaBack/internal/models"
)

type memoryProfileStore struct {
	profiles map[int]models.Profile
}

func newMemoryProfileStore() *memoryProfileStore {
	return &memoryProfileStore{profiles: make(map[int]models.Profile)}
}

func (m *memoryProfileStore) Get(ctx context.Context, userID int) (models.Profile, bool, error) {
	p, ok := m.profiles[userID]
	return p, ok, nil
}

func (m *memoryProfileStore) Save(ctx context.Context, userID int, profile models.Profile) error {
	m.profiles[userID] = profile
	return nil
}

type stubAccounts struct {
	accounts map[int]models.Account
}

func (s *stubAccounts) CreateUser(ctx context.Context, user models.Account) (models.Account, error) {
	user.ID = len(s.accounts) + 1
	s.accounts[user.ID] = user
	return user, nil
}

func (s *stubAccounts) GetUserByID(ctx context.Context, id int) (models.Account, error) {
	a, ok := s.accounts[id]
	if !ok {
		return models.Account{}, models.ErrUserNotFound
	}
	return a, nil
}

func (s *stubAccounts) GetUserByPhone(ctx context.Context, phone string) (models.Account, error) {
	for _, a := range s.accounts {
		if a.Phone == phone {
			return a, nil
		}
	}
	return models.Account{}, models.ErrUserNotFound
}

func (s *stubAccounts) UpdateUser(ctx context.Context, user models.Account) error { return nil }

func (s *stubAccounts) SaveSession(ctx context.Context, session models.Session) error { return nil }

func (s *stubAccounts) DeleteSession(ctx context.Context, userID int) error { return nil }

func newUserService(profiles *memoryProfileStore, accounts *stubAccounts) *UserService {
	return &UserService{UserRepo: accounts, Profiles: profiles}
}

func TestGetProfileBootstrapsDefault(t *testing.T) {
	accounts := &stubAccounts{accounts: map[int]models.Account{
		4: {ID: 4, Name: "Ivan", Phone: "+77010000000"},
	}}
	profiles := newMemoryProfileStore()
	svc := newUserService(profiles, accounts)

	profile, err := svc.GetProfile(context.Background(), 4)
	if err != nil {
		t.Fatalf("GetProfile error: %v", err)
	}
	if profile.Points != 1000 {
		t.Errorf("Points = %d; want the welcome bonus of 1000", profile.Points)
	}
	if profile.LoyaltyLevel != models.TierSilver {
		t.Errorf("LoyaltyLevel = %q; want %q", profile.LoyaltyLevel, models.TierSilver)
	}
	if _, ok := profiles.profiles[4]; !ok {
		t.Error("bootstrapped profile was not persisted")
	}
}

func TestGetProfileRecomputesTier(t *testing.T) {
	profiles := newMemoryProfileStore()
	profiles.profiles[1] = models.Profile{ID: 1, Points: 6000, LoyaltyLevel: models.TierBronze}
	svc := newUserService(profiles, &stubAccounts{accounts: map[int]models.Account{}})

	profile, err := svc.GetProfile(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetProfile error: %v", err)
	}
	if profile.LoyaltyLevel != models.TierPlatinum {
		t.Errorf("LoyaltyLevel = %q; want recomputed %q", profile.LoyaltyLevel, models.TierPlatinum)
	}
}

func TestAddAndDeductPoints(t *testing.T) {
	profiles := newMemoryProfileStore()
	profiles.profiles[1] = models.Profile{ID: 1, Points: 400}
	svc := newUserService(profiles, &stubAccounts{accounts: map[int]models.Account{}})
	ctx := context.Background()

	profile, err := svc.AddPoints(ctx, 1, 200)
	if err != nil {
		t.Fatalf("AddPoints error: %v", err)
	}
	if profile.Points != 600 {
		t.Errorf("Points = %d; want 600", profile.Points)
	}
	if profile.LoyaltyLevel != models.TierSilver {
		t.Errorf("LoyaltyLevel = %q; want %q after crossing 500", profile.LoyaltyLevel, models.TierSilver)
	}

	profile, err = svc.DeductPoints(ctx, 1, 100)
	if err != nil {
		t.Fatalf("DeductPoints error: %v", err)
	}
	if profile.Points != 500 {
		t.Errorf("Points = %d; want 500", profile.Points)
	}
}

func TestDeductPointsInsufficientBalance(t *testing.T) {
	profiles := newMemoryProfileStore()
	profiles.profiles[1] = models.Profile{ID: 1, Points: 300}
	svc := newUserService(profiles, &stubAccounts{accounts: map[int]models.Account{}})

	_, err := svc.DeductPoints(context.Background(), 1, 301)
	if !errors.Is(err, models.ErrInsufficientPoints) {
		t.Fatalf("err = %v; want ErrInsufficientPoints", err)
	}
	if profiles.profiles[1].Points != 300 {
		t.Errorf("Points = %d; balance must not change on a failed deduction", profiles.profiles[1].Points)
	}
}
