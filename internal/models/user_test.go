package models

import "testing"

func TestLoyaltyTier(t *testing.T) {
	tests := []struct {
		points int
		want   string
	}{
		{0, TierBronze},
		{499, TierBronze},
		{500, TierSilver},
		{1999, TierSilver},
		{2000, TierGold},
		{4999, TierGold},
		{5000, TierPlatinum},
		{12000, TierPlatinum},
	}
	for _, tt := range tests {
		if got := LoyaltyTier(tt.points); got != tt.want {
			t.Errorf("LoyaltyTier(%d) = %q; want %q", tt.points, got, tt.want)
		}
	}
}

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile(3, "Ivan", "+77010000000")
	if p.Points != 1000 {
		t.Errorf("Points = %d; want the welcome bonus of 1000", p.Points)
	}
	if p.LoyaltyLevel != TierSilver {
		t.Errorf("LoyaltyLevel = %q; want %q", p.LoyaltyLevel, TierSilver)
	}
	if p.ID != 3 || p.Name != "Ivan" || p.Phone != "+77010000000" {
		t.Errorf("unexpected profile: %+v", p)
	}
}
