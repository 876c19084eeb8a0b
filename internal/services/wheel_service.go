package services

import (
	"context"

	"shinaBack/internal/catalog"
	"shinaBack/internal/models"
)

// WheelService fronts the Tirebase wheel catalog.
type WheelService struct {
	Catalog *catalog.TirebaseClient
}

func (s *WheelService) GetWheels(ctx context.Context, f models.WheelFilter) ([]models.Wheel, error) {
	return s.Catalog.Wheels(ctx, f)
}

func (s *WheelService) GetWheelByID(ctx context.Context, id string) (models.Wheel, error) {
	return s.Catalog.GetWheel(ctx, id)
}
