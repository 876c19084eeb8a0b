package services

import (
	"context"

	"shinaBack/internal/catalog"
	"shinaBack/internal/models"
)

// FitmentService answers vehicle fitment lookups.
type FitmentService struct {
	Catalog *catalog.TirebaseClient
}

func (s *FitmentService) GetBrands(ctx context.Context) ([]models.BrandRef, error) {
	return s.Catalog.Brands(ctx)
}

func (s *FitmentService) GetModels(ctx context.Context, brandSlug string) ([]models.ModelRef, error) {
	return s.Catalog.Models(ctx, brandSlug)
}

func (s *FitmentService) GetFitment(ctx context.Context, brandSlug, modelSlug string, year int) (models.VehicleFitmentRecord, error) {
	return s.Catalog.Fitment(ctx, brandSlug, modelSlug, year)
}
