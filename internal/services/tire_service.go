package services

import (
	"context"

	"shinaBack/internal/catalog"
	"shinaBack/internal/models"
)

// TireService fronts the Directus tire catalog.
type TireService struct {
	Catalog *catalog.DirectusClient
}

func (s *TireService) GetTires(ctx context.Context, f models.TireFilter) ([]models.Tire, error) {
	return s.Catalog.ListTires(ctx, f)
}

func (s *TireService) GetTireByID(ctx context.Context, id string) (models.Tire, error) {
	return s.Catalog.GetTire(ctx, id)
}

func (s *TireService) GetTireByArticle(ctx context.Context, article string) (models.Tire, error) {
	return s.Catalog.TireByArticle(ctx, article)
}

func (s *TireService) GetBrands(ctx context.Context) ([]string, error) {
	return s.Catalog.TireBrands(ctx)
}

func (s *TireService) GetDimensions(ctx context.Context) (models.DimensionSet, error) {
	return s.Catalog.Dimensions(ctx)
}

func (s *TireService) GetSeasonValues(ctx context.Context) ([]string, error) {
	return s.Catalog.SeasonValues(ctx)
}
