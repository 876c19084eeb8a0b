package repositories

import (
	"context"
	"database/sql"
	"errors"

	"shinaBack/internal/models"
)

type CityRepository struct {
	DB *sql.DB
}

func (r *CityRepository) GetCities(ctx context.Context) ([]models.City, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, slug FROM cities ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []models.City
	for rows.Next() {
		var city models.City
		if err := rows.Scan(&city.ID, &city.Name, &city.Slug); err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}
	return cities, rows.Err()
}

func (r *CityRepository) GetCityByID(ctx context.Context, id int) (models.City, error) {
	var city models.City
	query := `SELECT id, name, slug FROM cities WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&city.ID, &city.Name, &city.Slug)
	if errors.Is(err, sql.ErrNoRows) {
		return models.City{}, models.ErrCityNotFound
	}
	return city, err
}
