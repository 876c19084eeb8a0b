package services

import (
	"context"

	"shinaBack/internal/events"
	"shinaBack/internal/models"
)

type CityDirectory interface {
	GetCities(ctx context.Context) ([]models.City, error)
	GetCityByID(ctx context.Context, id int) (models.City, error)
}

type SelectedCityStore interface {
	GetSelectedCity(ctx context.Context, userID int) (models.SelectedCity, bool, error)
	SaveSelectedCity(ctx context.Context, userID int, city models.SelectedCity) error
}

type CityService struct {
	Cities   CityDirectory
	Selected SelectedCityStore
	Bus      *events.Bus
}

func (s *CityService) GetCities(ctx context.Context) ([]models.City, error) {
	return s.Cities.GetCities(ctx)
}

func (s *CityService) GetCityByID(ctx context.Context, id int) (models.City, error) {
	return s.Cities.GetCityByID(ctx, id)
}

// GetSelected returns the user's stored city choice; the zero value means no
// choice has been made yet.
func (s *CityService) GetSelected(ctx context.Context, userID int) (models.SelectedCity, error) {
	city, _, err := s.Selected.GetSelectedCity(ctx, userID)
	return city, err
}

// SetSelected validates the city against the directory before storing it.
func (s *CityService) SetSelected(ctx context.Context, userID, cityID int) (models.SelectedCity, error) {
	city, err := s.Cities.GetCityByID(ctx, cityID)
	if err != nil {
		return models.SelectedCity{}, err
	}

	selected := models.SelectedCity{ID: city.ID, Name: city.Name}
	if err := s.Selected.SaveSelectedCity(ctx, userID, selected); err != nil {
		return models.SelectedCity{}, err
	}

	if s.Bus != nil {
		s.Bus.Publish(events.Event{Topic: events.TopicSelectedCityUpdated, UserID: userID, Payload: selected})
	}
	return selected, nil
}
