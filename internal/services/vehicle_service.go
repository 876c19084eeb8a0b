package services

import (
	"context"

	"github.com/google/uuid"

	"shinaBack/internal/events"
	"shinaBack/internal/models"
)

type VehicleStore interface {
	Get(ctx context.Context, userID int) ([]models.Vehicle, error)
	Save(ctx context.Context, userID int, cars []models.Vehicle) error
}

type VehicleService struct {
	Store VehicleStore
	Bus   *events.Bus
}

func (s *VehicleService) Get(ctx context.Context, userID int) ([]models.Vehicle, error) {
	return s.Store.Get(ctx, userID)
}

// Add appends a vehicle to the user's garage. The first vehicle becomes the
// primary one.
func (s *VehicleService) Add(ctx context.Context, userID int, car models.Vehicle) ([]models.Vehicle, error) {
	cars, err := s.Store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	car.ID = uuid.NewString()
	car.IsPrimary = len(cars) == 0
	cars = append(cars, car)

	if err := s.Store.Save(ctx, userID, cars); err != nil {
		return nil, err
	}
	s.publish(userID, cars)
	return cars, nil
}

func (s *VehicleService) Remove(ctx context.Context, userID int, vehicleID string) ([]models.Vehicle, error) {
	cars, err := s.Store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	removedPrimary := false
	kept := cars[:0]
	for _, car := range cars {
		if car.ID == vehicleID {
			removedPrimary = car.IsPrimary
			continue
		}
		kept = append(kept, car)
	}

	// Keep the single-primary invariant when the primary car leaves.
	if removedPrimary && len(kept) > 0 {
		kept[0].IsPrimary = true
	}

	if err := s.Store.Save(ctx, userID, kept); err != nil {
		return nil, err
	}
	s.publish(userID, kept)
	return kept, nil
}

// SetPrimary marks one vehicle primary and clears the flag on the rest.
func (s *VehicleService) SetPrimary(ctx context.Context, userID int, vehicleID string) ([]models.Vehicle, error) {
	cars, err := s.Store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cars {
		if cars[i].ID == vehicleID {
			cars[i].IsPrimary = true
			found = true
		} else {
			cars[i].IsPrimary = false
		}
	}
	if !found {
		return nil, models.ErrVehicleNotFound
	}

	if err := s.Store.Save(ctx, userID, cars); err != nil {
		return nil, err
	}
	s.publish(userID, cars)
	return cars, nil
}

func (s *VehicleService) publish(userID int, cars []models.Vehicle) {
	if s.Bus == nil {
		return
	}
	s.Bus.Publish(events.Event{Topic: events.TopicUserCarsUpdated, UserID: userID, Payload: cars})
}
