package services

import (
	"context"
	"errors"
	"testing"

	"shinaBack/internal/models"
)

type memoryVehicleStore struct {
	cars map[int][]models.Vehicle
}

func newMemoryVehicleStore() *memoryVehicleStore {
	return &memoryVehicleStore{cars: make(map[int][]models.Vehicle)}
}

func (m *memoryVehicleStore) Get(ctx context.Context, userID int) ([]models.Vehicle, error) {
	return m.cars[userID], nil
}

func (m *memoryVehicleStore) Save(ctx context.Context, userID int, cars []models.Vehicle) error {
	m.cars[userID] = cars
	return nil
}

func TestVehicleFirstCarIsPrimary(t *testing.T) {
	svc := &VehicleService{Store: newMemoryVehicleStore()}
	ctx := context.Background()

	cars, err := svc.Add(ctx, 1, models.Vehicle{BrandName: "Toyota", ModelName: "Camry"})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if !cars[0].IsPrimary {
		t.Error("first vehicle is not primary")
	}

	cars, _ = svc.Add(ctx, 1, models.Vehicle{BrandName: "Kia", ModelName: "Rio"})
	if cars[1].IsPrimary {
		t.Error("second vehicle should not be primary")
	}
}

func TestVehicleSetPrimary(t *testing.T) {
	svc := &VehicleService{Store: newMemoryVehicleStore()}
	ctx := context.Background()

	cars, _ := svc.Add(ctx, 1, models.Vehicle{BrandName: "Toyota", ModelName: "Camry"})
	cars, _ = svc.Add(ctx, 1, models.Vehicle{BrandName: "Kia", ModelName: "Rio"})

	cars, err := svc.SetPrimary(ctx, 1, cars[1].ID)
	if err != nil {
		t.Fatalf("SetPrimary error: %v", err)
	}

	primaries := 0
	for _, car := range cars {
		if car.IsPrimary {
			primaries++
			if car.ModelName != "Rio" {
				t.Errorf("primary = %q; want Rio", car.ModelName)
			}
		}
	}
	if primaries != 1 {
		t.Errorf("got %d primary vehicles; want exactly 1", primaries)
	}

	if _, err := svc.SetPrimary(ctx, 1, "missing"); !errors.Is(err, models.ErrVehicleNotFound) {
		t.Errorf("SetPrimary on unknown id: err = %v; want ErrVehicleNotFound", err)
	}
}

func TestVehicleRemovePrimaryReassigns(t *testing.T) {
	svc := &VehicleService{Store: newMemoryVehicleStore()}
	ctx := context.Background()

	cars, _ := svc.Add(ctx, 1, models.Vehicle{BrandName: "Toyota", ModelName: "Camry"})
	primaryID := cars[0].ID
	svc.Add(ctx, 1, models.Vehicle{BrandName: "Kia", ModelName: "Rio"})

	cars, err := svc.Remove(ctx, 1, primaryID)
	if err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if len(cars) != 1 {
		t.Fatalf("got %d vehicles; want 1", len(cars))
	}
	if !cars[0].IsPrimary {
		t.Error("remaining vehicle did not inherit the primary flag")
	}
}
