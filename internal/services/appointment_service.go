package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"shinaBack/internal/models"
)

type AppointmentStore interface {
	Create(ctx context.Context, a models.Appointment) (models.Appointment, error)
	GetByID(ctx context.Context, id string) (models.Appointment, error)
	GetByUser(ctx context.Context, userID int) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// Notifier delivers a push message to the user's registered devices.
type Notifier interface {
	Notify(ctx context.Context, userID int, title, body string) error
}

type AppointmentService struct {
	Store    AppointmentStore
	Notifier Notifier
}

// Book creates a pending service bay appointment.
func (s *AppointmentService) Book(ctx context.Context, a models.Appointment) (models.Appointment, error) {
	if a.ServiceType == "" {
		return models.Appointment{}, errors.New("service type is required")
	}
	if a.SlotAt.Before(time.Now()) {
		return models.Appointment{}, errors.New("slot is in the past")
	}

	a.ID = uuid.NewString()
	a.Status = models.AppointmentPending
	a.CreatedAt = time.Now().UTC()
	return s.Store.Create(ctx, a)
}

func (s *AppointmentService) GetByUser(ctx context.Context, userID int) ([]models.Appointment, error) {
	return s.Store.GetByUser(ctx, userID)
}

// Cancel lets the owner cancel a pending or confirmed appointment.
func (s *AppointmentService) Cancel(ctx context.Context, userID int, id string) error {
	a, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.UserID != userID {
		return models.ErrAppointmentNotFound
	}
	if a.Status == models.AppointmentDone {
		return errors.New("appointment already completed")
	}
	return s.Store.UpdateStatus(ctx, id, models.AppointmentCancelled)
}

// Confirm marks an appointment confirmed and pushes a notification to the
// customer.
func (s *AppointmentService) Confirm(ctx context.Context, id string) (models.Appointment, error) {
	a, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return models.Appointment{}, err
	}
	if err := s.Store.UpdateStatus(ctx, id, models.AppointmentConfirmed); err != nil {
		return models.Appointment{}, err
	}
	a.Status = models.AppointmentConfirmed

	if s.Notifier != nil {
		body := "Your appointment on " + a.SlotAt.Format("02.01.2006 15:04") + " is confirmed"
		_ = s.Notifier.Notify(ctx, a.UserID, "Appointment confirmed", body)
	}
	return a, nil
}
