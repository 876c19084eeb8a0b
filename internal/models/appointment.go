package models

import "time"

// Appointment statuses.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentDone      = "done"
)

// Appointment is a service bay booking (tire change, balancing, storage).
type Appointment struct {
	ID          string     `json:"id"`
	UserID      int        `json:"user_id"`
	VehicleID   string     `json:"vehicle_id,omitempty"`
	ServiceType string     `json:"service_type"`
	CityID      int        `json:"city_id,omitempty"`
	SlotAt      time.Time  `json:"slot_at"`
	Status      string     `json:"status"`
	Comment     string     `json:"comment,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
