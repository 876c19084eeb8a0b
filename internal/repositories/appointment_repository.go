package repositories

import (
	"context"
	"database/sql"
	"errors"

	"shinaBack/internal/models"
)

type AppointmentRepository struct {
	DB *sql.DB
}

func (r *AppointmentRepository) Create(ctx context.Context, a models.Appointment) (models.Appointment, error) {
	query := `INSERT INTO appointments (id, user_id, vehicle_id, service_type, city_id, slot_at, status, comment, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	_, err := r.DB.ExecContext(ctx, query,
		a.ID, a.UserID, a.VehicleID, a.ServiceType, a.CityID, a.SlotAt, a.Status, a.Comment)
	if err != nil {
		return models.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (models.Appointment, error) {
	var a models.Appointment
	query := `SELECT id, user_id, vehicle_id, service_type, city_id, slot_at, status, comment, created_at, updated_at
	          FROM appointments WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.UserID, &a.VehicleID, &a.ServiceType, &a.CityID, &a.SlotAt, &a.Status, &a.Comment, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Appointment{}, models.ErrAppointmentNotFound
	}
	return a, err
}

func (r *AppointmentRepository) GetByUser(ctx context.Context, userID int) ([]models.Appointment, error) {
	query := `SELECT id, user_id, vehicle_id, service_type, city_id, slot_at, status, comment, created_at, updated_at
	          FROM appointments WHERE user_id = ? ORDER BY slot_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []models.Appointment
	for rows.Next() {
		var a models.Appointment
		if err := rows.Scan(&a.ID, &a.UserID, &a.VehicleID, &a.ServiceType, &a.CityID,
			&a.SlotAt, &a.Status, &a.Comment, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE appointments SET status = ?, updated_at = NOW() WHERE id = ?`
	res, err := r.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return models.ErrAppointmentNotFound
	}
	return nil
}
