package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"shinaBack/internal/models"
)

type OrderRepository struct {
	DB *sql.DB
}

// Create persists the order with its line items and checkout details stored
// as JSON columns.
func (r *OrderRepository) Create(ctx context.Context, order models.Order) (models.Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return models.Order{}, err
	}
	details, err := json.Marshal(order.Details)
	if err != nil {
		return models.Order{}, err
	}

	query := `INSERT INTO orders (id, user_id, status, items, total, points_used, details, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`
	_, err = r.DB.ExecContext(ctx, query,
		order.ID, order.UserID, order.Status, items, order.Total, order.PointsUsed, details)
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (models.Order, error) {
	var order models.Order
	var items, details []byte

	query := `SELECT id, user_id, status, items, total, points_used, details, created_at FROM orders WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.UserID, &order.Status, &items, &order.Total, &order.PointsUsed, &details, &order.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, models.ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, err
	}

	if err := json.Unmarshal(items, &order.Items); err != nil {
		order.Items = nil
	}
	if err := json.Unmarshal(details, &order.Details); err != nil {
		order.Details = models.OrderDetails{}
	}
	return order, nil
}

func (r *OrderRepository) GetByUser(ctx context.Context, userID int) ([]models.Order, error) {
	query := `SELECT id, user_id, status, items, total, points_used, details, created_at
	          FROM orders WHERE user_id = ? ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var order models.Order
		var items, details []byte
		if err := rows.Scan(&order.ID, &order.UserID, &order.Status, &items,
			&order.Total, &order.PointsUsed, &details, &order.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &order.Items); err != nil {
			order.Items = nil
		}
		if err := json.Unmarshal(details, &order.Details); err != nil {
			order.Details = models.OrderDetails{}
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
