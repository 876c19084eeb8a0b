package models

import "time"

// Order statuses.
const (
	OrderCreated   = "created"
	OrderPaid      = "paid"
	OrderShipped   = "shipped"
	OrderCancelled = "cancelled"
)

// OrderDetails is the checkout draft kept in the state store under the
// orderDetails key until the order is placed.
type OrderDetails struct {
	CityID    int    `json:"city_id,omitempty"`
	Address   string `json:"address,omitempty"`
	Delivery  string `json:"delivery,omitempty"` // pickup | courier
	Phone     string `json:"phone,omitempty"`
	Comment   string `json:"comment,omitempty"`
	UsePoints bool   `json:"use_points"`
}

type OrderItem struct {
	ProductID string  `json:"product_id"`
	Kind      string  `json:"kind"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type Order struct {
	ID         string       `json:"id"`
	UserID     int          `json:"user_id"`
	Status     string       `json:"status"`
	Items      []OrderItem  `json:"items"`
	Total      float64      `json:"total"`
	PointsUsed int          `json:"points_used"`
	Details    OrderDetails `json:"details"`
	CreatedAt  time.Time    `json:"created_at"`
}
