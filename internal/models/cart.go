package models

import "time"

// CartItem is one line of a user's cart. ID is generated server-side;
// ProductID refers to the upstream catalog item.
type CartItem struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Kind      string    `json:"kind"` // tire | wheel | fastener
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Image     string    `json:"image,omitempty"`
	AddedAt   time.Time `json:"added_at"`
}

type FavoriteItem struct {
	ProductID string    `json:"product_id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image,omitempty"`
	AddedAt   time.Time `json:"added_at"`
}
