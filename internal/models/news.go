package models

import "time"

// Article kinds.
const (
	ArticleNews  = "news"
	ArticlePromo = "promo"
)

type Article struct {
	ID        int        `json:"id"`
	Kind      string     `json:"kind"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	CoverURL  string     `json:"cover_url,omitempty"`
	Published bool       `json:"published"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
