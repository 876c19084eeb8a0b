package models

type City struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// SelectedCity is the per-user city choice kept in the state store.
type SelectedCity struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
