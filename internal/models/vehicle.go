package models

// Vehicle is one garage entry of a user. At most one vehicle per user is
// marked primary; SetPrimary clears the flag on the rest.
type Vehicle struct {
	ID        string `json:"id"`
	BrandName string `json:"brand_name"`
	BrandSlug string `json:"brand_slug"`
	ModelName string `json:"model_name"`
	ModelSlug string `json:"model_slug"`
	Year      int    `json:"year,omitempty"`
	Plate     string `json:"plate,omitempty"`
	IsPrimary bool   `json:"is_primary"`
}
