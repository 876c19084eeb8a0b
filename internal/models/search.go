package models

// Search match kinds.
const (
	MatchBrand = "brand"
	MatchModel = "model"
)

// SearchMatch is one autocomplete suggestion. Brand matches carry only
// Name/Slug; model matches additionally carry the owning brand.
type SearchMatch struct {
	Type      string `json:"type"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	BrandName string `json:"brandName,omitempty"`
	BrandSlug string `json:"brandSlug,omitempty"`
}

type SearchResponse struct {
	Brands []SearchMatch `json:"brands"`
	Models []SearchMatch `json:"models"`
}
