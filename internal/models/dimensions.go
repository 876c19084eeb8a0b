package models

// DimensionSet holds the distinct tire dimension values available in the
// catalog, used to populate size selectors.
type DimensionSet struct {
	Widths    []string `json:"widths"`
	Heights   []string `json:"heights"`
	Diameters []string `json:"diameters"`
}
