package models

// BrandRef is a vehicle manufacturer entry from the fitment API.
type BrandRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ModelRef is a vehicle model belonging to a brand.
type ModelRef struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Years []int  `json:"years,omitempty"`
}

// FastenerSpec is the structured result of parsing a free-text fitment
// fastener description. Type and Thread are nil when the raw string does not
// contain the corresponding information.
type FastenerSpec struct {
	Type   *string `json:"type"`
	Thread *string `json:"thread"`
	Raw    string  `json:"raw"`
}

// WheelFitment is a single bolt-pattern/offset combination for a vehicle.
type WheelFitment struct {
	PCD        string  `json:"pcd"`
	ET         float64 `json:"et"`
	CenterBore float64 `json:"centerBore"`
	Diameter   string  `json:"diameter,omitempty"`
	Width      string  `json:"width,omitempty"`
}

// VehicleFitmentRecord is the full fitment answer for one brand/model/year.
type VehicleFitmentRecord struct {
	BrandName   string         `json:"brandName"`
	BrandSlug   string         `json:"brandSlug"`
	ModelName   string         `json:"modelName"`
	ModelSlug   string         `json:"modelSlug"`
	Years       []int          `json:"years,omitempty"`
	Fastener    FastenerSpec   `json:"fastener"`
	AllFitments []WheelFitment `json:"allFitments"`
}
