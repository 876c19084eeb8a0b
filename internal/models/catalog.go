package models

// Season classification for tires.
const (
	SeasonSummer    = "summer"
	SeasonWinter    = "winter"
	SeasonAllSeason = "all-season"
)

// Wheel construction types.
const (
	WheelStamped = "stamped"
	WheelCast    = "cast"
	WheelForged  = "forged"
)

type Tire struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Brand    string  `json:"brand"`
	Model    string  `json:"model,omitempty"`
	Article  string  `json:"article,omitempty"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Width    string  `json:"width"`
	Height   string  `json:"height"`
	Diameter string  `json:"diameter"`
	Season   string  `json:"season,omitempty"`
	Spike    bool    `json:"spike"`
	Runflat  bool    `json:"runflat"`
	Cargo    bool    `json:"cargo"`
	Image    string  `json:"image,omitempty"`
}

type Wheel struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Brand      string  `json:"brand"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	Diameter   string  `json:"diameter"`
	Width      string  `json:"width"`
	PCD        string  `json:"pcd"`
	ET         float64 `json:"et"`
	CenterBore float64 `json:"centerBore"`
	WheelType  string  `json:"wheelType"`
	Image      string  `json:"image,omitempty"`
}

// Fastener type labels.
const (
	FastenerNut      = "nut"
	FastenerBolt     = "bolt"
	FastenerLockNut  = "lockNut"
	FastenerLockBolt = "lockBolt"
)

type Fastener struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	FastenerType string  `json:"fastenerType"`
	ThreadSize   string  `json:"threadSize,omitempty"`
	Image        string  `json:"image,omitempty"`
}

// TireFilter carries catalog query parameters passed through to the tires API.
type TireFilter struct {
	Width    string
	Height   string
	Diameter string
	Season   string
	Brand    string
	Spike    string
	Runflat  string
	Cargo    string
	Limit    int
	Offset   int
}

// WheelFilter carries query parameters passed through to the wheels API.
type WheelFilter struct {
	Diameter string
	Width    string
	PCD      string
	ET       string
	Hub      string
	Type     string
	Brand    string
	Limit    int
}
