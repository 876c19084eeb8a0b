package catalog

import (
	"fmt"
	"strings"

	"shinaBack/internal/models"
)

// Defaults substituted for missing wheel fields.
const (
	defaultWheelPrice    = 5000
	defaultWheelDiameter = 17
	defaultWheelWidth    = 7
	defaultWheelET       = 40
	defaultCenterBore    = 66.1
	defaultBoltCount     = 5
	defaultCircleDiam    = 100
)

// RawWheel mirrors a wheel record as the upstream API sends it, with every
// known field alias.
type RawWheel struct {
	ID         flexString `json:"id"`
	Title      flexString `json:"title"`
	Name       flexString `json:"name"`
	Brand      flexString `json:"brand"`
	Price      *flexFloat `json:"price"`
	Stock      *flexFloat `json:"stock"`
	Diameter   *flexFloat `json:"diameter"`
	Diam       *flexFloat `json:"diam"`
	Width      *flexFloat `json:"width"`
	ET         *flexFloat `json:"et"`
	CenterBore *flexFloat `json:"cb"`
	Hub        *flexFloat `json:"hub"`
	BoltCount  *flexFloat `json:"pn"`
	PCD        *flexFloat `json:"pcd"`
	Type       flexString `json:"type"`
	Image      flexString `json:"image"`
}

// NormalizeWheel maps a raw upstream wheel to the application shape. Records
// without an id are rejected; every other missing field gets a default.
func NormalizeWheel(raw RawWheel) (models.Wheel, bool) {
	if raw.ID == "" {
		return models.Wheel{}, false
	}

	boltCount := floatOr(raw.BoltCount, defaultBoltCount)
	circle := floatOr(raw.PCD, defaultCircleDiam)
	diameter := floatOr(firstFloat(raw.Diameter, raw.Diam), defaultWheelDiameter)

	w := models.Wheel{
		ID:         string(raw.ID),
		Brand:      string(raw.Brand),
		Price:      floatOr(raw.Price, defaultWheelPrice),
		Stock:      int(floatOr(raw.Stock, 0)),
		Diameter:   formatNum(diameter),
		Width:      formatNum(floatOr(raw.Width, defaultWheelWidth)),
		PCD:        fmt.Sprintf("%sx%s", formatNum(boltCount), formatNum(circle)),
		ET:         floatOr(raw.ET, defaultWheelET),
		CenterBore: floatOr(firstFloat(raw.CenterBore, raw.Hub), defaultCenterBore),
		WheelType:  classifyWheelType(string(raw.Type)),
		Image:      string(raw.Image),
	}

	w.Name = string(raw.Title)
	if w.Name == "" {
		w.Name = string(raw.Name)
	}
	if w.Name == "" {
		w.Name = strings.TrimSpace(fmt.Sprintf("%s R%s", w.Brand, w.Diameter))
	}
	return w, true
}

// classifyWheelType detects the construction type from the free-text type
// field. The upstream mixes Russian and English labels.
func classifyWheelType(raw string) string {
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "штамп") || strings.Contains(lower, "stamp"):
		return models.WheelStamped
	case strings.Contains(lower, "кован") || strings.Contains(lower, "forg"):
		return models.WheelForged
	default:
		return models.WheelCast
	}
}

// RawTire mirrors an upstream tire record.
type RawTire struct {
	ID       flexString `json:"id"`
	Title    flexString `json:"title"`
	Name     flexString `json:"name"`
	Brand    flexString `json:"brand"`
	Model    flexString `json:"model"`
	Article  flexString `json:"article"`
	Price    *flexFloat `json:"price"`
	Stock    *flexFloat `json:"stock"`
	Width    *flexFloat `json:"width"`
	Height   *flexFloat `json:"height"`
	Diameter *flexFloat `json:"diameter"`
	Diam     *flexFloat `json:"diam"`
	Season   flexString `json:"season"`
	Spike    flexBool   `json:"spike"`
	Runflat  flexBool   `json:"runflat"`
	Cargo    flexBool   `json:"cargo"`
	Image    flexString `json:"image"`
}

// NormalizeTire maps a raw upstream tire to the application shape. A display
// name is synthesized from brand, model and dimensions when the record lacks
// a title.
func NormalizeTire(raw RawTire) (models.Tire, bool) {
	if raw.ID == "" {
		return models.Tire{}, false
	}

	t := models.Tire{
		ID:       string(raw.ID),
		Brand:    string(raw.Brand),
		Model:    string(raw.Model),
		Article:  string(raw.Article),
		Price:    floatOr(raw.Price, 0),
		Stock:    int(floatOr(raw.Stock, 0)),
		Width:    formatNum(floatOr(raw.Width, 0)),
		Height:   formatNum(floatOr(raw.Height, 0)),
		Diameter: formatNum(floatOr(firstFloat(raw.Diameter, raw.Diam), 0)),
		Season:   string(raw.Season),
		Spike:    bool(raw.Spike),
		Runflat:  bool(raw.Runflat),
		Cargo:    bool(raw.Cargo),
		Image:    string(raw.Image),
	}

	t.Name = string(raw.Title)
	if t.Name == "" {
		t.Name = string(raw.Name)
	}
	if t.Name == "" {
		t.Name = strings.TrimSpace(fmt.Sprintf("%s %s %s/%s R%s",
			t.Brand, t.Model, t.Width, t.Height, t.Diameter))
		t.Name = strings.Join(strings.Fields(t.Name), " ")
	}
	return t, true
}

func firstFloat(vals ...*flexFloat) *flexFloat {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func floatOr(v *flexFloat, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return float64(*v)
}
