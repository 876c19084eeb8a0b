package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"shinaBack/internal/models"
)

// threadPattern matches metric thread sizes like "M14 x 1.5" or "12x1.25".
var threadPattern = regexp.MustCompile(`(?i)M?(\d+(\.\d+)?)\s*x\s*(\d+(\.\d+)?)`)

// ParseFastener extracts the fastener type and thread size from a free-text
// fitment description such as "Lug bolts M14 x 1.5". Unlabeled fasteners are
// nuts; a blank string yields a spec with nil type and thread. Never fails.
func ParseFastener(raw string) models.FastenerSpec {
	spec := models.FastenerSpec{Raw: raw}
	if strings.TrimSpace(raw) == "" {
		return spec
	}

	typ := models.FastenerNut
	if strings.Contains(strings.ToLower(raw), "bolt") {
		typ = models.FastenerBolt
	}
	spec.Type = &typ

	if m := threadPattern.FindStringSubmatch(raw); m != nil {
		thread := fmt.Sprintf("%sx%s", m[1], m[3])
		spec.Thread = &thread
	}
	return spec
}
