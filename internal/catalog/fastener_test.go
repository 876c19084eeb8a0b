package catalog

import (
	"testing"

	"shinaBack/internal/models"
)

func TestParseFastener(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantType   string
		wantThread string
	}{
		{
			name:       "lug bolts with spaced thread",
			raw:        "Lug bolts M14 x 1.5",
			wantType:   models.FastenerBolt,
			wantThread: "14x1.5",
		},
		{
			name:       "bare thread defaults to nut",
			raw:        "M12 x 1.5",
			wantType:   models.FastenerNut,
			wantThread: "12x1.5",
		},
		{
			name:       "compact thread",
			raw:        "Wheel bolt M14x1.25",
			wantType:   models.FastenerBolt,
			wantThread: "14x1.25",
		},
		{
			name:       "no metric prefix",
			raw:        "Lug nuts 12x1.25",
			wantType:   models.FastenerNut,
			wantThread: "12x1.25",
		},
		{
			name:     "type without thread",
			raw:      "Lug nuts",
			wantType: models.FastenerNut,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := ParseFastener(tt.raw)
			if spec.Raw != tt.raw {
				t.Errorf("Raw = %q; want %q", spec.Raw, tt.raw)
			}
			if spec.Type == nil {
				t.Fatalf("Type = nil; want %q", tt.wantType)
			}
			if *spec.Type != tt.wantType {
				t.Errorf("Type = %q; want %q", *spec.Type, tt.wantType)
			}
			if tt.wantThread == "" {
				if spec.Thread != nil {
					t.Errorf("Thread = %q; want nil", *spec.Thread)
				}
				return
			}
			if spec.Thread == nil {
				t.Fatalf("Thread = nil; want %q", tt.wantThread)
			}
			if *spec.Thread != tt.wantThread {
				t.Errorf("Thread = %q; want %q", *spec.Thread, tt.wantThread)
			}
		})
	}
}

func TestParseFastenerBlank(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		spec := ParseFastener(raw)
		if spec.Type != nil {
			t.Errorf("ParseFastener(%q).Type = %q; want nil", raw, *spec.Type)
		}
		if spec.Thread != nil {
			t.Errorf("ParseFastener(%q).Thread = %q; want nil", raw, *spec.Thread)
		}
	}
}
