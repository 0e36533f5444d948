package export

import (
	"github.com/pkg/errors"
)

// Length units by their factor to meters.
var unitToMeter = map[string]float64{
	"micrometer": 1e-6,
	"millimeter": 0.001,
	"centimeter": 0.01,
	"decimeter":  0.1,
	"meter":      1.0,
	"kilometer":  1000.0,
	"thou":       0.0000254,
	"inch":       0.0254,
	"foot":       0.3048,
	"yard":       0.9144,
	"mile":       1609.344,
}

// ConvertUnits converts a length between named units.
func ConvertUnits(v float64, from, to string) (float64, error) {
	f, ok := unitToMeter[from]
	if !ok {
		return 0, errors.Errorf("export: unknown unit %q", from)
	}
	t, ok := unitToMeter[to]
	if !ok {
		return 0, errors.Errorf("export: unknown unit %q", to)
	}
	return v * f / t, nil
}

// mmToInch converts camera sensor sizes for FBX film aperture fields.
func mmToInch(v float64) float64 {
	return v * 0.001 / 0.0254
}
