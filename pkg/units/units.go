// Package units maps user-declared length units onto a single multiplicative
// coordinate factor, so the numeric pipeline only ever deals in meters.
package units

import (
	"fmt"
	"sort"
	"strings"

	"github.com/martinlindhe/unit"
)

// lengths maps accepted unit names to their size. Only length-dimensioned
// units appear here; anything else is rejected up front.
var lengths = map[string]unit.Length{
	"m":           unit.Meter,
	"meter":       unit.Meter,
	"meters":      unit.Meter,
	"dm":          unit.Decimeter,
	"decimeter":   unit.Decimeter,
	"decimeters":  unit.Decimeter,
	"cm":          unit.Centimeter,
	"centimeter":  unit.Centimeter,
	"centimeters": unit.Centimeter,
	"mm":          unit.Millimeter,
	"millimeter":  unit.Millimeter,
	"millimeters": unit.Millimeter,
	"um":          unit.Micrometer,
	"micrometer":  unit.Micrometer,
	"micrometers": unit.Micrometer,
	"km":          unit.Kilometer,
	"kilometer":   unit.Kilometer,
	"kilometers":  unit.Kilometer,
	"in":          unit.Inch,
	"inch":        unit.Inch,
	"inches":      unit.Inch,
	"ft":          unit.Foot,
	"foot":        unit.Foot,
	"feet":        unit.Foot,
	"yd":          unit.Yard,
	"yard":        unit.Yard,
	"yards":       unit.Yard,
}

// Multiplier returns the scalar every mesh coordinate must be multiplied by:
// the declared unit expressed in meters, times the extra scale factor.
func Multiplier(unitName string, scale float64) (float64, error) {
	length, ok := lengths[strings.ToLower(strings.TrimSpace(unitName))]
	if !ok {
		return 0, fmt.Errorf("unsupported length unit %q (supported: %s)", unitName, strings.Join(Supported(), ", "))
	}
	return scale * length.Meters(), nil
}

// Supported returns the accepted unit names, sorted
func Supported() []string {
	names := make([]string, 0, len(lengths))
	for name := range lengths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
