package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiplier(t *testing.T) {
	cases := []struct {
		unit     string
		scale    float64
		expected float64
	}{
		{"meters", 1.0, 1.0},
		{"m", 2.5, 2.5},
		{"millimeters", 1.0, 0.001},
		{"MM", 1.0, 0.001},
		{"centimeters", 2.0, 0.02},
		{"inches", 1.0, 0.0254},
		{"feet", 1.0, 0.3048},
		{" meters ", 1.0, 1.0},
	}

	for _, tc := range cases {
		factor, err := Multiplier(tc.unit, tc.scale)
		require.NoError(t, err, "unit %q", tc.unit)
		assert.InDelta(t, tc.expected, factor, 1e-12, "unit %q", tc.unit)
	}
}

func TestMultiplierRejectsNonLengthUnits(t *testing.T) {
	for _, name := range []string{"kilograms", "seconds", "newtons", "cubits", ""} {
		_, err := Multiplier(name, 1.0)
		assert.Error(t, err, "unit %q", name)
	}
}

func TestSupportedIsSorted(t *testing.T) {
	names := Supported()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i])
	}
}
