package massprops

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cfranzen/meshmass/pkg/geometry"
)

// ReferencePoint identifies the point an inertia tensor is expressed about:
// either an explicit coordinate triple or the solid's center of mass, which
// is only known once the mass properties have been integrated.
type ReferencePoint struct {
	point        geometry.Vector3
	centerOfMass bool
}

// AtPoint returns a reference at an explicit coordinate
func AtPoint(point geometry.Vector3) ReferencePoint {
	return ReferencePoint{point: point}
}

// AtCenterOfMass returns a reference resolved to the center of mass per mesh
func AtCenterOfMass() ReferencePoint {
	return ReferencePoint{centerOfMass: true}
}

// ParseReference parses a reference point argument: either an explicit
// "x, y, z" triple or one of the keywords "center of mass", "cog" or
// "centroid".
func ParseReference(s string) (ReferencePoint, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center of mass", "cog", "centroid":
		return AtCenterOfMass(), nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return ReferencePoint{}, fmt.Errorf("malformed reference point %q: want \"x, y, z\" or \"center of mass\"", s)
	}

	var coords [3]float64
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return ReferencePoint{}, fmt.Errorf("malformed reference coordinate %q in %q", strings.TrimSpace(part), s)
		}
		coords[i] = value
	}

	return AtPoint(geometry.NewVector3(coords[0], coords[1], coords[2])), nil
}

// Resolve returns the concrete point for the given mass properties
func (r ReferencePoint) Resolve(props *Properties) geometry.Vector3 {
	if r.centerOfMass {
		return props.CenterOfMass
	}
	return r.point
}
