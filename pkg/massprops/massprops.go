// Package massprops computes the mass properties of a solid bounded by a
// closed, consistently wound triangle mesh: enclosed volume, center of mass
// and the inertia tensor, via signed-tetrahedron decomposition against the
// coordinate origin.
package massprops

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cfranzen/meshmass/pkg/geometry"
	"github.com/cfranzen/meshmass/pkg/stl"
)

// Volumes smaller than this are treated as degenerate
const minVolume = 1e-12

var (
	// ErrDegenerateMesh is returned when the integrated volume is too close
	// to zero for center of mass or inertia to be defined.
	ErrDegenerateMesh = errors.New("mesh encloses no volume; center of mass and inertia are undefined")

	// ErrInvertedMesh is returned when the integrated volume is negative,
	// which means the triangle winding points inward.
	ErrInvertedMesh = errors.New("mesh volume is negative; triangle winding is inverted")
)

// Properties holds the integrated mass properties of a solid. Volume and
// CenterOfMass are in the mesh's (post-scaling) length units. InertiaOrigin
// is the raw second-moment tensor about the coordinate origin at unit
// density; use InertiaAt to obtain a physical tensor for a given total mass.
type Properties struct {
	Volume        float64
	CenterOfMass  geometry.Vector3
	InertiaOrigin *mat.SymDense
}

// Compute integrates the mass properties of the solid enclosed by the model.
//
// Each triangle together with the origin spans a signed tetrahedron; volume
// and first/second moments are accumulated over all of them. Contributions
// are signed by the triangle winding, so a closed outward-wound surface sums
// to the net solid regardless of internal cancellation.
func Compute(model *stl.Model) (*Properties, error) {
	var volume float64
	var moment geometry.Vector3      // first moments: integrals of x, y, z
	var xx, yy, zz, xy, xz, yz float64 // second moment integrals

	for _, tri := range model.Triangles {
		v1, v2, v3 := tri.V1, tri.V2, tri.V3

		// Six times the signed volume of the tetrahedron (origin, v1, v2, v3)
		det := v1.Dot(v2.Cross(v3))

		volume += det / 6.0
		moment = moment.Add(v1.Add(v2).Add(v3).Mul(det / 24.0))

		xx += det * squareIntegral(v1.X, v2.X, v3.X)
		yy += det * squareIntegral(v1.Y, v2.Y, v3.Y)
		zz += det * squareIntegral(v1.Z, v2.Z, v3.Z)
		xy += det * productIntegral(v1.X, v2.X, v3.X, v1.Y, v2.Y, v3.Y)
		xz += det * productIntegral(v1.X, v2.X, v3.X, v1.Z, v2.Z, v3.Z)
		yz += det * productIntegral(v1.Y, v2.Y, v3.Y, v1.Z, v2.Z, v3.Z)
	}

	if volume < -minVolume {
		return nil, ErrInvertedMesh
	}
	if volume <= minVolume {
		return nil, ErrDegenerateMesh
	}

	inertia := mat.NewSymDense(3, []float64{
		yy + zz, -xy, -xz,
		-xy, xx + zz, -yz,
		-xz, -yz, xx + yy,
	})

	return &Properties{
		Volume:        volume,
		CenterOfMass:  moment.Mul(1.0 / volume),
		InertiaOrigin: inertia,
	}, nil
}

// squareIntegral is the integral of a squared coordinate over the unit-scaled
// tetrahedron, before multiplication by the signed determinant.
func squareIntegral(a, b, c float64) float64 {
	return (a*a + b*b + c*c + a*b + a*c + b*c) / 60.0
}

// productIntegral is the integral of the product of two coordinates over the
// same tetrahedron.
func productIntegral(a1, a2, a3, b1, b2, b3 float64) float64 {
	return (2.0*(a1*b1+a2*b2+a3*b3) +
		a1*b2 + a2*b1 +
		a1*b3 + a3*b1 +
		a2*b3 + a3*b2) / 120.0
}

// InertiaAt returns the inertia tensor of the solid about the given reference
// point, assigning the given total mass to the integrated volume.
func (p *Properties) InertiaAt(mass float64, reference geometry.Vector3) (*mat.SymDense, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("mass must be positive, got %g", mass)
	}

	// Normalize the unit-density integral to the physical mass.
	density := mass / p.Volume
	origin := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			origin.SetSym(i, j, density*p.InertiaOrigin.At(i, j))
		}
	}

	from := geometry.Vector3{}.Sub(p.CenterOfMass)
	to := reference.Sub(p.CenterOfMass)
	return Shift(origin, mass, from, to), nil
}

// Shift re-expresses an inertia tensor about a different reference point via
// the parallel-axis theorem, I_new = I_old + m(|r|^2 E - r (x) r) taken
// relative to the center of mass. from and to are the old and new reference
// points measured from the center of mass. The transform is antisymmetric in
// (from, to): shifting A->B and back B->A restores the input, and from == to
// is the identity.
func Shift(inertia *mat.SymDense, mass float64, from, to geometry.Vector3) *mat.SymDense {
	shifted := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			delta := axisTerm(to, i, j) - axisTerm(from, i, j)
			shifted.SetSym(i, j, inertia.At(i, j)+mass*delta)
		}
	}
	return shifted
}

// axisTerm is the (i, j) entry of |r|^2 E - r (x) r for an offset r.
func axisTerm(r geometry.Vector3, i, j int) float64 {
	term := -r.Component(i) * r.Component(j)
	if i == j {
		term += r.LengthSquared()
	}
	return term
}
