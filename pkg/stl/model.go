package stl

import (
	"github.com/cfranzen/meshmass/pkg/geometry"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// Scale multiplies every vertex coordinate by a single scalar factor, in
// place. All derived quantities (volume, center of mass, inertia) depend on
// the coordinate scale, so this must run before any integration.
func (m *Model) Scale(factor float64) {
	for i, triangle := range m.Triangles {
		m.Triangles[i] = triangle.Scale(factor)
	}
}
