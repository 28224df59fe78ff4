package stl

import (
	"github.com/askessler/cadview/pkg/geometry"
)

// Model represents a loaded STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model. Facets without a stored
// normal get one computed from the vertex winding, so every triangle a
// pick ray can hit carries a resolvable normal.
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	if triangle.Normal.IsZero() {
		triangle.Normal = triangle.CalculateNormal()
	}
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// AverageEdgeLength returns the mean triangle edge length, sampling at
// most the first 1000 triangles. Used for adaptive pick tolerances.
func (m *Model) AverageEdgeLength() float64 {
	if len(m.Triangles) == 0 {
		return 1.0
	}

	sampleSize := len(m.Triangles)
	if sampleSize > 1000 {
		sampleSize = 1000
	}

	totalLength := 0.0
	edgeCount := 0
	for i := 0; i < sampleSize; i++ {
		lengths := m.Triangles[i].EdgeLengths()
		totalLength += lengths[0] + lengths[1] + lengths[2]
		edgeCount += 3
	}

	return totalLength / float64(edgeCount)
}
