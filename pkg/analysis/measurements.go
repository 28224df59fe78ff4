package analysis

import (
	"fmt"
	"math"

	"github.com/askessler/cadview/pkg/geometry"
	"github.com/askessler/cadview/pkg/stl"
)

// ModelStats contains aggregate measurements of a model
type ModelStats struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	TriangleCount int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// AnalyzeModel computes aggregate statistics for a model
func AnalyzeModel(model *stl.Model) *ModelStats {
	stats := &ModelStats{
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		TriangleCount: model.TriangleCount(),
	}
	stats.Dimensions = stats.BoundingBox.Size()
	stats.Volume = stats.BoundingBox.Volume()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	edgeCount := 0

	for _, triangle := range model.Triangles {
		for _, length := range triangle.EdgeLengths() {
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
			totalLength += length
			edgeCount++
		}
	}

	if edgeCount > 0 {
		stats.MinEdgeLength = minLength
		stats.MaxEdgeLength = maxLength
		stats.AvgEdgeLength = totalLength / float64(edgeCount)
	}

	return stats
}

// FindNearestVertex finds the model vertex closest to a point.
// The returned distance is 0 when the point is itself a vertex.
func FindNearestVertex(model *stl.Model, point geometry.Vector3) (geometry.Vector3, float64) {
	var nearest geometry.Vector3
	minDist := math.MaxFloat64

	for _, triangle := range model.Triangles {
		for _, vertex := range []geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			dist := vertex.Distance(point)
			if dist < minDist {
				minDist = dist
				nearest = vertex
			}
		}
	}

	if minDist == math.MaxFloat64 {
		return geometry.Vector3{}, -1
	}
	return nearest, minDist
}

// NearestSurfaceNormal returns the normal of the triangle whose
// centroid is closest to the given point. Used by the offline measure
// command to attach a surface orientation to a coordinate pick.
func NearestSurfaceNormal(model *stl.Model, point geometry.Vector3) (geometry.Vector3, bool) {
	var normal geometry.Vector3
	minDist := math.MaxFloat64
	found := false

	for _, triangle := range model.Triangles {
		dist := triangle.Center().Distance(point)
		if dist >= minDist {
			continue
		}

		n := triangle.Normal
		if n.IsZero() {
			n = triangle.CalculateNormal()
		}
		if n.IsZero() {
			continue
		}

		minDist = dist
		normal = n
		found = true
	}

	return normal, found
}

// FormatVector formats a vector for display
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

// FormatMeasurement formats a measurement value with its unit
func FormatMeasurement(value float64, unit string) string {
	return fmt.Sprintf("%.3f %s", value, unit)
}
