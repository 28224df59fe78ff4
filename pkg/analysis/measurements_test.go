package analysis

import (
	"math"
	"testing"

	"github.com/askessler/cadview/pkg/geometry"
	"github.com/askessler/cadview/pkg/stl"
)

func squareModel() *stl.Model {
	model := stl.NewModel("square")
	model.AddTriangle(geometry.NewTriangle(
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(2, 0, 0),
		geometry.NewVector3(2, 2, 0),
	))
	model.AddTriangle(geometry.NewTriangle(
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(2, 2, 0),
		geometry.NewVector3(0, 2, 0),
	))
	return model
}

func TestAnalyzeModel(t *testing.T) {
	stats := AnalyzeModel(squareModel())

	if stats.TriangleCount != 2 {
		t.Errorf("triangle count: expected 2, got %d", stats.TriangleCount)
	}
	if math.Abs(stats.SurfaceArea-4.0) > 1e-9 {
		t.Errorf("surface area: expected 4.0, got %v", stats.SurfaceArea)
	}
	if stats.Dimensions.Distance(geometry.NewVector3(2, 2, 0)) > 1e-9 {
		t.Errorf("dimensions: expected (2, 2, 0), got %v", stats.Dimensions)
	}
	if math.Abs(stats.MinEdgeLength-2.0) > 1e-9 {
		t.Errorf("min edge: expected 2.0, got %v", stats.MinEdgeLength)
	}
	if math.Abs(stats.MaxEdgeLength-2.0*math.Sqrt2) > 1e-9 {
		t.Errorf("max edge: expected 2*sqrt(2), got %v", stats.MaxEdgeLength)
	}
}

func TestFindNearestVertex(t *testing.T) {
	model := squareModel()

	vertex, dist := FindNearestVertex(model, geometry.NewVector3(1.9, 2.2, 0))
	if vertex.Distance(geometry.NewVector3(2, 2, 0)) > 1e-9 {
		t.Errorf("nearest vertex: expected (2, 2, 0), got %v", vertex)
	}
	if dist < 0 {
		t.Error("distance should be non-negative")
	}

	vertex, dist = FindNearestVertex(model, geometry.NewVector3(0, 0, 0))
	if dist != 0 || !vertex.IsZero() {
		t.Errorf("exact vertex should match at distance 0, got %v at %v", vertex, dist)
	}
}

func TestFindNearestVertexEmptyModel(t *testing.T) {
	_, dist := FindNearestVertex(stl.NewModel("empty"), geometry.NewVector3(1, 1, 1))
	if dist >= 0 {
		t.Error("empty model should report a negative distance")
	}
}

func TestNearestSurfaceNormal(t *testing.T) {
	model := squareModel()

	normal, ok := NearestSurfaceNormal(model, geometry.NewVector3(1, 1, 0))
	if !ok {
		t.Fatal("expected a surface normal")
	}
	if normal.Distance(geometry.NewVector3(0, 0, 1)) > 1e-9 {
		t.Errorf("normal: expected (0, 0, 1), got %v", normal)
	}

	if _, ok := NearestSurfaceNormal(stl.NewModel("empty"), geometry.Vector3{}); ok {
		t.Error("empty model should not resolve a normal")
	}
}

func TestFormatVector(t *testing.T) {
	got := FormatVector(geometry.NewVector3(1, 2.5, -3))
	want := "(1.000, 2.500, -3.000)"
	if got != want {
		t.Errorf("FormatVector: expected %q, got %q", want, got)
	}
}

func TestFormatMeasurement(t *testing.T) {
	got := FormatMeasurement(12.3456, "mm")
	want := "12.346 mm"
	if got != want {
		t.Errorf("FormatMeasurement: expected %q, got %q", want, got)
	}
}
