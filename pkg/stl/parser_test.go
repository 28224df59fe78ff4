package stl

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/askessler/cadview/pkg/geometry"
)

const asciiCube = `solid test_part
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
  facet normal 0 0 1
    outer loop
      vertex 1 0 0
      vertex 1 1 0
      vertex 0 1 0
    endloop
  endfacet
endsolid test_part
`

func TestParseASCII(t *testing.T) {
	model, err := ParseReader(strings.NewReader(asciiCube))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if model.Name != "test_part" {
		t.Errorf("name: expected test_part, got %q", model.Name)
	}
	if model.TriangleCount() != 2 {
		t.Fatalf("expected 2 triangles, got %d", model.TriangleCount())
	}

	first := model.Triangles[0]
	if first.Normal.Distance(geometry.NewVector3(0, 0, 1)) > 1e-9 {
		t.Errorf("normal: expected (0, 0, 1), got %v", first.Normal)
	}
	if first.V2.Distance(geometry.NewVector3(1, 0, 0)) > 1e-9 {
		t.Errorf("vertex: expected (1, 0, 0), got %v", first.V2)
	}
}

func TestParseASCIIMissingNormal(t *testing.T) {
	// Facets with a zero normal get one computed from the winding
	input := `solid flat
  facet normal 0 0 0
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
endsolid flat
`
	model, err := ParseReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if model.TriangleCount() != 1 {
		t.Fatalf("expected 1 triangle, got %d", model.TriangleCount())
	}

	normal := model.Triangles[0].Normal
	if normal.Distance(geometry.NewVector3(0, 0, 1)) > 1e-9 {
		t.Errorf("expected computed normal (0, 0, 1), got %v", normal)
	}
}

func TestParseBinary(t *testing.T) {
	var buf bytes.Buffer

	header := make([]byte, 80)
	copy(header, "binary part")
	buf.Write(header)

	binary.Write(&buf, binary.LittleEndian, uint32(1))
	facet := struct {
		Normal     [3]float32
		V1, V2, V3 [3]float32
		Attribute  uint16
	}{
		Normal: [3]float32{0, 1, 0},
		V1:     [3]float32{0, 0, 0},
		V2:     [3]float32{2, 0, 0},
		V3:     [3]float32{0, 0, 2},
	}
	binary.Write(&buf, binary.LittleEndian, facet)

	model, err := ParseReader(&buf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if model.Name != "binary part" {
		t.Errorf("name: expected %q, got %q", "binary part", model.Name)
	}
	if model.TriangleCount() != 1 {
		t.Fatalf("expected 1 triangle, got %d", model.TriangleCount())
	}
	tri := model.Triangles[0]
	if tri.Normal.Distance(geometry.NewVector3(0, 1, 0)) > 1e-6 {
		t.Errorf("normal: expected (0, 1, 0), got %v", tri.Normal)
	}
	if tri.V2.Distance(geometry.NewVector3(2, 0, 0)) > 1e-6 {
		t.Errorf("vertex: expected (2, 0, 0), got %v", tri.V2)
	}
}

func TestParseBinaryTruncated(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	binary.Write(&buf, binary.LittleEndian, uint32(5)) // claims 5 facets, has none

	if _, err := ParseReader(&buf); err == nil {
		t.Error("expected an error for a truncated binary file")
	}
}

func TestModelBoundingBox(t *testing.T) {
	model, err := ParseReader(strings.NewReader(asciiCube))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	bbox := model.BoundingBox()
	if bbox.Min.Distance(geometry.NewVector3(0, 0, 0)) > 1e-9 {
		t.Errorf("bbox min: expected origin, got %v", bbox.Min)
	}
	if bbox.Max.Distance(geometry.NewVector3(1, 1, 0)) > 1e-9 {
		t.Errorf("bbox max: expected (1, 1, 0), got %v", bbox.Max)
	}
}

func TestModelSurfaceArea(t *testing.T) {
	model, err := ParseReader(strings.NewReader(asciiCube))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	// Two triangles tiling the unit square
	if math.Abs(model.SurfaceArea()-1.0) > 1e-9 {
		t.Errorf("surface area: expected 1.0, got %v", model.SurfaceArea())
	}
}

func TestModelAverageEdgeLengthEmpty(t *testing.T) {
	model := NewModel("empty")
	if model.AverageEdgeLength() != 1.0 {
		t.Errorf("empty model edge length fallback: expected 1.0, got %v", model.AverageEdgeLength())
	}
}
