package stl

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

const asciiTetrahedron = `solid tetra
  facet normal 0 0 -1
    outer loop
      vertex 0 0 0
      vertex 0 1 0
      vertex 1 0 0
    endloop
  endfacet
  facet normal 0 -1 0
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 0 1
    endloop
  endfacet
  facet normal -1 0 0
    outer loop
      vertex 0 0 0
      vertex 0 0 1
      vertex 0 1 0
    endloop
  endfacet
  facet normal 1 1 1
    outer loop
      vertex 1 0 0
      vertex 0 1 0
      vertex 0 0 1
    endloop
  endfacet
endsolid tetra
`

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestParseASCII(t *testing.T) {
	path := writeTempFile(t, "tetra.stl", []byte(asciiTetrahedron))

	model, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if model.Name != "tetra" {
		t.Errorf("Name failed: expected %q, got %q", "tetra", model.Name)
	}
	if model.TriangleCount() != 4 {
		t.Fatalf("TriangleCount failed: expected 4, got %d", model.TriangleCount())
	}

	first := model.Triangles[0]
	if first.V2.Y != 1 || first.V3.X != 1 {
		t.Errorf("vertex order not preserved: got %v, %v, %v", first.V1, first.V2, first.V3)
	}
}

func TestParseASCIIMalformedVertex(t *testing.T) {
	broken := `solid broken
  facet normal 0 0 1
    outer loop
      vertex 0 0 zero
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
endsolid broken
`
	path := writeTempFile(t, "broken.stl", []byte(broken))

	if _, err := Parse(path); err == nil {
		t.Fatal("expected error for malformed vertex coordinate")
	}
}

func TestParseBinary(t *testing.T) {
	var buf bytes.Buffer

	header := make([]byte, 80)
	copy(header, "binary test part")
	buf.Write(header)
	binary.Write(&buf, binary.LittleEndian, uint32(1))

	// One triangle: normal, three vertices, attribute count
	binary.Write(&buf, binary.LittleEndian, [3]float32{0, 0, 1})
	binary.Write(&buf, binary.LittleEndian, [3]float32{0, 0, 0})
	binary.Write(&buf, binary.LittleEndian, [3]float32{1, 0, 0})
	binary.Write(&buf, binary.LittleEndian, [3]float32{0, 1, 0})
	binary.Write(&buf, binary.LittleEndian, uint16(0))

	path := writeTempFile(t, "part.stl", buf.Bytes())

	model, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if model.Name != "binary test part" {
		t.Errorf("Name failed: got %q", model.Name)
	}
	if model.TriangleCount() != 1 {
		t.Fatalf("TriangleCount failed: expected 1, got %d", model.TriangleCount())
	}

	tri := model.Triangles[0]
	if tri.Normal.Z != 1 || tri.V2.X != 1 || tri.V3.Y != 1 {
		t.Errorf("triangle data wrong: normal %v vertices %v %v %v", tri.Normal, tri.V1, tri.V2, tri.V3)
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), "nope.stl")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestModelScale(t *testing.T) {
	path := writeTempFile(t, "tetra.stl", []byte(asciiTetrahedron))
	model, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	before := model.SurfaceArea()
	model.Scale(2.0)
	after := model.SurfaceArea()

	// Area scales with the square of the factor
	if math.Abs(after-4.0*before) > 1e-10 {
		t.Errorf("Scale failed: area before %v, after %v", before, after)
	}
}
