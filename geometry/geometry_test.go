package geometry

import (
	"errors"
	"testing"
)

func TestBuiltinMeshesValidate(t *testing.T) {
	for _, m := range Builtin() {
		if err := m.Validate(); err != nil {
			t.Errorf("%s: unexpected error: %v", m.Name, err)
		}
	}
}

func TestLetterMShape(t *testing.T) {
	if got := LetterM.VertexCount(); got != 11 {
		t.Errorf("expected 11 vertices, got %d", got)
	}
	if got := LetterM.TriangleCount(); got != 6 {
		t.Errorf("expected 6 triangles, got %d", got)
	}
	if got := len(LetterM.Indices); got != 18 {
		t.Errorf("expected 18 indices, got %d", got)
	}
}

func TestMeshesStayInClipSpace(t *testing.T) {
	for _, m := range Builtin() {
		for i, v := range m.Vertices {
			if v < -1 || v > 1 {
				t.Errorf("%s: component %d = %v outside [-1, 1]", m.Name, i, v)
			}
		}
	}
}

func TestStride(t *testing.T) {
	if got := LetterM.Stride(); got != 12 {
		t.Errorf("expected stride 12, got %d", got)
	}
}

func TestValidateRejectsBadMeshes(t *testing.T) {
	tests := []struct {
		name string
		mesh Mesh
	}{
		{"empty", Mesh{Name: "empty"}},
		{"partial vertex", Mesh{Name: "pv", Vertices: []float32{0, 0}, Indices: []uint32{0, 0, 0}}},
		{"partial triangle", Mesh{Name: "pt", Vertices: []float32{0, 0, 0}, Indices: []uint32{0, 0}}},
		{"index out of range", Mesh{Name: "oor", Vertices: []float32{0, 0, 0, 1, 1, 0}, Indices: []uint32{0, 1, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.mesh.Validate(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want *Mesh
	}{
		{"m", &LetterM},
		{"M", &LetterM},
		{"triangle", &Triangle},
		{"Quad", &Quad},
	}
	for _, tt := range tests {
		got, err := Lookup(tt.name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("Lookup(%q) = %s, want %s", tt.name, got.Name, tt.want.Name)
		}
	}

	if _, err := Lookup("hexagon"); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("expected ErrUnknownShape, got %v", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 3 || names[0] != "triangle" || names[1] != "quad" || names[2] != "m" {
		t.Errorf("unexpected names %v", names)
	}
}
