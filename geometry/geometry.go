package geometry

import (
	"errors"
	"fmt"
	"strings"
)

// ComponentsPerVertex is the number of floats per vertex (x, y, z).
const ComponentsPerVertex = 3

// ErrUnknownShape is returned by Lookup for names that are not built in.
var ErrUnknownShape = errors.New("unknown shape")

// Mesh is a flat, indexed triangle list in normalized device coordinates.
type Mesh struct {
	Name     string
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of xyz vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / ComponentsPerVertex
}

// TriangleCount returns the number of triangles described by the index array.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Stride is the byte distance between consecutive vertices.
func (m *Mesh) Stride() int32 {
	return ComponentsPerVertex * 4
}

// Validate checks that the vertex and index arrays describe whole triangles
// and that every index refers to an existing vertex.
func (m *Mesh) Validate() error {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return fmt.Errorf("mesh %q is empty", m.Name)
	}
	if len(m.Vertices)%ComponentsPerVertex != 0 {
		return fmt.Errorf("mesh %q: vertex array length %d is not a multiple of %d", m.Name, len(m.Vertices), ComponentsPerVertex)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh %q: index count %d is not a multiple of 3", m.Name, len(m.Indices))
	}
	count := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= count {
			return fmt.Errorf("mesh %q: index %d at position %d out of range (%d vertices)", m.Name, idx, i, count)
		}
	}
	return nil
}

// Triangle is a single triangle centered on the origin.
var Triangle = Mesh{
	Name: "triangle",
	Vertices: []float32{
		//  x     y     z
		-0.5, -0.5, 0.0,
		0.5, -0.5, 0.0,
		0.0, 0.5, 0.0,
	},
	Indices: []uint32{0, 1, 2},
}

// Quad is a square made of two triangles sharing the top-right/bottom-left edge.
var Quad = Mesh{
	Name: "quad",
	Vertices: []float32{
		0.5, 0.5, 0.0,   // top right
		0.5, -0.5, 0.0,  // bottom right
		-0.5, -0.5, 0.0, // bottom left
		-0.5, 0.5, 0.0,  // top left
	},
	Indices: []uint32{
		0, 1, 3,
		1, 2, 3,
	},
}

// LetterM draws an "M" out of a left stem, two diagonals and a right stem.
var LetterM = Mesh{
	Name: "m",
	Vertices: []float32{
		-0.25, -0.5, 0.0, // left stem, bottom right
		-0.5, -0.5, 0.0,  // left stem, bottom left
		-0.5, 0.5, 0.0,   // left stem, top left
		-0.25, 0.5, 0.0,  // left stem, top right

		0.1, 0.1, 0.0,    // middle vertex
		-0.25, 0.27, 0.0, // left diagonal, bottom

		0.45, 0.5, 0.0,  // right stem, top left
		0.45, 0.27, 0.0, // right diagonal, bottom

		0.45, -0.5, 0.0, // right stem, bottom left
		0.7, 0.5, 0.0,   // right stem, top right
		0.7, -0.5, 0.0,  // right stem, bottom right
	},
	Indices: []uint32{
		0, 1, 3,
		1, 2, 3,
		3, 4, 5,
		7, 6, 4,
		6, 9, 8,
		8, 10, 9,
	},
}

// Builtin returns every built-in mesh in upload order.
func Builtin() []*Mesh {
	return []*Mesh{&Triangle, &Quad, &LetterM}
}

// Names lists the names accepted by Lookup.
func Names() []string {
	meshes := Builtin()
	names := make([]string, 0, len(meshes))
	for _, m := range meshes {
		names = append(names, m.Name)
	}
	return names
}

// Lookup finds a built-in mesh by name, ignoring case.
func Lookup(name string) (*Mesh, error) {
	for _, m := range Builtin() {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownShape, name, strings.Join(Names(), ", "))
}
