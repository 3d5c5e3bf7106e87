package renderer

import (
	"fmt"

	gl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/richinsley/goopengltest/geometry"
	"github.com/richinsley/goopengltest/shader"
)

// gpuMesh is a mesh uploaded into a vertex array with its own vertex and element buffers.
type gpuMesh struct {
	name       string
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

func uploadMesh(m *geometry.Mesh) (*gpuMesh, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("refusing to upload mesh: %w", err)
	}

	g := &gpuMesh{
		name:       m.Name,
		indexCount: int32(len(m.Indices)),
	}

	// The element buffer binding is recorded in the VAO, so it is bound while the VAO is.
	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(shader.PositionAttrib, geometry.ComponentsPerVertex, gl.FLOAT, false, m.Stride(), gl.PtrOffset(0))
	gl.EnableVertexAttribArray(shader.PositionAttrib)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return g, nil
}

func (g *gpuMesh) draw() {
	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (g *gpuMesh) destroy() {
	gl.DeleteVertexArrays(1, &g.vao)
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteBuffers(1, &g.ebo)
}
