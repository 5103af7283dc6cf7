// Package mesh uploads primitive geometry to the GPU and issues draw calls.
package mesh

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/deskscene/internal/engine/geometry"
)

// glMesh holds the GPU buffers for one primitive kind.
type glMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Library owns one uploaded mesh per primitive kind. Load is idempotent:
// each kind is uploaded once no matter how many scene entries draw it.
type Library struct {
	meshes map[geometry.Kind]*glMesh
}

// NewLibrary creates an empty mesh library.
func NewLibrary() *Library {
	return &Library{
		meshes: make(map[geometry.Kind]*glMesh),
	}
}

// Load builds and uploads the given kinds. Already-loaded kinds are skipped.
func (l *Library) Load(kinds ...geometry.Kind) error {
	for _, kind := range kinds {
		if _, ok := l.meshes[kind]; ok {
			continue
		}

		data := geometry.Build(kind)
		if len(data.Vertices) == 0 || len(data.Indices) == 0 {
			return fmt.Errorf("mesh: no geometry for kind %v", kind)
		}
		l.meshes[kind] = upload(data)
	}
	return nil
}

// Draw issues the draw call for one primitive kind using the currently
// bound shader state. The kind must have been loaded.
func (l *Library) Draw(kind geometry.Kind) error {
	m, ok := l.meshes[kind]
	if !ok {
		return fmt.Errorf("mesh: kind %v not loaded", kind)
	}

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	return nil
}

// Destroy releases all GPU buffers.
func (l *Library) Destroy() {
	for _, m := range l.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
	}
	l.meshes = make(map[geometry.Kind]*glMesh)
}

// upload creates the VAO/VBO/EBO for one mesh.
func upload(data geometry.MeshData) *glMesh {
	m := &glMesh{}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*4, unsafe.Pointer(&data.Vertices[0]), gl.STATIC_DRAW)

	stride := int32(geometry.FloatsPerVertex * 4)
	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, unsafe.Pointer(&data.Indices[0]), gl.STATIC_DRAW)

	m.indexCount = int32(len(data.Indices))
	gl.BindVertexArray(0)

	return m
}
