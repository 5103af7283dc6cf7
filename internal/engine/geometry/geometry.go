// Package geometry builds vertex and index data for the primitive shapes
// used by the desk scene. All builders are pure CPU code; GPU upload lives
// in the mesh package.
package geometry

// Kind identifies a primitive shape.
type Kind int

const (
	KindPlane Kind = iota
	KindBox
	KindCylinder
	KindTorus
	KindPrism
	KindCone
)

// String returns the shape name.
func (k Kind) String() string {
	switch k {
	case KindPlane:
		return "plane"
	case KindBox:
		return "box"
	case KindCylinder:
		return "cylinder"
	case KindTorus:
		return "torus"
	case KindPrism:
		return "prism"
	case KindCone:
		return "cone"
	default:
		return "unknown"
	}
}

// AllKinds returns every primitive kind.
func AllKinds() []Kind {
	return []Kind{KindPlane, KindBox, KindCylinder, KindTorus, KindPrism, KindCone}
}

// FloatsPerVertex is the interleaved vertex layout width:
// position (3) + normal (3) + UV (2).
const FloatsPerVertex = 8

// MeshData holds interleaved vertex data and triangle indices for one shape.
type MeshData struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices in the buffer.
func (m MeshData) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

// Build returns the mesh data for the given primitive kind.
func Build(k Kind) MeshData {
	switch k {
	case KindPlane:
		return BuildPlane()
	case KindBox:
		return BuildBox()
	case KindCylinder:
		return BuildCylinder(defaultSegments)
	case KindTorus:
		return BuildTorus(defaultSegments, defaultSegments/2)
	case KindPrism:
		return BuildPrism()
	case KindCone:
		return BuildCone(defaultSegments)
	default:
		return MeshData{}
	}
}

// defaultSegments is the tessellation level for round shapes.
const defaultSegments = 36

// vertex appends one interleaved vertex to the buffer.
func (m *MeshData) vertex(px, py, pz, nx, ny, nz, u, v float32) uint32 {
	idx := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices, px, py, pz, nx, ny, nz, u, v)
	return idx
}

// tri appends one triangle.
func (m *MeshData) tri(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// quad appends two triangles covering the quad a-b-c-d.
func (m *MeshData) quad(a, b, c, d uint32) {
	m.tri(a, b, c)
	m.tri(a, c, d)
}
