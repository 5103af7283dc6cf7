package geometry

import (
	"math"
	"testing"
)

func TestBuildAllKinds(t *testing.T) {
	for _, kind := range AllKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			m := Build(kind)

			if len(m.Vertices) == 0 {
				t.Fatal("no vertices generated")
			}
			if len(m.Vertices)%FloatsPerVertex != 0 {
				t.Fatalf("vertex buffer length %d not a multiple of %d",
					len(m.Vertices), FloatsPerVertex)
			}
			if len(m.Indices)%3 != 0 {
				t.Fatalf("index count %d not a multiple of 3", len(m.Indices))
			}

			// Every index must address a real vertex.
			count := uint32(m.VertexCount())
			for _, idx := range m.Indices {
				if idx >= count {
					t.Fatalf("index %d out of range (have %d vertices)", idx, count)
				}
			}

			// Normals must be unit length.
			for v := 0; v < m.VertexCount(); v++ {
				nx := m.Vertices[v*FloatsPerVertex+3]
				ny := m.Vertices[v*FloatsPerVertex+4]
				nz := m.Vertices[v*FloatsPerVertex+5]
				l := math.Sqrt(float64(nx*nx + ny*ny + nz*nz))
				if math.Abs(l-1) > 0.001 {
					t.Fatalf("vertex %d normal (%f, %f, %f) has length %f", v, nx, ny, nz, l)
				}
			}
		})
	}
}

func TestBuildPlane(t *testing.T) {
	m := BuildPlane()

	if m.VertexCount() != 4 {
		t.Errorf("plane vertex count: got %d, want 4", m.VertexCount())
	}
	if len(m.Indices) != 6 {
		t.Errorf("plane index count: got %d, want 6", len(m.Indices))
	}

	// All normals face +Y.
	for v := 0; v < m.VertexCount(); v++ {
		if m.Vertices[v*FloatsPerVertex+4] != 1 {
			t.Errorf("plane vertex %d normal should be +Y", v)
		}
	}
}

func TestBuildBox(t *testing.T) {
	m := BuildBox()

	if m.VertexCount() != 24 {
		t.Errorf("box vertex count: got %d, want 24", m.VertexCount())
	}
	if len(m.Indices) != 36 {
		t.Errorf("box index count: got %d, want 36", len(m.Indices))
	}

	// Unit cube: every position component is +-0.5.
	for v := 0; v < m.VertexCount(); v++ {
		for c := 0; c < 3; c++ {
			p := m.Vertices[v*FloatsPerVertex+c]
			if p != 0.5 && p != -0.5 {
				t.Errorf("box vertex %d component %d: got %f, want +-0.5", v, c, p)
			}
		}
	}
}

func TestBuildCylinderBounds(t *testing.T) {
	m := BuildCylinder(16)

	// Base at y=0, top at y=1, radius 1.
	for v := 0; v < m.VertexCount(); v++ {
		x := m.Vertices[v*FloatsPerVertex]
		y := m.Vertices[v*FloatsPerVertex+1]
		z := m.Vertices[v*FloatsPerVertex+2]
		if y < 0 || y > 1 {
			t.Fatalf("cylinder vertex %d y=%f out of [0,1]", v, y)
		}
		if r := math.Sqrt(float64(x*x + z*z)); r > 1.001 {
			t.Fatalf("cylinder vertex %d radius %f exceeds 1", v, r)
		}
	}
}

func TestBuildTorusLiesInXYPlane(t *testing.T) {
	m := BuildTorus(16, 8)

	// The tube is centered on a unit ring in the XY plane, so Z stays within
	// the tube radius and XY distance stays within ring +- tube radius.
	for v := 0; v < m.VertexCount(); v++ {
		x := m.Vertices[v*FloatsPerVertex]
		y := m.Vertices[v*FloatsPerVertex+1]
		z := m.Vertices[v*FloatsPerVertex+2]
		if math.Abs(float64(z)) > torusTubeRadius+0.001 {
			t.Fatalf("torus vertex %d z=%f outside tube radius", v, z)
		}
		d := math.Sqrt(float64(x*x + y*y))
		if d < 1-torusTubeRadius-0.001 || d > 1+torusTubeRadius+0.001 {
			t.Fatalf("torus vertex %d ring distance %f out of range", v, d)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindPlane, "plane"},
		{KindBox, "box"},
		{KindCylinder, "cylinder"},
		{KindTorus, "torus"},
		{KindPrism, "prism"},
		{KindCone, "cone"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String(): got %q, want %q", tt.kind, got, tt.want)
		}
	}
}
