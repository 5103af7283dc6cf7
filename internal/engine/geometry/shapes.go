package geometry

import "math"

// BuildPlane returns a unit plane in the XZ plane spanning [-1,1] on both
// axes, facing +Y.
func BuildPlane() MeshData {
	var m MeshData
	a := m.vertex(-1, 0, -1, 0, 1, 0, 0, 0)
	b := m.vertex(-1, 0, 1, 0, 1, 0, 0, 1)
	c := m.vertex(1, 0, 1, 0, 1, 0, 1, 1)
	d := m.vertex(1, 0, -1, 0, 1, 0, 1, 0)
	m.quad(a, b, c, d)
	return m
}

// BuildBox returns a unit cube centered at the origin with per-face normals.
func BuildBox() MeshData {
	var m MeshData
	h := float32(0.5)

	// Each face is four vertices sharing one normal.
	faces := []struct {
		n       [3]float32
		corners [4][3]float32
	}{
		// +Z front
		{[3]float32{0, 0, 1}, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		// -Z back
		{[3]float32{0, 0, -1}, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		// +X right
		{[3]float32{1, 0, 0}, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		// -X left
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		// +Y top
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		// -Y bottom
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}

	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for _, f := range faces {
		var idx [4]uint32
		for i, p := range f.corners {
			idx[i] = m.vertex(p[0], p[1], p[2], f.n[0], f.n[1], f.n[2], uvs[i][0], uvs[i][1])
		}
		m.quad(idx[0], idx[1], idx[2], idx[3])
	}
	return m
}

// BuildCylinder returns a cylinder of radius 1 with its base at y=0 and its
// top at y=1, with capped ends.
func BuildCylinder(segments int) MeshData {
	var m MeshData

	// Side: duplicate the seam vertex so UVs wrap cleanly.
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		c := float32(math.Cos(theta))
		s := float32(math.Sin(theta))
		u := float32(i) / float32(segments)

		m.vertex(c, 0, s, c, 0, s, u, 0)
		m.vertex(c, 1, s, c, 0, s, u, 1)
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		m.quad(base, base+2, base+3, base+1)
	}

	// Bottom cap, facing -Y.
	bottomCenter := m.vertex(0, 0, 0, 0, -1, 0, 0.5, 0.5)
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		c := float32(math.Cos(theta))
		s := float32(math.Sin(theta))
		m.vertex(c, 0, s, 0, -1, 0, 0.5+c/2, 0.5+s/2)
	}
	for i := 0; i < segments; i++ {
		m.tri(bottomCenter, bottomCenter+1+uint32(i), bottomCenter+2+uint32(i))
	}

	// Top cap, facing +Y.
	topCenter := m.vertex(0, 1, 0, 0, 1, 0, 0.5, 0.5)
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		c := float32(math.Cos(theta))
		s := float32(math.Sin(theta))
		m.vertex(c, 1, s, 0, 1, 0, 0.5+c/2, 0.5+s/2)
	}
	for i := 0; i < segments; i++ {
		m.tri(topCenter, topCenter+2+uint32(i), topCenter+1+uint32(i))
	}

	return m
}

// torusTubeRadius is the tube radius relative to the ring radius of 1.
const torusTubeRadius = 0.25

// BuildTorus returns a torus of ring radius 1 lying in the XY plane, so its
// hole faces along the Z axis.
func BuildTorus(rings, sides int) MeshData {
	var m MeshData
	r := float32(torusTubeRadius)

	for i := 0; i <= rings; i++ {
		theta := 2 * math.Pi * float64(i) / float64(rings)
		ct := float32(math.Cos(theta))
		st := float32(math.Sin(theta))

		for j := 0; j <= sides; j++ {
			phi := 2 * math.Pi * float64(j) / float64(sides)
			cp := float32(math.Cos(phi))
			sp := float32(math.Sin(phi))

			px := (1 + r*cp) * ct
			py := (1 + r*cp) * st
			pz := r * sp

			m.vertex(px, py, pz,
				cp*ct, cp*st, sp,
				float32(i)/float32(rings), float32(j)/float32(sides))
		}
	}

	stride := uint32(sides + 1)
	for i := 0; i < rings; i++ {
		for j := 0; j < sides; j++ {
			a := uint32(i)*stride + uint32(j)
			m.quad(a, a+stride, a+stride+1, a+1)
		}
	}
	return m
}

// BuildPrism returns a triangular prism: an isosceles triangle in the XY
// plane (base width 1 at y=0, apex at y=1) extruded along Z from -0.5 to 0.5.
func BuildPrism() MeshData {
	var m MeshData
	h := float32(0.5)

	// Triangle corners.
	bl := [2]float32{-0.5, 0}
	br := [2]float32{0.5, 0}
	ap := [2]float32{0, 1}

	// Front face (+Z).
	a := m.vertex(bl[0], bl[1], h, 0, 0, 1, 0, 0)
	b := m.vertex(br[0], br[1], h, 0, 0, 1, 1, 0)
	c := m.vertex(ap[0], ap[1], h, 0, 0, 1, 0.5, 1)
	m.tri(a, b, c)

	// Back face (-Z).
	a = m.vertex(br[0], br[1], -h, 0, 0, -1, 0, 0)
	b = m.vertex(bl[0], bl[1], -h, 0, 0, -1, 1, 0)
	c = m.vertex(ap[0], ap[1], -h, 0, 0, -1, 0.5, 1)
	m.tri(a, b, c)

	// Bottom face (-Y).
	q0 := m.vertex(bl[0], 0, -h, 0, -1, 0, 0, 0)
	q1 := m.vertex(br[0], 0, -h, 0, -1, 0, 1, 0)
	q2 := m.vertex(br[0], 0, h, 0, -1, 0, 1, 1)
	q3 := m.vertex(bl[0], 0, h, 0, -1, 0, 0, 1)
	m.quad(q0, q1, q2, q3)

	// Slanted side faces; normals point away from the triangle interior.
	ln := normalize2(-1, 0.5)
	q0 = m.vertex(bl[0], bl[1], h, ln[0], ln[1], 0, 0, 0)
	q1 = m.vertex(ap[0], ap[1], h, ln[0], ln[1], 0, 1, 0)
	q2 = m.vertex(ap[0], ap[1], -h, ln[0], ln[1], 0, 1, 1)
	q3 = m.vertex(bl[0], bl[1], -h, ln[0], ln[1], 0, 0, 1)
	m.quad(q0, q1, q2, q3)

	rn := normalize2(1, 0.5)
	q0 = m.vertex(br[0], br[1], -h, rn[0], rn[1], 0, 0, 0)
	q1 = m.vertex(ap[0], ap[1], -h, rn[0], rn[1], 0, 1, 0)
	q2 = m.vertex(ap[0], ap[1], h, rn[0], rn[1], 0, 1, 1)
	q3 = m.vertex(br[0], br[1], h, rn[0], rn[1], 0, 0, 1)
	m.quad(q0, q1, q2, q3)

	return m
}

// BuildCone returns a cone of base radius 1 at y=0 with its apex at y=1,
// with a capped base.
func BuildCone(segments int) MeshData {
	var m MeshData

	// Side. The apex is duplicated per segment so each slice carries the
	// averaged slant normal of its midpoint.
	invSqrt2 := float32(1 / math.Sqrt2)
	for i := 0; i < segments; i++ {
		t0 := 2 * math.Pi * float64(i) / float64(segments)
		t1 := 2 * math.Pi * float64(i+1) / float64(segments)
		tm := (t0 + t1) / 2

		c0, s0 := float32(math.Cos(t0)), float32(math.Sin(t0))
		c1, s1 := float32(math.Cos(t1)), float32(math.Sin(t1))
		cm, sm := float32(math.Cos(tm)), float32(math.Sin(tm))

		a := m.vertex(c0, 0, s0, c0*invSqrt2, invSqrt2, s0*invSqrt2,
			float32(i)/float32(segments), 0)
		b := m.vertex(c1, 0, s1, c1*invSqrt2, invSqrt2, s1*invSqrt2,
			float32(i+1)/float32(segments), 0)
		apex := m.vertex(0, 1, 0, cm*invSqrt2, invSqrt2, sm*invSqrt2,
			(float32(i)+0.5)/float32(segments), 1)
		m.tri(a, apex, b)
	}

	// Base cap, facing -Y.
	center := m.vertex(0, 0, 0, 0, -1, 0, 0.5, 0.5)
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		c := float32(math.Cos(theta))
		s := float32(math.Sin(theta))
		m.vertex(c, 0, s, 0, -1, 0, 0.5+c/2, 0.5+s/2)
	}
	for i := 0; i < segments; i++ {
		m.tri(center, center+1+uint32(i), center+2+uint32(i))
	}

	return m
}

// normalize2 returns the unit 2D vector for (x, y).
func normalize2(x, y float32) [2]float32 {
	l := float32(math.Sqrt(float64(x*x + y*y)))
	return [2]float32{x / l, y / l}
}
