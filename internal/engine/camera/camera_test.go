package camera

import (
	gomath "math"
	"testing"
)

func TestPositionAtDefaultYawIsBehindCenter(t *testing.T) {
	c := NewOrbitCamera()
	c.RotationX = 0
	c.RotationY = 0

	pos := c.Position()
	if pos.X != c.Center.X || pos.Y != c.Center.Y {
		t.Fatalf("position = %+v, want X/Y at center", pos)
	}
	if got := pos.Z - c.Center.Z; gomath.Abs(float64(got-c.Distance)) > 1e-4 {
		t.Fatalf("Z offset = %v, want %v", got, c.Distance)
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()

	c.HandleDrag(0, 1e6)
	if c.RotationX != c.MaxPitch {
		t.Fatalf("pitch = %v, want clamped to %v", c.RotationX, c.MaxPitch)
	}

	c.HandleDrag(0, -1e6)
	if c.RotationX != c.MinPitch {
		t.Fatalf("pitch = %v, want clamped to %v", c.RotationX, c.MinPitch)
	}
}

func TestHandleZoomClampsDistance(t *testing.T) {
	c := NewOrbitCamera()

	for i := 0; i < 100; i++ {
		c.HandleZoom(10)
	}
	if c.Distance != c.MinDistance {
		t.Fatalf("distance = %v, want clamped to %v", c.Distance, c.MinDistance)
	}

	for i := 0; i < 100; i++ {
		c.HandleZoom(-10)
	}
	if c.Distance != c.MaxDistance {
		t.Fatalf("distance = %v, want clamped to %v", c.Distance, c.MaxDistance)
	}
}

func TestHandlePanMovesCenter(t *testing.T) {
	c := NewOrbitCamera()
	c.RotationY = 0
	before := c.Center

	c.HandlePan(1, 0, 0)
	if c.Center.Z >= before.Z {
		t.Fatalf("forward pan did not move center into the scene: %v -> %v", before.Z, c.Center.Z)
	}

	c.HandlePan(0, 0, 1)
	if c.Center.Y <= before.Y {
		t.Fatalf("upward pan did not raise center: %v -> %v", before.Y, c.Center.Y)
	}
}

func TestViewMatrixLooksAtCenter(t *testing.T) {
	c := NewOrbitCamera()
	m := c.ViewMatrix()

	// The center must land on the view-space -Z axis at -Distance.
	p := m.TransformPoint([3]float32{c.Center.X, c.Center.Y, c.Center.Z})
	if gomath.Abs(float64(p[0])) > 1e-4 || gomath.Abs(float64(p[1])) > 1e-4 {
		t.Fatalf("center in view space = %v, want on the Z axis", p)
	}
	if gomath.Abs(float64(p[2]+c.Distance)) > 1e-3 {
		t.Fatalf("center depth = %v, want %v", p[2], -c.Distance)
	}
}
