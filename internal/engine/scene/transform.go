package scene

import (
	gomath "math"

	"github.com/Faultbox/deskscene/pkg/math"
)

// Transform places one scene object: per-axis scale, per-axis rotation in
// degrees, and world position.
type Transform struct {
	Scale    math.Vec3
	Rotation math.Vec3 // degrees about X, Y, Z
	Position math.Vec3
}

// Matrix composes the model matrix as T * Rz * Ry * Rx * S, so scale is
// applied first and translation last. The order is load-bearing: the scene
// table was authored against it and matrix multiplication does not commute.
func (t Transform) Matrix() math.Mat4 {
	s := math.Scale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	rx := math.RotateX(radians(t.Rotation.X))
	ry := math.RotateY(radians(t.Rotation.Y))
	rz := math.RotateZ(radians(t.Rotation.Z))
	tr := math.Translate(t.Position.X, t.Position.Y, t.Position.Z)

	return tr.Mul(rz).Mul(ry).Mul(rx).Mul(s)
}

// radians converts degrees to radians.
func radians(deg float32) float32 {
	return deg * gomath.Pi / 180
}
