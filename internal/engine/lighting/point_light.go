// Package lighting uploads the scene's point lights as shader uniforms.
package lighting

import (
	"fmt"

	"github.com/Faultbox/deskscene/pkg/math"
)

// MaxPointLights matches the pointLights array length in the fragment shader.
const MaxPointLights = 5

// UniformSetter is the subset of shader uniform operations lighting needs.
type UniformSetter interface {
	SetVec3(name string, v math.Vec3)
	SetBool(name string, b bool)
}

// PointLight is one point light source. Intensities are RGB in [0,1].
type PointLight struct {
	Position math.Vec3
	Ambient  math.Vec3
	Diffuse  math.Vec3
	Specular math.Vec3
	Active   bool
}

// Apply uploads this light's uniform block at the given array index.
func (l PointLight) Apply(s UniformSetter, index int) {
	prefix := fmt.Sprintf("pointLights[%d]", index)
	s.SetVec3(prefix+".position", l.Position)
	s.SetVec3(prefix+".ambient", l.Ambient)
	s.SetVec3(prefix+".diffuse", l.Diffuse)
	s.SetVec3(prefix+".specular", l.Specular)
	s.SetBool(prefix+".bActive", l.Active)
}

// ApplyAll uploads the given lights and deactivates every remaining slot,
// so stale driver state from a previous program never leaks into the frame.
func ApplyAll(s UniformSetter, lights []PointLight) {
	n := len(lights)
	if n > MaxPointLights {
		n = MaxPointLights
	}
	for i := 0; i < n; i++ {
		lights[i].Apply(s, i)
	}
	for i := n; i < MaxPointLights; i++ {
		s.SetBool(fmt.Sprintf("pointLights[%d].bActive", i), false)
	}
}
