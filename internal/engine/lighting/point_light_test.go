package lighting

import (
	"testing"

	"github.com/Faultbox/deskscene/pkg/math"
)

// recorder captures uniform calls in order.
type recorder struct {
	vec3s map[string]math.Vec3
	bools map[string]bool
}

func newRecorder() *recorder {
	return &recorder{
		vec3s: make(map[string]math.Vec3),
		bools: make(map[string]bool),
	}
}

func (r *recorder) SetVec3(name string, v math.Vec3) { r.vec3s[name] = v }
func (r *recorder) SetBool(name string, b bool)      { r.bools[name] = b }

func TestApply(t *testing.T) {
	rec := newRecorder()
	light := PointLight{
		Position: math.Vec3{X: 0, Y: 20, Z: 20},
		Ambient:  math.Vec3{X: 0.86, Y: 0.85, Z: 0.88},
		Diffuse:  math.Vec3{X: 0.3, Y: 0.3, Z: 0.3},
		Specular: math.Vec3{X: 0.01, Y: 0.01, Z: 0.01},
		Active:   true,
	}

	light.Apply(rec, 0)

	if got := rec.vec3s["pointLights[0].position"]; got != light.Position {
		t.Errorf("position: got %v, want %v", got, light.Position)
	}
	if got := rec.vec3s["pointLights[0].ambient"]; got != light.Ambient {
		t.Errorf("ambient: got %v, want %v", got, light.Ambient)
	}
	if got := rec.vec3s["pointLights[0].diffuse"]; got != light.Diffuse {
		t.Errorf("diffuse: got %v, want %v", got, light.Diffuse)
	}
	if got := rec.vec3s["pointLights[0].specular"]; got != light.Specular {
		t.Errorf("specular: got %v, want %v", got, light.Specular)
	}
	if !rec.bools["pointLights[0].bActive"] {
		t.Error("bActive should be true")
	}
}

func TestApplyAllDeactivatesUnusedSlots(t *testing.T) {
	rec := newRecorder()
	lights := []PointLight{
		{Position: math.Vec3{X: 1}, Active: true},
		{Position: math.Vec3{X: 2}, Active: true},
	}

	ApplyAll(rec, lights)

	if !rec.bools["pointLights[0].bActive"] || !rec.bools["pointLights[1].bActive"] {
		t.Error("supplied lights should be active")
	}
	for i := 2; i < MaxPointLights; i++ {
		name := "pointLights[" + string(rune('0'+i)) + "].bActive"
		active, ok := rec.bools[name]
		if !ok {
			t.Errorf("slot %d should have been touched", i)
		}
		if active {
			t.Errorf("slot %d should be inactive", i)
		}
	}
}

func TestApplyAllTruncates(t *testing.T) {
	rec := newRecorder()
	lights := make([]PointLight, MaxPointLights+3)
	for i := range lights {
		lights[i].Active = true
	}

	ApplyAll(rec, lights)

	if len(rec.bools) != MaxPointLights {
		t.Errorf("bActive uploads: got %d, want %d", len(rec.bools), MaxPointLights)
	}
}
