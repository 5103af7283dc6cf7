package scene

import (
	"strings"
	"testing"

	"github.com/Faultbox/deskscene/internal/engine/geometry"
	"github.com/Faultbox/deskscene/internal/engine/lighting"
	"github.com/Faultbox/deskscene/pkg/math"
)

func TestDeskScriptIsSelfConsistent(t *testing.T) {
	entries := DeskScript()
	if len(entries) != 44 {
		t.Fatalf("entries = %d, want 44", len(entries))
	}

	textureTags := make(map[string]bool)
	for _, tf := range DeskTextures() {
		textureTags[tf.Tag] = true
	}
	materialTags := make(map[string]bool)
	for _, m := range DeskMaterials() {
		materialTags[m.Tag] = true
	}
	validKinds := make(map[geometry.Kind]bool)
	for _, k := range geometry.AllKinds() {
		validKinds[k] = true
	}

	names := make(map[string]bool)
	for i, e := range entries {
		if e.Name == "" {
			t.Errorf("entry %d has no name", i)
		}
		if names[e.Name] {
			t.Errorf("entry %d reuses name %q", i, e.Name)
		}
		names[e.Name] = true

		if !validKinds[e.Shape] {
			t.Errorf("entry %d (%s) has unknown shape %v", i, e.Name, e.Shape)
		}
		if e.Appearance.IsTextured() && !textureTags[e.Appearance.TextureTag] {
			t.Errorf("entry %d (%s) references unregistered texture %q", i, e.Name, e.Appearance.TextureTag)
		}
		if e.Material != "" && !materialTags[e.Material] {
			t.Errorf("entry %d (%s) references undefined material %q", i, e.Name, e.Material)
		}
		if e.Transform.Scale == (math.Vec3{}) {
			t.Errorf("entry %d (%s) has zero scale", i, e.Name)
		}
	}
}

func TestDeskScriptAppearancesAreExclusive(t *testing.T) {
	for i, e := range DeskScript() {
		tex := e.Appearance.IsTextured()
		colored := e.Appearance.Color != [4]float32{}
		if tex == colored {
			t.Errorf("entry %d (%s): textured=%t colored=%t, want exactly one", i, e.Name, tex, colored)
		}
		if tex && (e.Appearance.UVScale.X <= 0 || e.Appearance.UVScale.Y <= 0) {
			t.Errorf("entry %d (%s): non-positive UV scale %+v", i, e.Name, e.Appearance.UVScale)
		}
	}
}

func TestDeskTexturesFilesMatchTags(t *testing.T) {
	files := DeskTextures()
	seen := make(map[string]bool)
	for _, tf := range files {
		if seen[tf.Tag] {
			t.Errorf("duplicate texture tag %q", tf.Tag)
		}
		seen[tf.Tag] = true
		if want := tf.Tag + ".jpg"; tf.File != want {
			t.Errorf("tag %q file = %q, want %q", tf.Tag, tf.File, want)
		}
		if strings.ContainsAny(tf.File, "/\\") {
			t.Errorf("file %q must be a bare name", tf.File)
		}
	}
}

func TestDeskLightsWithinShaderCapacity(t *testing.T) {
	lights := DeskLights()
	if len(lights) == 0 {
		t.Fatal("no lights defined")
	}
	if len(lights) > lighting.MaxPointLights {
		t.Fatalf("%d lights exceed shader capacity %d", len(lights), lighting.MaxPointLights)
	}
	active := 0
	for _, l := range lights {
		if l.Active {
			active++
		}
	}
	if active == 0 {
		t.Fatal("no active lights")
	}
}
