package scene

import (
	"github.com/Faultbox/deskscene/internal/engine/geometry"
	"github.com/Faultbox/deskscene/internal/engine/lighting"
	"github.com/Faultbox/deskscene/internal/engine/material"
	"github.com/Faultbox/deskscene/pkg/math"
)

// DrawEntry is one object instance in the scene: a primitive shape, its
// placement, its appearance and an optional material tag.
type DrawEntry struct {
	Name       string
	Shape      geometry.Kind
	Transform  Transform
	Appearance Appearance
	Material   string
}

// TextureFile pairs an image file name with its registry tag.
type TextureFile struct {
	File string
	Tag  string
}

// DeskTextures lists the scene's texture images in registration order,
// which fixes their texture unit slots.
func DeskTextures() []TextureFile {
	return []TextureFile{
		{"speaker_body.jpg", "speaker_body"},
		{"speaker_mesh.jpg", "speaker_mesh"},
		{"speaker_screws.jpg", "speaker_screws"},
		{"speaker_ring.jpg", "speaker_ring"},
		{"desk_top.jpg", "desk_top"},
		{"plastic.jpg", "plastic"},
		{"keyboard.jpg", "keyboard"},
		{"screen.jpg", "screen"},
		{"keys.jpg", "keys"},
	}
}

// DeskMaterials returns the scene's surface materials in definition order.
func DeskMaterials() []material.Material {
	return []material.Material{
		{
			Tag:       "black screws",
			Diffuse:   math.Vec3{X: 0.02, Y: 0.04, Z: 0.04},
			Specular:  math.Vec3{X: 0.25, Y: 0.25, Z: 0.25},
			Shininess: 35,
		},
		{
			Tag:       "porcelain",
			Diffuse:   math.Vec3{X: 0.8, Y: 0.8, Z: 0.8},
			Specular:  math.Vec3{X: 0.9, Y: 0.9, Z: 0.9},
			Shininess: 5,
		},
		{
			Tag:       "black plastic",
			Diffuse:   math.Vec3{X: 0.05, Y: 0.05, Z: 0.05},
			Specular:  math.Vec3{X: 0.15, Y: 0.15, Z: 0.15},
			Shininess: 10,
		},
	}
}

// DeskLights returns the scene's point lights.
func DeskLights() []lighting.PointLight {
	return []lighting.PointLight{
		{
			Position: math.Vec3{X: 0, Y: 20, Z: 20},
			Ambient:  math.Vec3{X: 0.86, Y: 0.85, Z: 0.88},
			Diffuse:  math.Vec3{X: 0.3, Y: 0.3, Z: 0.3},
			Specular: math.Vec3{X: 0.01, Y: 0.01, Z: 0.01},
			Active:   true,
		},
	}
}

func v(x, y, z float32) math.Vec3 {
	return math.Vec3{X: x, Y: y, Z: z}
}

// DeskScript returns the full desk scene as an ordered draw list. Entries
// are drawn in table order every frame.
func DeskScript() []DrawEntry {
	return []DrawEntry{
		{
			Name:       "desk top",
			Shape:      geometry.KindPlane,
			Transform:  Transform{Scale: v(35, 1, 13), Position: v(0, 0, 0)},
			Appearance: WithTexture("desk_top", 4, 10),
			Material:   "porcelain",
		},

		// Left speaker.
		{
			Name:       "left speaker box",
			Shape:      geometry.KindBox,
			Transform:  Transform{Scale: v(4, 5.5, 4), Rotation: v(0, 10, 0), Position: v(-12, 2.7, -7)},
			Appearance: WithTexture("speaker_body", 1, 1),
			Material:   "black plastic",
		},
		{
			Name:       "left speaker light bar",
			Shape:      geometry.KindCylinder,
			Transform:  Transform{Scale: v(2, 0.05, 0.05), Rotation: v(0, 10, 0), Position: v(-11.66, 0.4, -5)},
			Appearance: FlatColor(1, 0, 0, 1),
		},
		{
			Name:       "left speaker ring",
			Shape:      geometry.KindTorus,
			Transform:  Transform{Scale: v(1.55, 1.55, 0.3), Rotation: v(0, 10, 0), Position: v(-11.6, 2.8, -5)},
			Appearance: WithTexture("speaker_ring", 10, 10),
			Material:   "black plastic",
		},
		{
			Name:       "left speaker upper left screw",
			Shape:      geometry.KindCylinder,
			Transform:  Transform{Scale: v(0.17, 0.08, 0.17), Rotation: v(90, 10, 0), Position: v(-12.9, 3.65, -4.77)},
			Appearance: WithTexture("speaker_screws", 1, 1),
			Material:   "black screws",
		},
		{
			Name:       "left speaker upper right screw",
			Shape:      geometry.KindCylinder,
			Transform:  Transform{Scale: v(0.17, 0.08, 0.17), Rotation: v(90, 10, 0), Position: v(-10.3, 3.65, -5.2)},
			Appearance: WithTexture("speaker_screws", 1, 1),
			Material:   "black screws",
		},
		{
			Name:       "left speaker lower left screw",
			Shape:      geometry.KindCylinder,
			Transform:  Transform{Scale: v(0.17, 0.08, 0.17), Rotation: v(90, 10, 0), Position: v(-12.9, 1.95, -4.77)},
			Appearance: WithTexture("speaker_screws", 1, 1),
			Material:   "black screws",
		},
		{
			Name:       "left speaker lower right screw",
			Shape:      geometry.KindCylinder,
			Transform:  Transform{Scale: v(0.17, 0.08, 0.17), Rotation: v(90, 10, 0), Position: v(-10.3, 1.95, -5.2)},
			Appearance: WithTexture("speaker_screws", 1, 1),
			Material:   "black screws",
		},
		{
			Name:       "left speaker driver mesh",
			Shape:      geometry.KindCylinder,
			Transform:  Transform{Scale: v(1.2, 0.07, 1.2), Rotation: v(90, 10, 0), Position: v(-11.6, 2.8, -5.05)},
			Appearance: WithTexture("speaker_mesh", 10, 10),
			Material:   "black screws",
		},

		// Right speaker, mirrored across the YZ plane.
		{
			Name:       "right speaker box",
			Shape:      geometry.KindBox,
			Transform:  Transform{Scale: v(4, 5.5, 4), Rotation: v(0, -10, 0), Position: v(12, 2.7, -7)},
			Appearance: WithTexture("speaker_body", 1, 1),
			Material:   "black plastic",
		},
		{
			Name:       "right speaker light bar",
			Shape:      geometry.KindCylinder,
			Transform:  Transform{Scale: v(2, 0.05, 0.05), Rotation: v(0, -10, 0), Position: v(11.66, 0.4, -5)},
			Appearance: FlatColor(1, 0, 0, 1),
		},
		{
			Name:       "right speaker ring",
			Shape:      geometry.KindTorus,
			Transform:  Transform{Scale: v(1.55, 1.55, 0.3), Rotation: v(0, -10, 0), Position: v(11.6, 2.8, -5)},
			Appearance: WithTexture("speaker_ring", 10, 10),
			Material:   "black plastic",
		},
		{
			Name:       "right speaker upper left screw",
			Shape:      geometry.KindCylinder,
			Transform:  Transform{Scale: v(0.17, 0.08, 0.17), Rotation: v(90, -10, 0), Position: v(12.9, 3.65, -4.77)},
			Appearance: WithTexture("speaker_screws", 1, 1),
			Material:   "black screws",
		},
		{
			Name:       "right speaker upper right screw",
			Shape:      geometry.KindCylinder,
			Transform:  Transform{Scale: v(0.17, 0.08, 0.17), Rotation: v(90, -10, 0), Position: v(10.3, 3.65, -5.2)},
			Appearance: WithTexture("speaker_screws", 1, 1),
			Material:   "black screws",
		},
		{
			Name:       "right speaker lower left screw",
			Shape:      geometry.KindCylinder,
			Transform:  Transform{Scale: v(0.17, 0.08, 0.17), Rotation: v(90, -10, 0), Position: v(12.9, 1.95, -4.77)},
			Appearance: WithTexture("speaker_screws", 1, 1),
			Material:   "black screws",
		},
		{
			Name:       "right speaker lower right screw",
			Shape:      geometry.KindCylinder,
			Transform:  Transform{Scale: v(0.17, 0.08, 0.17), Rotation: v(90, -10, 0), Position: v(10.3, 1.95, -5.2)},
			Appearance: WithTexture("speaker_screws", 1, 1),
			Material:   "black screws",
		},
		{
			Name:       "right speaker driver mesh",
			Shape:      geometry.KindCylinder,
			Transform:  Transform{Scale: v(1.2, 0.07, 1.2), Rotation: v(90, -10, 0), Position: v(11.6, 2.8, -5.05)},
			Appearance: WithTexture("speaker_mesh", 10, 10),
			Material:   "black screws",
		},

		// Computer tower.
		{
			Name:       "tower box",
			Shape:      geometry.KindBox,
			Transform:  Transform{Scale: v(8, 13, 14), Position: v(23, 6.5, 1)},
			Appearance: WithTexture("keyboard", 10, 10),
		},
		{
			Name:       "tower glass panel",
			Shape:      geometry.KindPlane,
			Transform:  Transform{Scale: v(6.5, 0, 6.5), Rotation: v(0, 90, 90), Position: v(18.9, 6.5, 0.5)},
			Appearance: WithTexture("plastic", 10, 10),
		},

		// Primary monitor.
		{
			Name:       "primary monitor body",
			Shape:      geometry.KindBox,
			Transform:  Transform{Scale: v(24, 14, 0.7), Position: v(0, 14, -3.5)},
			Appearance: WithTexture("plastic", 10, 10),
		},
		{
			Name:       "primary monitor screen",
			Shape:      geometry.KindPlane,
			Transform:  Transform{Scale: v(10.5, 6, 6), Rotation: v(90, 0, 0), Position: v(0, 14, -3.1)},
			Appearance: WithTexture("screen", 10, 10),
		},

		{
			Name:       "mouse pad",
			Shape:      geometry.KindBox,
			Transform:  Transform{Scale: v(34, 0.2, 13), Position: v(0, 0.1, 5.8)},
			Appearance: FlatColor(0.05, 0.05, 0.05, 1),
		},

		// Secondary monitor.
		{
			Name:       "secondary monitor body",
			Shape:      geometry.KindBox,
			Transform:  Transform{Scale: v(11, 19, 0.7), Rotation: v(0, 25, 0), Position: v(-22, 12, -2.2)},
			Appearance: WithTexture("plastic", 10, 10),
		},
		{
			Name:       "secondary monitor screen",
			Shape:      geometry.KindPlane,
			Transform:  Transform{Scale: v(5, 5, 8.5), Rotation: v(90, 25, 0), Position: v(-21.86, 12, -1.86)},
			Appearance: WithTexture("screen", 10, 10),
		},

		// Primary monitor arm.
		{
			Name:       "primary arm base",
			Shape:      geometry.KindBox,
			Transform:  Transform{Scale: v(6, 1, 5), Position: v(0, 0.5, -10.5)},
			Appearance: WithTexture("plastic", 10, 10),
		},
		{
			Name:       "primary arm lower holder",
			Shape:      geometry.KindCylinder,
			Transform:  Transform{Scale: v(0.9, 5.4, 0.9), Position: v(0, 1, -11.5)},
			Appearance: WithTexture("plastic", 10, 10),
		},
		{
			Name:       "primary arm back plate",
			Shape:      geometry.KindCylinder,
			Transform:  Transform{Scale: v(3, 0.4, 3), Rotation: v(90, 0, 0), Position: v(0, 13.5, -4.3)},
			Appearance: WithTexture("plastic", 10, 10),
		},
		{
			Name:       "primary arm knuckle",
			Shape:      geometry.KindCylinder,
			Transform:  Transform{Scale: v(1, 0.5, 1.3), Position: v(0, 13.5, -4.5)},
			Appearance: WithTexture("plastic", 10, 10),
		},
		{
			Name:       "primary arm knuckle top",
			Shape:      geometry.KindCylinder,
			Transform:  Transform{Scale: v(0.7, 0.5, 0.9), Rotation: v(0, -70, 0), Position: v(0.2, 14, -5.7)},
			Appearance: WithTexture("plastic", 10, 10),
		},
		{
			Name:       "primary arm knuckle bottom",
			Shape:      geometry.KindCylinder,
			Transform:  Transform{Scale: v(0.7, 0.5, 0.9), Rotation: v(0, -70, 0), Position: v(0.2, 13, -5.7)},
			Appearance: WithTexture("plastic", 10, 10),
		},
		{
			Name:       "primary arm upper segment",
			Shape:      geometry.KindBox,
			Transform:  Transform{Scale: v(7.8, 1.5, 1), Rotation: v(-4, 18, -25), Position: v(3.5, 12.2, -7.3)},
			Appearance: WithTexture("plastic", 10, 10),
		},
		{
			Name:       "primary arm lower segment",
			Shape:      geometry.KindBox,
			Transform:  Transform{Scale: v(8.8, 1.5, 1), Rotation: v(-4, -20, 25), Position: v(3.5, 7.5, -10)},
			Appearance: WithTexture("plastic", 10, 10),
		},
		{
			Name:       "primary arm elbow",
			Shape:      geometry.KindCylinder,
			Transform:  Transform{Scale: v(1.1, 3.6, 1.1), Position: v(7, 7.8, -8.5)},
			Appearance: WithTexture("plastic", 10, 10),
		},
		{
			Name:       "primary arm plate holder",
			Shape:      geometry.KindCylinder,
			Transform:  Transform{Scale: v(1, 2.2, 0.8), Rotation: v(0, 40, 0), Position: v(0.6, 12.5, -6.3)},
			Appearance: FlatColor(0.1, 0.1, 0.1, 1),
			Material:   "black screws",
		},

		// Secondary monitor arm.
		{
			Name:       "secondary arm plate connector",
			Shape:      geometry.KindPrism,
			Transform:  Transform{Scale: v(1.5, 4, 1.5), Rotation: v(205, 0, 90), Position: v(-22.7, 14.2, -3)},
			Appearance: WithTexture("plastic", 10, 10),
		},
		{
			Name:       "secondary arm plate swivel",
			Shape:      geometry.KindCylinder,
			Transform:  Transform{Scale: v(0.85, 3.9, 0.85), Rotation: v(205, 0, 90), Position: v(-24.9, 14.2, -3.1)},
			Appearance: WithTexture("speaker_ring", 10, 10),
		},
		{
			Name:       "secondary arm post",
			Shape:      geometry.KindBox,
			Transform:  Transform{Scale: v(3.5, 15, 1.4), Rotation: v(-4, 25, 0), Position: v(-23.45, 8.3, -4.55)},
			Appearance: WithTexture("plastic", 10, 10),
		},
		{
			Name:       "secondary arm base swivel",
			Shape:      geometry.KindCylinder,
			Transform:  Transform{Scale: v(2.5, 0.7, 2.5), Position: v(-23.45, 0.3, -4.55)},
			Appearance: WithTexture("speaker_ring", 10, 10),
		},
		{
			Name:       "secondary arm base",
			Shape:      geometry.KindBox,
			Transform:  Transform{Scale: v(9.5, 0.5, 8.8), Rotation: v(0, 25, 0), Position: v(-23.45, 0.25, -4.55)},
			Appearance: WithTexture("plastic", 10, 10),
		},

		// Keyboard.
		{
			Name:       "keyboard body",
			Shape:      geometry.KindBox,
			Transform:  Transform{Scale: v(10, 0.7, 4.5), Rotation: v(8.5, 0, 0), Position: v(0, 0.9, 4)},
			Appearance: WithTexture("keyboard", 10, 10),
		},
		{
			Name:       "keyboard keys",
			Shape:      geometry.KindPlane,
			Transform:  Transform{Scale: v(4.9, 0.7, 1.8), Rotation: v(8.5, 0, 0), Position: v(0, 1.28, 4.2)},
			Appearance: WithTexture("keys", 10, 10),
		},
		{
			Name:       "keyboard back left stand",
			Shape:      geometry.KindBox,
			Transform:  Transform{Scale: v(0.9, 1.1, 0.2), Rotation: v(15, 0, 0), Position: v(-4, 0.6, 2.3)},
			Appearance: WithTexture("plastic", 10, 10),
		},
		{
			Name:       "keyboard back right stand",
			Shape:      geometry.KindBox,
			Transform:  Transform{Scale: v(0.9, 1.1, 0.2), Rotation: v(15, 0, 0), Position: v(4, 0.6, 2.3)},
			Appearance: WithTexture("plastic", 10, 10),
		},
		{
			Name:       "keyboard wrist rest",
			Shape:      geometry.KindPrism,
			Transform:  Transform{Scale: v(0.69, 9.9, 2.1), Rotation: v(0, -10, 90), Position: v(0, 0.4, 7.2)},
			Appearance: WithTexture("speaker_mesh", 10, 10),
		},
	}
}
