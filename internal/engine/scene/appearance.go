package scene

import "github.com/Faultbox/deskscene/pkg/math"

// Appearance selects how an object is colored: either a texture sampled
// with a UV scale, or a flat RGBA color.
type Appearance struct {
	TextureTag string
	UVScale    math.Vec2
	Color      [4]float32
}

// WithTexture returns an appearance that samples the tagged texture with
// the given UV repeat factors.
func WithTexture(tag string, u, v float32) Appearance {
	return Appearance{
		TextureTag: tag,
		UVScale:    math.Vec2{X: u, Y: v},
	}
}

// FlatColor returns an untextured appearance with the given RGBA color.
func FlatColor(r, g, b, a float32) Appearance {
	return Appearance{
		Color: [4]float32{r, g, b, a},
	}
}

// IsTextured reports whether a texture tag is set.
func (a Appearance) IsTextured() bool {
	return a.TextureTag != ""
}
