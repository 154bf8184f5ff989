// pkg/render/color.go
package render

import "image/color"

// SceneColors holds every color the sonar scene is drawn with.
type SceneColors struct {
	BackgroundColor color.RGBA
	SeabedColor     color.RGBA
	MineColor       color.RGBA
	DangerColor     color.RGBA
	BeamColor       color.RGBA
	PlatformColor   color.RGBA
	HousingColor    color.RGBA
	EchoLineAlpha   uint8
	StrokeWidth     float32
}

// WithAlpha returns c with its alpha replaced, premultiplied so ebiten's
// blending keeps the hue.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	k := float64(a) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: a,
	}
}

// Fade scales the alpha of c by k in [0, 1].
func Fade(c color.RGBA, k float64) color.RGBA {
	if k < 0 {
		k = 0
	} else if k > 1 {
		k = 1
	}
	return WithAlpha(c, uint8(float64(c.A)*k))
}
