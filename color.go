package vecmath

import (
	"image/color"

	"github.com/chewxy/math32"
)

// FromColor converts c into channel values in [0,1]. Alpha is dropped.
func FromColor(c color.Color) Vector3 {
	r, g, b, _ := c.RGBA()
	return Vector3{float32(r) / 0xffff, float32(g) / 0xffff, float32(b) / 0xffff}
}

// Pack converts the color to color.RGBA and does [0,255] clamping
func (v Vector3) Pack() color.RGBA {
	return color.RGBA{pack(v[0]), pack(v[1]), pack(v[2]), 255}
}

func pack(c float32) uint8 {
	return uint8(clamp(c*255, 0, 255))
}

func clamp(x, lo, hi float32) float32 {
	return math32.Max(math32.Min(x, hi), lo)
}
