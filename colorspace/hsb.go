package colorspace

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSB is a hue/saturation/brightness color. Hue is in degrees,
// saturation and brightness in [0,1].
type HSB struct {
	H, S, B float64
}

// RGBToHSB converts c to HSB. Achromatic colors get a hue of 0.
func RGBToHSB(c RGB) HSB {
	h, s, v := colorful.Color{R: c[0], G: c[1], B: c[2]}.Hsv()
	return HSB{H: h, S: s, B: v}
}

// Shift returns c with dh added to the hue (wrapped to [0,360)) and db
// added to the brightness (limited to [0,1]).
func (c HSB) Shift(dh, db float64) HSB {
	c.H = wrapHue(c.H + dh)
	c.B = math.Max(0, math.Min(1, c.B+db))
	return c
}

// RGB converts c back to sRGB.
func (c HSB) RGB() RGB {
	col := colorful.Hsv(wrapHue(c.H), c.S, c.B)
	return RGB{col.R, col.G, col.B}
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
