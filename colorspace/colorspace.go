// Package colorspace converts between hex sRGB strings, sRGB triples,
// CIE XYZ and CIE L*a*b*.
//
// Every function is pure. Nothing in this package clamps: values outside
// a nominal range are passed through, and the caller decides what to do
// with an out-of-gamut color.
package colorspace

import "image/color"

// RGB8 is an 8 bit per channel sRGB color.
type RGB8 [3]uint8

// RGB is a gamma-encoded sRGB color with channels nominally in [0,1].
type RGB [3]float64

// XYZ is a CIE 1931 XYZ color scaled so that Y is 100 for white.
type XYZ [3]float64

// Lab is a CIE L*a*b* color.
type Lab [3]float64

// D65 is the reference white of the D65/2° standard illuminant.
var D65 = XYZ{95.047, 100, 108.883}

func (c RGB8) R() uint8 { return c[0] }
func (c RGB8) G() uint8 { return c[1] }
func (c RGB8) B() uint8 { return c[2] }

// RGB normalizes c to [0,1].
func (c RGB8) RGB() RGB {
	return RGB{float64(c[0]) / 255, float64(c[1]) / 255, float64(c[2]) / 255}
}

// Lab runs c through linearization, the sRGB matrix and the Lab transform.
func (c RGB8) Lab() Lab {
	return XYZToLab(RGBToXYZ(c.RGB()))
}

func (c RGB) R() float64 { return c[0] }
func (c RGB) G() float64 { return c[1] }
func (c RGB) B() float64 { return c[2] }

// InGamut reports whether every channel lies in [0,1].
func (c RGB) InGamut() bool {
	for _, v := range c {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// Clamp returns c with every channel limited to [0,1].
func (c RGB) Clamp() RGB {
	for i, v := range c {
		switch {
		case v < 0 || v != v:
			c[i] = 0
		case v > 1:
			c[i] = 1
		}
	}
	return c
}

// RGB8 clamps c and rounds each channel to 8 bits.
func (c RGB) RGB8() RGB8 {
	c = c.Clamp()
	return RGB8{
		uint8(c[0]*255 + 0.5),
		uint8(c[1]*255 + 0.5),
		uint8(c[2]*255 + 0.5),
	}
}

// NRGBA clamps c and returns it as a non-premultiplied color with the
// given alpha in [0,1].
func (c RGB) NRGBA(alpha float64) color.NRGBA {
	c8 := c.RGB8()
	a := RGB{alpha}.Clamp()[0]
	return color.NRGBA{R: c8[0], G: c8[1], B: c8[2], A: uint8(a*255 + 0.5)}
}

func (c XYZ) X() float64 { return c[0] }
func (c XYZ) Y() float64 { return c[1] }
func (c XYZ) Z() float64 { return c[2] }

func (c Lab) L() float64 { return c[0] }
func (c Lab) A() float64 { return c[1] }
func (c Lab) B() float64 { return c[2] }
