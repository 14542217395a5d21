package colorspace

import "math"

// Linearize removes the sRGB transfer function from a channel value in
// [0,1], returning linear light.
func Linearize(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// GammaEncode applies the sRGB transfer function to a linear channel
// value. The branch threshold is 0.0031308, not the 0.04045 used by
// Linearize.
func GammaEncode(c float64) float64 {
	if c > 0.0031308 {
		return float64(1.055*math.Pow(c, 1/2.4)) - 0.055
	}
	return 12.92 * c
}
