package colorspace

// RGBToXYZ linearizes each channel of c and applies the D65 sRGB matrix.
// The result is scaled by 100.
func RGBToXYZ(c RGB) XYZ {
	r, g, b := Linearize(c[0]), Linearize(c[1]), Linearize(c[2])
	// Each product is rounded on its own so no platform fuses it into an FMA.
	return XYZ{
		(float64(0.4124*r) + float64(0.3576*g) + float64(0.1805*b)) * 100,
		(float64(0.2126*r) + float64(0.7152*g) + float64(0.0722*b)) * 100,
		(float64(0.0193*r) + float64(0.1192*g) + float64(0.9505*b)) * 100,
	}
}

// HexToXYZ parses s with HexToRGB and converts the result with RGBToXYZ.
func HexToXYZ(s string) (XYZ, bool) {
	c, ok := HexToRGB(s)
	if !ok {
		return XYZ{}, false
	}
	return RGBToXYZ(c.RGB()), true
}

// XYZToRGB applies the inverse sRGB matrix and gamma-encodes the result.
// Channels outside [0,1] mean c is out of gamut; they are returned as is.
func XYZToRGB(c XYZ) RGB {
	x, y, z := c[0]/100, c[1]/100, c[2]/100
	return RGB{
		GammaEncode(float64(3.2406*x) - float64(1.5372*y) - float64(0.4986*z)),
		GammaEncode(float64(-0.9689*x) + float64(1.8758*y) + float64(0.0415*z)),
		GammaEncode(float64(0.0557*x) - float64(0.2040*y) + float64(1.0570*z)),
	}
}
