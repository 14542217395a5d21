package colorspace

import "math"

const (
	labEpsilon = 0.008856
	labKappa   = 7.787
	labOffset  = 16.0 / 116
)

func labCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Pow(t, 1.0/3)
	}
	return float64(labKappa*t) + labOffset
}

// labUncompress tests f³ against the threshold, not the uncompressed
// value. Round trips that land right at the boundary lose precision.
func labUncompress(f float64) float64 {
	f3 := math.Pow(f, 3)
	if f3 > labEpsilon {
		return f3
	}
	return (f - labOffset) / labKappa
}

// XYZToLab converts c to L*a*b* relative to D65.
func XYZToLab(c XYZ) Lab {
	return XYZToLabWhite(c, D65)
}

// XYZToLabWhite converts c to L*a*b* relative to the reference white w.
func XYZToLabWhite(c, w XYZ) Lab {
	fx := labCompress(c[0] / w[0])
	fy := labCompress(c[1] / w[1])
	fz := labCompress(c[2] / w[2])
	return Lab{
		float64(116*fy) - 16,
		500 * (fx - fy),
		200 * (fy - fz),
	}
}

// LabToXYZ converts c to XYZ relative to D65.
func LabToXYZ(c Lab) XYZ {
	return LabToXYZWhite(c, D65)
}

// LabToXYZWhite converts c to XYZ relative to the reference white w.
func LabToXYZWhite(c Lab, w XYZ) XYZ {
	fy := (c[0] + 16) / 116
	fx := c[1]/500 + fy
	fz := fy - c[2]/200
	return XYZ{
		labUncompress(fx) * w[0],
		labUncompress(fy) * w[1],
		labUncompress(fz) * w[2],
	}
}
