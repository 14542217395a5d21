package palette

import (
	"math"

	"github.com/mmuldo/bloom/colorspace"
)

// Mapper turns a petal color parameter, read as an angle in degrees, into
// a point on a circle of constant lightness in the a*b* plane.
type Mapper struct {
	Lightness float64
	Chroma    float64
}

// DefaultMapper places petal colors at L* 60 on a circle of radius 80.
var DefaultMapper = Mapper{Lightness: 60, Chroma: 80}

// Lab returns the L*a*b* point for petalColor.
func (m Mapper) Lab(petalColor float64) colorspace.Lab {
	rad := colorspace.DegToRad(petalColor)
	return colorspace.Lab{
		m.Lightness,
		m.Chroma * math.Cos(rad),
		m.Chroma * math.Sin(rad),
	}
}

// RGB returns the sRGB fill for petalColor. The result is not clamped;
// many angles fall outside the sRGB gamut at the default chroma.
func (m Mapper) RGB(petalColor float64) colorspace.RGB {
	return colorspace.XYZToRGB(colorspace.LabToXYZ(m.Lab(petalColor)))
}

// Entry is one stop on the petal color wheel.
type Entry struct {
	Angle float64
	Lab   colorspace.Lab
	RGB   colorspace.RGB
	Hex   string
	// InGamut is false when RGB had to be clamped to produce Hex.
	InGamut bool
	// DeltaE and DeltaE2000 measure the distance to the previous entry;
	// the first entry is compared with the last.
	DeltaE     float64
	DeltaE2000 float64
}

// Wheel returns steps petal colors evenly spaced around the hue circle,
// starting at 0°.
func Wheel(m Mapper, steps int) []Entry {
	if steps <= 0 {
		return nil
	}

	es := make([]Entry, steps)
	for i := range es {
		angle := float64(i) * 360 / float64(steps)
		rgb := m.RGB(angle)
		es[i] = Entry{
			Angle:   angle,
			Lab:     m.Lab(angle),
			RGB:     rgb,
			Hex:     rgb.RGB8().Hex(),
			InGamut: rgb.InGamut(),
		}
	}

	for i := range es {
		prev := es[(i+steps-1)%steps]
		es[i].DeltaE = colorspace.DeltaE(prev.Lab, es[i].Lab)
		es[i].DeltaE2000 = colorspace.DeltaE2000(prev.Lab, es[i].Lab)
	}

	return es
}
