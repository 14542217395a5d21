package colorspace

import (
	"math"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
)

var klch = &deltae.KLChDefault

// DeltaE is the CIE76 color difference: the Euclidean distance between
// c1 and c2.
func DeltaE(c1, c2 Lab) float64 {
	dl := c1[0] - c2[0]
	da := c1[1] - c2[1]
	db := c1[2] - c2[2]
	return math.Sqrt(dl*dl + da*da + db*db)
}

// DeltaE2000 is the CIEDE2000 color difference between c1 and c2 with the
// default weighting factors.
func DeltaE2000(c1, c2 Lab) float64 {
	return deltae.CIE2000(toChromath(c1), toChromath(c2), klch)
}

func toChromath(c Lab) chromath.Lab {
	return chromath.Lab{c[0], c[1], c[2]}
}
