package image

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/esimov/colorquant"

	"github.com/mmuldo/bloom/colorspace"
)

var (
	// ErrNoColors is returned for images without a single visible pixel.
	ErrNoColors = errors.New("image has no visible pixels")
	// ErrBadCount is returned when fewer than one color is requested.
	ErrBadCount = errors.New("color count must be at least 1")
)

// ColorCount is an opaque color, its Lab equivalent and the number of
// pixels it covers.
type ColorCount struct {
	Color colorspace.RGB8
	Lab   colorspace.Lab
	Count int
}

type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool {
	if ccl[i].Count != ccl[j].Count {
		return ccl[i].Count > ccl[j].Count
	}
	return ccl[i].Color.Hex() < ccl[j].Color.Hex()
}
func (ccl ColorCountList) Swap(i, j int) { ccl[i], ccl[j] = ccl[j], ccl[i] }

// GetColors returns a map of an image's colors and the number of times
// each occurs. Fully transparent pixels are skipped; partially
// transparent ones count as their unpremultiplied color.
func GetColors(img image.Image) map[colorspace.RGB8]int {
	m := make(map[colorspace.RGB8]int)

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			m[colorspace.RGB8{c.R, c.G, c.B}]++
		}
	}

	return m
}

// RankColors orders the colors of m by prevalence, most common first.
func RankColors(m map[colorspace.RGB8]int) ColorCountList {
	cc := make(ColorCountList, 0, len(m))
	for k, v := range m {
		cc = append(cc, ColorCount{Color: k, Lab: k.Lab(), Count: v})
	}

	sort.Sort(cc)
	return cc
}

// Quantize reduces img to at most n colors without dithering. The alpha
// channel of img is carried over unchanged. n must be at least 1.
func Quantize(img image.Image, n int) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	colorquant.NoDither.Quantize(img, out, n, false, true)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA).A
			out.Pix[out.PixOffset(x, y)+3] = a
		}
	}
	return out
}

// Dominant quantizes img to n colors and returns them ranked by the number
// of visible pixels they cover.
func Dominant(img image.Image, n int) (ColorCountList, error) {
	if n < 1 {
		return nil, fmt.Errorf("%d: %w", n, ErrBadCount)
	}
	q := Quantize(img, n)
	cc := RankColors(GetColors(q))
	if len(cc) == 0 {
		return nil, ErrNoColors
	}
	if len(cc) > n {
		cc = cc[:n]
	}
	return cc, nil
}
