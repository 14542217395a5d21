package render

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"log/slog"
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/mmuldo/bloom/colorspace"
	"github.com/mmuldo/bloom/flower"
)

// DefaultSegments is the number of vertices an ellipse is flattened into.
const DefaultSegments = 48

// Options control the output canvas.
type Options struct {
	// Size is the edge length of the output in pixels. Zero keeps the
	// scene's own size.
	Size int
	// Background fills the canvas before drawing. Nil leaves it
	// transparent.
	Background *colorspace.RGB8
	Segments   int
	Logger     *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fit scales sc to the requested output size.
func (o Options) fit(sc flower.Scene) flower.Scene {
	if o.Size <= 0 || sc.Width == 0 || float64(o.Size) == sc.Width {
		return sc
	}
	return sc.Scaled(float64(o.Size) / sc.Width)
}

// Raster draws sc onto a new RGBA image. Fill colors are clamped to the
// sRGB gamut here, shape by shape.
func Raster(sc flower.Scene, opts Options) *image.RGBA {
	sc = opts.fit(sc)
	segments := opts.Segments
	if segments <= 0 {
		segments = DefaultSegments
	}

	w, h := int(math.Ceil(sc.Width)), int(math.Ceil(sc.Height))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts.Background != nil {
		bg := opts.Background.RGB().NRGBA(1)
		draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	r := &rasterizer{
		dst:  dst,
		z:    vector.NewRasterizer(w, h),
		mask: image.NewAlpha(dst.Bounds()),
	}

	clamped := 0
	for _, s := range sc.Shapes {
		if !s.Fill.InGamut() {
			clamped++
		}
		outline := s.Outline(segments)
		if s.Shadow != nil {
			r.shadow(s, outline)
		}
		r.fill(outline, s.Fill.NRGBA(s.Alpha))
	}

	opts.logger().Debug("render.raster",
		"width", w, "height", h, "shapes", len(sc.Shapes), "clamped", clamped)
	return dst
}

type rasterizer struct {
	dst  *image.RGBA
	z    *vector.Rasterizer
	mask *image.Alpha
}

func (r *rasterizer) path(outline []f64.Vec2) {
	b := r.dst.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
	if len(outline) < 3 {
		return
	}
	r.z.MoveTo(float32(outline[0][0]), float32(outline[0][1]))
	for _, p := range outline[1:] {
		r.z.LineTo(float32(p[0]), float32(p[1]))
	}
	r.z.ClosePath()
}

func (r *rasterizer) fill(outline []f64.Vec2, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	r.path(outline)
	r.z.Draw(r.dst, r.dst.Bounds(), image.NewUniform(c), image.Point{})
}

// shadow paints a blurred silhouette of s under where s will be drawn.
// The blur follows the canvas convention of a Gaussian with a standard
// deviation of half the blur length.
func (r *rasterizer) shadow(s flower.Shape, outline []f64.Vec2) {
	sigma := s.Shadow.Blur / 2
	pad := int(math.Ceil(3*sigma)) + 1
	lo, hi := s.Bounds()
	region := image.Rect(
		int(math.Floor(lo[0]))-pad, int(math.Floor(lo[1]))-pad,
		int(math.Ceil(hi[0]))+pad, int(math.Ceil(hi[1]))+pad,
	).Intersect(r.dst.Bounds())
	if region.Empty() {
		return
	}

	clearAlpha(r.mask, region)
	r.path(outline)
	r.z.Draw(r.mask, r.mask.Bounds(), image.Opaque, image.Point{})
	boxBlur(r.mask, region, sigma)

	c := s.Shadow.Color.NRGBA(s.Alpha)
	draw.DrawMask(r.dst, region, image.NewUniform(c), image.Point{}, r.mask, region.Min, draw.Over)
}

func clearAlpha(m *image.Alpha, region image.Rectangle) {
	for y := region.Min.Y; y < region.Max.Y; y++ {
		i := m.PixOffset(region.Min.X, y)
		row := m.Pix[i : i+region.Dx()]
		for x := range row {
			row[x] = 0
		}
	}
}

// boxBlur approximates a Gaussian blur of m inside region with three box
// passes per axis. Pixels outside region count as transparent.
func boxBlur(m *image.Alpha, region image.Rectangle, sigma float64) {
	if sigma <= 0 {
		return
	}
	radius := int(math.Round((math.Sqrt(4*sigma*sigma+1) - 1) / 2))
	if radius < 1 {
		return
	}

	w, h := region.Dx(), region.Dy()
	buf := make([]float64, max(w, h))
	line := make([]float64, max(w, h))
	for pass := 0; pass < 3; pass++ {
		for y := region.Min.Y; y < region.Max.Y; y++ {
			i := m.PixOffset(region.Min.X, y)
			for x := 0; x < w; x++ {
				line[x] = float64(m.Pix[i+x])
			}
			boxLine(line[:w], buf[:w], radius)
			for x := 0; x < w; x++ {
				m.Pix[i+x] = uint8(buf[x] + 0.5)
			}
		}
		for x := region.Min.X; x < region.Max.X; x++ {
			for y := 0; y < h; y++ {
				line[y] = float64(m.Pix[m.PixOffset(x, region.Min.Y+y)])
			}
			boxLine(line[:h], buf[:h], radius)
			for y := 0; y < h; y++ {
				m.Pix[m.PixOffset(x, region.Min.Y+y)] = uint8(buf[y] + 0.5)
			}
		}
	}
}

// boxLine writes the running mean of src over a window of 2*radius+1
// samples into dst.
func boxLine(src, dst []float64, radius int) {
	n := len(src)
	width := float64(2*radius + 1)
	sum := 0.0
	for i := 0; i <= radius && i < n; i++ {
		sum += src[i]
	}
	for i := 0; i < n; i++ {
		dst[i] = sum / width
		if j := i + radius + 1; j < n {
			sum += src[j]
		}
		if j := i - radius; j >= 0 {
			sum -= src[j]
		}
	}
}
