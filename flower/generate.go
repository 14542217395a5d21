package flower

import (
	"math"
	"math/rand"
	"time"

	"golang.org/x/image/math/f64"

	"github.com/mmuldo/bloom/colorspace"
	"github.com/mmuldo/bloom/palette"
)

// DesignSize is the edge length of the canvas the flower is laid out on.
const DesignSize = 400

var (
	leafGreen  = colorspace.RGB{0, 128.0 / 255, 0}
	white      = colorspace.RGB{1, 1, 1}
	black      = colorspace.RGB{}
	ringYellow = colorspace.RGB{225.0 / 255, 229.0 / 255, 20.0 / 255}
	circleBase = colorspace.RGB{104.0 / 255, 50.0 / 255, 14.0 / 255}
)

// Options controls everything about a scene that is not a drawing
// parameter.
type Options struct {
	// Seed seeds the placement jitter. Zero picks a time-based seed.
	Seed   int64
	Mapper palette.Mapper
}

// Generate lays out a flower for p. Shapes are returned in paint order:
// leaves, large petals, small petals, the inner ring, the inner circle
// and its spots.
func Generate(p Params, opts Options) (Scene, error) {
	if err := p.Validate(); err != nil {
		return Scene{}, err
	}
	if opts.Mapper == (palette.Mapper{}) {
		opts.Mapper = palette.DefaultMapper
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &generator{
		rng:    rand.New(rand.NewSource(seed)),
		center: f64.Vec2{DesignSize / 2, DesignSize / 2},
	}

	fill := white
	if p.PetalColor != 0 {
		fill = opts.Mapper.RGB(p.PetalColor)
	}

	g.leaves()
	g.petals(p, fill)
	g.smallPetals(p, fill)
	g.ring(p)
	g.circle(p)

	return Scene{
		Width:  DesignSize,
		Height: DesignSize,
		Params: p,
		Shapes: g.shapes,
	}, nil
}

type generator struct {
	rng    *rand.Rand
	center f64.Vec2
	shapes []Shape
}

// jitter returns a uniform value in [-w/2, w/2).
func (g *generator) jitter(w float64) float64 {
	return w*g.rng.Float64() - w/2
}

// polar returns the point r away from the center at ang degrees.
func (g *generator) polar(r, ang float64) f64.Vec2 {
	sin, cos := math.Sincos(colorspace.DegToRad(ang))
	return f64.Vec2{g.center[0] + r*cos, g.center[1] + r*sin}
}

func (g *generator) add(s Shape) {
	g.shapes = append(g.shapes, s)
}

func (g *generator) leaves() {
	const n = 50
	for i := 0; i < n; i++ {
		ang := float64(i)*(360.0/n) + g.jitter(6)
		g.add(Shape{
			Kind:     Ellipse,
			Layer:    LayerLeaf,
			Center:   g.polar(50, ang),
			Size:     f64.Vec2{90, 8},
			Rotation: ang,
			Fill:     leafGreen,
			Alpha:    1,
		})
	}
}

func (g *generator) petals(p Params, fill colorspace.RGB) {
	ratio := p.PetalShape / PetalShapeMax
	n := int(roundHalfUp(5 + ratio*PetalShapeMax))
	size := f64.Vec2{100, 62 - 46*ratio}

	for i := 0; i < n; i++ {
		ang := float64(i)*(360/float64(n)) + g.jitter(6)
		c := g.polar(50, ang)
		g.add(Shape{
			Kind:     Ellipse,
			Layer:    LayerPetal,
			Center:   c,
			Size:     size,
			Rotation: ang,
			Fill:     fill,
			Alpha:    1,
			Shadow:   &Shadow{Color: colorspace.RGB{0.9, 0.9, 0.9}, Blur: 8},
		})
		g.add(Shape{
			Kind:     Ellipse,
			Layer:    LayerPetalStroke,
			Center:   c,
			Size:     f64.Vec2{80, 3},
			Rotation: ang,
			Fill:     white,
			Alpha:    0.3,
		})
	}
}

func (g *generator) smallPetals(p Params, fill colorspace.RGB) {
	n := int(roundHalfUp(5 + PetalShapeMax/p.PetalShape))
	size := f64.Vec2{75, 6.15 + 1.85*p.PetalShape}

	for i := 0; i < n; i++ {
		step := 360 / float64(n)
		ang := float64(i)*step + step/2 + g.jitter(6)
		c := g.polar(25, ang)
		g.add(Shape{
			Kind:     Ellipse,
			Layer:    LayerSmallPetal,
			Center:   c,
			Size:     size,
			Rotation: ang,
			Fill:     fill,
			Alpha:    1,
			Shadow:   &Shadow{Color: colorspace.RGB{0.2, 0.2, 0.2}, Blur: 8},
		})
		g.add(Shape{
			Kind:     Ellipse,
			Layer:    LayerSmallStroke,
			Center:   c,
			Size:     f64.Vec2{50, 2},
			Rotation: ang,
			Fill:     black,
			Alpha:    0.3,
		})
	}
}

func (g *generator) ring(p Params) {
	ratio := p.RingShape / RingShapeMax
	n := int(roundHalfUp(15 + 30*ratio))
	size := f64.Vec2{35, 15 - 12*ratio}

	for i := 0; i < n; i++ {
		ang := float64(i) * (360 / float64(n))
		c := g.polar(15, ang)
		c[0] += g.jitter(1)
		c[1] += g.jitter(1)
		g.add(Shape{
			Kind:     Ellipse,
			Layer:    LayerRing,
			Center:   c,
			Size:     size,
			Rotation: ang,
			Fill:     ringYellow,
			Alpha:    0.95,
		})
	}
}

// circle draws the jittered inner disc and the rings of translucent spots
// on top of it. Spot colors vary around the disc color in hue and
// brightness.
func (g *generator) circle(p Params) {
	radius := 3.3 + 21.7*p.CircleShape/CircleShapeMax
	base := colorspace.RGBToHSB(circleBase).Shift(p.CircleColor/CircleShapeMax*35, 0)
	fill := base.RGB()

	pts := make([]f64.Vec2, 100)
	for i := range pts {
		c := g.polar(radius, float64(i)*(360.0/60))
		c[0] += g.jitter(1)
		c[1] += g.jitter(1)
		pts[i] = c
	}
	g.add(Shape{
		Kind:   Polygon,
		Layer:  LayerCircle,
		Center: g.center,
		Points: pts,
		Fill:   fill,
		Alpha:  1,
		Shadow: &Shadow{Color: colorspace.RGB{0.1, 0.1, 0.1}, Blur: 5},
	})

	for xr := 1.0; xr <= 16; xr += 3 {
		dots := 30 - 25*(16-xr)/16
		begin := math.Pi * g.rng.Float64()
		for x := 1.0; x < dots+1; x++ {
			rang := begin + x*2*math.Pi/dots + 0.1*g.rng.Float64()
			rrad := xr + 0.1*g.rng.Float64()
			sin, cos := math.Sincos(rang)
			spot := base.Shift(g.jitter(5), 0.3-0.15*g.rng.Float64())
			g.add(Shape{
				Kind:   Ellipse,
				Layer:  LayerSpot,
				Center: f64.Vec2{g.center[0] + rrad*cos, g.center[1] + rrad*sin},
				Size:   f64.Vec2{3, 3},
				Fill:   spot.RGB(),
				Alpha:  0.2,
			})
		}
	}
}

// roundHalfUp rounds halves toward positive infinity.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
