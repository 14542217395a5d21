package flower

import (
	"math"

	"golang.org/x/image/math/f64"

	"github.com/mmuldo/bloom/colorspace"
)

// Kind is the primitive a Shape is drawn with.
type Kind int

const (
	Ellipse Kind = iota
	Polygon
)

func (k Kind) String() string {
	switch k {
	case Ellipse:
		return "ellipse"
	case Polygon:
		return "polygon"
	}
	return "unknown"
}

// Layer names the part of the flower a shape belongs to.
type Layer string

const (
	LayerLeaf        Layer = "leaf"
	LayerPetal       Layer = "petal"
	LayerPetalStroke Layer = "petal-stroke"
	LayerSmallPetal  Layer = "small-petal"
	LayerSmallStroke Layer = "small-petal-stroke"
	LayerRing        Layer = "ring"
	LayerCircle      Layer = "circle"
	LayerSpot        Layer = "spot"
)

// Shadow is a blurred, unoffset copy of a shape drawn underneath it.
type Shadow struct {
	Color colorspace.RGB
	Blur  float64
}

// Shape describes one drawn primitive. Its fill is final: nothing
// adjusts a shape's color after Generate returns it.
type Shape struct {
	Kind  Kind
	Layer Layer

	// Ellipse geometry. Size is the full width and height before rotation;
	// Rotation is in degrees around Center.
	Center   f64.Vec2
	Size     f64.Vec2
	Rotation float64

	// Polygon vertices, closed implicitly.
	Points []f64.Vec2

	Fill   colorspace.RGB
	Alpha  float64
	Shadow *Shadow
}

// Transform returns the affine map from the unit circle to s's ellipse.
func (s Shape) Transform() f64.Aff3 {
	rad := colorspace.DegToRad(s.Rotation)
	sin, cos := math.Sincos(rad)
	rx, ry := s.Size[0]/2, s.Size[1]/2
	return f64.Aff3{
		cos * rx, -sin * ry, s.Center[0],
		sin * rx, cos * ry, s.Center[1],
	}
}

// Outline returns the shape as a closed polygon. Ellipses are flattened
// into segments vertices.
func (s Shape) Outline(segments int) []f64.Vec2 {
	if s.Kind == Polygon {
		out := make([]f64.Vec2, len(s.Points))
		copy(out, s.Points)
		return out
	}

	if segments < 3 {
		segments = 3
	}
	m := s.Transform()
	out := make([]f64.Vec2, segments)
	for i := range out {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(segments))
		out[i] = apply(m, f64.Vec2{cos, sin})
	}
	return out
}

// Bounds returns the axis-aligned bounding box of s as min and max corners.
func (s Shape) Bounds() (lo, hi f64.Vec2) {
	if s.Kind == Ellipse {
		m := s.Transform()
		hx := math.Hypot(m[0], m[1])
		hy := math.Hypot(m[3], m[4])
		return f64.Vec2{s.Center[0] - hx, s.Center[1] - hy}, f64.Vec2{s.Center[0] + hx, s.Center[1] + hy}
	}

	if len(s.Points) == 0 {
		return f64.Vec2{}, f64.Vec2{}
	}
	lo, hi = s.Points[0], s.Points[0]
	for _, p := range s.Points[1:] {
		lo[0], lo[1] = math.Min(lo[0], p[0]), math.Min(lo[1], p[1])
		hi[0], hi[1] = math.Max(hi[0], p[0]), math.Max(hi[1], p[1])
	}
	return lo, hi
}

func apply(m f64.Aff3, p f64.Vec2) f64.Vec2 {
	return f64.Vec2{
		m[0]*p[0] + m[1]*p[1] + m[2],
		m[3]*p[0] + m[4]*p[1] + m[5],
	}
}

// Scene is a flower ready to be rendered, in paint order.
type Scene struct {
	Width, Height float64
	Params        Params
	Shapes        []Shape
}

// Scaled returns a copy of sc with every coordinate, size and blur
// multiplied by f.
func (sc Scene) Scaled(f float64) Scene {
	out := Scene{
		Width:  sc.Width * f,
		Height: sc.Height * f,
		Params: sc.Params,
		Shapes: make([]Shape, len(sc.Shapes)),
	}
	for i, s := range sc.Shapes {
		s.Center = f64.Vec2{s.Center[0] * f, s.Center[1] * f}
		s.Size = f64.Vec2{s.Size[0] * f, s.Size[1] * f}
		if s.Points != nil {
			pts := make([]f64.Vec2, len(s.Points))
			for j, p := range s.Points {
				pts[j] = f64.Vec2{p[0] * f, p[1] * f}
			}
			s.Points = pts
		}
		if s.Shadow != nil {
			sh := *s.Shadow
			sh.Blur *= f
			s.Shadow = &sh
		}
		out.Shapes[i] = s
	}
	return out
}

// Count returns the number of shapes on layer l.
func (sc Scene) Count(l Layer) int {
	n := 0
	for _, s := range sc.Shapes {
		if s.Layer == l {
			n++
		}
	}
	return n
}
