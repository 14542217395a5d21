package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/flosch/pongo2"

	"github.com/mmuldo/bloom/colorspace"
	"github.com/mmuldo/bloom/flower"
)

var svgTemplate = pongo2.Must(pongo2.FromString(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="{{ width }}" height="{{ height }}" viewBox="0 0 {{ width }} {{ height }}">
{% if filters %}<defs>
{% for f in filters %}<filter id="{{ f.ID }}" x="-50%" y="-50%" width="200%" height="200%">
<feGaussianBlur in="SourceAlpha" stdDeviation="{{ f.StdDev }}" result="blur"/>
<feFlood flood-color="{{ f.Color }}"/>
<feComposite in2="blur" operator="in" result="shadow"/>
<feMerge><feMergeNode in="shadow"/><feMergeNode in="SourceGraphic"/></feMerge>
</filter>
{% endfor %}</defs>
{% endif %}{% if background %}<rect width="100%" height="100%" fill="{{ background }}"/>
{% endif %}{% for s in shapes %}{% if s.Points %}<polygon class="{{ s.Class }}" points="{{ s.Points }}" fill="{{ s.Fill }}" fill-opacity="{{ s.Opacity }}"{% if s.Filter %} filter="url(#{{ s.Filter }})"{% endif %}/>
{% else %}<ellipse class="{{ s.Class }}" cx="{{ s.CX }}" cy="{{ s.CY }}" rx="{{ s.RX }}" ry="{{ s.RY }}" transform="rotate({{ s.Rotation }} {{ s.CX }} {{ s.CY }})" fill="{{ s.Fill }}" fill-opacity="{{ s.Opacity }}"{% if s.Filter %} filter="url(#{{ s.Filter }})"{% endif %}/>
{% endif %}{% endfor %}</svg>
`))

type svgFilter struct {
	ID     string
	StdDev string
	Color  string
}

type svgShape struct {
	Class    string
	CX, CY   string
	RX, RY   string
	Rotation string
	Points   string
	Fill     string
	Opacity  string
	Filter   string
}

// SVG writes sc as an SVG document. Shadows become Gaussian blur filters,
// one per distinct color and blur.
func SVG(w io.Writer, sc flower.Scene, opts Options) error {
	sc = opts.fit(sc)

	var (
		filters []svgFilter
		shapes  = make([]svgShape, 0, len(sc.Shapes))
		ids     = make(map[flower.Shadow]string)
	)
	for _, s := range sc.Shapes {
		v := svgShape{
			Class:   string(s.Layer),
			Fill:    s.Fill.RGB8().Hex(),
			Opacity: num(s.Alpha),
		}
		if s.Shadow != nil {
			id, ok := ids[*s.Shadow]
			if !ok {
				id = fmt.Sprintf("shadow%d", len(filters))
				ids[*s.Shadow] = id
				filters = append(filters, svgFilter{
					ID:     id,
					StdDev: num(s.Shadow.Blur / 2),
					Color:  s.Shadow.Color.RGB8().Hex(),
				})
			}
			v.Filter = id
		}

		if s.Kind == flower.Polygon {
			pts := make([]string, len(s.Points))
			for i, p := range s.Points {
				pts[i] = num(p[0]) + "," + num(p[1])
			}
			v.Points = strings.Join(pts, " ")
		} else {
			v.CX, v.CY = num(s.Center[0]), num(s.Center[1])
			v.RX, v.RY = num(s.Size[0]/2), num(s.Size[1]/2)
			v.Rotation = num(s.Rotation)
		}
		shapes = append(shapes, v)
	}

	ctx := pongo2.Context{
		"width":   num(sc.Width),
		"height":  num(sc.Height),
		"filters": filters,
		"shapes":  shapes,
	}
	if opts.Background != nil {
		ctx["background"] = colorspace.RGBToHex(*opts.Background)
	}

	if err := svgTemplate.ExecuteWriter(ctx, w); err != nil {
		return fmt.Errorf("render svg: %w", err)
	}
	opts.logger().Debug("render.svg", "shapes", len(shapes), "filters", len(filters))
	return nil
}

// num formats v with at most three decimals and no trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
