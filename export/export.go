package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/flosch/pongo2"
	"github.com/mitchellh/go-homedir"

	"github.com/mmuldo/bloom/flower"
	bimage "github.com/mmuldo/bloom/image"
	"github.com/mmuldo/bloom/render"
)

// DefaultFileName names exports after the parameters that drew them.
const DefaultFileName = "flower1_c{{ petal_color }}s{{ petal_shape }}{{ circle_shape }}.{{ ext }}"

var (
	ErrUnknownFormat = errors.New("unknown format")
	ErrBadFileName   = errors.New("bad file name")
)

// Format is an export encoding.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ParseFormat accepts "png" and "svg" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case PNG, SVG:
		return f, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// Options control where and how a scene is written.
type Options struct {
	// Dir is the output directory; a leading ~ is expanded.
	Dir string
	// FileName is a pongo2 template. Empty means DefaultFileName.
	FileName string
	Format   Format
	// Colors quantizes PNG output to at most this many colors when > 0.
	Colors int
	Render render.Options
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// FileName renders the template tpl with the drawing parameters of p.
// Numbers are formatted in their shortest form, so 1 renders as "1".
func FileName(tpl string, p flower.Params, ext string) (string, error) {
	if tpl == "" {
		tpl = DefaultFileName
	}
	t, err := pongo2.FromString(tpl)
	if err != nil {
		return "", fmt.Errorf("parse file name template: %w", err)
	}

	name, err := t.Execute(pongo2.Context{
		"petal_color":  short(p.PetalColor),
		"petal_shape":  short(p.PetalShape),
		"circle_shape": short(p.CircleShape),
		"ring_shape":   short(p.RingShape),
		"circle_color": short(p.CircleColor),
		"ext":          ext,
	})
	if err != nil {
		return "", fmt.Errorf("execute file name template: %w", err)
	}

	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%q: %w", name, ErrBadFileName)
	}
	return name, nil
}

func short(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Encode writes sc to w in format f.
func Encode(w io.Writer, sc flower.Scene, f Format, opts Options) error {
	ropts := opts.Render
	if ropts.Logger == nil {
		ropts.Logger = opts.Logger
	}

	switch f {
	case SVG:
		return render.SVG(w, sc, ropts)
	case PNG:
		var img image.Image = render.Raster(sc, ropts)
		if opts.Colors > 0 {
			img = bimage.Quantize(img, opts.Colors)
		}
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
}

// Write renders sc and stores it in opts.Dir under the templated file
// name. The file appears under its final name only once it is complete.
func Write(ctx context.Context, sc flower.Scene, opts Options) (string, error) {
	f := opts.Format
	if f == "" {
		f = PNG
	}
	if _, err := ParseFormat(string(f)); err != nil {
		return "", err
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	dir, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", opts.Dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	name, err := FileName(opts.FileName, sc.Params, string(f))
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, ".bloom-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := Encode(tmp, sc, f, opts); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("rename into place: %w", err)
	}

	opts.logger().Info("export.written", "path", path, "format", f, "colors", opts.Colors)
	return path, nil
}
