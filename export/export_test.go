package export

import (
	"context"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmuldo/bloom/colorspace"
	"github.com/mmuldo/bloom/flower"
	"github.com/mmuldo/bloom/render"
)

func TestFileName(t *testing.T) {
	p := flower.DefaultParams()
	tests := []struct {
		name string
		tpl  string
		edit func(*flower.Params)
		ext  string
		want string
		err  error
	}{
		{name: "default", ext: "png", want: "flower1_c1s11.png"},
		{
			name: "fractions",
			edit: func(p *flower.Params) { p.PetalColor, p.PetalShape, p.CircleShape = 22.5, 1.5, 3 },
			ext:  "svg",
			want: "flower1_c22.5s1.53.svg",
		},
		{
			name: "custom",
			tpl:  "{{ ring_shape }}-{{ circle_color }}.{{ ext|upper }}",
			ext:  "png",
			want: "4.5-4.5.PNG",
		},
		{name: "separator", tpl: "a/{{ ext }}", ext: "png", err: ErrBadFileName},
		{name: "empty", tpl: "{{ nothing }}", ext: "png", err: ErrBadFileName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pp := p
			if tt.edit != nil {
				tt.edit(&pp)
			}
			got, err := FileName(tt.tpl, pp, tt.ext)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v (%q)", tt.err, err, got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("FileName = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := FileName("{{ ", p, "png"); err == nil {
		t.Error("expected a template parse error")
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("SVG"); err != nil || f != SVG {
		t.Errorf("ParseFormat(SVG) = %q, %v", f, err)
	}
	if _, err := ParseFormat("gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(gif) err = %v", err)
	}
}

func newScene(t *testing.T) flower.Scene {
	t.Helper()
	sc, err := flower.Generate(flower.DefaultParams(), flower.Options{Seed: 9})
	if err != nil {
		t.Fatal(err)
	}
	return sc
}

func TestWritePNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	path, err := Write(context.Background(), newScene(t), Options{Dir: dir, Render: render.Options{Size: 100}})
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "flower1_c1s11.png"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Errorf("bounds = %v", b)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("%d files in output dir, want 1", len(entries))
	}
}

func TestWriteSVG(t *testing.T) {
	dir := t.TempDir()
	path, err := Write(context.Background(), newScene(t), Options{Dir: dir, Format: SVG, FileName: "f.{{ ext }}"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "<svg") {
		t.Error("not an svg document")
	}
}

func TestWriteErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Write(context.Background(), newScene(t), Options{Dir: dir, Format: "gif"}); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Write(ctx, newScene(t), Options{Dir: dir}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("failed writes left %d files behind", len(entries))
	}
}

func TestWriteQuantized(t *testing.T) {
	bg, _ := colorspace.HexToRGB("#204060")
	dir := t.TempDir()
	path, err := Write(context.Background(), newScene(t), Options{
		Dir:    dir,
		Colors: 6,
		Render: render.Options{Size: 120, Background: &bg},
	})
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[color.Color]bool)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			seen[img.At(x, y)] = true
		}
	}
	if len(seen) > 6 {
		t.Errorf("%d colors in a 6 color export", len(seen))
	}
}
