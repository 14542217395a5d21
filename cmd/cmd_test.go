package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// run executes the root command with args after putting every scalar flag
// back to its default.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			if strings.HasSuffix(f.Value.Type(), "Slice") {
				return
			}
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	reset(rootCmd.PersistentFlags())
	for _, c := range []*cobra.Command{drawCmd, batchCmd, convertCmd, deltaCmd, paletteCmd, inspectCmd} {
		reset(c.Flags())
	}

	var buf bytes.Buffer
	rootCmd.SetOutput(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestConvert(t *testing.T) {
	out, err := run(t, "convert", "hex", "#ffffff")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"hex  #ffffff", "lab  100.0000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}

	out, err = run(t, "convert", "lab", "60", "-80", "0")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "out of sRGB gamut") {
		t.Errorf("expected a gamut warning:\n%s", out)
	}

	out, err = run(t, "convert", "lab", "50", "-20", "-30")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "lab  50.0000 -20.0000 -30.0000") {
		t.Errorf("negative components lost:\n%s", out)
	}

	if _, err := run(t, "convert", "hex", "#fff"); err == nil {
		t.Error("expected an error for shorthand hex")
	}
	if _, err := run(t, "convert", "hsv", "1", "2", "3"); err == nil {
		t.Error("expected an error for an unknown space")
	}
	if _, err := run(t, "convert", "xyz", "1", "2"); err == nil {
		t.Error("expected an error for two components")
	}
}

func TestDelta(t *testing.T) {
	out, err := run(t, "delta", "50", "0", "-63", "50", "55", "-63")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "ΔE76    55.0000") {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, err = run(t, "delta", "--", "-10", "0", "0", "-10", "3", "4")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "ΔE76    5.0000") {
		t.Errorf("leading negative component:\n%s", out)
	}

	if _, err := run(t, "delta", "50", "0", "-63"); err == nil {
		t.Error("expected an error for three components")
	}
}

func TestPalette(t *testing.T) {
	out, err := run(t, "palette", "--steps", "4")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("%d lines, want header + 4:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[3], "180") || !strings.Contains(lines[3], "*") {
		t.Errorf("180° should be flagged out of gamut: %q", lines[3])
	}

	if _, err := run(t, "palette", "--steps", "0"); err == nil {
		t.Error("expected an error for zero steps")
	}
}

func TestDrawAndInspect(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "draw", "-c", "45", "-s", "2", "-r", "3", "--seed", "5", "--size", "80", "-o", dir)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "flower1_c45s23.png")
	if !strings.Contains(out, path) {
		t.Errorf("output misses %s:\n%s", path, out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}

	out, err = run(t, "inspect", "-n", "3", path)
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) < 2 || len(lines) > 4 {
		t.Errorf("unexpected inspect output:\n%s", out)
	}

	if _, err := run(t, "inspect", "-n", "0", path); err == nil {
		t.Error("expected an error for --top 0")
	}

	if _, err := run(t, "draw", "-s", "0", "-o", dir); err == nil {
		t.Error("expected an error for petal shape 0")
	}
	if _, err := run(t, "draw", "-o", dir, "--background", "nope"); err == nil {
		t.Error("expected an error for a bad background")
	}
	if _, err := run(t, "draw", "-o", dir, "-f", "gif"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestDrawFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BLOOM_FILENAME", "env-{{ petal_color }}.{{ ext }}")
	t.Setenv("BLOOM_FORMAT", "svg")

	if _, err := run(t, "draw", "-c", "90", "--seed", "1", "-o", dir); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "env-90.svg")); err != nil {
		t.Fatal(err)
	}
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "batch",
		"--petal-colors", "0,180",
		"--petal-shapes", "1,11",
		"--circle-shapes", "2",
		"--size", "40", "--seed", "2", "-o", dir)
	if err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	want := []string{"flower1_c0s112.png", "flower1_c0s12.png", "flower1_c180s112.png", "flower1_c180s12.png"}
	if strings.Join(names, " ") != strings.Join(want, " ") {
		t.Errorf("files = %v, want %v", names, want)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "bloom.yaml")
	body := "output_dir: " + dir + "\nfilename: \"cfg.{{ ext }}\"\nsize: 64\n"
	if err := os.WriteFile(cfg, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "--config", cfg, "draw", "--seed", "4"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "cfg.png")); err != nil {
		t.Fatal(err)
	}
}
