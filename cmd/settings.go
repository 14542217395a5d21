package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mmuldo/bloom/colorspace"
	"github.com/mmuldo/bloom/export"
	"github.com/mmuldo/bloom/flower"
	"github.com/mmuldo/bloom/palette"
	"github.com/mmuldo/bloom/render"
)

// mapper returns the petal color mapper configured by lightness and chroma.
func mapper() palette.Mapper {
	return palette.Mapper{
		Lightness: viper.GetFloat64("lightness"),
		Chroma:    viper.GetFloat64("chroma"),
	}
}

// params fills in the configured ring and circle color parameters.
func params(petalColor, petalShape, circleShape float64) flower.Params {
	return flower.Params{
		PetalColor:  petalColor,
		PetalShape:  petalShape,
		CircleShape: circleShape,
		RingShape:   viper.GetFloat64("ring_shape"),
		CircleColor: viper.GetFloat64("circle_color"),
	}
}

func exportOptions() (export.Options, error) {
	f, err := export.ParseFormat(viper.GetString("format"))
	if err != nil {
		return export.Options{}, err
	}

	ropts := render.Options{
		Size:   viper.GetInt("size"),
		Logger: logger,
	}
	if bg := viper.GetString("background"); bg != "" {
		c, ok := colorspace.HexToRGB(bg)
		if !ok {
			return export.Options{}, fmt.Errorf("background %q is not a #rrggbb color", bg)
		}
		ropts.Background = &c
	}

	return export.Options{
		Dir:      viper.GetString("output_dir"),
		FileName: viper.GetString("filename"),
		Format:   f,
		Colors:   viper.GetInt("colors"),
		Render:   ropts,
		Logger:   logger,
	}, nil
}

// draw generates and writes one flower.
func draw(p flower.Params, opts export.Options) (string, error) {
	sc, err := flower.Generate(p, flower.Options{
		Seed:   viper.GetInt64("seed"),
		Mapper: mapper(),
	})
	if err != nil {
		return "", err
	}
	logger.Debug("flower.generated", "params", fmt.Sprintf("%+v", p), "shapes", len(sc.Shapes))
	return export.Write(ctx, sc, opts)
}
