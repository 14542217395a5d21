/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/bloom/export"
	"github.com/mmuldo/bloom/flower"
	"github.com/mmuldo/bloom/palette"
)

var (
	cfgFile string
	debug   bool

	ctx    = context.Background()
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bloom",
	Short: "Draws procedurally generated flowers",
	Long: `bloom lays out a flower from three numbers (petal color, petal shape
and inner circle shape) and exports it as a PNG or SVG image.

Petal colors are read as angles on a circle of constant lightness in
CIE L*a*b* and converted to sRGB for drawing.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger(cmd.OutOrStderr())
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug("config.loaded", "path", f)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It is called by main.main().
func Execute() {
	var cancel context.CancelFunc
	ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := rootCmd.Execute(); err != nil {
		cancel()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	f := rootCmd.PersistentFlags()
	f.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.bloom.yaml)")
	f.BoolVar(&debug, "debug", false, "log debug output to stderr")

	f.StringP("output", "o", ".", "output directory")
	f.StringP("format", "f", string(export.PNG), "export format: png or svg")
	f.Int("size", flower.DesignSize, "output edge length in pixels")
	f.Int("colors", 0, "quantize PNG output to this many colors (0 keeps all)")
	f.Int64("seed", 0, "placement jitter seed (0 picks one)")
	f.String("filename", export.DefaultFileName, "file name template")
	f.String("background", "", "background color as #rrggbb (default transparent)")

	for key, flag := range map[string]string{
		"output_dir": "output",
		"format":     "format",
		"size":       "size",
		"colors":     "colors",
		"seed":       "seed",
		"filename":   "filename",
		"background": "background",
	} {
		_ = viper.BindPFlag(key, f.Lookup(flag))
	}

	viper.SetDefault("lightness", palette.DefaultMapper.Lightness)
	viper.SetDefault("chroma", palette.DefaultMapper.Chroma)
	viper.SetDefault("ring_shape", flower.DefaultParams().RingShape)
	viper.SetDefault("circle_color", flower.DefaultParams().CircleColor)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".bloom")
	}

	viper.SetEnvPrefix("bloom")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintln(os.Stderr, "bloom: reading config:", err)
		}
	}
}

func setupLogger(w io.Writer) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}))
}
