package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var petalColors, petalShapes, circleShapes []string

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Draws every combination of the given parameters",
	Long: `Draws one flower for every combination of petal color, petal shape
and circle shape, e.g.

  bloom batch --petal-colors 0,90,180,270 --petal-shapes 1,6,11 --circle-shapes 1,13

Give the file name template enough parameters to keep the names apart.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cs, err := floats("petal-colors", petalColors)
		if err != nil {
			return err
		}
		ss, err := floats("petal-shapes", petalShapes)
		if err != nil {
			return err
		}
		rs, err := floats("circle-shapes", circleShapes)
		if err != nil {
			return err
		}

		opts, err := exportOptions()
		if err != nil {
			return err
		}

		n := 0
		for _, c := range cs {
			for _, s := range ss {
				for _, r := range rs {
					if err := ctx.Err(); err != nil {
						return err
					}
					path, err := draw(params(c, s, r), opts)
					if err != nil {
						return fmt.Errorf("petal color %g, petal shape %g, circle shape %g: %w", c, s, r, err)
					}
					fmt.Fprintln(cmd.OutOrStdout(), path)
					n++
				}
			}
		}
		logger.Info("batch.done", "flowers", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringSliceVar(&petalColors, "petal-colors", []string{"1"}, "petal color angles")
	batchCmd.Flags().StringSliceVar(&petalShapes, "petal-shapes", []string{"1"}, "petal shapes")
	batchCmd.Flags().StringSliceVar(&circleShapes, "circle-shapes", []string{"1"}, "circle shapes")
}

func floats(flag string, vs []string) ([]float64, error) {
	out := make([]float64, 0, len(vs))
	for _, v := range vs {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", flag, err)
		}
		out = append(out, f)
	}
	return out, nil
}
