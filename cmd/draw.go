package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var petalColor, petalShape, circleShape float64

// drawCmd represents the draw command
var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draws one flower and exports it",
	Long: `Draws one flower and exports it to the output directory.

The petal color is an angle in degrees on the L*a*b* hue circle; 0 draws
white petals. Petal shape runs from just above 0 to 11 and trades large
petals for small ones. Circle shape grows the inner disc.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := exportOptions()
		if err != nil {
			return err
		}

		path, err := draw(params(petalColor, petalShape, circleShape), opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(drawCmd)

	drawCmd.Flags().Float64VarP(&petalColor, "petal-color", "c", 1, "petal color angle in degrees")
	drawCmd.Flags().Float64VarP(&petalShape, "petal-shape", "s", 1, "petal shape (0, 11]")
	drawCmd.Flags().Float64VarP(&circleShape, "circle-shape", "r", 1, "inner circle shape")
}
