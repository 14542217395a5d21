package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmuldo/bloom/palette"
)

var steps int

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Prints evenly spaced petal colors",
	Long: `Prints petal colors evenly spaced around the hue circle together with
their L*a*b* values and the color difference to the previous entry.
Colors marked "*" lie outside sRGB and are drawn clamped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if steps <= 0 {
			return fmt.Errorf("--steps must be positive, got %d", steps)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "angle\thex\tL\ta\tb\tΔE76\tΔE2000\t")
		for _, e := range palette.Wheel(mapper(), steps) {
			hex := e.Hex
			if !e.InGamut {
				hex += "*"
			}
			fmt.Fprintf(tw, "%g\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
				e.Angle, hex, e.Lab.L(), e.Lab.A(), e.Lab.B(), e.DeltaE, e.DeltaE2000)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().IntVarP(&steps, "steps", "n", 12, "number of colors")
}
