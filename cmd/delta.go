package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmuldo/bloom/colorspace"
)

// deltaCmd represents the delta command
var deltaCmd = &cobra.Command{
	Use:   "delta [--] L1 A1 B1 L2 A2 B2",
	Short: "Prints the color difference of two L*a*b* colors",
	Long: `Prints the CIE76 and CIEDE2000 differences of two L*a*b* colors.

Flags end at the first component. Put -- in front of the components
when L1 is negative.`,
	Args:  cobra.ExactArgs(6),
	RunE: func(cmd *cobra.Command, args []string) error {
		c1, err := triple(args[:3])
		if err != nil {
			return err
		}
		c2, err := triple(args[3:])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "ΔE76    %.4f\n", colorspace.DeltaE(colorspace.Lab(c1), colorspace.Lab(c2)))
		fmt.Fprintf(w, "ΔE2000  %.4f\n", colorspace.DeltaE2000(colorspace.Lab(c1), colorspace.Lab(c2)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deltaCmd)

	deltaCmd.Flags().SetInterspersed(false)
}
