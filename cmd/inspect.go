package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmuldo/bloom/image"
)

var top int

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Prints the dominant colors of an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if top <= 0 {
			return fmt.Errorf("--top must be positive, got %d", top)
		}
		i, e := image.Load(args[0])
		if e != nil {
			return e
		}

		cc, e := image.Dominant(i, top)
		if e != nil {
			return fmt.Errorf("%s: %w", args[0], e)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "hex\tpixels\tL\ta\tb\t")
		for _, c := range cc {
			fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.2f\t\n",
				c.Color.Hex(), c.Count, c.Lab.L(), c.Lab.A(), c.Lab.B())
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().IntVarP(&top, "top", "n", 8, "number of colors")
}
