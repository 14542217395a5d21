package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mmuldo/bloom/colorspace"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert (hex COLOR | lab L A B | xyz X Y Z)",
	Short: "Prints a color in every supported color space",
	Long: `Prints a color in every supported color space.

Flags must come before the color space. Components may be negative.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var xyz colorspace.XYZ

		switch args[0] {
		case "hex":
			if len(args) != 2 {
				return fmt.Errorf("hex takes one color, got %d", len(args)-1)
			}
			c, ok := colorspace.HexToXYZ(args[1])
			if !ok {
				return fmt.Errorf("%q is not a #rrggbb color", args[1])
			}
			xyz = c
		case "lab":
			v, err := triple(args[1:])
			if err != nil {
				return err
			}
			xyz = colorspace.LabToXYZ(colorspace.Lab(v))
		case "xyz":
			v, err := triple(args[1:])
			if err != nil {
				return err
			}
			xyz = colorspace.XYZ(v)
		default:
			return fmt.Errorf("unknown color space %q", args[0])
		}

		printColor(cmd.OutOrStdout(), xyz)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().SetInterspersed(false)
}

func triple(args []string) ([3]float64, error) {
	var v [3]float64
	if len(args) != 3 {
		return v, fmt.Errorf("expected 3 components, got %d", len(args))
	}
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, nil
}

func printColor(w io.Writer, xyz colorspace.XYZ) {
	rgb := colorspace.XYZToRGB(xyz)
	lab := colorspace.XYZToLab(xyz)

	fmt.Fprintf(w, "hex  %s\n", rgb.RGB8().Hex())
	fmt.Fprintf(w, "rgb  %.4f %.4f %.4f\n", rgb.R(), rgb.G(), rgb.B())
	fmt.Fprintf(w, "xyz  %.4f %.4f %.4f\n", xyz.X(), xyz.Y(), xyz.Z())
	fmt.Fprintf(w, "lab  %.4f %.4f %.4f\n", lab.L(), lab.A(), lab.B())
	if !rgb.InGamut() {
		fmt.Fprintln(w, "out of sRGB gamut, hex is clamped")
	}
}
