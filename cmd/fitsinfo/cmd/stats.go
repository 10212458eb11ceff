package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/astrofits/errs"
	"github.com/arloliu/astrofits/fits"
	"github.com/arloliu/astrofits/hdu"
	"github.com/arloliu/astrofits/image"
)

// statsCmd prints pixel statistics of an image HDU.
var statsCmd = &cobra.Command{
	Use:   "stats <file> [hdu]",
	Short: "Print pixel statistics of an image HDU (by index or name, default 0)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := fits.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		target := "0"
		if len(args) == 2 {
			target = args[1]
		}

		unit, err := selectHDU(f, target)
		if err != nil {
			return err
		}

		var data image.Data
		switch v := unit.(type) {
		case *hdu.Primary:
			data = v.Data()
		case *hdu.ImageExtension:
			data = v.Data()
		default:
			return fmt.Errorf("%w: %s HDU has no image data", errs.ErrWrongExtensionType, unit.Kind())
		}

		if data == nil || data.Len() == 0 {
			fmt.Println("no data")
			return nil
		}

		fmt.Printf("pixels: %d (%dx%d, %s)\n", data.Len(), data.Width(), data.Height(), data.BitPix())
		fmt.Printf("min:    %g\n", data.Min())
		fmt.Printf("max:    %g\n", data.Max())
		fmt.Printf("mean:   %g\n", data.Mean())
		fmt.Printf("median: %g\n", data.Median())
		fmt.Printf("stddev: %g\n", data.StdDev())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
