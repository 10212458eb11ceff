package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/astrofits/fits"
)

// headerCmd dumps the cards of one HDU.
var headerCmd = &cobra.Command{
	Use:   "header <file> [hdu]",
	Short: "Print the header cards of an HDU (by index or name, default 0)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := fits.Open(args[0], fits.ReadHeadersOnly())
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

		for _, card := range unit.Header().Cards() {
			fmt.Println(strings.TrimRight(card.Raw(), " "))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(headerCmd)
}
