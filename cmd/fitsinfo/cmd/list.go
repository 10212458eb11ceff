package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/astrofits/fits"
)

// listCmd summarizes the HDU layout of a file.
var listCmd = &cobra.Command{
	Use:   "list <file>",
	Short: "List the HDUs of a FITS file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := fits.Open(args[0], fits.ReadHeadersOnly())
		if err != nil {
			return err
		}
		defer f.Close()

		fmt.Printf("%-5s %-10s %-16s %-8s %s\n", "INDEX", "KIND", "NAME", "BITPIX", "DIMS")
		for _, entry := range f.ControlBlock() {
			unit, err := f.ByIndex(entry.Index)
			if err != nil {
				return err
			}
			h := unit.Header()
			fmt.Printf("%-5d %-10s %-16s %-8d %s\n",
				entry.Index, unit.Kind(), entry.Name, int(h.BitPix()), formatDims(h.Naxis()))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
