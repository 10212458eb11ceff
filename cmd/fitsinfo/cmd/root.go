// Package cmd implements the fitsinfo subcommands.
package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arloliu/astrofits/fits"
	"github.com/arloliu/astrofits/hdu"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fitsinfo",
	Short: "Inspect FITS files",
	Long: `fitsinfo inspects FITS (Flexible Image Transport System) files:
HDU layout, header cards, image statistics and table columns.`,
	SilenceUsage: true,
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// selectHDU resolves an HDU argument that may be a 0-based index or a
// name.
func selectHDU(f *fits.File, arg string) (hdu.HDU, error) {
	if index, err := strconv.Atoi(arg); err == nil {
		return f.ByIndex(index)
	}

	return f.ByName(arg)
}

func formatDims(dims []int64) string {
	if len(dims) == 0 {
		return "-"
	}

	out := ""
	for i, d := range dims {
		if i > 0 {
			out += "x"
		}
		out += strconv.FormatInt(d, 10)
	}

	return out
}
