package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/astrofits/encoding"
	"github.com/arloliu/astrofits/errs"
	"github.com/arloliu/astrofits/fits"
	"github.com/arloliu/astrofits/hdu"
	"github.com/arloliu/astrofits/table"
)

// columnCmd prints the values of one table column.
var columnCmd = &cobra.Command{
	Use:   "column <file> <hdu> <column>",
	Short: "Print a table column (HDU by index or name)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := fits.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		unit, err := selectHDU(f, args[1])
		if err != nil {
			return err
		}

		name := args[2]
		switch v := unit.(type) {
		case *hdu.BinaryTable:
			return printBinaryColumn(v.Data(), name)
		case *hdu.AsciiTable:
			return printAsciiColumn(v, name)
		default:
			return fmt.Errorf("%w: %s HDU has no columns", errs.ErrWrongExtensionType, unit.Kind())
		}
	},
}

func printBinaryColumn(tbl *table.Table, name string) error {
	col, err := tbl.Column(name)
	if err != nil {
		return err
	}

	switch col.Code {
	case 'A':
		for row := 0; row < tbl.Rows(); row++ {
			text, err := tbl.Text(row, name)
			if err != nil {
				return err
			}
			fmt.Println(text)
		}

		return nil
	case 'L':
		return printRows(tbl, name, printCell[bool])
	case 'B', 'X':
		return printRows(tbl, name, printCell[uint8])
	case 'I':
		return printRows(tbl, name, printCell[int16])
	case 'J':
		return printRows(tbl, name, printCell[int32])
	case 'E':
		return printRows(tbl, name, printCell[float32])
	case 'D':
		return printRows(tbl, name, printCell[float64])
	case 'C':
		return printRows(tbl, name, printCell[complex64])
	case 'M':
		return printRows(tbl, name, printCell[complex128])
	case 'P':
		return printRows(tbl, name, printCell[encoding.Descriptor])
	default:
		return fmt.Errorf("%w: type code %q", errs.ErrInvalidColumnFormat, string(col.Code))
	}
}

// printCell fetches and prints one cell of a typed view.
func printCell[T encoding.Element](tbl *table.Table, name string, row int) error {
	view, err := table.GetColumn[T](tbl, name)
	if err != nil {
		return err
	}

	cell, err := view.Row(row)
	if err != nil {
		return err
	}

	if len(cell) == 1 {
		fmt.Printf("%v\n", cell[0])
	} else {
		fmt.Printf("%v\n", cell)
	}

	return nil
}

func printRows(tbl *table.Table, name string, print func(*table.Table, string, int) error) error {
	for row := 0; row < tbl.Rows(); row++ {
		if err := print(tbl, name, row); err != nil {
			return err
		}
	}

	return nil
}

func printAsciiColumn(at *hdu.AsciiTable, name string) error {
	for row := 0; row < at.Rows(); row++ {
		field, err := at.Field(row, name)
		if err != nil {
			return err
		}
		fmt.Println(field)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(columnCmd)
}
