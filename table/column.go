// Package table implements table HDU payloads: column metadata assembled
// from the TXXXXn keywords, the shared row matrix, and typed column views
// that memoize reads and write updates through to the matrix.
package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/astrofits/errs"
	"github.com/arloliu/astrofits/format"
	"github.com/arloliu/astrofits/header"
)

// Column describes one table field.
//
// For binary tables Offset is the byte offset of the field inside a row
// and Width its total byte width. For ASCII tables Offset is the 0-based
// character position (TBCOL minus one) and Width the field width in
// characters.
type Column struct {
	Index   int    // 1-based field number
	Name    string // TTYPE, or COLn when absent
	Form    string // trimmed TFORM
	Code    byte   // element type code
	Count   int    // elements per cell (binary repeat count, 1 for ASCII)
	Offset  int
	Width   int
	Unit    string  // TUNIT
	Scale   float64 // TSCAL, 1 when absent
	Zero    float64 // TZERO, 0 when absent
	Display string  // TDISP, or a per-code default
	Dim     string  // TDIM
}

// BinaryColumns assembles the column list of a binary table header.
// Field offsets accumulate from the TFORM widths in field order.
func BinaryColumns(h *header.Header) ([]Column, error) {
	fields, err := header.Value[int](h, "TFIELDS")
	if err != nil {
		return nil, fmt.Errorf("%w: missing TFIELDS", errs.ErrMalformedHeader)
	}

	cols := make([]Column, 0, fields)
	offset := 0
	for i := 1; i <= fields; i++ {
		n := strconv.Itoa(i)

		form, err := header.Value[string](h, "TFORM"+n)
		if err != nil {
			return nil, fmt.Errorf("%w: missing TFORM%d", errs.ErrMalformedHeader, i)
		}
		form = strings.TrimSpace(form)

		code, err := format.TypeCode(form)
		if err != nil {
			return nil, err
		}
		count, err := format.ElementCount(form)
		if err != nil {
			return nil, err
		}
		width, err := format.ColumnWidth(form)
		if err != nil {
			return nil, err
		}

		col := Column{
			Index:  i,
			Name:   columnName(h, i),
			Form:   form,
			Code:   code,
			Count:  count,
			Offset: offset,
			Width:  width,
			Scale:  1,
		}
		fillOptional(h, &col)
		if col.Display == "" {
			col.Display = defaultDisplay(code, count)
		}

		cols = append(cols, col)
		offset += width
	}

	return cols, nil
}

// AsciiColumns assembles the column list of an ASCII table header from the
// TBCOL positions and TFORM field descriptors.
func AsciiColumns(h *header.Header) ([]Column, error) {
	fields, err := header.Value[int](h, "TFIELDS")
	if err != nil {
		return nil, fmt.Errorf("%w: missing TFIELDS", errs.ErrMalformedHeader)
	}

	cols := make([]Column, 0, fields)
	for i := 1; i <= fields; i++ {
		n := strconv.Itoa(i)

		rawForm, err := header.Value[string](h, "TFORM"+n)
		if err != nil {
			return nil, fmt.Errorf("%w: missing TFORM%d", errs.ErrMalformedHeader, i)
		}
		form, err := format.ParseAsciiForm(rawForm)
		if err != nil {
			return nil, err
		}

		tbcol, err := header.Value[int](h, "TBCOL"+n)
		if err != nil {
			return nil, fmt.Errorf("%w: missing TBCOL%d", errs.ErrMalformedHeader, i)
		}

		col := Column{
			Index:  i,
			Name:   columnName(h, i),
			Form:   strings.TrimSpace(rawForm),
			Code:   form.Code,
			Count:  1,
			Offset: tbcol - 1,
			Width:  form.Width,
			Scale:  1,
		}
		fillOptional(h, &col)
		if col.Display == "" {
			col.Display = col.Form
		}

		cols = append(cols, col)
	}

	return cols, nil
}

func columnName(h *header.Header, i int) string {
	if name, err := header.Value[string](h, "TTYPE"+strconv.Itoa(i)); err == nil {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			return trimmed
		}
	}

	return "COL" + strconv.Itoa(i)
}

func fillOptional(h *header.Header, col *Column) {
	n := strconv.Itoa(col.Index)

	if unit, err := header.Value[string](h, "TUNIT"+n); err == nil {
		col.Unit = strings.TrimSpace(unit)
	}
	if scale, err := header.Value[float64](h, "TSCAL"+n); err == nil {
		col.Scale = scale
	}
	if zero, err := header.Value[float64](h, "TZERO"+n); err == nil {
		col.Zero = zero
	}
	if disp, err := header.Value[string](h, "TDISP"+n); err == nil {
		col.Display = strings.TrimSpace(disp)
	}
	if dim, err := header.Value[string](h, "TDIM"+n); err == nil {
		col.Dim = strings.TrimSpace(dim)
	}
}

// defaultDisplay synthesizes a display hint for columns without TDISP.
func defaultDisplay(code byte, count int) string {
	switch code {
	case 'A':
		return fmt.Sprintf("A%d", count)
	case 'L':
		return "B1"
	case 'B', 'X':
		return "I3"
	case 'I':
		return "I6"
	case 'J':
		return "I11"
	case 'E', 'D', 'C', 'M':
		return "F14.7"
	default:
		return ""
	}
}
