package hdu

import (
	"fmt"

	"github.com/arloliu/astrofits/encoding"
	"github.com/arloliu/astrofits/errs"
	"github.com/arloliu/astrofits/format"
	"github.com/arloliu/astrofits/header"
	"github.com/arloliu/astrofits/table"
)

// AsciiTable is an XTENSION=TABLE HDU: rows of fixed-width character
// fields positioned by the TBCOLn keywords. Rows are stored untrimmed so
// write-back is byte-identical.
type AsciiTable struct {
	extension
	columns  []table.Column
	byName   map[string]int
	rowWidth int
	rows     int
	data     []byte
}

// NewAsciiTable builds an ASCII table HDU.
func NewAsciiTable(h *header.Header, data []byte) (*AsciiTable, error) {
	ext, err := resolveExtension(h, true)
	if err != nil {
		return nil, err
	}

	columns, err := table.AsciiColumns(h)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int, len(columns))
	for i, col := range columns {
		byName[col.Name] = i
	}

	at := &AsciiTable{extension: ext, columns: columns, byName: byName}
	if data != nil {
		rowWidth, rows, err := tableShape(h)
		if err != nil {
			return nil, err
		}
		if int64(len(data)) < int64(rows)*int64(rowWidth) {
			return nil, fmt.Errorf("%w: %d bytes for %d rows of %d",
				errs.ErrShortBuffer, len(data), rows, rowWidth)
		}

		at.rowWidth = rowWidth
		at.rows = rows
		at.data = data[:rows*rowWidth]
	}

	return at, nil
}

// Kind returns format.KindAsciiTable.
func (at *AsciiTable) Kind() format.HDUKind {
	return format.KindAsciiTable
}

// HasData reports whether the row matrix was materialized.
func (at *AsciiTable) HasData() bool {
	return at.data != nil
}

// Columns returns the column metadata in field order.
func (at *AsciiTable) Columns() []table.Column {
	return at.columns
}

// Rows returns the number of table rows.
func (at *AsciiTable) Rows() int {
	return at.rows
}

// Column looks up column metadata by name.
func (at *AsciiTable) Column(name string) (table.Column, error) {
	idx, ok := at.byName[name]
	if !ok {
		return table.Column{}, fmt.Errorf("%w: %q", errs.ErrColumnNotFound, name)
	}

	return at.columns[idx], nil
}

// Field returns the raw text of one field, pad spaces included.
func (at *AsciiTable) Field(row int, name string) (string, error) {
	col, err := at.Column(name)
	if err != nil {
		return "", err
	}
	if row < 0 || row >= at.rows {
		return "", fmt.Errorf("%w: row %d of %d", errs.ErrIndexOutOfRange, row, at.rows)
	}

	start := row*at.rowWidth + col.Offset

	return string(at.data[start : start+col.Width]), nil
}

// SetField replaces one field with a value formatted per the column's
// format descriptor, writing through to the row matrix.
func (at *AsciiTable) SetField(row int, name string, text string) error {
	col, err := at.Column(name)
	if err != nil {
		return err
	}
	if row < 0 || row >= at.rows {
		return fmt.Errorf("%w: row %d of %d", errs.ErrIndexOutOfRange, row, at.rows)
	}
	if len(text) > col.Width {
		return fmt.Errorf("%w: %q wider than field width %d", errs.ErrInvalidCast, text, col.Width)
	}

	// Character fields are left-justified, numerics right-justified.
	padded, err := encoding.EncodeText(text, format.AsciiForm{Code: col.Code, Width: col.Width, Precision: -1})
	if err != nil {
		return err
	}

	start := row*at.rowWidth + col.Offset
	copy(at.data[start:start+col.Width], padded)

	return nil
}

// AsciiValue parses a field as type T using the text codec.
func AsciiValue[T encoding.TextValue](at *AsciiTable, row int, name string) (T, error) {
	field, err := at.Field(row, name)
	if err != nil {
		var zero T
		return zero, err
	}

	return encoding.DecodeText[T](field)
}

// AppendData serializes the row matrix onto dst.
func (at *AsciiTable) AppendData(dst []byte) []byte {
	return append(dst, at.data...)
}
