package hdu

import (
	"fmt"

	"github.com/arloliu/astrofits/errs"
	"github.com/arloliu/astrofits/format"
	"github.com/arloliu/astrofits/header"
	"github.com/arloliu/astrofits/table"
)

// BinaryTable is an XTENSION=BINTABLE HDU: a row matrix of fixed-width
// binary cells described by the TFORMn keywords.
type BinaryTable struct {
	extension
	columns []table.Column
	data    *table.Table
}

// NewBinaryTable builds a binary table HDU. The column metadata resolves
// at construction even in header-only mode; the row matrix only when data
// is present. NAXIS1 is the row width in bytes, NAXIS2 the row count.
func NewBinaryTable(h *header.Header, data []byte) (*BinaryTable, error) {
	ext, err := resolveExtension(h, true)
	if err != nil {
		return nil, err
	}

	columns, err := table.BinaryColumns(h)
	if err != nil {
		return nil, err
	}

	bt := &BinaryTable{extension: ext, columns: columns}
	if data != nil {
		rowWidth, rows, err := tableShape(h)
		if err != nil {
			return nil, err
		}
		if int64(len(data)) < int64(rows)*int64(rowWidth) {
			return nil, fmt.Errorf("%w: %d bytes for %d rows of %d",
				errs.ErrShortBuffer, len(data), rows, rowWidth)
		}

		bt.data, err = table.New(engine, columns, rows, rowWidth, data[:rows*rowWidth])
		if err != nil {
			return nil, err
		}
	}

	return bt, nil
}

func tableShape(h *header.Header) (rowWidth, rows int, err error) {
	w, err := h.NaxisN(1)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: table without NAXIS1", errs.ErrMalformedHeader)
	}
	r, err := h.NaxisN(2)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: table without NAXIS2", errs.ErrMalformedHeader)
	}

	return int(w), int(r), nil
}

// Kind returns format.KindBinaryTable.
func (bt *BinaryTable) Kind() format.HDUKind {
	return format.KindBinaryTable
}

// HasData reports whether the row matrix was materialized.
func (bt *BinaryTable) HasData() bool {
	return bt.data != nil
}

// Columns returns the column metadata in field order.
func (bt *BinaryTable) Columns() []table.Column {
	return bt.columns
}

// Data returns the row matrix, nil in header-only mode.
func (bt *BinaryTable) Data() *table.Table {
	return bt.data
}

// Fields returns the TFIELDS count.
func (bt *BinaryTable) Fields() int {
	return len(bt.columns)
}

// AppendData serializes the row matrix onto dst.
func (bt *BinaryTable) AppendData(dst []byte) []byte {
	if bt.data == nil {
		return dst
	}

	return bt.data.AppendTo(dst)
}
