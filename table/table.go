package table

import (
	"fmt"
	"strings"

	"github.com/arloliu/astrofits/encoding"
	"github.com/arloliu/astrofits/endian"
	"github.com/arloliu/astrofits/errs"
	"github.com/arloliu/astrofits/internal/hash"
)

// Table is a binary table payload: the raw row matrix plus the cache of
// typed column views projected out of it. Views write through to the
// matrix, so AppendTo always serializes the current state.
type Table struct {
	engine   endian.EndianEngine
	columns  []Column
	byName   map[string]int
	rows     int
	rowWidth int
	data     []byte
	views    map[uint64]any
}

// New wraps a row matrix. data must hold exactly rows*rowWidth bytes.
func New(engine endian.EndianEngine, columns []Column, rows, rowWidth int, data []byte) (*Table, error) {
	if len(data) != rows*rowWidth {
		return nil, fmt.Errorf("%w: %d bytes for %d rows of %d bytes",
			errs.ErrShortBuffer, len(data), rows, rowWidth)
	}

	byName := make(map[string]int, len(columns))
	for i, col := range columns {
		byName[col.Name] = i
	}

	return &Table{
		engine:   engine,
		columns:  columns,
		byName:   byName,
		rows:     rows,
		rowWidth: rowWidth,
		data:     data,
		views:    make(map[uint64]any),
	}, nil
}

// Columns returns the column metadata in field order.
func (t *Table) Columns() []Column {
	return t.columns
}

// Rows returns the number of table rows.
func (t *Table) Rows() int {
	return t.rows
}

// RowWidth returns the byte width of one row.
func (t *Table) RowWidth() int {
	return t.rowWidth
}

// Column looks up column metadata by name.
func (t *Table) Column(name string) (Column, error) {
	idx, ok := t.byName[name]
	if !ok {
		return Column{}, fmt.Errorf("%w: %q", errs.ErrColumnNotFound, name)
	}

	return t.columns[idx], nil
}

// Cell returns the raw bytes of one cell. The slice aliases the row
// matrix.
func (t *Table) Cell(row int, name string) ([]byte, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if row < 0 || row >= t.rows {
		return nil, fmt.Errorf("%w: row %d of %d", errs.ErrIndexOutOfRange, row, t.rows)
	}

	start := row*t.rowWidth + col.Offset

	return t.data[start : start+col.Width], nil
}

// Text decodes a character column cell as a string with trailing pad
// spaces removed. Cells are stored untrimmed so write-back stays
// byte-identical.
func (t *Table) Text(row int, name string) (string, error) {
	col, err := t.Column(name)
	if err != nil {
		return "", err
	}
	if col.Code != 'A' {
		return "", fmt.Errorf("%w: column %q has type code %q", errs.ErrInvalidCast, name, string(col.Code))
	}

	cell, err := t.Cell(row, name)
	if err != nil {
		return "", err
	}

	return strings.TrimRight(string(cell), " "), nil
}

// AppendTo serializes the row matrix onto dst.
func (t *Table) AppendTo(dst []byte) []byte {
	return append(dst, t.data...)
}

// Raw returns the backing row matrix.
func (t *Table) Raw() []byte {
	return t.data
}

// ColumnView is a typed projection of one column. Reads are decoded once
// when the view is built; writes update both the decoded values and the
// row matrix.
type ColumnView[T encoding.Element] struct {
	table  *Table
	column Column
	values [][]T
}

// codeMatches reports whether a Go element type is the right width and
// kind for a column type code.
func codeMatches[T encoding.Element](code byte) bool {
	var zero T
	switch any(zero).(type) {
	case bool:
		return code == 'L'
	case uint8:
		return code == 'B' || code == 'A' || code == 'X'
	case int16:
		return code == 'I'
	case int32:
		return code == 'J'
	case float32:
		return code == 'E'
	case float64:
		return code == 'D'
	case complex64:
		return code == 'C'
	case complex128:
		return code == 'M'
	case encoding.Descriptor:
		return code == 'P'
	default:
		return false
	}
}

func typeTag[T encoding.Element]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// GetColumn returns the typed view of a column, building and caching it on
// first use. Repeated calls with the same name and type return the same
// view.
func GetColumn[T encoding.Element](t *Table, name string) (*ColumnView[T], error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if !codeMatches[T](col.Code) {
		return nil, fmt.Errorf("%w: column %q has type code %q", errs.ErrInvalidCast, name, string(col.Code))
	}

	key := hash.TypedID(col.Name, typeTag[T]())
	if cached, ok := t.views[key]; ok {
		return cached.(*ColumnView[T]), nil
	}

	values := make([][]T, t.rows)
	for row := 0; row < t.rows; row++ {
		start := row*t.rowWidth + col.Offset
		cell, err := encoding.Decode[T](t.engine, t.data[start:start+col.Width], col.Count)
		if err != nil {
			return nil, err
		}
		values[row] = cell
	}

	view := &ColumnView[T]{table: t, column: col, values: values}
	t.views[key] = view

	return view, nil
}

// Column returns the view's column metadata.
func (v *ColumnView[T]) Column() Column {
	return v.column
}

// Len returns the number of rows.
func (v *ColumnView[T]) Len() int {
	return len(v.values)
}

// Row returns the decoded elements of one cell.
func (v *ColumnView[T]) Row(row int) ([]T, error) {
	if row < 0 || row >= len(v.values) {
		var zero []T
		return zero, fmt.Errorf("%w: row %d of %d", errs.ErrIndexOutOfRange, row, len(v.values))
	}

	return v.values[row], nil
}

// Value returns the single element of a scalar cell.
func (v *ColumnView[T]) Value(row int) (T, error) {
	var zero T

	cell, err := v.Row(row)
	if err != nil {
		return zero, err
	}
	if len(cell) == 0 {
		return zero, fmt.Errorf("%w: column %q has no elements", errs.ErrIndexOutOfRange, v.column.Name)
	}

	return cell[0], nil
}

// Set replaces one element, updating the decoded view and re-encoding the
// element into the row matrix.
func (v *ColumnView[T]) Set(row, elem int, value T) error {
	if row < 0 || row >= len(v.values) {
		return fmt.Errorf("%w: row %d of %d", errs.ErrIndexOutOfRange, row, len(v.values))
	}
	if elem < 0 || elem >= v.column.Count {
		return fmt.Errorf("%w: element %d of %d", errs.ErrIndexOutOfRange, elem, v.column.Count)
	}

	v.values[row][elem] = value

	size := encoding.Size[T]()
	offset := row*v.table.rowWidth + v.column.Offset + elem*size
	raw := encoding.Append(v.table.engine, nil, []T{value})
	copy(v.table.data[offset:offset+size], raw)

	return nil
}
