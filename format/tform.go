package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/astrofits/errs"
)

// Binary table type codes and their fixed on-disk widths in bytes.
//
//	L logical        1
//	X bit            1
//	B byte           1
//	I 16-bit int     2
//	J 32-bit int     4
//	A character      1
//	E 32-bit float   4
//	D 64-bit float   8
//	C 64-bit complex 8  (pair of float32)
//	M 128-bit complex 16 (pair of float64)
//	P array descriptor 8 (pair of int32)
var binaryTypeSizes = map[byte]int{
	'L': 1,
	'X': 1,
	'B': 1,
	'I': 2,
	'J': 4,
	'A': 1,
	'E': 4,
	'D': 8,
	'C': 8,
	'M': 16,
	'P': 8,
}

// trimForm strips the quote and space padding a TFORM value carries after
// card extraction.
func trimForm(form string) string {
	return strings.Trim(form, "' ")
}

// TypeCode returns the element type code of a binary table TFORM value,
// e.g. TypeCode("242000I") == 'I'.
func TypeCode(form string) (byte, error) {
	f := trimForm(form)
	if len(f) == 0 {
		return 0, fmt.Errorf("%w: empty TFORM", errs.ErrInvalidColumnFormat)
	}

	return f[len(f)-1], nil
}

// ElementCount returns the repeat count of a binary table TFORM value.
// A format without a numeric prefix holds a single element, so
// ElementCount("I") == 1 while ElementCount("300I") == 300.
func ElementCount(form string) (int, error) {
	f := trimForm(form)
	if len(f) == 0 {
		return 0, fmt.Errorf("%w: empty TFORM", errs.ErrInvalidColumnFormat)
	}
	if len(f) == 1 {
		return 1, nil
	}

	count, err := strconv.Atoi(f[:len(f)-1])
	if err != nil {
		return 0, fmt.Errorf("%w: bad repeat count in %q", errs.ErrInvalidColumnFormat, form)
	}

	return count, nil
}

// TypeSize returns the fixed byte width of one element of the given binary
// table type code.
func TypeSize(code byte) (int, error) {
	size, ok := binaryTypeSizes[code]
	if !ok {
		return 0, fmt.Errorf("%w: unknown type code %q", errs.ErrInvalidColumnFormat, string(code))
	}

	return size, nil
}

// ColumnWidth returns the total on-disk width in bytes of a binary table
// field: repeat count times element width. ColumnWidth("144000I") == 288000.
func ColumnWidth(form string) (int, error) {
	count, err := ElementCount(form)
	if err != nil {
		return 0, err
	}

	code, err := TypeCode(form)
	if err != nil {
		return 0, err
	}

	size, err := TypeSize(code)
	if err != nil {
		return 0, err
	}

	return count * size, nil
}

// AsciiForm is a parsed ASCII table TFORM value: <code><width>[.precision].
// The width is the field width in characters; precision applies to the
// floating point codes only and is -1 when absent.
type AsciiForm struct {
	Code      byte
	Width     int
	Precision int
}

// ParseAsciiForm parses an ASCII table TFORM value. Valid codes are
// A (character), I (integer) and F/E/D (floating point).
func ParseAsciiForm(form string) (AsciiForm, error) {
	f := trimForm(form)
	if len(f) < 2 {
		return AsciiForm{}, fmt.Errorf("%w: %q", errs.ErrInvalidColumnFormat, form)
	}

	code := f[0]
	switch code {
	case 'A', 'I', 'F', 'E', 'D':
	default:
		return AsciiForm{}, fmt.Errorf("%w: unknown ASCII type code %q", errs.ErrInvalidColumnFormat, string(code))
	}

	widthPart := f[1:]
	precision := -1
	if dot := strings.IndexByte(widthPart, '.'); dot != -1 {
		prec, err := strconv.Atoi(widthPart[dot+1:])
		if err != nil {
			return AsciiForm{}, fmt.Errorf("%w: bad precision in %q", errs.ErrInvalidColumnFormat, form)
		}
		precision = prec
		widthPart = widthPart[:dot]
	}

	width, err := strconv.Atoi(widthPart)
	if err != nil || width <= 0 {
		return AsciiForm{}, fmt.Errorf("%w: bad width in %q", errs.ErrInvalidColumnFormat, form)
	}

	return AsciiForm{Code: code, Width: width, Precision: precision}, nil
}
