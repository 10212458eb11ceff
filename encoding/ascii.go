package encoding

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/astrofits/errs"
	"github.com/arloliu/astrofits/format"
)

// TextValue is the set of Go types an ASCII table field maps onto.
type TextValue interface {
	int64 | float64 | string
}

// DecodeText parses one fixed-width ASCII table field. Numeric fields are
// trimmed before conversion; character fields keep their left-justified
// content with trailing pad spaces removed.
func DecodeText[T TextValue](field string) (T, error) {
	var zero T

	switch any(zero).(type) {
	case int64:
		v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return zero, fmt.Errorf("%w: %q to int64: %v", errs.ErrInvalidCast, field, err)
		}

		return any(v).(T), nil
	case float64:
		trimmed := strings.TrimSpace(field)
		// Fortran-style exponents use D instead of E.
		trimmed = strings.ReplaceAll(strings.ReplaceAll(trimmed, "D", "E"), "d", "e")
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return zero, fmt.Errorf("%w: %q to float64: %v", errs.ErrInvalidCast, field, err)
		}

		return any(v).(T), nil
	case string:
		return any(strings.TrimRight(field, " ")).(T), nil
	default:
		return zero, fmt.Errorf("%w: unsupported text type", errs.ErrInvalidCast)
	}
}

// EncodeText renders a value into a fixed-width ASCII table field per its
// column format: numerics right-justified, characters left-justified.
// Values wider than the field are rejected.
func EncodeText[T TextValue](value T, form format.AsciiForm) (string, error) {
	var text string

	switch v := any(value).(type) {
	case int64:
		text = strconv.FormatInt(v, 10)
	case float64:
		switch form.Code {
		case 'F':
			prec := form.Precision
			if prec < 0 {
				prec = -1
			}
			text = strconv.FormatFloat(v, 'f', prec, 64)
		case 'E', 'D':
			prec := form.Precision
			if prec < 0 {
				prec = -1
			}
			text = strconv.FormatFloat(v, 'E', prec, 64)
			if form.Code == 'D' {
				text = strings.Replace(text, "E", "D", 1)
			}
		default:
			text = strconv.FormatFloat(v, 'G', -1, 64)
		}
	case string:
		text = v
	}

	if len(text) > form.Width {
		return "", fmt.Errorf("%w: %q wider than field width %d", errs.ErrInvalidCast, text, form.Width)
	}

	if form.Code == 'A' {
		return text + strings.Repeat(" ", form.Width-len(text)), nil
	}

	return strings.Repeat(" ", form.Width-len(text)) + text, nil
}
