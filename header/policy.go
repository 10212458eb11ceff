// Package header implements FITS header cards: 80-byte keyword records,
// their validation policy, and the header unit that groups them per HDU.
package header

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/astrofits/errs"
	"github.com/arloliu/astrofits/format"
)

// Commentary keywords that carry free text instead of a "= " value
// indicator. END terminates the header unit.
var reservedKeywords = []string{"COMMENT", "HISTORY", "END"}

// CardPolicy validates and formats the textual pieces of a card. It is
// stateless; the zero value is ready to use.
type CardPolicy struct{}

// IsKeyValid reports whether a keyword fits the 8-character keyword field.
func (CardPolicy) IsKeyValid(keyword string) bool {
	return len(keyword) <= 8
}

// IsCardValid reports whether a raw card image follows the standard: at
// most 80 characters, and either a "= " value indicator at bytes 8-9, a
// reserved commentary keyword, or a blank keyword field.
func (p CardPolicy) IsCardValid(raw string) bool {
	if len(raw) > format.CardSize || len(raw) < 10 {
		return false
	}

	if raw[8:10] == "= " {
		return true
	}
	if p.isReservedKeyword(strings.TrimSpace(raw[:8])) {
		return true
	}

	return raw[:8] == strings.Repeat(" ", 8)
}

// IsPairValid reports whether a keyword/value/comment triple fits in one
// card. The " /" separator and value indicator are accounted for.
func (p CardPolicy) IsPairValid(keyword, value, comment string) bool {
	if !p.IsKeyValid(keyword) {
		return false
	}
	if comment == "" {
		return len(value) <= 70
	}

	return len(value)+len(comment) <= 68
}

// FormatKeyword left-justifies a keyword into the 8-character field.
func (CardPolicy) FormatKeyword(keyword string) string {
	return keyword + strings.Repeat(" ", 8-len(keyword))
}

// ExtractKeyword returns the trimmed keyword field of a raw card.
func (CardPolicy) ExtractKeyword(raw string) string {
	if len(raw) < 8 {
		return strings.TrimSpace(raw)
	}

	return strings.TrimSpace(raw[:8])
}

// ExtractValue returns the trimmed value field of a raw card: everything
// between the value indicator and the comment separator.
func (CardPolicy) ExtractValue(raw string) string {
	if len(raw) <= 10 {
		return ""
	}

	value := raw[10:]
	if slash := strings.IndexByte(value, '/'); slash != -1 {
		value = value[:slash]
	}

	return strings.TrimSpace(value)
}

func (CardPolicy) isReservedKeyword(keyword string) bool {
	for _, reserved := range reservedKeywords {
		if keyword == reserved {
			return true
		}
	}

	return false
}

// ValueType is the closed set of Go types a card value maps onto: logical,
// integer, floating point, complex and character string constants.
type ValueType interface {
	~bool | ~int | ~int64 | ~float64 | ~complex128 | ~string
}

// Parse converts a trimmed card value field into type T.
//
// Logical values accept only "T" and "F". Complex values are two
// whitespace-separated reals. Strings are returned with their surrounding
// quotes and trailing pad spaces stripped.
func Parse[T ValueType](value string) (T, error) {
	var zero T

	switch any(zero).(type) {
	case bool:
		switch value {
		case "T":
			return any(true).(T), nil
		case "F":
			return any(false).(T), nil
		default:
			return zero, fmt.Errorf("%w: %q is not a logical value", errs.ErrInvalidCast, value)
		}
	case int:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return zero, fmt.Errorf("%w: %q to int: %v", errs.ErrInvalidCast, value, err)
		}

		return any(int(v)).(T), nil
	case int64:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return zero, fmt.Errorf("%w: %q to int64: %v", errs.ErrInvalidCast, value, err)
		}

		return any(v).(T), nil
	case float64:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return zero, fmt.Errorf("%w: %q to float64: %v", errs.ErrInvalidCast, value, err)
		}

		return any(v).(T), nil
	case complex128:
		parts := strings.Fields(value)
		if len(parts) != 2 {
			return zero, fmt.Errorf("%w: %q is not a complex value", errs.ErrInvalidCast, value)
		}
		re, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return zero, fmt.Errorf("%w: complex real part %q: %v", errs.ErrInvalidCast, parts[0], err)
		}
		im, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return zero, fmt.Errorf("%w: complex imaginary part %q: %v", errs.ErrInvalidCast, parts[1], err)
		}

		return any(complex(re, im)).(T), nil
	case string:
		return any(unquote(value)).(T), nil
	default:
		return zero, fmt.Errorf("%w: unsupported value type", errs.ErrInvalidCast)
	}
}

// Serialize renders a value the way it appears in the card value field:
// numerics right-justified in 20 characters, logicals as T/F in column 30,
// complex values as two adjacent 20-character fields, strings quoted.
func Serialize[T ValueType](value T) string {
	switch v := any(value).(type) {
	case bool:
		if v {
			return strings.Repeat(" ", 19) + "T"
		}

		return strings.Repeat(" ", 19) + "F"
	case int:
		return rightJustify(strconv.Itoa(v), 20)
	case int64:
		return rightJustify(strconv.FormatInt(v, 10), 20)
	case float64:
		return rightJustify(strconv.FormatFloat(v, 'G', -1, 64), 20)
	case complex128:
		re := rightJustify(strconv.FormatFloat(real(v), 'G', -1, 64), 20)
		im := rightJustify(strconv.FormatFloat(imag(v), 'G', -1, 64), 20)

		return re + im
	case string:
		return "'" + v + "'"
	default:
		return ""
	}
}

func rightJustify(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return strings.Repeat(" ", width-len(s)) + s
}

// unquote strips the surrounding single quotes of a string value and the
// pad spaces inside them.
func unquote(value string) string {
	if len(value) >= 2 && value[0] == '\'' && value[len(value)-1] == '\'' {
		value = value[1 : len(value)-1]
	}

	return strings.TrimRight(value, " ")
}
