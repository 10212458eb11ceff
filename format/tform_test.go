package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/astrofits/errs"
)

func TestBitPix(t *testing.T) {
	t.Run("Parse", func(t *testing.T) {
		for _, v := range []int{8, 16, 32, -32, -64} {
			b, err := ParseBitPix(v)
			require.NoError(t, err)
			require.Equal(t, BitPix(v), b)
		}
	})

	t.Run("ParseInvalid", func(t *testing.T) {
		_, err := ParseBitPix(64)
		require.ErrorIs(t, err, errs.ErrInvalidBitpix)

		_, err = ParseBitPix(0)
		require.ErrorIs(t, err, errs.ErrInvalidBitpix)
	})

	t.Run("ElementSize", func(t *testing.T) {
		require.Equal(t, 1, B8.ElementSize())
		require.Equal(t, 2, B16.ElementSize())
		require.Equal(t, 4, B32.ElementSize())
		require.Equal(t, 4, F32.ElementSize())
		require.Equal(t, 8, F64.ElementSize())
	})
}

func TestBinaryTFORM(t *testing.T) {
	t.Run("TypeCode", func(t *testing.T) {
		code, err := TypeCode("242000I")
		require.NoError(t, err)
		require.Equal(t, byte('I'), code)

		code, err = TypeCode("'16A     '")
		require.NoError(t, err)
		require.Equal(t, byte('A'), code)
	})

	t.Run("ElementCount", func(t *testing.T) {
		count, err := ElementCount("300I")
		require.NoError(t, err)
		require.Equal(t, 300, count)

		count, err = ElementCount("I")
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	t.Run("ColumnWidth", func(t *testing.T) {
		cases := map[string]int{
			"144000I": 288000,
			"E":       4,
			"10D":     80,
			"M":       16,
			"2C":      16,
			"P":       8,
			"L":       1,
			"8A":      8,
		}
		for form, want := range cases {
			width, err := ColumnWidth(form)
			require.NoError(t, err, "form %q", form)
			require.Equal(t, want, width, "form %q", form)
		}
	})

	t.Run("UnknownCode", func(t *testing.T) {
		_, err := ColumnWidth("3Z")
		require.ErrorIs(t, err, errs.ErrInvalidColumnFormat)

		_, err = TypeSize('Q')
		require.ErrorIs(t, err, errs.ErrInvalidColumnFormat)
	})

	t.Run("BadRepeat", func(t *testing.T) {
		_, err := ElementCount("12x4I")
		require.ErrorIs(t, err, errs.ErrInvalidColumnFormat)
	})
}

func TestParseAsciiForm(t *testing.T) {
	t.Run("WithPrecision", func(t *testing.T) {
		form, err := ParseAsciiForm("F10.4")
		require.NoError(t, err)
		require.Equal(t, AsciiForm{Code: 'F', Width: 10, Precision: 4}, form)
	})

	t.Run("WithoutPrecision", func(t *testing.T) {
		form, err := ParseAsciiForm("I12")
		require.NoError(t, err)
		require.Equal(t, AsciiForm{Code: 'I', Width: 12, Precision: -1}, form)
	})

	t.Run("Quoted", func(t *testing.T) {
		form, err := ParseAsciiForm("'A20     '")
		require.NoError(t, err)
		require.Equal(t, AsciiForm{Code: 'A', Width: 20, Precision: -1}, form)
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, bad := range []string{"", "A", "Z10", "Fx.2", "F10.y"} {
			_, err := ParseAsciiForm(bad)
			require.ErrorIs(t, err, errs.ErrInvalidColumnFormat, "form %q", bad)
		}
	})
}
