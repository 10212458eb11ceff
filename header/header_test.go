package header

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/astrofits/errs"
	"github.com/arloliu/astrofits/format"
)

// sliceReader serves header bytes from memory, standing in for the file
// stream.
type sliceReader struct {
	data []byte
	pos  int
}

func (r *sliceReader) ReadN(n int) ([]byte, error) {
	if r.pos+n > len(r.data) {
		return nil, io.ErrUnexpectedEOF
	}
	buf := r.data[r.pos : r.pos+n]
	r.pos += n

	return buf, nil
}

// recordBuffer collects written bytes and pads like the file stream does.
type recordBuffer struct {
	bytes.Buffer
}

func (b *recordBuffer) Pad(fill byte) error {
	for b.Len()%format.RecordSize != 0 {
		b.WriteByte(fill)
	}

	return nil
}

func rawCards(lines ...string) []byte {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteString(strings.Repeat(" ", format.CardSize-len(line)))
	}

	return buf.Bytes()
}

func primaryHeaderBytes() []byte {
	return rawCards(
		"SIMPLE  =                    T / file does conform to FITS standard",
		"BITPIX  =                  -32 / number of bits per data pixel",
		"NAXIS   =                    2 / number of data axes",
		"NAXIS1  =                  200 / length of data axis 1",
		"NAXIS2  =                  200 / length of data axis 2",
		"COMMENT   FITS (Flexible Image Transport System) format",
		"END",
	)
}

func TestHeaderRead(t *testing.T) {
	h, err := Read(&sliceReader{data: primaryHeaderBytes()})
	require.NoError(t, err)

	require.Equal(t, 6, h.CardCount())
	require.Equal(t, format.F32, h.BitPix())
	require.Equal(t, []int64{200, 200}, h.Naxis())
	require.Equal(t, 2, h.Dimensions())
	require.EqualValues(t, 40000, h.DataSize())
	require.Equal(t, "PRIMARY", h.Name())
	require.Equal(t, format.KindPrimary, h.Kind())

	n1, err := h.NaxisN(1)
	require.NoError(t, err)
	require.EqualValues(t, 200, n1)

	_, err = h.NaxisN(3)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	simple, err := Value[bool](h, "SIMPLE")
	require.NoError(t, err)
	require.True(t, simple)

	_, err = Value[int](h, "PCOUNT")
	require.ErrorIs(t, err, errs.ErrKeyNotDefined)
}

func TestHeaderReadExtension(t *testing.T) {
	data := rawCards(
		"XTENSION= 'BINTABLE'           / binary table extension",
		"BITPIX  =                    8 / 8-bit bytes",
		"NAXIS   =                    2 / 2-dimensional binary table",
		"NAXIS1  =                   24 / width of table in bytes",
		"NAXIS2  =                  100 / number of rows in table",
		"PCOUNT  =                    0 / size of special data area",
		"GCOUNT  =                    1 / one data group",
		"TFIELDS =                    3 / number of fields in each row",
		"EXTNAME = 'EVENTS  '           / extension name",
		"END",
	)

	h, err := Read(&sliceReader{data: data})
	require.NoError(t, err)

	require.Equal(t, format.KindBinaryTable, h.Kind())
	require.Equal(t, "EVENTS", h.Name())
	require.EqualValues(t, 2400, h.DataSize())
}

func TestHeaderReadErrors(t *testing.T) {
	t.Run("NoEnd", func(t *testing.T) {
		data := rawCards("SIMPLE  =                    T")
		_, err := Read(&sliceReader{data: data})
		require.ErrorIs(t, err, errs.ErrMalformedHeader)
	})

	t.Run("MissingBitpix", func(t *testing.T) {
		data := rawCards(
			"SIMPLE  =                    T",
			"NAXIS   =                    0",
			"END",
		)
		_, err := Read(&sliceReader{data: data})
		require.ErrorIs(t, err, errs.ErrMalformedHeader)
	})

	t.Run("BadBitpix", func(t *testing.T) {
		data := rawCards(
			"SIMPLE  =                    T",
			"BITPIX  =                   64",
			"NAXIS   =                    0",
			"END",
		)
		_, err := Read(&sliceReader{data: data})
		require.ErrorIs(t, err, errs.ErrInvalidBitpix)
	})

	t.Run("MissingNaxisN", func(t *testing.T) {
		data := rawCards(
			"SIMPLE  =                    T",
			"BITPIX  =                    8",
			"NAXIS   =                    2",
			"NAXIS1  =                   10",
			"END",
		)
		_, err := Read(&sliceReader{data: data})
		require.ErrorIs(t, err, errs.ErrMalformedHeader)
	})
}

func TestHeaderWrite(t *testing.T) {
	h, err := Read(&sliceReader{data: primaryHeaderBytes()})
	require.NoError(t, err)

	var buf recordBuffer
	require.NoError(t, h.WriteTo(&buf))

	require.Equal(t, format.RecordSize, buf.Len())
	raw := buf.String()
	require.True(t, strings.HasPrefix(raw, "SIMPLE  ="))
	require.Contains(t, raw, "END     ")
	// Everything after the last card is space fill.
	require.Equal(t, strings.Repeat(" ", format.CardSize), raw[format.RecordSize-format.CardSize:])

	// Round trip: the written record reads back identical.
	again, err := Read(&sliceReader{data: buf.Bytes()})
	require.NoError(t, err)
	require.Equal(t, h.CardCount(), again.CardCount())
	require.Equal(t, h.Naxis(), again.Naxis())
}

func TestHeaderBuild(t *testing.T) {
	h := New()

	mustAdd := func(c Card, err error) {
		t.Helper()
		require.NoError(t, err)
		h.AddCard(c)
	}

	mustAdd(NewCard("SIMPLE", true, ""))
	mustAdd(NewCard("BITPIX", 16, ""))
	mustAdd(NewCard("NAXIS", 1, ""))
	mustAdd(NewCard("NAXIS1", 500, ""))
	h.AddCard(EndCard())

	require.NoError(t, h.Resolve())
	require.Equal(t, format.B16, h.BitPix())
	require.EqualValues(t, 500, h.DataSize())

	// AddCard keeps END last.
	extra, err := NewCard("OBSERVER", "scheduler", "")
	require.NoError(t, err)
	h.AddCard(extra)
	cards := h.Cards()
	require.True(t, cards[len(cards)-1].IsEnd())
	require.Equal(t, "OBSERVER", cards[len(cards)-2].Key())

	// SetValue updates in place and appends for new keys.
	require.NoError(t, SetValue(h, "NAXIS1", 600))
	require.NoError(t, h.Resolve())
	require.EqualValues(t, 600, h.DataSize())

	require.NoError(t, SetValue(h, "EXPTIME", 30.0))
	exp, err := Value[float64](h, "EXPTIME")
	require.NoError(t, err)
	require.Equal(t, 30.0, exp)
}
