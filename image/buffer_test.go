package image

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/astrofits/encoding"
	"github.com/arloliu/astrofits/endian"
	"github.com/arloliu/astrofits/errs"
	"github.com/arloliu/astrofits/format"
)

var engine = endian.GetBigEndianEngine()

func TestBufferAccess(t *testing.T) {
	b, err := FromData([]int16{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)

	require.EqualValues(t, 3, b.Width())
	require.EqualValues(t, 2, b.Height())
	require.Equal(t, 6, b.Len())
	require.Equal(t, format.B16, b.BitPix())

	// Row-major: (x=2, y=1) is the last element.
	v, err := b.At(2, 1)
	require.NoError(t, err)
	require.EqualValues(t, 6, v)

	v, err = b.At(0, 1)
	require.NoError(t, err)
	require.EqualValues(t, 4, v)

	_, err = b.At(3, 0)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
	_, err = b.At(0, 2)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
	_, err = b.At(-1, 0)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	require.NoError(t, b.Set(1, 0, 42))
	v, err = b.At(1, 0)
	require.NoError(t, err)
	require.EqualValues(t, 42, v)

	require.ErrorIs(t, b.Set(5, 5, 1), errs.ErrIndexOutOfRange)
}

func TestFromDataShapeMismatch(t *testing.T) {
	_, err := FromData([]float32{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, errs.ErrShortBuffer)
}

func TestBufferStats(t *testing.T) {
	t.Run("OddCount", func(t *testing.T) {
		b, err := FromData([]float64{4, 1, 3, 2, 5}, 5, 1)
		require.NoError(t, err)

		require.Equal(t, 1.0, b.Min())
		require.Equal(t, 5.0, b.Max())
		require.Equal(t, 3.0, b.Mean())
		require.Equal(t, 3.0, b.Median())
		// Sample variance of 1..5 is 2.5.
		require.InDelta(t, 1.5811388300841898, b.StdDev(), 1e-12)
	})

	t.Run("EvenCount", func(t *testing.T) {
		b, err := FromData([]int32{10, 20, 30, 40}, 2, 2)
		require.NoError(t, err)

		require.Equal(t, 25.0, b.Median())
		require.Equal(t, 25.0, b.Mean())
	})

	t.Run("Empty", func(t *testing.T) {
		b := NewBuffer[float32](0, 0)
		require.Zero(t, b.Min())
		require.Zero(t, b.Max())
		require.Zero(t, b.Mean())
		require.Zero(t, b.Median())
		require.Zero(t, b.StdDev())
	})

	t.Run("SinglePixel", func(t *testing.T) {
		b, err := FromData([]uint8{7}, 1, 1)
		require.NoError(t, err)
		require.Zero(t, b.StdDev())
		require.Equal(t, 7.0, b.Mean())
	})
}

func TestImageCodec(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		pixels := []float32{0.5, -1.25, 3.75, 100, -0.0625, 8}
		raw := encoding.Append(engine, nil, pixels)

		data, err := Read(engine, format.F32, raw, []int64{3, 2})
		require.NoError(t, err)
		require.Equal(t, 6, data.Len())
		require.Equal(t, format.F32, data.BitPix())

		buf, ok := data.(*Buffer[float32])
		require.True(t, ok)
		require.Equal(t, pixels, buf.Data())

		require.Equal(t, raw, data.AppendTo(engine, nil))
	})

	t.Run("ThreeAxes", func(t *testing.T) {
		raw := make([]byte, 2*3*4)
		data, err := Read(engine, format.B8, raw, []int64{2, 3, 4})
		require.NoError(t, err)
		require.EqualValues(t, 2, data.Width())
		require.EqualValues(t, 12, data.Height())
		require.Equal(t, 24, data.Len())
	})

	t.Run("NoAxes", func(t *testing.T) {
		data, err := Read(engine, format.B16, nil, nil)
		require.NoError(t, err)
		require.Zero(t, data.Len())
	})

	t.Run("ShortPayload", func(t *testing.T) {
		_, err := Read(engine, format.F64, make([]byte, 10), []int64{2, 2})
		require.ErrorIs(t, err, errs.ErrShortBuffer)
	})
}
