package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/astrofits/endian"
	"github.com/arloliu/astrofits/errs"
)

var engine = endian.GetBigEndianEngine()

func roundTrip[T Element](t *testing.T, values []T) {
	t.Helper()

	raw := Append(engine, nil, values)
	require.Len(t, raw, len(values)*Size[T]())

	decoded, err := Decode[T](engine, raw, len(values))
	require.NoError(t, err)
	require.Equal(t, values, decoded)

	// Serializing the decoded values reproduces the input bytes exactly.
	require.Equal(t, raw, Append(engine, nil, decoded))
}

func TestRoundTrip(t *testing.T) {
	t.Run("Logical", func(t *testing.T) {
		roundTrip(t, []bool{true, false, false, true})
	})

	t.Run("Byte", func(t *testing.T) {
		roundTrip(t, []uint8{0, 1, 127, 255})
	})

	t.Run("Int16", func(t *testing.T) {
		roundTrip(t, []int16{0, 1, -1, math.MinInt16, math.MaxInt16})
	})

	t.Run("Int32", func(t *testing.T) {
		roundTrip(t, []int32{0, 42, -42, math.MinInt32, math.MaxInt32})
	})

	t.Run("Float32", func(t *testing.T) {
		roundTrip(t, []float32{0, 1.5, -2.25, math.MaxFloat32, math.SmallestNonzeroFloat32})
	})

	t.Run("Float64", func(t *testing.T) {
		roundTrip(t, []float64{0, 3.141592653589793, -1e300, math.SmallestNonzeroFloat64})
	})

	t.Run("Complex64", func(t *testing.T) {
		roundTrip(t, []complex64{complex(1.5, -2.5), complex(0, 0)})
	})

	t.Run("Complex128", func(t *testing.T) {
		roundTrip(t, []complex128{complex(1e100, -1e-100), complex(0, 1)})
	})

	t.Run("Descriptor", func(t *testing.T) {
		roundTrip(t, []Descriptor{{Length: 128, Offset: 0}, {Length: 64, Offset: 512}})
	})
}

func TestDecodeByteLayout(t *testing.T) {
	t.Run("Int16BigEndian", func(t *testing.T) {
		decoded, err := Decode[int16](engine, []byte{0x01, 0x02}, 1)
		require.NoError(t, err)
		require.Equal(t, []int16{0x0102}, decoded)
	})

	t.Run("Float32BigEndian", func(t *testing.T) {
		// 1.0 as IEEE single precision, most significant byte first.
		decoded, err := Decode[float32](engine, []byte{0x3F, 0x80, 0x00, 0x00}, 1)
		require.NoError(t, err)
		require.Equal(t, []float32{1.0}, decoded)
	})

	t.Run("LogicalBytes", func(t *testing.T) {
		decoded, err := Decode[bool](engine, []byte{'T', 'F', 'x'}, 3)
		require.NoError(t, err)
		require.Equal(t, []bool{true, false, false}, decoded)
	})
}

func TestDecodeShortBuffer(t *testing.T) {
	_, err := Decode[int32](engine, []byte{1, 2, 3}, 1)
	require.ErrorIs(t, err, errs.ErrShortBuffer)

	_, err = Decode[float64](engine, make([]byte, 15), 2)
	require.ErrorIs(t, err, errs.ErrShortBuffer)
}

func TestDecodeNaN(t *testing.T) {
	raw := Append(engine, nil, []float64{math.NaN()})
	decoded, err := Decode[float64](engine, raw, 1)
	require.NoError(t, err)
	require.True(t, math.IsNaN(decoded[0]))

	// The NaN payload survives the round trip bit for bit.
	require.Equal(t, raw, Append(engine, nil, decoded))
}
