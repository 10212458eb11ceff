// Package image implements the data unit of image HDUs: a flat row-major
// pixel buffer parameterized by the BITPIX element kind, with the on-disk
// big-endian codec and basic pixel statistics.
package image

import (
	"fmt"
	"math"
	"sort"

	"github.com/arloliu/astrofits/encoding"
	"github.com/arloliu/astrofits/endian"
	"github.com/arloliu/astrofits/errs"
	"github.com/arloliu/astrofits/format"
)

// Pixel is the closed set of Go pixel types, one per BITPIX value.
type Pixel interface {
	uint8 | int16 | int32 | float32 | float64
}

// Buffer is a width x height pixel store in row-major order. The zero-axis
// case (primary HDU with no data) is a 0x0 buffer.
type Buffer[T Pixel] struct {
	width  int64
	height int64
	data   []T
}

// NewBuffer allocates a zero-filled buffer.
func NewBuffer[T Pixel](width, height int64) *Buffer[T] {
	return &Buffer[T]{
		width:  width,
		height: height,
		data:   make([]T, width*height),
	}
}

// FromData wraps an existing pixel slice. The slice length must equal
// width*height.
func FromData[T Pixel](data []T, width, height int64) (*Buffer[T], error) {
	if int64(len(data)) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d image", errs.ErrShortBuffer, len(data), width, height)
	}

	return &Buffer[T]{width: width, height: height, data: data}, nil
}

// Decode reads width*height big-endian pixels from raw.
func Decode[T Pixel](engine endian.EndianEngine, raw []byte, width, height int64) (*Buffer[T], error) {
	data, err := encoding.Decode[T](engine, raw, int(width*height))
	if err != nil {
		return nil, err
	}

	return &Buffer[T]{width: width, height: height, data: data}, nil
}

// Width returns the NAXIS1 axis length.
func (b *Buffer[T]) Width() int64 { return b.width }

// Height returns the collapsed length of the remaining axes.
func (b *Buffer[T]) Height() int64 { return b.height }

// Len returns the total number of pixels.
func (b *Buffer[T]) Len() int { return len(b.data) }

// Data returns the underlying pixel slice.
func (b *Buffer[T]) Data() []T { return b.data }

// At returns the pixel at column x, row y (0-based).
func (b *Buffer[T]) At(x, y int64) (T, error) {
	var zero T
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return zero, fmt.Errorf("%w: pixel (%d,%d) in %dx%d image", errs.ErrIndexOutOfRange, x, y, b.width, b.height)
	}

	return b.data[y*b.width+x], nil
}

// Set replaces the pixel at column x, row y (0-based).
func (b *Buffer[T]) Set(x, y int64, v T) error {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return fmt.Errorf("%w: pixel (%d,%d) in %dx%d image", errs.ErrIndexOutOfRange, x, y, b.width, b.height)
	}
	b.data[y*b.width+x] = v

	return nil
}

// AppendTo serializes the pixels in big-endian on-disk order onto dst.
func (b *Buffer[T]) AppendTo(engine endian.EndianEngine, dst []byte) []byte {
	return encoding.Append(engine, dst, b.data)
}

// BitPix returns the element kind matching the buffer's pixel type.
func (b *Buffer[T]) BitPix() format.BitPix {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return format.B8
	case int16:
		return format.B16
	case int32:
		return format.B32
	case float32:
		return format.F32
	default:
		return format.F64
	}
}

// Min returns the smallest pixel value, 0 for an empty buffer.
func (b *Buffer[T]) Min() float64 {
	if len(b.data) == 0 {
		return 0
	}

	m := b.data[0]
	for _, v := range b.data[1:] {
		if v < m {
			m = v
		}
	}

	return float64(m)
}

// Max returns the largest pixel value, 0 for an empty buffer.
func (b *Buffer[T]) Max() float64 {
	if len(b.data) == 0 {
		return 0
	}

	m := b.data[0]
	for _, v := range b.data[1:] {
		if v > m {
			m = v
		}
	}

	return float64(m)
}

// Mean returns the arithmetic mean, 0 for an empty buffer.
func (b *Buffer[T]) Mean() float64 {
	if len(b.data) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range b.data {
		sum += float64(v)
	}

	return sum / float64(len(b.data))
}

// Median returns the middle pixel value, averaging the two central values
// for an even count. 0 for an empty buffer.
func (b *Buffer[T]) Median() float64 {
	if len(b.data) == 0 {
		return 0
	}

	sorted := make([]float64, len(b.data))
	for i, v := range b.data {
		sorted[i] = float64(v)
	}
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}

// StdDev returns the sample standard deviation (N-1 in the denominator),
// 0 when fewer than two pixels are present.
func (b *Buffer[T]) StdDev() float64 {
	if len(b.data) < 2 {
		return 0
	}

	mean := b.Mean()
	sum := 0.0
	for _, v := range b.data {
		d := float64(v) - mean
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(b.data)-1))
}
