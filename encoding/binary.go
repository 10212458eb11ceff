// Package encoding implements the element codecs between on-disk FITS data
// and Go values: a big-endian binary codec shared by image and binary
// table payloads, and a text codec for ASCII table fields.
//
// Floating point values are staged through same-width unsigned integers so
// the byte order conversion and the bit pattern reinterpretation stay
// separate steps. Append is the exact left inverse of Decode for every
// element type.
package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/astrofits/endian"
	"github.com/arloliu/astrofits/errs"
)

// Descriptor is a variable-length array descriptor (type code P): element
// count plus byte offset into the heap area.
type Descriptor struct {
	Length int32
	Offset int32
}

// Element is the closed set of Go types binary FITS data maps onto.
// Logical columns use bool, character data uint8, descriptors Descriptor.
type Element interface {
	bool | uint8 | int16 | int32 | float32 | float64 | complex64 | complex128 | Descriptor
}

// Size returns the on-disk byte width of one element of type T.
func Size[T Element]() int {
	var zero T
	switch any(zero).(type) {
	case bool, uint8:
		return 1
	case int16:
		return 2
	case int32, float32:
		return 4
	case float64, complex64, Descriptor:
		return 8
	case complex128:
		return 16
	default:
		return 0
	}
}

// Decode converts count big-endian elements from raw into Go values.
// raw may be longer than needed; a buffer shorter than count elements is
// rejected.
func Decode[T Element](engine endian.EndianEngine, raw []byte, count int) ([]T, error) {
	size := Size[T]()
	if len(raw) < count*size {
		return nil, fmt.Errorf("%w: need %d bytes for %d elements, have %d",
			errs.ErrShortBuffer, count*size, count, len(raw))
	}

	out := make([]T, count)
	switch dst := any(out).(type) {
	case []bool:
		for i := range dst {
			dst[i] = raw[i] == 'T'
		}
	case []uint8:
		copy(dst, raw[:count])
	case []int16:
		for i := range dst {
			dst[i] = int16(engine.Uint16(raw[i*2 : i*2+2]))
		}
	case []int32:
		for i := range dst {
			dst[i] = int32(engine.Uint32(raw[i*4 : i*4+4]))
		}
	case []float32:
		for i := range dst {
			dst[i] = math.Float32frombits(engine.Uint32(raw[i*4 : i*4+4]))
		}
	case []float64:
		for i := range dst {
			dst[i] = math.Float64frombits(engine.Uint64(raw[i*8 : i*8+8]))
		}
	case []complex64:
		for i := range dst {
			re := math.Float32frombits(engine.Uint32(raw[i*8 : i*8+4]))
			im := math.Float32frombits(engine.Uint32(raw[i*8+4 : i*8+8]))
			dst[i] = complex(re, im)
		}
	case []complex128:
		for i := range dst {
			re := math.Float64frombits(engine.Uint64(raw[i*16 : i*16+8]))
			im := math.Float64frombits(engine.Uint64(raw[i*16+8 : i*16+16]))
			dst[i] = complex(re, im)
		}
	case []Descriptor:
		for i := range dst {
			dst[i] = Descriptor{
				Length: int32(engine.Uint32(raw[i*8 : i*8+4])),
				Offset: int32(engine.Uint32(raw[i*8+4 : i*8+8])),
			}
		}
	}

	return out, nil
}

// Append serializes values in big-endian on-disk form onto dst.
func Append[T Element](engine endian.EndianEngine, dst []byte, values []T) []byte {
	switch src := any(values).(type) {
	case []bool:
		for _, v := range src {
			if v {
				dst = append(dst, 'T')
			} else {
				dst = append(dst, 'F')
			}
		}
	case []uint8:
		dst = append(dst, src...)
	case []int16:
		for _, v := range src {
			dst = engine.AppendUint16(dst, uint16(v))
		}
	case []int32:
		for _, v := range src {
			dst = engine.AppendUint32(dst, uint32(v))
		}
	case []float32:
		for _, v := range src {
			dst = engine.AppendUint32(dst, math.Float32bits(v))
		}
	case []float64:
		for _, v := range src {
			dst = engine.AppendUint64(dst, math.Float64bits(v))
		}
	case []complex64:
		for _, v := range src {
			dst = engine.AppendUint32(dst, math.Float32bits(real(v)))
			dst = engine.AppendUint32(dst, math.Float32bits(imag(v)))
		}
	case []complex128:
		for _, v := range src {
			dst = engine.AppendUint64(dst, math.Float64bits(real(v)))
			dst = engine.AppendUint64(dst, math.Float64bits(imag(v)))
		}
	case []Descriptor:
		for _, v := range src {
			dst = engine.AppendUint32(dst, uint32(v.Length))
			dst = engine.AppendUint32(dst, uint32(v.Offset))
		}
	}

	return dst
}
