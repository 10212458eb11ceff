package image

import (
	"fmt"

	"github.com/arloliu/astrofits/endian"
	"github.com/arloliu/astrofits/errs"
	"github.com/arloliu/astrofits/format"
)

// Data is the type-erased view of a pixel buffer, letting an HDU hold any
// pixel kind behind one interface. Callers that know the kind assert back
// to *Buffer[T].
type Data interface {
	BitPix() format.BitPix
	Width() int64
	Height() int64
	Len() int
	AppendTo(engine endian.EndianEngine, dst []byte) []byte
	Min() float64
	Max() float64
	Mean() float64
	Median() float64
	StdDev() float64
}

// Read decodes an image data unit, picking the pixel type from BITPIX.
// NAXIS1 becomes the width; the remaining axes collapse into the height.
func Read(engine endian.EndianEngine, bitpix format.BitPix, raw []byte, naxis []int64) (Data, error) {
	width, height := shape(naxis)

	switch bitpix {
	case format.B8:
		return Decode[uint8](engine, raw, width, height)
	case format.B16:
		return Decode[int16](engine, raw, width, height)
	case format.B32:
		return Decode[int32](engine, raw, width, height)
	case format.F32:
		return Decode[float32](engine, raw, width, height)
	case format.F64:
		return Decode[float64](engine, raw, width, height)
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidBitpix, int(bitpix))
	}
}

func shape(naxis []int64) (width, height int64) {
	if len(naxis) == 0 {
		return 0, 0
	}

	width = naxis[0]
	height = 1
	for _, n := range naxis[1:] {
		height *= n
	}

	return width, height
}
