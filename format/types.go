// Package format defines the closed type taxonomy of the FITS container:
// BITPIX element kinds, HDU kinds, logical record geometry and the TFORM
// column format grammar.
package format

import (
	"fmt"

	"github.com/arloliu/astrofits/errs"
)

// Logical record geometry. Every header and data block is padded to a
// multiple of RecordSize bytes on disk.
const (
	RecordSize     = 2880 // bytes per logical record
	CardSize       = 80   // bytes per header card
	CardsPerRecord = RecordSize / CardSize
)

// BitPix encodes the on-disk numeric kind of data elements, using the raw
// keyword values from the standard (negative values are IEEE floats).
type BitPix int

const (
	B8  BitPix = 8   // B8 represents 8-bit unsigned integer pixels.
	B16 BitPix = 16  // B16 represents 16-bit two's complement integer pixels.
	B32 BitPix = 32  // B32 represents 32-bit two's complement integer pixels.
	F32 BitPix = -32 // F32 represents 32-bit IEEE single precision float pixels.
	F64 BitPix = -64 // F64 represents 64-bit IEEE double precision float pixels.
)

// ParseBitPix validates a raw BITPIX card value.
func ParseBitPix(value int) (BitPix, error) {
	switch BitPix(value) {
	case B8, B16, B32, F32, F64:
		return BitPix(value), nil
	default:
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidBitpix, value)
	}
}

// ElementSize returns the on-disk size in bytes of one data element.
func (b BitPix) ElementSize() int {
	size := int(b) / 8
	if size < 0 {
		return -size
	}

	return size
}

func (b BitPix) String() string {
	switch b {
	case B8:
		return "uint8"
	case B16:
		return "int16"
	case B32:
		return "int32"
	case F32:
		return "float32"
	case F64:
		return "float64"
	default:
		return "unknown"
	}
}

// HDUKind tags the closed set of HDU variants.
type HDUKind uint8

const (
	KindUnknown        HDUKind = iota // unrecognized XTENSION value
	KindPrimary                       // primary HDU (SIMPLE)
	KindImageExtension                // XTENSION = IMAGE
	KindAsciiTable                    // XTENSION = TABLE
	KindBinaryTable                   // XTENSION = BINTABLE
)

func (k HDUKind) String() string {
	switch k {
	case KindPrimary:
		return "primary"
	case KindImageExtension:
		return "image"
	case KindAsciiTable:
		return "table"
	case KindBinaryTable:
		return "bintable"
	case KindUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}
