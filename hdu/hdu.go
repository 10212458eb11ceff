// Package hdu implements the FITS header-data-unit variants and the
// factory that dispatches a parsed header to the right one: primary HDU,
// image extension, ASCII table, binary table, or the explicit Unknown
// variant for unrecognized extension types.
package hdu

import (
	"fmt"

	"github.com/arloliu/astrofits/endian"
	"github.com/arloliu/astrofits/errs"
	"github.com/arloliu/astrofits/format"
	"github.com/arloliu/astrofits/header"
)

// FITS data is big-endian on disk regardless of host order.
var engine = endian.GetBigEndianEngine()

// HDU is the common surface of all header-data-unit variants.
//
// AppendData serializes the data unit in on-disk form without record
// padding; the writer pads. An HDU scanned in header-only mode has no
// payload and appends nothing.
type HDU interface {
	Kind() format.HDUKind
	Header() *header.Header
	Name() string
	HasData() bool
	AppendData(dst []byte) []byte
}

// Construct builds the HDU variant matching the header: SIMPLE headers
// become the primary HDU, XTENSION headers dispatch on the extension type,
// and unrecognized types become Unknown. data is the raw data unit, or nil
// when only headers were scanned.
func Construct(h *header.Header, data []byte) (HDU, error) {
	switch h.Kind() {
	case format.KindPrimary:
		return NewPrimary(h, data)
	case format.KindImageExtension:
		return NewImageExtension(h, data)
	case format.KindAsciiTable:
		return NewAsciiTable(h, data)
	case format.KindBinaryTable:
		return NewBinaryTable(h, data)
	default:
		return NewUnknown(h, data), nil
	}
}

// extension carries the bookkeeping keywords shared by all extension HDUs.
type extension struct {
	hdr    *header.Header
	pcount int64
	gcount int64
}

// resolveExtension reads PCOUNT and GCOUNT. required controls whether
// their absence is a structural error (tables) or defaulted (images).
func resolveExtension(h *header.Header, required bool) (extension, error) {
	ext := extension{hdr: h, gcount: 1}

	pcount, err := header.Value[int64](h, "PCOUNT")
	if err == nil {
		ext.pcount = pcount
	} else if required {
		return ext, fmt.Errorf("%w: missing PCOUNT", errs.ErrMalformedHeader)
	}

	gcount, err := header.Value[int64](h, "GCOUNT")
	if err == nil {
		ext.gcount = gcount
	} else if required {
		return ext, fmt.Errorf("%w: missing GCOUNT", errs.ErrMalformedHeader)
	}

	return ext, nil
}

// Header returns the HDU's header unit.
func (e *extension) Header() *header.Header {
	return e.hdr
}

// Name returns the HDU name used for lookup.
func (e *extension) Name() string {
	return e.hdr.Name()
}

// PCount returns the size of the special data area in bytes.
func (e *extension) PCount() int64 {
	return e.pcount
}

// GCount returns the number of data groups.
func (e *extension) GCount() int64 {
	return e.gcount
}

// DataByteSize returns the on-disk size of a header's data unit in bytes,
// before record padding.
func DataByteSize(h *header.Header) int64 {
	return h.DataSize() * int64(h.BitPix().ElementSize())
}
