package hdu

import (
	"fmt"

	"github.com/arloliu/astrofits/errs"
	"github.com/arloliu/astrofits/format"
	"github.com/arloliu/astrofits/header"
	"github.com/arloliu/astrofits/image"
)

// Primary is the first HDU of every FITS file: a SIMPLE header with an
// optional image data unit.
type Primary struct {
	hdr  *header.Header
	data image.Data
}

// NewPrimary builds the primary HDU. data is the raw data unit, or nil in
// header-only mode.
func NewPrimary(h *header.Header, data []byte) (*Primary, error) {
	if !h.Contains("SIMPLE") {
		return nil, fmt.Errorf("%w: primary HDU without SIMPLE", errs.ErrMalformedHeader)
	}

	p := &Primary{hdr: h}
	if data != nil {
		buf, err := image.Read(engine, h.BitPix(), data, h.Naxis())
		if err != nil {
			return nil, err
		}
		p.data = buf
	}

	return p, nil
}

// Kind returns format.KindPrimary.
func (p *Primary) Kind() format.HDUKind {
	return format.KindPrimary
}

// Header returns the HDU's header unit.
func (p *Primary) Header() *header.Header {
	return p.hdr
}

// Name returns the HDU name used for lookup, "PRIMARY" unless an EXTNAME
// card overrides it.
func (p *Primary) Name() string {
	return p.hdr.Name()
}

// HasData reports whether the data unit was materialized.
func (p *Primary) HasData() bool {
	return p.data != nil
}

// Data returns the pixel buffer, nil in header-only mode.
func (p *Primary) Data() image.Data {
	return p.data
}

// Simple returns the SIMPLE flag: whether the file conforms to the
// standard.
func (p *Primary) Simple() (bool, error) {
	return header.Value[bool](p.hdr, "SIMPLE")
}

// Extended reports whether the file may contain extensions, false when the
// EXTEND card is absent.
func (p *Primary) Extended() bool {
	extended, err := header.Value[bool](p.hdr, "EXTEND")

	return err == nil && extended
}

// AppendData serializes the data unit onto dst.
func (p *Primary) AppendData(dst []byte) []byte {
	if p.data == nil {
		return dst
	}

	return p.data.AppendTo(engine, dst)
}
