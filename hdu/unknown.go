package hdu

import (
	"github.com/arloliu/astrofits/format"
	"github.com/arloliu/astrofits/header"
)

// Unknown is an HDU with an unrecognized XTENSION type. The raw data unit
// is kept untouched; writers skip Unknown HDUs rather than risk corrupting
// a payload they cannot interpret.
type Unknown struct {
	hdr  *header.Header
	data []byte
}

// NewUnknown wraps an unrecognized HDU.
func NewUnknown(h *header.Header, data []byte) *Unknown {
	return &Unknown{hdr: h, data: data}
}

// Kind returns format.KindUnknown.
func (u *Unknown) Kind() format.HDUKind {
	return format.KindUnknown
}

// Header returns the HDU's header unit.
func (u *Unknown) Header() *header.Header {
	return u.hdr
}

// Name returns the HDU name used for lookup.
func (u *Unknown) Name() string {
	return u.hdr.Name()
}

// HasData reports whether the raw payload was kept.
func (u *Unknown) HasData() bool {
	return u.data != nil
}

// Raw returns the unparsed data unit.
func (u *Unknown) Raw() []byte {
	return u.data
}

// AppendData serializes the raw payload onto dst.
func (u *Unknown) AppendData(dst []byte) []byte {
	return append(dst, u.data...)
}
