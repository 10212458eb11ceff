package hdu

import (
	"github.com/arloliu/astrofits/format"
	"github.com/arloliu/astrofits/header"
	"github.com/arloliu/astrofits/image"
)

// ImageExtension is an XTENSION=IMAGE HDU: the same pixel payload as the
// primary HDU plus the extension bookkeeping keywords.
type ImageExtension struct {
	extension
	data image.Data
}

// NewImageExtension builds an image extension. PCOUNT and GCOUNT default
// to 0 and 1 when absent.
func NewImageExtension(h *header.Header, data []byte) (*ImageExtension, error) {
	ext, err := resolveExtension(h, false)
	if err != nil {
		return nil, err
	}

	ie := &ImageExtension{extension: ext}
	if data != nil {
		buf, err := image.Read(engine, h.BitPix(), data, h.Naxis())
		if err != nil {
			return nil, err
		}
		ie.data = buf
	}

	return ie, nil
}

// Kind returns format.KindImageExtension.
func (ie *ImageExtension) Kind() format.HDUKind {
	return format.KindImageExtension
}

// HasData reports whether the data unit was materialized.
func (ie *ImageExtension) HasData() bool {
	return ie.data != nil
}

// Data returns the pixel buffer, nil in header-only mode.
func (ie *ImageExtension) Data() image.Data {
	return ie.data
}

// AppendData serializes the data unit onto dst.
func (ie *ImageExtension) AppendData(dst []byte) []byte {
	if ie.data == nil {
		return dst
	}

	return ie.data.AppendTo(engine, dst)
}
