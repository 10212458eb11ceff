// Package astrofits reads and writes FITS (Flexible Image Transport
// System) files, the standard container format for astronomical images
// and tables.
//
// A FITS file is a sequence of header-data units (HDUs) laid out in
// 2880-byte logical records. Each HDU starts with a header of 80-byte
// keyword cards terminated by END, followed by an optional big-endian
// data unit whose shape the BITPIX and NAXIS keywords describe. This
// module parses headers into typed cards, dispatches each HDU to its
// variant (primary, image extension, ASCII table, binary table), and
// keeps a control block of file offsets for random access by index or
// name.
//
// # Basic Usage
//
// Reading an image and a table column:
//
//	import "github.com/arloliu/astrofits"
//
//	f, _ := astrofits.Open("m31.fits")
//	defer f.Close()
//
//	p, _ := f.Primary()
//	fmt.Printf("mean pixel: %g\n", p.Data().Mean())
//
//	unit, _ := f.ByName("EVENTS")
//	events := unit.(*hdu.BinaryTable)
//	flux, _ := table.GetColumn[float32](events.Data(), "FLUX")
//
// Large files can be scanned without loading any data:
//
//	f, _ := astrofits.Open("survey.fits", astrofits.ReadHeadersOnly())
//	unit, _ := f.ReadData("EVENTS") // materialized on demand
//
// # Package Structure
//
// This package provides top-level wrappers around the fits package. The
// layers underneath are usable directly: header for cards and headers,
// hdu for the unit variants, image and table for payloads, encoding for
// the element codecs, and stream for record-aligned file access.
package astrofits

import (
	"github.com/arloliu/astrofits/fits"
)

// Open opens and scans a FITS file. By default every data unit is read
// eagerly; pass ReadHeadersOnly to defer data to ReadData calls.
func Open(path string, opts ...fits.Option) (*fits.File, error) {
	return fits.Open(path, opts...)
}

// ReadHeadersOnly makes Open scan headers without materializing data
// units.
func ReadHeadersOnly() fits.Option {
	return fits.ReadHeadersOnly()
}
