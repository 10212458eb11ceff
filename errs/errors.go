// Package errs defines the sentinel errors shared across astrofits packages.
//
// Callers can test for specific failure classes with errors.Is:
//
//	_, err := fits.Open(path)
//	if errors.Is(err, errs.ErrFileOpen) { ... }
//
// Errors are wrapped at the point of detection with additional context,
// so the sentinel is always reachable through the error chain.
package errs

import "errors"

// Structural errors raised while parsing headers and HDUs.
var (
	// ErrMalformedHeader indicates a header that violates the FITS structure,
	// such as a missing mandatory keyword or a header without an END card.
	ErrMalformedHeader = errors.New("malformed FITS header")

	// ErrInvalidBitpix indicates a BITPIX value outside 8/16/32/-32/-64.
	ErrInvalidBitpix = errors.New("invalid BITPIX value")

	// ErrWrongExtensionType indicates an HDU accessed as the wrong variant.
	ErrWrongExtensionType = errors.New("wrong extension type")
)

// Card level errors.
var (
	// ErrCardLength indicates a card longer than 80 characters.
	ErrCardLength = errors.New("card length must not be more than 80 chars")

	// ErrKeyLength indicates a keyword longer than 8 characters.
	ErrKeyLength = errors.New("keyword length must not be more than 8 chars")

	// ErrValueLength indicates a value/comment pair that does not fit a card:
	// value alone is limited to 70 chars, value plus comment to 68.
	ErrValueLength = errors.New("value length exceeds card capacity")

	// ErrKeyNotDefined indicates an operation on a card or header keyword
	// that does not exist.
	ErrKeyNotDefined = errors.New("keyword is not defined")
)

// Table errors.
var (
	// ErrInvalidColumnFormat indicates an unparsable or unknown TFORM format.
	ErrInvalidColumnFormat = errors.New("invalid table column format")

	// ErrColumnNotFound indicates a column name absent from the table.
	ErrColumnNotFound = errors.New("column not found")
)

// Conversion errors.
var (
	// ErrInvalidCast indicates a value that cannot be converted to the
	// requested type.
	ErrInvalidCast = errors.New("invalid cast")

	// ErrShortBuffer indicates a data buffer smaller than the elements it
	// is supposed to hold.
	ErrShortBuffer = errors.New("buffer too short for element count")
)

// File access errors.
var (
	// ErrFileOpen indicates the FITS file could not be opened or created.
	ErrFileOpen = errors.New("cannot open file")

	// ErrFileRead indicates a short or failed read from the FITS file.
	ErrFileRead = errors.New("cannot read file")

	// ErrHDUNotFound indicates an HDU name absent from the control block.
	ErrHDUNotFound = errors.New("HDU not found")

	// ErrIndexOutOfRange indicates an HDU index beyond the scanned count.
	ErrIndexOutOfRange = errors.New("HDU index out of range")
)
