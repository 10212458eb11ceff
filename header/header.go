package header

import (
	"fmt"
	"strconv"

	"github.com/arloliu/astrofits/errs"
	"github.com/arloliu/astrofits/format"
	"github.com/arloliu/astrofits/internal/pool"
)

// CardReader is the stream surface the header reader needs: an exact read
// that advances the cursor. *stream.File satisfies it.
type CardReader interface {
	ReadN(n int) ([]byte, error)
}

// RecordWriter is the stream surface the header writer needs. *stream.File
// satisfies it.
type RecordWriter interface {
	Write(p []byte) (int, error)
	Pad(fill byte) error
}

// Header is the header unit of one HDU: the ordered card list plus the
// shape keywords resolved out of it.
//
// Methods are not safe for concurrent mutation; a Header that is no longer
// being modified may be read from multiple goroutines.
type Header struct {
	cards    []Card
	keyIndex map[string]int

	bitpix format.BitPix
	naxis  []int64
}

// New returns an empty header for programmatic construction.
func New() *Header {
	return &Header{
		keyIndex: make(map[string]int),
	}
}

// Read reads one header unit from the stream: card by card until END, then
// resolves the BITPIX and NAXIS keywords. The caller aligns the stream to
// the next record boundary afterwards.
func Read(r CardReader) (*Header, error) {
	h := &Header{
		cards:    make([]Card, 0, format.CardsPerRecord),
		keyIndex: make(map[string]int),
	}

	for {
		raw, err := r.ReadN(format.CardSize)
		if err != nil {
			return nil, fmt.Errorf("%w: header not terminated by END: %v", errs.ErrMalformedHeader, err)
		}

		c, err := NewCardFromRaw(string(raw))
		if err != nil {
			return nil, err
		}

		h.cards = append(h.cards, c)
		h.keyIndex[c.Key()] = len(h.cards) - 1

		if c.IsEnd() {
			break
		}
	}

	if err := h.Resolve(); err != nil {
		return nil, err
	}

	return h, nil
}

// Resolve recomputes the cached BITPIX and NAXIS shape from the cards.
// Read calls it automatically; programmatically built headers call it after
// the shape cards are in place.
func (h *Header) Resolve() error {
	bitpixCard, err := h.Card("BITPIX")
	if err != nil {
		return fmt.Errorf("%w: missing BITPIX", errs.ErrMalformedHeader)
	}

	rawBitpix, err := CardValue[int](bitpixCard)
	if err != nil {
		return err
	}

	h.bitpix, err = format.ParseBitPix(rawBitpix)
	if err != nil {
		return err
	}

	dims, err := Value[int](h, "NAXIS")
	if err != nil {
		return fmt.Errorf("%w: missing NAXIS", errs.ErrMalformedHeader)
	}

	h.naxis = make([]int64, 0, dims)
	for i := 1; i <= dims; i++ {
		n, err := Value[int64](h, "NAXIS"+strconv.Itoa(i))
		if err != nil {
			return fmt.Errorf("%w: missing NAXIS%d", errs.ErrMalformedHeader, i)
		}
		h.naxis = append(h.naxis, n)
	}

	return nil
}

// WriteTo writes every card to the stream in one record-aligned block and
// pads the remainder with spaces. A header without an END card gets one
// appended on the way out.
func (h *Header) WriteTo(w RecordWriter) error {
	buf := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(buf)

	wroteEnd := false
	for _, c := range h.cards {
		buf.B = append(buf.B, c.Raw()...)
		if c.IsEnd() {
			wroteEnd = true
		}
	}
	if !wroteEnd {
		buf.B = append(buf.B, EndCard().Raw()...)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}

	return w.Pad(' ')
}

// Cards returns the card list in file order.
func (h *Header) Cards() []Card {
	return h.cards
}

// CardCount returns the number of cards, not counting the END terminator.
func (h *Header) CardCount() int {
	for _, c := range h.cards {
		if c.IsEnd() {
			return len(h.cards) - 1
		}
	}

	return len(h.cards)
}

// Contains reports whether a keyword is present.
func (h *Header) Contains(key string) bool {
	_, ok := h.keyIndex[key]
	return ok
}

// Card returns the card for a keyword.
func (h *Header) Card(key string) (Card, error) {
	idx, ok := h.keyIndex[key]
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", errs.ErrKeyNotDefined, key)
	}

	return h.cards[idx], nil
}

// AddCard appends a card, keeping the END terminator last if one exists.
// Commentary cards may repeat; for value cards the keyword index points at
// the most recently added instance.
func (h *Header) AddCard(c Card) {
	if n := len(h.cards); n > 0 && h.cards[n-1].IsEnd() {
		h.cards = append(h.cards[:n-1], c, h.cards[n-1])
		h.keyIndex[c.Key()] = n - 1
		h.keyIndex["END"] = n

		return
	}

	h.cards = append(h.cards, c)
	h.keyIndex[c.Key()] = len(h.cards) - 1
}

// Value parses the value of a keyword as type T.
func Value[T ValueType](h *Header, key string) (T, error) {
	c, err := h.Card(key)
	if err != nil {
		var zero T
		return zero, err
	}

	return CardValue[T](c)
}

// SetValue replaces the value of an existing keyword, or appends a new card
// when the keyword is absent.
func SetValue[T ValueType](h *Header, key string, value T) error {
	if idx, ok := h.keyIndex[key]; ok {
		return SetCardValue(&h.cards[idx], value)
	}

	c, err := NewCard(key, value, "")
	if err != nil {
		return err
	}
	h.AddCard(c)

	return nil
}

// BitPix returns the resolved element kind of the data unit.
func (h *Header) BitPix() format.BitPix {
	return h.bitpix
}

// Naxis returns the resolved axis lengths, NAXIS1 first.
func (h *Header) Naxis() []int64 {
	return h.naxis
}

// NaxisN returns the length of axis n using the standard's 1-based
// numbering.
func (h *Header) NaxisN(n int) (int64, error) {
	if n < 1 || n > len(h.naxis) {
		return 0, fmt.Errorf("%w: axis %d of %d", errs.ErrIndexOutOfRange, n, len(h.naxis))
	}

	return h.naxis[n-1], nil
}

// Dimensions returns the number of data axes.
func (h *Header) Dimensions() int {
	return len(h.naxis)
}

// DataSize returns the total number of data elements: the product of all
// axis lengths, or zero when the HDU carries no data.
func (h *Header) DataSize() int64 {
	if len(h.naxis) == 0 {
		return 0
	}

	size := int64(1)
	for _, n := range h.naxis {
		size *= n
	}

	return size
}

// Name identifies the HDU for lookup by name: EXTNAME when present, the
// XTENSION type otherwise, and "PRIMARY" for the primary HDU.
func (h *Header) Name() string {
	if name, err := Value[string](h, "EXTNAME"); err == nil {
		return name
	}
	if xtension, err := Value[string](h, "XTENSION"); err == nil {
		return xtension
	}

	return "PRIMARY"
}

// Kind classifies the HDU from its first keyword.
func (h *Header) Kind() format.HDUKind {
	if h.Contains("SIMPLE") {
		return format.KindPrimary
	}

	xtension, err := Value[string](h, "XTENSION")
	if err != nil {
		return format.KindUnknown
	}

	switch xtension {
	case "IMAGE":
		return format.KindImageExtension
	case "TABLE":
		return format.KindAsciiTable
	case "BINTABLE":
		return format.KindBinaryTable
	default:
		return format.KindUnknown
	}
}
