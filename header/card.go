package header

import (
	"fmt"
	"strings"

	"github.com/arloliu/astrofits/errs"
	"github.com/arloliu/astrofits/format"
)

// Card is one 80-character header record. The raw image is kept verbatim so
// a header read from disk writes back byte-identical.
//
// The parsed value is memoized on first access. Copies of a Card share the
// memo.
type Card struct {
	raw  string
	memo *valueMemo
}

type valueMemo struct {
	value any
}

func newCard(raw string) Card {
	return Card{raw: raw, memo: &valueMemo{}}
}

// NewCardFromRaw builds a card from a raw image as read from disk. Images
// shorter than 80 characters are right-padded with spaces; longer ones are
// rejected.
func NewCardFromRaw(raw string) (Card, error) {
	var policy CardPolicy

	if len(raw) > format.CardSize {
		return Card{}, fmt.Errorf("%w: %d characters", errs.ErrCardLength, len(raw))
	}
	if len(raw) < format.CardSize {
		raw += strings.Repeat(" ", format.CardSize-len(raw))
	}
	if !policy.IsCardValid(raw) {
		return Card{}, fmt.Errorf("%w: %q", errs.ErrMalformedHeader, strings.TrimRight(raw, " "))
	}

	return newCard(raw), nil
}

// NewCard builds a keyword/value card, with an optional comment after the
// " /" separator.
func NewCard[T ValueType](key string, value T, comment string) (Card, error) {
	var policy CardPolicy

	if !policy.IsKeyValid(key) {
		return Card{}, fmt.Errorf("%w: %q", errs.ErrKeyLength, key)
	}

	serialized := Serialize(value)
	if !policy.IsPairValid(key, serialized, comment) {
		return Card{}, fmt.Errorf("%w: key %q", errs.ErrValueLength, key)
	}

	raw := policy.FormatKeyword(key) + "= " + serialized
	if comment != "" {
		raw += " /" + comment
	}
	raw += strings.Repeat(" ", format.CardSize-len(raw))

	return newCard(raw), nil
}

// NewCommentaryCard builds a COMMENT, HISTORY or blank-keyword card. The
// text starts at column 11 and has no value indicator.
func NewCommentaryCard(key string, text string) (Card, error) {
	var policy CardPolicy

	if !policy.IsKeyValid(key) {
		return Card{}, fmt.Errorf("%w: %q", errs.ErrKeyLength, key)
	}
	if len(text) > 70 {
		return Card{}, fmt.Errorf("%w: key %q", errs.ErrValueLength, key)
	}

	raw := policy.FormatKeyword(key) + "  " + text
	raw += strings.Repeat(" ", format.CardSize-len(raw))

	return newCard(raw), nil
}

// EndCard returns the END terminator card.
func EndCard() Card {
	return newCard("END" + strings.Repeat(" ", format.CardSize-3))
}

// Key returns the trimmed keyword of the card.
func (c Card) Key() string {
	var policy CardPolicy
	return policy.ExtractKeyword(c.raw)
}

// RawKey returns the full 8-character keyword field including pad spaces.
func (c Card) RawKey() string {
	return c.raw[:8]
}

// Raw returns the full 80-character card image.
func (c Card) Raw() string {
	return c.raw
}

// RawValue returns the trimmed value field, without the comment.
func (c Card) RawValue() string {
	var policy CardPolicy
	return policy.ExtractValue(c.raw)
}

// ValueWithComment returns everything after the value indicator, comment
// included.
func (c Card) ValueWithComment() string {
	return c.raw[10:]
}

// IsEnd reports whether this is the END terminator card.
func (c Card) IsEnd() bool {
	return c.RawKey() == "END     "
}

// CardValue parses the card's value field as type T. The parsed value is
// memoized, so repeated access at the same type skips the text conversion.
func CardValue[T ValueType](c Card) (T, error) {
	if c.memo != nil {
		if v, ok := c.memo.value.(T); ok {
			return v, nil
		}
	}

	v, err := Parse[T](c.RawValue())
	if err != nil {
		return v, err
	}
	if c.memo != nil {
		c.memo.value = v
	}

	return v, nil
}

// SetCardValue replaces the card's value, keeping the keyword and dropping
// any previous comment.
func SetCardValue[T ValueType](c *Card, value T) error {
	key := c.Key()
	if key == "" {
		return fmt.Errorf("%w: card has a blank keyword", errs.ErrKeyNotDefined)
	}

	updated, err := NewCard(key, value, "")
	if err != nil {
		return err
	}
	c.raw = updated.raw
	if c.memo != nil {
		c.memo.value = nil
	}

	return nil
}
