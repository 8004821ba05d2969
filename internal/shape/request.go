package shape

import (
	"strings"
	"unicode/utf8"
)

// MaxTextLen bounds committed input text, in runes. Longer input is
// truncated.
const MaxTextLen = 15

// Request describes the shape the particle field should form next:
// a sphere when Text is empty, rasterized text otherwise.
type Request struct {
	Text   string
	Radius float64
}

// FromInput derives a Request from committed user text. Empty or
// whitespace-only text maps to a sphere of the given radius.
func FromInput(text string, radius float64) Request {
	t := strings.TrimSpace(text)
	if utf8.RuneCountInString(t) > MaxTextLen {
		r := []rune(t)
		t = string(r[:MaxTextLen])
	}
	return Request{Text: t, Radius: radius}
}

// IsText reports whether the request targets a text formation.
func (r Request) IsText() bool {
	return r.Text != ""
}
