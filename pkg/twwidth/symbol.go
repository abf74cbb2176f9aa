package twwidth

import (
	"fmt"

	"github.com/fatih/color"
)

// InvalidSymbolWidthError reports that a string passed to NewSymbolString
// does not occupy exactly one display column. It is the concrete kind
// behind every symbol-construction failure.
type InvalidSymbolWidthError struct {
	Text  string
	Width int
}

func (e *InvalidSymbolWidthError) Error() string {
	return fmt.Sprintf("twwidth: symbol string %q has width %d, want 1", e.Text, e.Width)
}

// Symbol is a single logical display-column token. It holds the exact
// bytes to emit verbatim, which may include style escape sequences as
// long as the visible portion occupies exactly one display column.
type Symbol struct {
	text string
}

// NewSymbol wraps a single rune as a Symbol. Unlike NewSymbolString it
// does not check the rune's display width.
func NewSymbol(r rune) Symbol {
	return Symbol{text: string(r)}
}

// NewSymbolString validates that s has display width exactly 1 (ignoring
// any style escapes it carries) before wrapping it as a Symbol.
func NewSymbolString(s string) (Symbol, error) {
	if w := StringWidth(s); w != 1 {
		return Symbol{}, &InvalidSymbolWidthError{Text: s, Width: w}
	}
	return Symbol{text: s}, nil
}

// String returns the verbatim bytes to emit for this symbol.
func (s Symbol) String() string {
	return s.text
}

// IsZero reports whether the symbol carries no text, i.e. it was never
// constructed and represents the "absent" (None) case in a Border/Borders.
func (s Symbol) IsZero() bool {
	return s.text == ""
}

// Styled wraps the symbol's text with the given color attributes so the
// emitted glyph carries ANSI styling while StringWidth still reports 1,
// since style escapes are stripped before measurement.
func (s Symbol) Styled(attrs ...color.Attribute) Symbol {
	if s.text == "" {
		return s
	}
	return Symbol{text: color.New(attrs...).Sprint(s.text)}
}
