package metrics

import "github.com/gogpu/mathbox/style"

// Symbols resolves symbol names. It is the part of a Provider needed to
// construct atoms, before any layout happens.
type Symbols interface {
	// Symbol returns the named symbol, or an error matching ErrUnknownSymbol.
	Symbol(name string) (Symbol, error)

	// SymbolForCombining returns the accent symbol rendering the given
	// combining mark, or an error matching ErrUnknownSymbol.
	SymbolForCombining(mark rune) (Symbol, error)
}

// Provider is the font metrics service used by layout.
//
// Implementations must be safe for concurrent use and must not change the
// answers they give over their lifetime. Size ladders must be finite and
// strictly increasing in width.
type Provider interface {
	Symbols

	// CharInfo returns the glyph of the named symbol in style s.
	CharInfo(symbol string, s style.Style) (CharInfo, error)

	// CharInfoFor returns the glyph cf in style s.
	CharInfoFor(cf CharFont, s style.Style) (CharInfo, error)

	// CharFontOf returns the default font glyph for character r.
	CharFontOf(r rune) (CharFont, error)

	// HasNextLarger reports whether ci has a larger rendering.
	HasNextLarger(ci CharInfo) bool

	// NextLarger returns the next larger rendering of ci in style s.
	// Only valid when HasNextLarger(ci) is true.
	NextLarger(ci CharInfo, s style.Style) CharInfo

	// Skew returns the accent skew of glyph cf in style s.
	Skew(cf CharFont, s style.Style) float64

	// XHeight returns the x-height of font fontID in style s.
	XHeight(s style.Style, fontID int) float64

	// Constants returns the font parameters scaled to style s.
	Constants(s style.Style) Constants
}
