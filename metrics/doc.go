// Package metrics defines the font metrics service consumed by formula
// layout, and two implementations of it.
//
// A Provider answers three kinds of questions:
//
//   - glyph geometry: CharInfo for a named symbol or a (char, font) pair,
//     scaled to a style
//   - size ladders: HasNextLarger / NextLarger walk from a glyph to its
//     next larger rendering (wide accents, radical signs)
//   - font constants: skew, x-height and the TeX font parameters
//
// All lengths are in em units of the text size, multiplied by the style's
// scale factor (1 for display and text, 0.7 for script, 0.5 for
// script-script by default).
//
// # Implementations
//
// Table is driven by a TOML description listing fonts, glyph metrics,
// ladders and symbols. Default returns a table embedded in the package that
// covers a Computer Modern like subset:
//
//	p := metrics.Default()
//	ci, err := p.CharInfo("widehat", style.Text)
//
// OpenType measures glyphs in a real TTF/OTF font and takes symbols and
// ladders from a TOML file of the same schema:
//
//	p, err := metrics.NewOpenType(goregular.TTF, symbols)
//
// The measuring backend is pluggable. "ximage" (default) uses
// golang.org/x/image/font/sfnt; "gotext" uses go-text/typesetting shaping.
//
// Providers are read-only after construction and safe for concurrent use.
package metrics
