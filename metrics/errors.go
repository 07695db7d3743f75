package metrics

import (
	"errors"
	"fmt"
)

// Sentinel errors for the metrics package.
var (
	// ErrUnknownSymbol is returned when a symbol name is not registered.
	ErrUnknownSymbol = errors.New("metrics: unknown symbol")

	// ErrUnknownChar is returned when no font has a glyph for a character.
	ErrUnknownChar = errors.New("metrics: unknown character")

	// ErrLadderCycle is returned when a larger-variant ladder loops back.
	ErrLadderCycle = errors.New("metrics: larger-variant ladder has a cycle")

	// ErrLadderOrder is returned when a larger variant is not strictly wider.
	ErrLadderOrder = errors.New("metrics: larger variant is not wider")

	// ErrInvalidTable is returned for structurally invalid metric tables.
	ErrInvalidTable = errors.New("metrics: invalid table")

	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("metrics: empty font data")
)

// UnknownSymbolError reports a symbol name missing from the active font set.
type UnknownSymbolError struct {
	Name string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("metrics: unknown symbol %q", e.Name)
}

// Is reports whether target is ErrUnknownSymbol.
func (e *UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

// UnknownCharError reports a character without a glyph.
// FontID is -1 when no particular font was asked for.
type UnknownCharError struct {
	Char   rune
	FontID int
}

func (e *UnknownCharError) Error() string {
	if e.FontID < 0 {
		return fmt.Sprintf("metrics: no font has a glyph for %q (U+%04X)", e.Char, e.Char)
	}
	return fmt.Sprintf("metrics: font %d has no glyph for %q (U+%04X)", e.FontID, e.Char, e.Char)
}

// Is reports whether target is ErrUnknownChar.
func (e *UnknownCharError) Is(target error) bool {
	return target == ErrUnknownChar
}
