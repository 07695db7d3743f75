package metrics

import (
	"fmt"

	"github.com/gogpu/mathbox/style"
)

// CharFont identifies a glyph: a character in a specific font.
type CharFont struct {
	Char   rune
	FontID int
}

// String returns a compact representation like "font1:'x'".
func (cf CharFont) String() string {
	return fmt.Sprintf("font%d:%q", cf.FontID, cf.Char)
}

// Metrics holds the geometry of one glyph.
type Metrics struct {
	// Width is the advance width.
	Width float64

	// Height is the extent above the baseline.
	Height float64

	// Depth is the extent below the baseline (positive downwards).
	Depth float64

	// Italic is the italic correction: how far the ink leans past the advance.
	Italic float64
}

// scaled returns m multiplied by f.
func (m Metrics) scaled(f float64) Metrics {
	return Metrics{
		Width:  m.Width * f,
		Height: m.Height * f,
		Depth:  m.Depth * f,
		Italic: m.Italic * f,
	}
}

// CharInfo is a glyph resolved for a style.
// It is a value; providers never modify a CharInfo they returned.
type CharInfo struct {
	CharFont

	// Metrics are already scaled to Style.
	Metrics Metrics

	// Style is the style the glyph was resolved for.
	Style style.Style
}

// Class is the semantic category of a symbol.
type Class int

const (
	// ClassOrdinary is an ordinary symbol such as a letter or digit.
	ClassOrdinary Class = iota
	// ClassOperator is a large operator such as a sum sign.
	ClassOperator
	// ClassBinary is a binary operator such as plus.
	ClassBinary
	// ClassRelation is a relation such as equals.
	ClassRelation
	// ClassOpening is an opening delimiter.
	ClassOpening
	// ClassClosing is a closing delimiter.
	ClassClosing
	// ClassPunctuation is punctuation such as a comma.
	ClassPunctuation
	// ClassInner is an inner sub-formula.
	ClassInner
	// ClassAccent is an accent placed over a base.
	ClassAccent
)

var classNames = [...]string{
	ClassOrdinary:    "ordinary",
	ClassOperator:    "operator",
	ClassBinary:      "binary",
	ClassRelation:    "relation",
	ClassOpening:     "opening",
	ClassClosing:     "closing",
	ClassPunctuation: "punctuation",
	ClassInner:       "inner",
	ClassAccent:      "accent",
}

// String returns the lower-case name of the class.
func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "unknown"
	}
	return classNames[c]
}

// ParseClass returns the class with the given name, as produced by String.
func ParseClass(name string) (Class, bool) {
	for i, n := range classNames {
		if n == name {
			return Class(i), true
		}
	}
	return ClassOrdinary, false
}

// Symbol is a named glyph with a semantic class.
type Symbol struct {
	Name  string
	Class Class
	CharFont

	// Combining is the Unicode combining mark this symbol renders, if it is
	// an accent with one (for example U+0302 for "hat"). Zero otherwise.
	Combining rune
}

// Constants are the font-wide parameters used by composite atoms, scaled
// to a style. The names follow the TeX font parameters.
type Constants struct {
	XHeight       float64 `toml:"x_height"`
	Quad          float64 `toml:"quad"`
	AxisHeight    float64 `toml:"axis_height"`
	RuleThickness float64 `toml:"rule_thickness"`

	Num1   float64 `toml:"num1"`
	Num2   float64 `toml:"num2"`
	Num3   float64 `toml:"num3"`
	Denom1 float64 `toml:"denom1"`
	Denom2 float64 `toml:"denom2"`

	Sup1    float64 `toml:"sup1"`
	Sup2    float64 `toml:"sup2"`
	Sup3    float64 `toml:"sup3"`
	Sub1    float64 `toml:"sub1"`
	Sub2    float64 `toml:"sub2"`
	SupDrop float64 `toml:"sup_drop"`
	SubDrop float64 `toml:"sub_drop"`
}

// scaled returns c multiplied by f.
func (c Constants) scaled(f float64) Constants {
	return Constants{
		XHeight:       c.XHeight * f,
		Quad:          c.Quad * f,
		AxisHeight:    c.AxisHeight * f,
		RuleThickness: c.RuleThickness * f,
		Num1:          c.Num1 * f,
		Num2:          c.Num2 * f,
		Num3:          c.Num3 * f,
		Denom1:        c.Denom1 * f,
		Denom2:        c.Denom2 * f,
		Sup1:          c.Sup1 * f,
		Sup2:          c.Sup2 * f,
		Sup3:          c.Sup3 * f,
		Sub1:          c.Sub1 * f,
		Sub2:          c.Sub2 * f,
		SupDrop:       c.SupDrop * f,
		SubDrop:       c.SubDrop * f,
	}
}
