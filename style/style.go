// Package style defines the math typesetting styles a formula is laid out in.
//
// There are four style levels (display, text, script and script-script), each
// with a cramped variant. Cramped styles keep superscripts lower; they are
// used under accents and radicals and in denominators and subscripts.
//
// A Style is a small value type. Every derivation returns a new Style; none
// modifies its receiver.
package style

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Style is a math style: a level plus a cramped flag in the low bit.
type Style int

const (
	// Display is the style of displayed formulas.
	Display Style = iota
	// DisplayCramped is the cramped variant of Display.
	DisplayCramped
	// Text is the style of in-line formulas.
	Text
	// TextCramped is the cramped variant of Text.
	TextCramped
	// Script is the style of first-level scripts.
	Script
	// ScriptCramped is the cramped variant of Script.
	ScriptCramped
	// ScriptScript is the style of second and deeper level scripts.
	ScriptScript
	// ScriptScriptCramped is the cramped variant of ScriptScript.
	ScriptScriptCramped
)

// crampedBit marks the cramped variant of a level.
const crampedBit = 1

// String returns the string representation of the style.
func (s Style) String() string {
	switch s {
	case Display:
		return "Display"
	case DisplayCramped:
		return "DisplayCramped"
	case Text:
		return "Text"
	case TextCramped:
		return "TextCramped"
	case Script:
		return "Script"
	case ScriptCramped:
		return "ScriptCramped"
	case ScriptScript:
		return "ScriptScript"
	case ScriptScriptCramped:
		return "ScriptScriptCramped"
	default:
		return unknownStr
	}
}

// Valid reports whether s is one of the eight defined styles.
func (s Style) Valid() bool {
	return s >= Display && s <= ScriptScriptCramped
}

// Parse returns the style with the given name, as produced by String.
// Lookup is exact; the second result is false for unknown names.
func Parse(name string) (Style, bool) {
	for s := Display; s <= ScriptScriptCramped; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return Display, false
}

// Level returns the non-cramped style of the same level.
func (s Style) Level() Style {
	return s &^ crampedBit
}

// IsCramped reports whether s is a cramped style.
func (s Style) IsCramped() bool {
	return s&crampedBit != 0
}

// IsDisplay reports whether s is Display or DisplayCramped.
func (s Style) IsDisplay() bool {
	return s.Level() == Display
}

// IsScript reports whether s is at script or script-script level.
func (s Style) IsScript() bool {
	return s.Level() >= Script
}

// Cramped returns the cramped variant of s.
// Cramping an already cramped style returns it unchanged.
func (s Style) Cramped() Style {
	return s | crampedBit
}

// Script returns the style reached by descending the given number of
// script levels from s. Display and text both descend to script; the
// descent saturates at script-script. Crampedness is kept.
func (s Style) Script(levels int) Style {
	if levels <= 0 {
		return s
	}
	level := s.Level()
	if level < Text {
		level = Text
	}
	for ; levels > 0 && level < ScriptScript; levels-- {
		level += 2
	}
	return level | (s & crampedBit)
}

// Sup returns the style of a superscript attached to an atom in style s.
func (s Style) Sup() Style {
	return s.Script(1)
}

// Sub returns the style of a subscript attached to an atom in style s.
func (s Style) Sub() Style {
	return s.Script(1).Cramped()
}

// Num returns the style of a fraction numerator in style s.
func (s Style) Num() Style {
	if s.IsDisplay() {
		return Text | (s & crampedBit)
	}
	return s.Script(1)
}

// Denom returns the style of a fraction denominator in style s.
func (s Style) Denom() Style {
	return s.Num().Cramped()
}

// Root returns the style of a radicand in style s.
func (s Style) Root() Style {
	return s.Cramped()
}

// Scale returns the size factor of s relative to text size, using the
// conventional 1 : 0.7 : 0.5 ratios.
func (s Style) Scale() float64 {
	return DefaultScales.Of(s)
}

// Scales holds the size factors of the script levels relative to text size.
type Scales struct {
	Text         float64
	Script       float64
	ScriptScript float64
}

// DefaultScales are the conventional size ratios for script levels.
var DefaultScales = Scales{Text: 1, Script: 0.7, ScriptScript: 0.5}

// Of returns the size factor for style s.
func (sc Scales) Of(s Style) float64 {
	switch s.Level() {
	case Script:
		return sc.Script
	case ScriptScript:
		return sc.ScriptScript
	default:
		return sc.Text
	}
}
