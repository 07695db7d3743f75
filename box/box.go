package box

import (
	"fmt"
	"math"

	"github.com/gogpu/mathbox/metrics"
)

// Kind is the kind of a box.
type Kind int

const (
	// KindChar is a single glyph.
	KindChar Kind = iota
	// KindHorizontal is a left-to-right sequence.
	KindHorizontal
	// KindVertical is a top-to-bottom stack.
	KindVertical
	// KindStrut is invisible space.
	KindStrut
	// KindRule is a filled rectangle.
	KindRule
)

var kindNames = [...]string{
	KindChar:       "char",
	KindHorizontal: "hbox",
	KindVertical:   "vbox",
	KindStrut:      "strut",
	KindRule:       "rule",
}

// String returns the short name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("box: unknown kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// Box is a measured geometric unit.
type Box struct {
	Kind Kind `json:"kind"`

	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
	Shift  float64 `json:"shift,omitempty"`

	// Left is the smallest child shift of a vertical box, taken as each
	// child was added. Children are placed relative to it.
	Left float64 `json:"left,omitempty"`

	// Italic is the italic correction of a char box.
	Italic float64 `json:"italic,omitempty"`

	// Char is the glyph of a char box.
	Char *metrics.CharInfo `json:"char,omitempty"`

	// Children are the parts of a sequence box, in placement order.
	Children []*Box `json:"children,omitempty"`
}

// Char returns a box for the glyph ci.
func Char(ci metrics.CharInfo) *Box {
	return &Box{
		Kind:   KindChar,
		Width:  ci.Metrics.Width,
		Height: ci.Metrics.Height,
		Depth:  ci.Metrics.Depth,
		Italic: ci.Metrics.Italic,
		Char:   &ci,
	}
}

// Strut returns invisible space with the given measurements.
func Strut(width, height, depth, shift float64) *Box {
	return &Box{Kind: KindStrut, Width: width, Height: height, Depth: depth, Shift: shift}
}

// Empty returns a zero-sized strut, used in place of an absent atom.
func Empty() *Box {
	return Strut(0, 0, 0, 0)
}

// Kern returns a vertical gap for a vertical stack. A negative size pulls
// the following child up.
func Kern(size float64) *Box {
	return Strut(0, size, 0, 0)
}

// Rule returns a filled rectangle of the given width whose top is height
// above the baseline and bottom depth below it.
func Rule(width, height, depth float64) *Box {
	return &Box{Kind: KindRule, Width: width, Height: height, Depth: depth}
}

// Horizontal returns children placed left to right.
//
// Width is the sum of the children's widths. Height is the largest
// Height - Shift and depth the largest Depth + Shift over the children;
// with unshifted children these are the largest height and depth.
func Horizontal(children ...*Box) *Box {
	b := &Box{Kind: KindHorizontal}
	for _, c := range children {
		b.addHorizontal(c)
	}
	return b
}

func (b *Box) addHorizontal(c *Box) {
	h, d := c.Height-c.Shift, c.Depth+c.Shift
	if len(b.Children) == 0 {
		b.Height, b.Depth = h, d
	} else {
		b.Height = max(b.Height, h)
		b.Depth = max(b.Depth, d)
	}
	b.Width += c.Width
	b.Children = append(b.Children, c)
}

// Alignment specifies horizontal placement inside a wider box.
type Alignment int

const (
	// AlignLeft places content at the left edge.
	AlignLeft Alignment = iota
	// AlignCenter centers content.
	AlignCenter
	// AlignRight places content at the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// HorizontalAligned wraps b in a horizontal box of the given width, padding
// with invisible struts according to align. The padding carries b's height
// and depth, so the wrapper measures exactly b's height and depth.
func HorizontalAligned(b *Box, width float64, align Alignment) *Box {
	extra := width - b.Width
	pad := func(w float64) *Box { return Strut(w, b.Height, b.Depth, 0) }

	switch align {
	case AlignCenter:
		return Horizontal(pad(extra/2), b, pad(extra/2))
	case AlignRight:
		return Horizontal(pad(extra), b)
	default:
		return Horizontal(b, pad(extra))
	}
}

// TotalHeight returns Height + Depth.
func (b *Box) TotalHeight() float64 {
	return b.Height + b.Depth
}

// IsFinite reports whether every measurement in the tree rooted at b is a
// finite number.
func (b *Box) IsFinite() bool {
	for _, v := range [...]float64{b.Width, b.Height, b.Depth, b.Shift, b.Italic} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	for _, c := range b.Children {
		if !c.IsFinite() {
			return false
		}
	}
	return true
}
