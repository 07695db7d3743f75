package metrics

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageMeasurer implements Measurer using golang.org/x/image/font/sfnt.
// Glyphs are measured unhinted at ppem == units per em, so outline units
// come back unrounded.
type ximageMeasurer struct {
	font *opentype.Font
	upem float64
	ppem fixed.Int26_6
}

func newXImageMeasurer(data []byte) (Measurer, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("metrics: failed to parse font: %w", err)
	}
	upem := float64(f.UnitsPerEm())
	return &ximageMeasurer{font: f, upem: upem, ppem: fixed.Int26_6(upem * 64)}, nil
}

// Name returns the font family name, or "" if the font has none.
func (m *ximageMeasurer) Name() string {
	if name, err := m.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

func (m *ximageMeasurer) glyphIndex(r rune) (sfnt.GlyphIndex, bool) {
	var buf sfnt.Buffer
	idx, err := m.font.GlyphIndex(&buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return idx, true
}

// HasGlyph implements Measurer.HasGlyph.
func (m *ximageMeasurer) HasGlyph(r rune) bool {
	_, ok := m.glyphIndex(r)
	return ok
}

// Measure implements Measurer.Measure.
func (m *ximageMeasurer) Measure(r rune) (Metrics, bool) {
	idx, ok := m.glyphIndex(r)
	if !ok {
		return Metrics{}, false
	}

	var buf sfnt.Buffer
	bounds, advance, err := m.font.GlyphBounds(&buf, idx, m.ppem, font.HintingNone)
	if err != nil {
		return Metrics{}, false
	}

	// sfnt's y axis points down.
	width := m.em(advance)
	return Metrics{
		Width:  width,
		Height: max(0, -m.em(bounds.Min.Y)),
		Depth:  max(0, m.em(bounds.Max.Y)),
		Italic: max(0, m.em(bounds.Max.X)-width),
	}, true
}

// XHeight implements Measurer.XHeight.
func (m *ximageMeasurer) XHeight() float64 {
	var buf sfnt.Buffer
	metrics, err := m.font.Metrics(&buf, m.ppem, font.HintingNone)
	if err != nil || metrics.XHeight == 0 {
		// Fonts without an OS/2 x-height: measure the letter itself.
		if xm, ok := m.Measure('x'); ok {
			return xm.Height
		}
		return 0
	}
	return m.em(metrics.XHeight)
}

// em converts a 26.6 value measured at ppem == upem into em units.
func (m *ximageMeasurer) em(v fixed.Int26_6) float64 {
	return fromFontUnits(float64(v)/64, m.upem)
}
