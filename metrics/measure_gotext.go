package metrics

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// goTextSize is the pixel size glyphs are shaped at; results are divided
// by it to get em units.
const goTextSize = 1000

// goTextMeasurer implements Measurer with go-text/typesetting's HarfBuzz
// shaper. Each rune is shaped on its own, so the result is the glyph the
// font's cmap and default features select for it.
//
// font.Font is read-only and shared; font.Face and HarfbuzzShaper are not
// safe for concurrent use, so a fresh Face is made per call and shapers are
// pooled.
type goTextMeasurer struct {
	font       *font.Font
	shaperPool sync.Pool
	xHeight    float64
}

func newGoTextMeasurer(data []byte) (Measurer, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("metrics: failed to parse font: %w", err)
	}
	m := &goTextMeasurer{
		font: face.Font,
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
	if xm, ok := m.Measure('x'); ok {
		m.xHeight = xm.Height
	}
	return m, nil
}

func (m *goTextMeasurer) shape(r rune) (shaping.Glyph, bool) {
	input := shaping.Input{
		Text:      []rune{r},
		RunStart:  0,
		RunEnd:    1,
		Direction: di.DirectionLTR,
		Face:      font.NewFace(m.font),
		Size:      fixed.I(goTextSize),
		Script:    language.LookupScript(r),
		Language:  language.NewLanguage("en"),
	}

	hb := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	m.shaperPool.Put(hb)

	if len(output.Glyphs) == 0 || output.Glyphs[0].GlyphID == 0 {
		return shaping.Glyph{}, false
	}
	return output.Glyphs[0], true
}

// HasGlyph implements Measurer.HasGlyph.
func (m *goTextMeasurer) HasGlyph(r rune) bool {
	_, ok := m.shape(r)
	return ok
}

// Measure implements Measurer.Measure.
func (m *goTextMeasurer) Measure(r rune) (Metrics, bool) {
	g, ok := m.shape(r)
	if !ok {
		return Metrics{}, false
	}

	// Extents follow the HarfBuzz convention: YBearing is the top of the
	// ink above the baseline and Height extends downwards (negative).
	width := goTextEm(g.Advance)
	top := goTextEm(g.YBearing)
	bottom := top + goTextEm(g.Height)
	right := goTextEm(g.XBearing) + goTextEm(g.Width)
	return Metrics{
		Width:  width,
		Height: max(0, top),
		Depth:  max(0, -bottom),
		Italic: max(0, right-width),
	}, true
}

// XHeight implements Measurer.XHeight.
func (m *goTextMeasurer) XHeight() float64 {
	return m.xHeight
}

func goTextEm(v fixed.Int26_6) float64 {
	return fromFontUnits(float64(v)/64, goTextSize)
}
