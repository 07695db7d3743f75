package metrics

import (
	"fmt"
	"io"
	"os"

	"github.com/gogpu/mathbox/internal/cache"
	"github.com/gogpu/mathbox/internal/logging"
	"github.com/gogpu/mathbox/style"
)

// OpenType is a Provider that measures glyphs in a TTF/OTF font file.
//
// Symbols, ladders, skews and font parameters come from a TOML symbol file
// using the Table schema. Glyph entries may omit their metrics; they are
// then measured from the font. Every font id in the symbol file names the
// same font file. Characters not listed in the symbol file are measured on
// demand when the font has a glyph for them.
//
// Lookups are memoized per glyph and style. OpenType is safe for
// concurrent use.
type OpenType struct {
	*Table

	name     string
	measurer Measurer
	fallback int
	cache    *cache.Cache[glyphKey, CharInfo]
}

var _ Provider = (*OpenType)(nil)

type glyphKey struct {
	cf    CharFont
	style style.Style
}

func hashGlyphKey(k glyphKey) uint64 {
	h := uint64(uint32(k.cf.Char))
	h = h*0x9E3779B97F4A7C15 ^ uint64(uint32(k.cf.FontID))
	h = h*0x9E3779B97F4A7C15 ^ uint64(k.style)
	return h ^ h>>29
}

// NewOpenType creates a provider for the font in fontData with symbols read
// from symbols. symbols may be nil, in which case only plain characters can
// be looked up.
//
// If the symbol file has no [parameters], the parameters of Default are
// used with the x-height of the font.
func NewOpenType(fontData []byte, symbols io.Reader, opts ...Option) (*OpenType, error) {
	if len(fontData) == 0 {
		return nil, ErrEmptyFontData
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m, err := getBackend(cfg.backend)(fontData)
	if err != nil {
		return nil, err
	}

	var tf tableFile
	if symbols != nil {
		if tf, err = decodeTableFile(symbols); err != nil {
			return nil, err
		}
	}
	if len(tf.Fonts) == 0 {
		tf.Fonts = []fontDef{{ID: 0}}
	}
	for i := range tf.Fonts {
		if tf.Fonts[i].XHeight == 0 {
			tf.Fonts[i].XHeight = m.XHeight()
		}
	}
	if tf.Parameters == (Constants{}) {
		tf.Parameters = Default().params
		tf.Parameters.XHeight = m.XHeight()
	}

	t, err := newTable(tf, cfg, func(cf CharFont) (Metrics, bool) {
		return m.Measure(cf.Char)
	})
	if err != nil {
		return nil, err
	}

	o := &OpenType{
		Table:    t,
		measurer: m,
		fallback: t.charFonts[0],
		cache:    cache.New[glyphKey, CharInfo](cfg.cacheCapacity, hashGlyphKey),
	}
	if named, ok := m.(interface{ Name() string }); ok {
		o.name = named.Name()
	}

	logging.Logger().Debug("metrics: opentype font loaded",
		"name", o.name, "backend", cfg.backend, "xheight", m.XHeight())
	return o, nil
}

// NewOpenTypeFile loads the font at fontPath and the symbol file at
// symbolsPath. An empty symbolsPath loads no symbols.
func NewOpenTypeFile(fontPath, symbolsPath string, opts ...Option) (*OpenType, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("metrics: failed to read font file: %w", err)
	}

	if symbolsPath == "" {
		return NewOpenType(data, nil, opts...)
	}
	// #nosec G304 -- Symbol file path is provided by the user
	f, err := os.Open(symbolsPath)
	if err != nil {
		return nil, fmt.Errorf("metrics: failed to open symbol file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return NewOpenType(data, f, opts...)
}

// Name returns the font family name, if the backend reports one.
func (o *OpenType) Name() string {
	return o.name
}

// CharInfo implements Provider.CharInfo.
func (o *OpenType) CharInfo(symbol string, s style.Style) (CharInfo, error) {
	sym, err := o.Symbol(symbol)
	if err != nil {
		return CharInfo{}, err
	}
	return o.CharInfoFor(sym.CharFont, s)
}

// CharInfoFor implements Provider.CharInfoFor.
func (o *OpenType) CharInfoFor(cf CharFont, s style.Style) (CharInfo, error) {
	return o.cache.GetOrCreate(glyphKey{cf: cf, style: s}, func() (CharInfo, error) {
		if ci, err := o.Table.CharInfoFor(cf, s); err == nil {
			return ci, nil
		}
		if _, known := o.fonts[cf.FontID]; known {
			if m, ok := o.measurer.Measure(cf.Char); ok {
				return CharInfo{CharFont: cf, Metrics: m.scaled(o.scales.Of(s)), Style: s}, nil
			}
		}
		return CharInfo{}, &UnknownCharError{Char: cf.Char, FontID: cf.FontID}
	})
}

// CharFontOf implements Provider.CharFontOf.
// Characters not in the symbol file resolve to the first char font when
// the font file has a glyph for them.
func (o *OpenType) CharFontOf(r rune) (CharFont, error) {
	if cf, err := o.Table.CharFontOf(r); err == nil {
		return cf, nil
	}
	if o.measurer.HasGlyph(r) {
		return CharFont{Char: r, FontID: o.fallback}, nil
	}
	return CharFont{}, &UnknownCharError{Char: r, FontID: -1}
}

// NextLarger implements Provider.NextLarger.
func (o *OpenType) NextLarger(ci CharInfo, s style.Style) CharInfo {
	next := o.glyphs[ci.CharFont].larger
	if next == nil {
		return ci
	}
	larger, _ := o.CharInfoFor(*next, s)
	return larger
}

// CacheStats describes the glyph cache of an OpenType provider.
type CacheStats struct {
	Entries   int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// CacheStats returns the glyph cache statistics.
func (o *OpenType) CacheStats() CacheStats {
	st := o.cache.Stats()
	return CacheStats{
		Entries:   st.Len,
		Hits:      st.Hits,
		Misses:    st.Misses,
		Evictions: st.Evictions,
	}
}

// ResetCache drops every memoized glyph. Statistics are kept. Lookups
// after a reset measure the font again.
func (o *OpenType) ResetCache() {
	o.cache.Clear()
	logging.Logger().Debug("metrics: glyph cache reset", "name", o.name)
}
