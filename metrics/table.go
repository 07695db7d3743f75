package metrics

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/mathbox/internal/logging"
	"github.com/gogpu/mathbox/style"
)

// tableFile is the TOML schema of a metric table.
type tableFile struct {
	Scales     *scalesDef  `toml:"scales"`
	Parameters Constants   `toml:"parameters"`
	CharFonts  []int       `toml:"char_fonts"`
	Fonts      []fontDef   `toml:"font"`
	Symbols    []symbolDef `toml:"symbol"`
}

type scalesDef struct {
	Text         float64 `toml:"text"`
	Script       float64 `toml:"script"`
	ScriptScript float64 `toml:"scriptscript"`
}

type fontDef struct {
	ID      int        `toml:"id"`
	Name    string     `toml:"name"`
	XHeight float64    `toml:"x_height"`
	Glyphs  []glyphDef `toml:"glyph"`
}

// glyphDef describes one glyph. Metric fields may be left out when the
// glyph is measured from a font file instead.
type glyphDef struct {
	Char       string   `toml:"char"`
	Width      *float64 `toml:"width"`
	Height     float64  `toml:"height"`
	Depth      float64  `toml:"depth"`
	Italic     float64  `toml:"italic"`
	Skew       float64  `toml:"skew"`
	Larger     string   `toml:"larger"`
	LargerFont *int     `toml:"larger_font"`
}

type symbolDef struct {
	Name      string `toml:"name"`
	Class     string `toml:"class"`
	Font      int    `toml:"font"`
	Char      string `toml:"char"`
	Combining string `toml:"combining"`
}

// glyph is a resolved glyph entry, in em units at text size.
type glyph struct {
	metrics Metrics
	skew    float64
	larger  *CharFont
}

type fontInfo struct {
	name    string
	xHeight float64
}

// Table is a Provider backed by explicit metric tables.
//
// Table is immutable after construction and safe for concurrent use.
type Table struct {
	scales    style.Scales
	params    Constants
	fonts     map[int]fontInfo
	glyphs    map[CharFont]glyph
	symbols   map[string]Symbol
	combining map[rune]string
	charFonts []int
}

var _ Provider = (*Table)(nil)

// measureFunc supplies metrics for glyphs whose table entry has no width.
type measureFunc func(cf CharFont) (Metrics, bool)

// LoadTable reads a TOML metric table from r.
// Unknown keys are rejected so typos do not silently drop data.
func LoadTable(r io.Reader, opts ...Option) (*Table, error) {
	tf, err := decodeTableFile(r)
	if err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newTable(tf, cfg, nil)
}

// LoadTableFile reads a TOML metric table from the file at path.
func LoadTableFile(path string, opts ...Option) (*Table, error) {
	// #nosec G304 -- Table path is provided by the user
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("metrics: failed to open table: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadTable(f, opts...)
}

func decodeTableFile(r io.Reader) (tableFile, error) {
	var tf tableFile
	md, err := toml.NewDecoder(r).Decode(&tf)
	if err != nil {
		return tf, fmt.Errorf("metrics: failed to decode table: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return tf, fmt.Errorf("%w: unknown keys %s", ErrInvalidTable, strings.Join(keys, ", "))
	}
	return tf, nil
}

// newTable resolves a decoded table. Glyphs without a width are measured
// with measure; without measure they are an error.
func newTable(tf tableFile, cfg config, measure measureFunc) (*Table, error) {
	t := &Table{
		scales:    style.DefaultScales,
		params:    tf.Parameters,
		fonts:     make(map[int]fontInfo, len(tf.Fonts)),
		glyphs:    make(map[CharFont]glyph),
		symbols:   make(map[string]Symbol, len(tf.Symbols)),
		combining: make(map[rune]string),
	}

	switch {
	case cfg.scales != nil:
		t.scales = *cfg.scales
	case tf.Scales != nil:
		t.scales = style.Scales(*tf.Scales)
	}
	if t.scales.Text <= 0 || t.scales.Script <= 0 || t.scales.ScriptScript <= 0 {
		return nil, fmt.Errorf("%w: scales must be positive, got %+v", ErrInvalidTable, t.scales)
	}

	for _, fd := range tf.Fonts {
		if _, dup := t.fonts[fd.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate font id %d", ErrInvalidTable, fd.ID)
		}
		t.fonts[fd.ID] = fontInfo{name: fd.Name, xHeight: fd.XHeight}
		t.charFonts = append(t.charFonts, fd.ID)
	}
	if len(tf.CharFonts) > 0 {
		for _, id := range tf.CharFonts {
			if _, ok := t.fonts[id]; !ok {
				return nil, fmt.Errorf("%w: char_fonts names unknown font %d", ErrInvalidTable, id)
			}
		}
		t.charFonts = slices.Clone(tf.CharFonts)
	}

	for _, fd := range tf.Fonts {
		for _, gd := range fd.Glyphs {
			if err := t.addGlyph(fd.ID, gd, measure); err != nil {
				return nil, err
			}
		}
	}

	for _, sd := range tf.Symbols {
		if err := t.addSymbol(sd); err != nil {
			return nil, err
		}
	}

	if err := t.validateLadders(); err != nil {
		return nil, err
	}

	logging.Logger().Debug("metrics: table loaded",
		"fonts", len(t.fonts), "glyphs", len(t.glyphs), "symbols", len(t.symbols))
	return t, nil
}

func (t *Table) addGlyph(fontID int, gd glyphDef, measure measureFunc) error {
	r, err := parseChar(gd.Char)
	if err != nil {
		return fmt.Errorf("%w: font %d glyph: %w", ErrInvalidTable, fontID, err)
	}
	cf := CharFont{Char: r, FontID: fontID}
	if _, dup := t.glyphs[cf]; dup {
		return fmt.Errorf("%w: duplicate glyph %v", ErrInvalidTable, cf)
	}

	g := glyph{skew: gd.Skew}
	if gd.Width != nil {
		g.metrics = Metrics{Width: *gd.Width, Height: gd.Height, Depth: gd.Depth, Italic: gd.Italic}
	} else {
		m, ok := Metrics{}, false
		if measure != nil {
			m, ok = measure(cf)
		}
		if !ok {
			return fmt.Errorf("%w: glyph %v has no metrics: %w", ErrInvalidTable, cf,
				&UnknownCharError{Char: r, FontID: fontID})
		}
		g.metrics = m
	}

	if gd.Larger != "" {
		lr, err := parseChar(gd.Larger)
		if err != nil {
			return fmt.Errorf("%w: larger variant of %v: %w", ErrInvalidTable, cf, err)
		}
		next := CharFont{Char: lr, FontID: fontID}
		if gd.LargerFont != nil {
			next.FontID = *gd.LargerFont
		}
		g.larger = &next
	}

	t.glyphs[cf] = g
	return nil
}

func (t *Table) addSymbol(sd symbolDef) error {
	if sd.Name == "" {
		return fmt.Errorf("%w: symbol without name", ErrInvalidTable)
	}
	if _, dup := t.symbols[sd.Name]; dup {
		return fmt.Errorf("%w: duplicate symbol %q", ErrInvalidTable, sd.Name)
	}
	class, ok := ParseClass(sd.Class)
	if !ok {
		return fmt.Errorf("%w: symbol %q has unknown class %q", ErrInvalidTable, sd.Name, sd.Class)
	}
	r, err := parseChar(sd.Char)
	if err != nil {
		return fmt.Errorf("%w: symbol %q: %w", ErrInvalidTable, sd.Name, err)
	}
	cf := CharFont{Char: r, FontID: sd.Font}
	if _, ok := t.glyphs[cf]; !ok {
		return fmt.Errorf("%w: symbol %q: %w", ErrInvalidTable, sd.Name,
			&UnknownCharError{Char: r, FontID: sd.Font})
	}

	sym := Symbol{Name: sd.Name, Class: class, CharFont: cf}
	if sd.Combining != "" {
		mark, err := parseChar(sd.Combining)
		if err != nil {
			return fmt.Errorf("%w: symbol %q combining mark: %w", ErrInvalidTable, sd.Name, err)
		}
		if prev, dup := t.combining[mark]; dup {
			return fmt.Errorf("%w: combining mark U+%04X used by %q and %q", ErrInvalidTable, mark, prev, sd.Name)
		}
		sym.Combining = mark
		t.combining[mark] = sd.Name
	}
	t.symbols[sd.Name] = sym
	return nil
}

// validateLadders checks every larger-variant chain: targets exist, no
// glyph repeats and widths strictly increase.
func (t *Table) validateLadders() error {
	starts := slices.SortedFunc(maps.Keys(t.glyphs), compareCharFont)
	for _, start := range starts {
		seen := map[CharFont]bool{start: true}
		cur := start
		for g := t.glyphs[cur]; g.larger != nil; g = t.glyphs[cur] {
			next := *g.larger
			ng, ok := t.glyphs[next]
			if !ok {
				return fmt.Errorf("%w: larger variant of %v: %w", ErrInvalidTable, cur,
					&UnknownCharError{Char: next.Char, FontID: next.FontID})
			}
			if seen[next] {
				return fmt.Errorf("%w: %v revisited from %v", ErrLadderCycle, next, start)
			}
			if ng.metrics.Width <= g.metrics.Width {
				return fmt.Errorf("%w: %v (%g) -> %v (%g)", ErrLadderOrder,
					cur, g.metrics.Width, next, ng.metrics.Width)
			}
			seen[next] = true
			cur = next
		}
	}
	return nil
}

func compareCharFont(a, b CharFont) int {
	if c := cmp.Compare(a.FontID, b.FontID); c != 0 {
		return c
	}
	return cmp.Compare(a.Char, b.Char)
}

// parseChar returns the single rune in s.
func parseChar(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("char %q must be exactly one character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Symbol implements Symbols.Symbol.
func (t *Table) Symbol(name string) (Symbol, error) {
	sym, ok := t.symbols[name]
	if !ok {
		return Symbol{}, &UnknownSymbolError{Name: name}
	}
	return sym, nil
}

// SymbolForCombining implements Symbols.SymbolForCombining.
func (t *Table) SymbolForCombining(mark rune) (Symbol, error) {
	name, ok := t.combining[mark]
	if !ok {
		return Symbol{}, &UnknownSymbolError{Name: fmt.Sprintf("U+%04X", mark)}
	}
	return t.symbols[name], nil
}

// SymbolNames returns the names of all symbols of class c in sorted order.
// A negative class selects every symbol.
func (t *Table) SymbolNames(c Class) []string {
	names := make([]string, 0, len(t.symbols))
	for name, sym := range t.symbols {
		if c < 0 || sym.Class == c {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// CharInfo implements Provider.CharInfo.
func (t *Table) CharInfo(symbol string, s style.Style) (CharInfo, error) {
	sym, err := t.Symbol(symbol)
	if err != nil {
		return CharInfo{}, err
	}
	return t.CharInfoFor(sym.CharFont, s)
}

// CharInfoFor implements Provider.CharInfoFor.
func (t *Table) CharInfoFor(cf CharFont, s style.Style) (CharInfo, error) {
	g, ok := t.glyphs[cf]
	if !ok {
		return CharInfo{}, &UnknownCharError{Char: cf.Char, FontID: cf.FontID}
	}
	return CharInfo{CharFont: cf, Metrics: g.metrics.scaled(t.scales.Of(s)), Style: s}, nil
}

// CharFontOf implements Provider.CharFontOf.
// Fonts are searched in char_fonts order.
func (t *Table) CharFontOf(r rune) (CharFont, error) {
	for _, id := range t.charFonts {
		cf := CharFont{Char: r, FontID: id}
		if _, ok := t.glyphs[cf]; ok {
			return cf, nil
		}
	}
	return CharFont{}, &UnknownCharError{Char: r, FontID: -1}
}

// HasNextLarger implements Provider.HasNextLarger.
func (t *Table) HasNextLarger(ci CharInfo) bool {
	return t.glyphs[ci.CharFont].larger != nil
}

// NextLarger implements Provider.NextLarger.
func (t *Table) NextLarger(ci CharInfo, s style.Style) CharInfo {
	next := t.glyphs[ci.CharFont].larger
	if next == nil {
		return ci
	}
	// Ladder targets were validated at load time.
	larger, _ := t.CharInfoFor(*next, s)
	return larger
}

// Skew implements Provider.Skew.
func (t *Table) Skew(cf CharFont, s style.Style) float64 {
	return t.glyphs[cf].skew * t.scales.Of(s)
}

// XHeight implements Provider.XHeight.
// Fonts without their own x-height use the table parameter.
func (t *Table) XHeight(s style.Style, fontID int) float64 {
	xh := t.params.XHeight
	if fi, ok := t.fonts[fontID]; ok && fi.xHeight != 0 {
		xh = fi.xHeight
	}
	return xh * t.scales.Of(s)
}

// Constants implements Provider.Constants.
func (t *Table) Constants(s style.Style) Constants {
	return t.params.scaled(t.scales.Of(s))
}

// FontName returns the name of font fontID, or "" if it is unknown.
func (t *Table) FontName(fontID int) string {
	return t.fonts[fontID].name
}
