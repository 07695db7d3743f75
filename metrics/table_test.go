package metrics

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/mathbox/style"
)

// loadTable parses a TOML table or fails the test.
func loadTable(t *testing.T, src string, opts ...Option) *Table {
	t.Helper()

	tbl, err := LoadTable(strings.NewReader(src), opts...)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	return tbl
}

const ladderTable = `
[parameters]
x_height = 0.5

[[font]]
id = 0
name = "test"

  [[font.glyph]]
  char = "a"
  width = 2.0
  height = 1.0
  larger = "b"

  [[font.glyph]]
  char = "b"
  width = 4.0
  height = 1.0
  larger = "c"

  [[font.glyph]]
  char = "c"
  width = 7.0
  height = 1.0
  larger = "d"

  [[font.glyph]]
  char = "d"
  width = 11.0
  height = 1.0

[[symbol]]
name = "wide"
class = "accent"
font = 0
char = "a"
`

func TestDefaultTableLoads(t *testing.T) {
	tbl := Default()

	for _, name := range []string{"hat", "widehat", "tilde", "vec", "sqrt", "plus"} {
		if _, err := tbl.Symbol(name); err != nil {
			t.Errorf("Symbol(%q) failed: %v", name, err)
		}
	}

	hat, _ := tbl.Symbol("hat")
	if hat.Class != ClassAccent {
		t.Errorf("hat class = %v, want accent", hat.Class)
	}
	if hat.Combining != '\u0302' {
		t.Errorf("hat combining = %U, want U+0302", hat.Combining)
	}

	plus, _ := tbl.Symbol("plus")
	if plus.Class != ClassBinary {
		t.Errorf("plus class = %v, want binary", plus.Class)
	}

	if Default() != tbl {
		t.Error("Default() should return the shared table")
	}
}

func TestCharInfoScaling(t *testing.T) {
	tbl := Default()

	text, err := tbl.CharInfo("hat", style.Text)
	if err != nil {
		t.Fatalf("CharInfo failed: %v", err)
	}
	script, err := tbl.CharInfo("hat", style.Script)
	if err != nil {
		t.Fatalf("CharInfo failed: %v", err)
	}

	if text.Style != style.Text || script.Style != style.Script {
		t.Errorf("styles = %v, %v", text.Style, script.Style)
	}
	if got, want := script.Metrics.Width, text.Metrics.Width*0.7; math.Abs(got-want) > 1e-12 {
		t.Errorf("script width = %v, want %v", got, want)
	}
	if got, want := tbl.XHeight(style.ScriptScript, 1), 0.430555*0.5; math.Abs(got-want) > 1e-12 {
		t.Errorf("XHeight = %v, want %v", got, want)
	}
	if got, want := tbl.Constants(style.Script).AxisHeight, 0.25*0.7; math.Abs(got-want) > 1e-12 {
		t.Errorf("AxisHeight = %v, want %v", got, want)
	}
}

func TestLadder(t *testing.T) {
	tbl := loadTable(t, ladderTable)

	ci, err := tbl.CharInfo("wide", style.Text)
	if err != nil {
		t.Fatalf("CharInfo failed: %v", err)
	}

	var widths []float64
	for {
		widths = append(widths, ci.Metrics.Width)
		if !tbl.HasNextLarger(ci) {
			break
		}
		ci = tbl.NextLarger(ci, style.Text)
	}

	want := []float64{2, 4, 7, 11}
	if len(widths) != len(want) {
		t.Fatalf("ladder = %v, want %v", widths, want)
	}
	for i := range want {
		if widths[i] != want[i] {
			t.Errorf("ladder[%d] = %v, want %v", i, widths[i], want[i])
		}
	}
}

func TestUnknownLookups(t *testing.T) {
	tbl := Default()

	_, err := tbl.CharInfo("nosuch", style.Text)
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("CharInfo(nosuch) error = %v, want ErrUnknownSymbol", err)
	}
	var se *UnknownSymbolError
	if !errors.As(err, &se) || se.Name != "nosuch" {
		t.Errorf("error should be *UnknownSymbolError for nosuch, got %v", err)
	}

	if _, err := tbl.CharFontOf('\u4E2D'); !errors.Is(err, ErrUnknownChar) {
		t.Errorf("CharFontOf(CJK) error = %v, want ErrUnknownChar", err)
	}
	if _, err := tbl.CharInfoFor(CharFont{Char: 'x', FontID: 9}, style.Text); !errors.Is(err, ErrUnknownChar) {
		t.Errorf("CharInfoFor(font 9) error = %v, want ErrUnknownChar", err)
	}
	if _, err := tbl.SymbolForCombining('\u0323'); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("SymbolForCombining(U+0323) error = %v, want ErrUnknownSymbol", err)
	}
}

func TestCharFontOrder(t *testing.T) {
	tbl := Default()

	x, err := tbl.CharFontOf('x')
	if err != nil {
		t.Fatalf("CharFontOf(x) failed: %v", err)
	}
	if x.FontID != 1 {
		t.Errorf("x font = %d, want math italic (1)", x.FontID)
	}

	two, err := tbl.CharFontOf('2')
	if err != nil {
		t.Fatalf("CharFontOf(2) failed: %v", err)
	}
	if two.FontID != 0 {
		t.Errorf("2 font = %d, want roman (0)", two.FontID)
	}

	if tbl.Skew(x, style.Text) == 0 {
		t.Error("math italic x should have a skew")
	}
	if tbl.Skew(two, style.Text) != 0 {
		t.Error("roman 2 should have no skew")
	}
}

func TestWithScales(t *testing.T) {
	tbl := loadTable(t, ladderTable, WithScales(style.Scales{Text: 1, Script: 0.5, ScriptScript: 0.25}))

	ci, err := tbl.CharInfo("wide", style.ScriptScript)
	if err != nil {
		t.Fatalf("CharInfo failed: %v", err)
	}
	if ci.Metrics.Width != 0.5 {
		t.Errorf("width = %v, want 0.5", ci.Metrics.Width)
	}
}

func TestLoadTableErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{
			name: "cycle",
			src: `
[[font]]
id = 0
  [[font.glyph]]
  char = "a"
  width = 1.0
  larger = "a"
`,
			want: ErrLadderCycle,
		},
		{
			name: "not wider",
			src: `
[[font]]
id = 0
  [[font.glyph]]
  char = "a"
  width = 2.0
  larger = "b"
  [[font.glyph]]
  char = "b"
  width = 2.0
`,
			want: ErrLadderOrder,
		},
		{
			name: "missing larger",
			src: `
[[font]]
id = 0
  [[font.glyph]]
  char = "a"
  width = 2.0
  larger = "z"
`,
			want: ErrUnknownChar,
		},
		{
			name: "unknown key",
			src: `
[[font]]
id = 0
colour = "red"
`,
			want: ErrInvalidTable,
		},
		{
			name: "multi rune char",
			src: `
[[font]]
id = 0
  [[font.glyph]]
  char = "ab"
  width = 1.0
`,
			want: ErrInvalidTable,
		},
		{
			name: "bad class",
			src: `
[[font]]
id = 0
  [[font.glyph]]
  char = "a"
  width = 1.0
[[symbol]]
name = "a"
class = "fancy"
char = "a"
`,
			want: ErrInvalidTable,
		},
		{
			name: "symbol without glyph",
			src: `
[[font]]
id = 0
[[symbol]]
name = "a"
class = "accent"
char = "a"
`,
			want: ErrUnknownChar,
		},
		{
			name: "glyph without width",
			src: `
[[font]]
id = 0
  [[font.glyph]]
  char = "a"
`,
			want: ErrInvalidTable,
		},
		{
			name: "duplicate font",
			src: `
[[font]]
id = 0
[[font]]
id = 0
`,
			want: ErrInvalidTable,
		},
		{
			name: "bad scales",
			src: `
[scales]
text = 1.0
script = 0.0
scriptscript = 0.5
`,
			want: ErrInvalidTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTable(strings.NewReader(tt.src))
			if !errors.Is(err, tt.want) {
				t.Errorf("LoadTable error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadTableFileMissing(t *testing.T) {
	if _, err := LoadTableFile("testdata/does-not-exist.toml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestClassRoundTrip(t *testing.T) {
	for c := ClassOrdinary; c <= ClassAccent; c++ {
		got, ok := ParseClass(c.String())
		if !ok || got != c {
			t.Errorf("ParseClass(%q) = %v, %v", c.String(), got, ok)
		}
	}
	if Class(99).String() != "unknown" {
		t.Errorf("Class(99).String() = %q", Class(99).String())
	}
}

func TestSymbolNames(t *testing.T) {
	names := Default().SymbolNames(ClassAccent)
	if len(names) == 0 {
		t.Fatal("no accent symbols")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
	for _, n := range names {
		if n == "plus" {
			t.Error("plus is not an accent")
		}
	}
	if all := Default().SymbolNames(-1); len(all) <= len(names) {
		t.Errorf("SymbolNames(-1) = %d names, want more than %d", len(all), len(names))
	}
}
