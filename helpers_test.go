package mathbox

import (
	"math"
	"strings"
	"testing"

	"github.com/gogpu/mathbox/box"
	"github.com/gogpu/mathbox/metrics"
	"github.com/gogpu/mathbox/style"
)

// layoutTOML is a small table with round numbers.
//
//	a: width 10, skew 0.5      b: width 4
//	i: width 1, italic 0.25    wide accent ladder: 2, 4, 7, 11
//	dot4: accent of width 4    long: accent of width 10
//	vec: accent with italic    sqrt ladder totals: 1.125, 2.125, 4.125
const layoutTOML = `
char_fonts = [0]

[scales]
text = 1.0
script = 0.5
scriptscript = 0.25

[parameters]
x_height = 0.5
quad = 1.0
axis_height = 0.25
rule_thickness = 0.125
num1 = 0.75
num2 = 0.5
num3 = 0.5
denom1 = 0.75
denom2 = 0.5
sup1 = 0.5
sup2 = 0.375
sup3 = 0.25
sub1 = 0.25
sub2 = 0.25
sup_drop = 0.25
sub_drop = 0.125

[[font]]
id = 0
name = "test"
x_height = 0.5

  [[font.glyph]]
  char = "a"
  width = 10.0
  height = 1.0
  skew = 0.5

  [[font.glyph]]
  char = "b"
  width = 4.0
  height = 1.0

  [[font.glyph]]
  char = "i"
  width = 1.0
  height = 2.0
  depth = 0.5
  italic = 0.25
  skew = 0.125

  [[font.glyph]]
  char = "^"
  width = 2.0
  height = 0.5
  larger = "\uE001"

  [[font.glyph]]
  char = "\uE001"
  width = 4.0
  height = 0.5
  larger = "\uE002"

  [[font.glyph]]
  char = "\uE002"
  width = 7.0
  height = 0.5
  larger = "\uE003"

  [[font.glyph]]
  char = "\uE003"
  width = 11.0
  height = 0.5

  [[font.glyph]]
  char = "."
  width = 4.0
  height = 0.5

  [[font.glyph]]
  char = "~"
  width = 10.0
  height = 0.5

  [[font.glyph]]
  char = "v"
  width = 2.0
  height = 0.5
  italic = 0.5

  [[font.glyph]]
  char = "+"
  width = 2.0
  height = 1.0
  depth = 0.25

  [[font.glyph]]
  char = "\u221A"
  width = 1.0
  height = 0.125
  depth = 1.0
  larger = "\uE011"

  [[font.glyph]]
  char = "\uE011"
  width = 1.5
  height = 0.125
  depth = 2.0
  larger = "\uE012"

  [[font.glyph]]
  char = "\uE012"
  width = 2.0
  height = 0.125
  depth = 4.0

[[symbol]]
name = "wide"
class = "accent"
font = 0
char = "^"
combining = "\u0302"

[[symbol]]
name = "dot4"
class = "accent"
font = 0
char = "."

[[symbol]]
name = "long"
class = "accent"
font = 0
char = "~"
combining = "\u0303"

[[symbol]]
name = "vec"
class = "accent"
font = 0
char = "v"

[[symbol]]
name = "alpha"
class = "ordinary"
font = 0
char = "a"

[[symbol]]
name = "plus"
class = "binary"
font = 0
char = "+"

[[symbol]]
name = "sqrt"
class = "ordinary"
font = 0
char = "\u221A"
`

func testTable(t *testing.T) *metrics.Table {
	t.Helper()
	tbl, err := metrics.LoadTable(strings.NewReader(layoutTOML))
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	return tbl
}

func testEnv(t *testing.T, s style.Style) *Environment {
	t.Helper()
	return NewEnvironment(testTable(t), s)
}

func mustSymbol(t *testing.T, symbols metrics.Symbols, name string) *SymbolAtom {
	t.Helper()
	a, err := NewSymbolAtom(symbols, name)
	if err != nil {
		t.Fatalf("NewSymbolAtom(%q): %v", name, err)
	}
	return a
}

func mustAccent(t *testing.T, symbols metrics.Symbols, base Atom, name string) *AccentedAtom {
	t.Helper()
	a, err := NewAccentedAtomByName(symbols, base, name)
	if err != nil {
		t.Fatalf("NewAccentedAtomByName(%q): %v", name, err)
	}
	return a
}

func mustLayout(t *testing.T, a Atom, env *Environment) *box.Box {
	t.Helper()
	b, err := Layout(a, env)
	if err != nil {
		t.Fatalf("Layout(%T): %v", a, err)
	}
	return b
}

// childrenTotal sums height + depth over the children of a vertical box.
func childrenTotal(b *box.Box) float64 {
	var total float64
	for _, c := range b.Children {
		total += c.Height + c.Depth
	}
	return total
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
