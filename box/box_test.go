package box

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/mathbox/metrics"
	"github.com/gogpu/mathbox/style"
)

func glyph(r rune, w, h, d, italic float64) metrics.CharInfo {
	return metrics.CharInfo{
		CharFont: metrics.CharFont{Char: r, FontID: 1},
		Metrics:  metrics.Metrics{Width: w, Height: h, Depth: d, Italic: italic},
		Style:    style.Text,
	}
}

func TestChar(t *testing.T) {
	b := Char(glyph('f', 0.49, 0.69, 0.19, 0.1))
	if b.Kind != KindChar {
		t.Fatalf("Kind = %v, want char", b.Kind)
	}
	if b.Width != 0.49 || b.Height != 0.69 || b.Depth != 0.19 || b.Italic != 0.1 || b.Shift != 0 {
		t.Errorf("Char measurements = %+v", b)
	}
	if b.Char == nil || b.Char.Char != 'f' {
		t.Errorf("Char glyph = %v", b.Char)
	}
}

func TestHorizontal(t *testing.T) {
	tests := []struct {
		name            string
		children        []*Box
		wantW, wantH, d float64
	}{
		{"empty", nil, 0, 0, 0},
		{"single", []*Box{Strut(2, 3, 1, 0)}, 2, 3, 1},
		{"max extents", []*Box{Strut(1, 3, 0.5, 0), Strut(2, 1, 2, 0)}, 3, 3, 2},
		{"shifted down", []*Box{Strut(1, 1, 1, 0), Strut(1, 1, 1, 2)}, 2, 1, 3},
		{"shifted up", []*Box{Strut(1, 1, 1, 0), Strut(1, 1, 1, -2)}, 2, 3, 1},
		{"negative depth", []*Box{Strut(1, 1, -0.5, 0)}, 1, 1, -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Horizontal(tt.children...)
			if b.Width != tt.wantW || b.Height != tt.wantH || b.Depth != tt.d {
				t.Errorf("got w=%v h=%v d=%v, want w=%v h=%v d=%v",
					b.Width, b.Height, b.Depth, tt.wantW, tt.wantH, tt.d)
			}
			if len(b.Children) != len(tt.children) {
				t.Errorf("len(Children) = %d, want %d", len(b.Children), len(tt.children))
			}
		})
	}
}

func TestHorizontalAligned(t *testing.T) {
	content := Strut(4, 2, 1, 0)

	tests := []struct {
		align     Alignment
		wantLeft  float64
		wantRight float64
	}{
		{AlignCenter, 3, 3},
		{AlignLeft, 0, 6},
		{AlignRight, 6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			b := HorizontalAligned(content, 10, tt.align)
			if b.Width != 10 {
				t.Errorf("Width = %v, want 10", b.Width)
			}
			if b.Height != content.Height || b.Depth != content.Depth {
				t.Errorf("h=%v d=%v, want h=%v d=%v", b.Height, b.Depth, content.Height, content.Depth)
			}

			var left, right float64
			seen := false
			for _, c := range b.Children {
				switch {
				case c == content:
					seen = true
				case seen:
					right += c.Width
				default:
					left += c.Width
				}
			}
			if !seen {
				t.Fatal("content box is not a child of the wrapper")
			}
			if left != tt.wantLeft || right != tt.wantRight {
				t.Errorf("padding left=%v right=%v, want %v %v", left, right, tt.wantLeft, tt.wantRight)
			}
		})
	}
}

func TestHorizontalAlignedKeepsNegativeDepth(t *testing.T) {
	content := Strut(1, 0.3, -0.1, 0)
	b := HorizontalAligned(content, 3, AlignCenter)
	if b.Depth != -0.1 || b.Height != 0.3 {
		t.Errorf("h=%v d=%v, want 0.3 -0.1", b.Height, b.Depth)
	}
}

func TestVerticalBuilder(t *testing.T) {
	v := NewVertical()
	v.Add(Strut(3, 1, 0.5, 0))
	if v.Height() != 1 || v.Depth() != 0.5 || v.Width() != 3 {
		t.Fatalf("after first child h=%v d=%v w=%v", v.Height(), v.Depth(), v.Width())
	}
	v.Add(Kern(-0.25))
	v.Add(Strut(5, 2, 1, 0))
	b := v.Build()

	if b.Kind != KindVertical {
		t.Fatalf("Kind = %v", b.Kind)
	}
	if b.Height != 1 {
		t.Errorf("Height = %v, want 1", b.Height)
	}
	if want := 0.5 - 0.25 + 3; b.Depth != want {
		t.Errorf("Depth = %v, want %v", b.Depth, want)
	}
	if b.Width != 5 {
		t.Errorf("Width = %v, want 5", b.Width)
	}
}

func TestVerticalWidthTracksShift(t *testing.T) {
	v := NewVertical()
	v.Add(Strut(2, 1, 0, 3))
	v.Add(Strut(4, 1, 0, 0))
	if got := v.Width(); got != 5 {
		t.Errorf("Width = %v, want 5", got)
	}

	v = NewVertical()
	v.Add(Strut(2, 1, 0, -1))
	v.Add(Strut(2, 1, 0, 0))
	if got := v.Width(); got != 3 {
		t.Errorf("Width = %v, want 3", got)
	}
}

func TestVerticalEmpty(t *testing.T) {
	b := NewVertical().Build()
	if b.Width != 0 || b.Height != 0 || b.Depth != 0 {
		t.Errorf("empty vertical = %+v", b)
	}
}

func TestFinalizeBaseline(t *testing.T) {
	v := NewVertical()
	v.Add(Strut(1, 1, 1, 0))
	v.Add(Strut(1, 1, 1, 0))
	total := v.Height() + v.Depth()

	b := v.FinalizeBaseline(total-1, 1)
	if b.Height != 3 || b.Depth != 1 {
		t.Errorf("h=%v d=%v, want 3 1", b.Height, b.Depth)
	}
}

func TestBuilderYieldsOneBox(t *testing.T) {
	tests := []struct {
		name string
		then func(v *VerticalBuilder)
	}{
		{"build twice", func(v *VerticalBuilder) { v.Build() }},
		{"finalize after build", func(v *VerticalBuilder) { v.FinalizeBaseline(1, 0) }},
		{"add after build", func(v *VerticalBuilder) { v.Add(Empty()) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVertical()
			v.Add(Empty())
			v.Build()

			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.then(v)
		})
	}
}

func TestIsFinite(t *testing.T) {
	b := Horizontal(Strut(1, 1, 1, 0), Char(glyph('x', 0.5, 0.4, 0, 0)))
	if !b.IsFinite() {
		t.Error("finite tree reported as non-finite")
	}
	b.Children[0].Depth = math.NaN()
	if b.IsFinite() {
		t.Error("NaN child not detected")
	}
}

func TestDump(t *testing.T) {
	v := NewVertical()
	v.Add(Char(glyph('^', 0.5, 0.7, 0, 0)))
	v.Add(Kern(-0.43))
	v.Add(Char(glyph('x', 0.57, 0.43, 0, 0)))
	b := v.FinalizeBaseline(0.7, 0)

	var sb strings.Builder
	if err := Dump(&sb, b); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"vbox w=0.57 h=0.7 d=0",
		"  char '^' font=1 w=0.5 h=0.7 d=0",
		"  strut w=0 h=-0.43 d=0",
		"  char 'x' font=1 w=0.57 h=0.43 d=0",
		"",
	}, "\n")
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("Dump mismatch (-want +got):\n%s", diff)
	}
}

func TestWalk(t *testing.T) {
	accent := Char(glyph('^', 0.5, 0.7, 0, 0))
	base := Char(glyph('x', 0.6, 0.4, 0.1, 0))

	v := NewVertical()
	v.Add(accent)
	v.Add(Kern(-0.4))
	v.Add(base)
	accent.Shift = 0.05
	stack := v.FinalizeBaseline(0.7, 0.1)

	row := Horizontal(Strut(1, 0, 0, 0), stack)

	type pos struct{ x, y float64 }
	got := map[*Box]pos{}
	Walk(row, 0, 0, func(b *Box, x, y float64) bool {
		got[b] = pos{x, y}
		return true
	})

	approx := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
	check := func(name string, b *Box, want pos) {
		t.Helper()
		p, ok := got[b]
		if !ok {
			t.Fatalf("%s not visited", name)
		}
		if !approx(p.x, want.x) || !approx(p.y, want.y) {
			t.Errorf("%s at (%v, %v), want (%v, %v)", name, p.x, p.y, want.x, want.y)
		}
	}

	check("stack", stack, pos{1, 0})
	// Accent baseline: top of stack (-0.7) plus accent height.
	check("accent", accent, pos{1.05, 0})
	check("base", base, pos{1, 0})
}

func TestWalkShiftAfterAdd(t *testing.T) {
	accent := Char(glyph('~', 1, 0.5, 0, 0))
	base := Char(glyph('a', 1, 1, 0, 0))

	v := NewVertical()
	v.Add(accent)
	v.Add(base)
	accent.Shift = -0.5
	stack := v.Build()

	if stack.Width != 1 || stack.Left != 0 {
		t.Fatalf("stack w=%v left=%v, want 1 0", stack.Width, stack.Left)
	}

	xs := map[*Box]float64{}
	Walk(stack, 0, 0, func(b *Box, x, _ float64) bool {
		xs[b] = x
		return true
	})
	if xs[accent] != -0.5 {
		t.Errorf("accent at x=%v, want -0.5", xs[accent])
	}
	if xs[base] != 0 {
		t.Errorf("base at x=%v, want 0", xs[base])
	}
}

func TestVerticalLeft(t *testing.T) {
	v := NewVertical()
	v.Add(Strut(2, 1, 0, 1))
	v.Add(Strut(2, 1, 0, -1))
	v.Add(Strut(2, 1, 0, 0))
	if b := v.Build(); b.Left != -1 || b.Width != 4 {
		t.Errorf("left=%v w=%v, want -1 4", b.Left, b.Width)
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	inner := Strut(1, 1, 0, 0)
	row := Horizontal(inner)
	visited := 0
	Walk(row, 0, 0, func(*Box, float64, float64) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Errorf("visited %d boxes, want 1", visited)
	}
}
