package box

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented description of the tree rooted at b to w, one box
// per line.
func Dump(w io.Writer, b *Box) error {
	return dump(w, b, 0)
}

func dump(w io.Writer, b *Box, level int) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", level), Describe(b)); err != nil {
		return err
	}
	for _, c := range b.Children {
		if err := dump(w, c, level+1); err != nil {
			return err
		}
	}
	return nil
}

// Describe returns a one-line description of b without its children.
func Describe(b *Box) string {
	var sb strings.Builder
	sb.WriteString(b.Kind.String())
	if b.Kind == KindChar && b.Char != nil {
		fmt.Fprintf(&sb, " %q font=%d", b.Char.Char, b.Char.FontID)
	}
	fmt.Fprintf(&sb, " w=%s h=%s d=%s", num(b.Width), num(b.Height), num(b.Depth))
	if b.Shift != 0 {
		fmt.Fprintf(&sb, " shift=%s", num(b.Shift))
	}
	if b.Italic != 0 {
		fmt.Fprintf(&sb, " italic=%s", num(b.Italic))
	}
	return sb.String()
}

func num(v float64) string {
	return fmt.Sprintf("%.4g", v)
}

// Visitor is called by Walk for every box with the position of the box's
// reference point: x is its left edge and y its baseline, y growing down.
// Returning false skips the box's children.
type Visitor func(b *Box, x, y float64) bool

// Walk visits the tree rooted at b placed with its reference point at
// (x, y). It applies each child's shift the way its parent stacks
// children and is the traversal a painter uses to position glyphs and
// rules.
func Walk(b *Box, x, y float64, visit Visitor) {
	if !visit(b, x, y) {
		return
	}

	switch b.Kind {
	case KindHorizontal:
		cx := x
		for _, c := range b.Children {
			Walk(c, cx, y+c.Shift, visit)
			cx += c.Width
		}
	case KindVertical:
		cy := y - b.Height
		for _, c := range b.Children {
			cy += c.Height
			Walk(c, x+c.Shift-b.Left, cy, visit)
			cy += c.Depth
		}
	}
}
