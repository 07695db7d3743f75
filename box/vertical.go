package box

import "math"

// VerticalBuilder assembles a vertical box from the top down.
//
// The first child sets the stack's height and depth; every later child
// adds its height and depth to the depth, so until FinalizeBaseline the
// baseline sits at the bottom of the first child. Width covers every
// child from its shift to its shift plus width, as placed when added.
// Shifts changed after Add move that child without changing the width or
// the placement of the others.
//
// A builder yields exactly one box. Build or FinalizeBaseline may be called
// once; calling either again, or Add afterwards, panics.
type VerticalBuilder struct {
	box         *Box
	left, right float64
	done        bool
}

// NewVertical starts an empty vertical stack.
func NewVertical() *VerticalBuilder {
	return &VerticalBuilder{
		box:   &Box{Kind: KindVertical},
		left:  math.Inf(1),
		right: math.Inf(-1),
	}
}

// Add appends c below the children added so far.
func (v *VerticalBuilder) Add(c *Box) {
	v.checkOpen()

	b := v.box
	if len(b.Children) == 0 {
		b.Height, b.Depth = c.Height, c.Depth
	} else {
		b.Depth += c.Height + c.Depth
	}
	b.Children = append(b.Children, c)

	v.left = min(v.left, c.Shift)
	v.right = max(v.right, c.Shift+max(c.Width, 0))
	b.Width = v.right - v.left
	b.Left = v.left
}

// Height returns the height of the stack so far.
func (v *VerticalBuilder) Height() float64 { return v.box.Height }

// Depth returns the depth of the stack so far.
func (v *VerticalBuilder) Depth() float64 { return v.box.Depth }

// Width returns the width of the stack so far.
func (v *VerticalBuilder) Width() float64 { return v.box.Width }

// Build returns the stack with its derived measurements.
func (v *VerticalBuilder) Build() *Box {
	v.checkOpen()
	v.done = true
	return v.box
}

// FinalizeBaseline returns the stack with its height and depth replaced.
// Composite atoms use it to put the stack's baseline on the baseline of
// one of its parts; height + depth normally equals the built total.
func (v *VerticalBuilder) FinalizeBaseline(height, depth float64) *Box {
	b := v.Build()
	b.Height, b.Depth = height, depth
	return b
}

func (v *VerticalBuilder) checkOpen() {
	if v.done {
		panic("box: vertical builder already finalized")
	}
}
