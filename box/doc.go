// Package box is the geometric output of formula layout.
//
// A Box has a width, a height above its baseline, a depth below it and a
// shift applied by its parent. Shift is perpendicular to the parent's
// stacking direction: inside a horizontal box it moves the child down
// (positive) or up, inside a vertical box it moves the child right.
//
// There are five kinds of boxes:
//
//   - Char: one glyph, measured by its CharInfo
//   - Horizontal: children placed left to right
//   - Vertical: children stacked top to bottom, built with NewVertical
//   - Strut: invisible space; negative heights express negative gaps
//   - Rule: a filled rectangle such as a fraction bar
//
// Sequence boxes derive their measurements from their children. The one
// exception is VerticalBuilder.FinalizeBaseline, which moves the baseline
// of a finished stack exactly once.
//
// Boxes are built fresh on every layout pass. A box belongs to exactly one
// parent; a parent may adjust a child's Shift while it owns the child.
package box
