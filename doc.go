// Package mathbox lays out mathematical formulas as trees of boxes.
//
// # Overview
//
// A formula is a tree of atoms: symbols, characters, rows, spaces and
// composites such as accents, fractions, scripts and radicals. Layout turns
// an atom tree into a tree of measured boxes (see package box) under a
// style environment. The result carries only geometry; painting the boxes
// is left to the caller.
//
// # Quick Start
//
//	env := mathbox.NewEnvironment(metrics.Default(), style.Display)
//
//	x := mathbox.NewCharAtom('x')
//	hat, _ := mathbox.NewAccentedAtomByName(metrics.Default(), x, "hat")
//
//	b, err := mathbox.Layout(hat, env)
//	if err != nil {
//		return err
//	}
//	box.Dump(os.Stdout, b)
//
// # Styles
//
// Every layout pass runs in an Environment holding the current math style
// and the font metrics provider. Composite atoms derive the environment of
// their parts (cramped, script, numerator, ...) and never modify the
// environment they were given.
//
// # Accents
//
// AccentedAtom places an accent symbol over a base. The widest variant of
// the accent that does not exceed the base width is chosen from the font's
// size ladder, the accent is centered and moved right by the base glyph's
// skew, and the result keeps the baseline of the base.
//
// # Concurrency
//
// Layout is synchronous and does not retain state between calls. Atoms and
// environments are immutable, so independent passes may run concurrently;
// LayoutAll does so for a batch of atoms.
package mathbox
