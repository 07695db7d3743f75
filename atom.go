package mathbox

import (
	"fmt"

	"github.com/gogpu/mathbox/metrics"
)

// Atom is a node of a formula tree.
//
// The set of atoms is closed: SymbolAtom, CharAtom, RowAtom, SpaceAtom,
// AccentedAtom, FractionAtom, ScriptsAtom and RadicalAtom. Atoms are
// immutable after construction and may be shared between trees and
// goroutines. A nil Atom stands for an absent part and lays out as an
// empty box.
type Atom interface {
	isAtom()
}

// SymbolAtom is a named symbol from the font's symbol table.
type SymbolAtom struct {
	symbol metrics.Symbol
}

// NewSymbolAtom returns the atom for the symbol called name.
func NewSymbolAtom(symbols metrics.Symbols, name string) (*SymbolAtom, error) {
	sym, err := symbols.Symbol(name)
	if err != nil {
		return nil, err
	}
	return &SymbolAtom{symbol: sym}, nil
}

// SymbolAtomOf wraps an already resolved symbol.
func SymbolAtomOf(sym metrics.Symbol) *SymbolAtom {
	return &SymbolAtom{symbol: sym}
}

// Symbol returns the symbol.
func (a *SymbolAtom) Symbol() metrics.Symbol { return a.symbol }

// Name returns the symbol name.
func (a *SymbolAtom) Name() string { return a.symbol.Name }

// CharAtom is a plain character rendered in its default font.
type CharAtom struct {
	char rune
}

// NewCharAtom returns the atom for r. The font is chosen at layout time.
func NewCharAtom(r rune) *CharAtom {
	return &CharAtom{char: r}
}

// Char returns the character.
func (a *CharAtom) Char() rune { return a.char }

// RowAtom is a horizontal sequence of atoms.
type RowAtom struct {
	children []Atom
}

// NewRowAtom returns a row of children. Nil children are kept and lay out
// as empty boxes.
func NewRowAtom(children ...Atom) *RowAtom {
	return &RowAtom{children: append([]Atom(nil), children...)}
}

// Len returns the number of children.
func (a *RowAtom) Len() int { return len(a.children) }

// Child returns the i-th child.
func (a *RowAtom) Child(i int) Atom { return a.children[i] }

// SpaceAtom is horizontal space measured in quads of the current style.
type SpaceAtom struct {
	em float64
}

// NewSpaceAtom returns space em quads wide. Negative space is allowed.
func NewSpaceAtom(em float64) *SpaceAtom {
	return &SpaceAtom{em: em}
}

// Em returns the width in quads.
func (a *SpaceAtom) Em() float64 { return a.em }

// AccentedAtom is an accent symbol placed over a base.
type AccentedAtom struct {
	base   Atom
	accent *SymbolAtom
}

// NewAccentedAtom returns accent placed over base. base may be nil.
// It fails with ErrNotAccent when accent is not of class accent.
func NewAccentedAtom(base Atom, accent *SymbolAtom) (*AccentedAtom, error) {
	if accent == nil {
		return nil, ErrAccentNotSymbol
	}
	if accent.symbol.Class != metrics.ClassAccent {
		return nil, fmt.Errorf("%w: %q is %v", ErrNotAccent, accent.symbol.Name, accent.symbol.Class)
	}
	return &AccentedAtom{base: base, accent: accent}, nil
}

// NewAccentedAtomByName returns the accent called name placed over base.
// Unknown names fail with metrics.ErrUnknownSymbol.
func NewAccentedAtomByName(symbols metrics.Symbols, base Atom, name string) (*AccentedAtom, error) {
	accent, err := NewSymbolAtom(symbols, name)
	if err != nil {
		return nil, err
	}
	return NewAccentedAtom(base, accent)
}

// NewAccentedAtomFromExpr returns the accent given by expr placed over
// base. expr must be a single symbol, or a row holding exactly one symbol;
// anything else fails with ErrAccentNotSymbol.
func NewAccentedAtomFromExpr(base Atom, expr Atom) (*AccentedAtom, error) {
	if row, ok := expr.(*RowAtom); ok && row.Len() == 1 {
		expr = row.Child(0)
	}
	accent, ok := expr.(*SymbolAtom)
	if !ok || accent == nil {
		return nil, fmt.Errorf("%w: got %T", ErrAccentNotSymbol, expr)
	}
	return NewAccentedAtom(base, accent)
}

// Base returns the accented base, nil if absent.
func (a *AccentedAtom) Base() Atom { return a.base }

// Accent returns the accent symbol.
func (a *AccentedAtom) Accent() *SymbolAtom { return a.accent }

// FractionAtom is a numerator over a denominator.
type FractionAtom struct {
	num, denom Atom
	rule       bool
}

// NewFractionAtom returns num over denom, separated by a fraction rule if
// rule is true.
func NewFractionAtom(num, denom Atom, rule bool) *FractionAtom {
	return &FractionAtom{num: num, denom: denom, rule: rule}
}

// Numerator returns the numerator.
func (a *FractionAtom) Numerator() Atom { return a.num }

// Denominator returns the denominator.
func (a *FractionAtom) Denominator() Atom { return a.denom }

// HasRule reports whether the fraction draws a rule.
func (a *FractionAtom) HasRule() bool { return a.rule }

// ScriptsAtom is a base with an optional subscript and superscript.
type ScriptsAtom struct {
	base, sub, sup Atom
}

// NewScriptsAtom returns base with subscript sub and superscript sup.
// Either script may be nil.
func NewScriptsAtom(base, sub, sup Atom) *ScriptsAtom {
	return &ScriptsAtom{base: base, sub: sub, sup: sup}
}

// Base returns the base.
func (a *ScriptsAtom) Base() Atom { return a.base }

// Sub returns the subscript.
func (a *ScriptsAtom) Sub() Atom { return a.sub }

// Sup returns the superscript.
func (a *ScriptsAtom) Sup() Atom { return a.sup }

// RadicalAtom is a square root.
type RadicalAtom struct {
	radicand Atom
}

// NewRadicalAtom returns the square root of radicand.
func NewRadicalAtom(radicand Atom) *RadicalAtom {
	return &RadicalAtom{radicand: radicand}
}

// Radicand returns the radicand.
func (a *RadicalAtom) Radicand() Atom { return a.radicand }

func (*SymbolAtom) isAtom()   {}
func (*CharAtom) isAtom()     {}
func (*RowAtom) isAtom()      {}
func (*SpaceAtom) isAtom()    {}
func (*AccentedAtom) isAtom() {}
func (*FractionAtom) isAtom() {}
func (*ScriptsAtom) isAtom()  {}
func (*RadicalAtom) isAtom()  {}
