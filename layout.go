package mathbox

import (
	"fmt"

	"github.com/gogpu/mathbox/box"
)

// Layout lays out atom a in environment env and returns its box tree.
//
// A nil atom yields an empty box. Metric lookup failures are returned
// wrapped in a *LayoutError and keep their identity, so errors.Is(err,
// metrics.ErrUnknownSymbol) works on the result. Layout is deterministic:
// the same atom and environment always produce equal trees.
func Layout(a Atom, env *Environment) (*box.Box, error) {
	if env == nil {
		return nil, ErrNilEnvironment
	}

	switch a := a.(type) {
	case nil:
		return box.Empty(), nil
	case *SymbolAtom:
		return layoutSymbol(a, env)
	case *CharAtom:
		return layoutChar(a, env)
	case *RowAtom:
		return layoutRow(a, env)
	case *SpaceAtom:
		return layoutSpace(a, env), nil
	case *AccentedAtom:
		return layoutAccent(a, env)
	case *FractionAtom:
		return layoutFraction(a, env)
	case *ScriptsAtom:
		return layoutScripts(a, env)
	case *RadicalAtom:
		return layoutRadical(a, env)
	default:
		return nil, fmt.Errorf("mathbox: unsupported atom %T", a)
	}
}

func layoutSymbol(a *SymbolAtom, env *Environment) (*box.Box, error) {
	ci, err := env.Provider().CharInfoFor(a.symbol.CharFont, env.Style())
	if err != nil {
		return nil, layoutErr("symbol", err)
	}
	return box.Char(ci), nil
}

func layoutChar(a *CharAtom, env *Environment) (*box.Box, error) {
	p := env.Provider()
	cf, err := p.CharFontOf(a.char)
	if err != nil {
		return nil, layoutErr("char", err)
	}
	ci, err := p.CharInfoFor(cf, env.Style())
	if err != nil {
		return nil, layoutErr("char", err)
	}
	return box.Char(ci), nil
}

func layoutRow(a *RowAtom, env *Environment) (*box.Box, error) {
	children := make([]*box.Box, 0, len(a.children))
	for _, c := range a.children {
		b, err := Layout(c, env)
		if err != nil {
			return nil, layoutErr("row", err)
		}
		children = append(children, b)
	}
	return box.Horizontal(children...), nil
}

func layoutSpace(a *SpaceAtom, env *Environment) *box.Box {
	return box.Strut(a.em*env.Constants().Quad, 0, 0, 0)
}
