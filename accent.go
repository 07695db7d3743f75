package mathbox

import (
	"github.com/gogpu/mathbox/box"
	"github.com/gogpu/mathbox/internal/logging"
	"github.com/gogpu/mathbox/metrics"
)

// italicEpsilon is the smallest italic correction that gets its own strut.
const italicEpsilon = 1e-7

// layoutAccent places the accent over the base:
//
//  1. The base is laid out cramped.
//  2. A base that is a single symbol or character contributes its skew.
//  3. The accent climbs its size ladder while the next variant is no wider
//     than the base.
//  4. The accent box gets a strut for its italic correction.
//  5. Accent, a kern of -min(base height, x-height) and the base are
//     stacked; the narrower of accent and base is centered over the other.
//  6. The stack keeps the base's baseline.
func layoutAccent(a *AccentedAtom, env *Environment) (*box.Box, error) {
	p := env.Provider()
	s := env.Style()

	base, err := Layout(a.base, env.CrampedStyle())
	if err != nil {
		return nil, layoutErr("accent", err)
	}

	skew, err := accentSkew(a.base, p, env)
	if err != nil {
		return nil, layoutErr("accent", err)
	}

	ci, err := p.CharInfo(a.accent.Name(), s)
	if err != nil {
		return nil, layoutErr("accent", err)
	}
	steps := 0
	for p.HasNextLarger(ci) {
		next := p.NextLarger(ci, s)
		if next.Metrics.Width > base.Width {
			break
		}
		ci = next
		steps++
	}
	logging.Logger().Debug("mathbox: accent ladder",
		"accent", a.accent.Name(), "steps", steps,
		"width", ci.Metrics.Width, "base", base.Width)

	accent := box.Char(ci)
	if italic := ci.Metrics.Italic; italic > italicEpsilon {
		accent = box.Horizontal(accent, box.Strut(italic, 0, 0, 0))
	}

	v := box.NewVertical()
	v.Add(accent)
	// 0 - gap keeps the kern of an empty base at +0.
	v.Add(box.Kern(0 - min(base.Height, p.XHeight(s, ci.FontID))))

	diff := (base.Width - accent.Width) / 2
	accent.Shift = skew + max(diff, 0)
	if diff < 0 {
		base = box.HorizontalAligned(base, accent.Width, box.AlignCenter)
	}
	v.Add(base)

	depth := base.Depth
	return v.FinalizeBaseline(v.Height()+v.Depth()-depth, depth), nil
}

// accentSkew returns the skew of base when it is a single symbol or
// character, and 0 otherwise.
func accentSkew(base Atom, p metrics.Provider, env *Environment) (float64, error) {
	switch b := base.(type) {
	case *SymbolAtom:
		return p.Skew(b.symbol.CharFont, env.Style()), nil
	case *CharAtom:
		cf, err := p.CharFontOf(b.char)
		if err != nil {
			return 0, err
		}
		return p.Skew(cf, env.Style()), nil
	default:
		return 0, nil
	}
}
