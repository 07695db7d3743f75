package mathbox

import (
	"math"

	"github.com/gogpu/mathbox/box"
)

// layoutScripts attaches sub- and superscripts to the right of the base
// following the TeX script rules. Scripts of a char base start at the
// font's default positions; scripts of other bases hang from the base's
// top and bottom by the drop parameters of the script style.
func layoutScripts(a *ScriptsAtom, env *Environment) (*box.Box, error) {
	base, err := Layout(a.base, env)
	if err != nil {
		return nil, layoutErr("scripts", err)
	}
	if a.sub == nil && a.sup == nil {
		return base, nil
	}

	supEnv, subEnv := env.SuperscriptStyle(), env.SubscriptStyle()
	c := env.Constants()
	xh := math.Abs(c.XHeight)

	var u, v, italic float64
	if base.Kind == box.KindChar {
		italic = base.Italic
	} else {
		u = base.Height - supEnv.Constants().SupDrop
		v = base.Depth + subEnv.Constants().SubDrop
	}

	var sup, sub *box.Box
	if a.sup != nil {
		if sup, err = Layout(a.sup, supEnv); err != nil {
			return nil, layoutErr("scripts", err)
		}
	}
	if a.sub != nil {
		if sub, err = Layout(a.sub, subEnv); err != nil {
			return nil, layoutErr("scripts", err)
		}
	}

	if sup == nil {
		v = max(v, c.Sub1, sub.Height-0.8*xh)
		sub.Shift = v
		return box.Horizontal(base, sub), nil
	}

	var p float64
	switch {
	case env.Style().IsDisplay() && !env.Style().IsCramped():
		p = c.Sup1
	case env.Style().IsCramped():
		p = c.Sup3
	default:
		p = c.Sup2
	}
	u = max(u, p, sup.Depth+xh/4)

	if sub == nil {
		if italic > italicEpsilon {
			sup = box.Horizontal(box.Strut(italic, 0, 0, 0), sup)
		}
		sup.Shift = -u
		return box.Horizontal(base, sup), nil
	}

	v = max(v, c.Sub2)
	if gap := (u - sup.Depth) - (sub.Height - v); gap < 4*c.RuleThickness {
		v = 4*c.RuleThickness - u + sup.Depth + sub.Height
		if psi := 0.8*xh - (u - sup.Depth); psi > 0 {
			u += psi
			v -= psi
		}
	}

	sup.Shift = italic
	vb := box.NewVertical()
	vb.Add(sup)
	vb.Add(box.Kern((u - sup.Depth) - (sub.Height - v)))
	vb.Add(sub)
	return box.Horizontal(base, vb.FinalizeBaseline(u+sup.Height, v+sub.Depth)), nil
}
