package mathbox

import "github.com/gogpu/mathbox/box"

// layoutFraction stacks numerator over denominator with the TeX fraction
// rules. The numerator and denominator are centered on the wider of the
// two; the rule, when present, is centered on the math axis.
func layoutFraction(a *FractionAtom, env *Environment) (*box.Box, error) {
	num, err := Layout(a.num, env.NumeratorStyle())
	if err != nil {
		return nil, layoutErr("fraction", err)
	}
	den, err := Layout(a.denom, env.DenominatorStyle())
	if err != nil {
		return nil, layoutErr("fraction", err)
	}

	width := max(num.Width, den.Width)
	if num.Width < width {
		num = box.HorizontalAligned(num, width, box.AlignCenter)
	}
	if den.Width < width {
		den = box.HorizontalAligned(den, width, box.AlignCenter)
	}

	c := env.Constants()
	display := env.Style().IsDisplay()

	var u, v float64
	switch {
	case display:
		u, v = c.Num1, c.Denom1
	case a.rule:
		u, v = c.Num2, c.Denom2
	default:
		u, v = c.Num3, c.Denom2
	}

	vb := box.NewVertical()
	vb.Add(num)

	if a.rule {
		theta := c.RuleThickness
		clearance := theta
		if display {
			clearance = 3 * theta
		}
		if gap := (u - num.Depth) - (c.AxisHeight + theta/2); gap < clearance {
			u += clearance - gap
		}
		if gap := (c.AxisHeight - theta/2) - (den.Height - v); gap < clearance {
			v += clearance - gap
		}

		vb.Add(box.Kern((u - num.Depth) - (c.AxisHeight + theta/2)))
		vb.Add(box.Rule(width, theta, 0))
		vb.Add(box.Kern((c.AxisHeight - theta/2) - (den.Height - v)))
	} else {
		clearance := 3 * c.RuleThickness
		if display {
			clearance = 7 * c.RuleThickness
		}
		if gap := (u - num.Depth) - (den.Height - v); gap < clearance {
			u += (clearance - gap) / 2
			v += (clearance - gap) / 2
		}
		vb.Add(box.Kern((u - num.Depth) - (den.Height - v)))
	}

	vb.Add(den)
	return vb.FinalizeBaseline(u+num.Height, v+den.Depth), nil
}
