package mathbox

import (
	"math"

	"github.com/gogpu/mathbox/box"
	"github.com/gogpu/mathbox/internal/logging"
)

// RadicalSymbol is the name of the symbol used for radical signs.
const RadicalSymbol = "sqrt"

// layoutRadical draws a radical sign tall enough for the radicand and a
// rule over it. The sign is the first variant on its size ladder whose
// total height covers the radicand plus clearance and rule; if none does,
// the largest is used. The result keeps the radicand's baseline.
func layoutRadical(a *RadicalAtom, env *Environment) (*box.Box, error) {
	p := env.Provider()
	s := env.Style()

	rad, err := Layout(a.radicand, env.RootStyle())
	if err != nil {
		return nil, layoutErr("radical", err)
	}

	c := env.Constants()
	theta := c.RuleThickness
	phi := theta + theta/4
	if s.IsDisplay() {
		phi = theta + math.Abs(c.XHeight)/4
	}
	need := rad.TotalHeight() + phi + theta

	ci, err := p.CharInfo(RadicalSymbol, s)
	if err != nil {
		return nil, layoutErr("radical", err)
	}
	steps := 0
	for ci.Metrics.Height+ci.Metrics.Depth < need && p.HasNextLarger(ci) {
		ci = p.NextLarger(ci, s)
		steps++
	}
	logging.Logger().Debug("mathbox: radical ladder",
		"steps", steps, "total", ci.Metrics.Height+ci.Metrics.Depth, "need", need)

	sign := box.Char(ci)
	if extra := sign.TotalHeight() - theta - (rad.TotalHeight() + phi); extra > 0 {
		phi += extra / 2
	}

	vb := box.NewVertical()
	vb.Add(box.Rule(rad.Width, theta, 0))
	vb.Add(box.Kern(phi))
	vb.Add(rad)
	over := vb.FinalizeBaseline(theta+phi+rad.Height, rad.Depth)

	// Align the top of the sign with the top of the rule.
	sign.Shift = sign.Height - over.Height
	return box.Horizontal(sign, over), nil
}
