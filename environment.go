package mathbox

import (
	"github.com/gogpu/mathbox/metrics"
	"github.com/gogpu/mathbox/style"
)

// Environment is the context of one layout pass: the current math style
// and the font metrics provider.
//
// An Environment is immutable. The derivation methods return new
// environments sharing the same provider.
type Environment struct {
	style    style.Style
	provider metrics.Provider
}

// NewEnvironment returns an environment for style s. A nil provider selects
// metrics.Default.
func NewEnvironment(p metrics.Provider, s style.Style) *Environment {
	if p == nil {
		p = metrics.Default()
	}
	return &Environment{style: s, provider: p}
}

// Style returns the current style.
func (e *Environment) Style() style.Style { return e.style }

// Provider returns the font metrics provider.
func (e *Environment) Provider() metrics.Provider { return e.provider }

// Constants returns the font parameters scaled to the current style.
func (e *Environment) Constants() metrics.Constants {
	return e.provider.Constants(e.style)
}

// WithStyle returns an environment with style s.
func (e *Environment) WithStyle(s style.Style) *Environment {
	if s == e.style {
		return e
	}
	return &Environment{style: s, provider: e.provider}
}

// CrampedStyle returns the cramped variant of the environment.
// It is idempotent.
func (e *Environment) CrampedStyle() *Environment {
	return e.WithStyle(e.style.Cramped())
}

// StyleForScript returns the environment level script levels down.
func (e *Environment) StyleForScript(level int) *Environment {
	return e.WithStyle(e.style.Script(level))
}

// SuperscriptStyle returns the environment of a superscript.
func (e *Environment) SuperscriptStyle() *Environment {
	return e.WithStyle(e.style.Sup())
}

// SubscriptStyle returns the environment of a subscript.
func (e *Environment) SubscriptStyle() *Environment {
	return e.WithStyle(e.style.Sub())
}

// NumeratorStyle returns the environment of a fraction numerator.
func (e *Environment) NumeratorStyle() *Environment {
	return e.WithStyle(e.style.Num())
}

// DenominatorStyle returns the environment of a fraction denominator.
func (e *Environment) DenominatorStyle() *Environment {
	return e.WithStyle(e.style.Denom())
}

// RootStyle returns the environment of a radicand.
func (e *Environment) RootStyle() *Environment {
	return e.WithStyle(e.style.Root())
}
