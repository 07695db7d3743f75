package mathbox

import (
	"errors"
	"fmt"
)

// Sentinel errors for the mathbox package.
var (
	// ErrNotAccent is returned when an accented atom is built with a symbol
	// whose class is not accent.
	ErrNotAccent = errors.New("mathbox: symbol is not an accent")

	// ErrAccentNotSymbol is returned when the accent expression of an
	// accented atom is not a single symbol.
	ErrAccentNotSymbol = errors.New("mathbox: accent must be a single symbol")

	// ErrNilEnvironment is returned when Layout is called without an
	// environment.
	ErrNilEnvironment = errors.New("mathbox: nil environment")
)

// LayoutError reports a failure while laying out an atom.
// It wraps the underlying cause, usually a metrics lookup error.
type LayoutError struct {
	// Atom names the kind of atom that failed, e.g. "accent".
	Atom string
	Err  error
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("mathbox: %s layout: %v", e.Atom, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LayoutError) Unwrap() error {
	return e.Err
}

func layoutErr(atom string, err error) error {
	if err == nil {
		return nil
	}
	var le *LayoutError
	if errors.As(err, &le) {
		return err
	}
	return &LayoutError{Atom: atom, Err: err}
}
