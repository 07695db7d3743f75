package mathbox

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/mathbox/metrics"
)

// wordSpace is the width in quads of a space character in Text.
const wordSpace = 1.0 / 3

// Decompose returns the atom for r. A precomposed character such as 'é' is
// split into its base and combining marks; each mark becomes an accent,
// the first mark innermost. Marks without an accent symbol fail with
// metrics.ErrUnknownSymbol.
func Decompose(symbols metrics.Symbols, r rune) (Atom, error) {
	atoms, err := textAtoms(symbols, string(r))
	if err != nil {
		return nil, err
	}
	if len(atoms) != 1 {
		return NewRowAtom(atoms...), nil
	}
	return atoms[0], nil
}

// Text returns a row with one atom per user-perceived character of s, as
// produced by Decompose. Spaces become SpaceAtoms.
func Text(symbols metrics.Symbols, s string) (*RowAtom, error) {
	atoms, err := textAtoms(symbols, s)
	if err != nil {
		return nil, err
	}
	return NewRowAtom(atoms...), nil
}

func textAtoms(symbols metrics.Symbols, s string) ([]Atom, error) {
	s = norm.NFD.String(s)

	var (
		atoms   []Atom
		current Atom
		started bool
	)
	flush := func() {
		if started {
			atoms = append(atoms, current)
		}
		current, started = nil, false
	}

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("mathbox: invalid UTF-8 at byte %d", i)
		}

		if norm.NFD.PropertiesString(s[i:]).CCC() != 0 {
			sym, err := symbols.SymbolForCombining(r)
			if err != nil {
				return nil, err
			}
			acc, err := NewAccentedAtom(current, SymbolAtomOf(sym))
			if err != nil {
				return nil, err
			}
			current, started = acc, true
		} else {
			flush()
			if unicode.IsSpace(r) {
				current = NewSpaceAtom(wordSpace)
			} else {
				current = NewCharAtom(r)
			}
			started = true
		}
		i += size
	}
	flush()
	return atoms, nil
}
