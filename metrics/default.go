package metrics

import (
	"bytes"
	_ "embed"
	"sync"
)

//go:embed default.toml
var defaultTOML []byte

var defaultTable = sync.OnceValue(func() *Table {
	t, err := LoadTable(bytes.NewReader(defaultTOML))
	if err != nil {
		panic("metrics: embedded default table is invalid: " + err.Error())
	}
	return t
})

// Default returns the embedded Computer Modern like table.
// The table is parsed once and shared; it is safe for concurrent use.
func Default() *Table {
	return defaultTable()
}
