package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/gogpu/mathbox"
	"github.com/gogpu/mathbox/metrics"
)

// providerFlags select the font metrics used by a command.
type providerFlags struct {
	table   string
	font    string
	symbols string
	backend string
}

func (f *providerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.table, "table", "", "TOML metric table (default: built-in Computer Modern subset)")
	cmd.Flags().StringVar(&f.font, "font", "", "TTF/OTF font to measure glyphs from")
	cmd.Flags().StringVar(&f.symbols, "symbols", "", "TOML symbol file used with --font")
	cmd.Flags().StringVar(&f.backend, "backend", "ximage", "font measuring backend: ximage or gotext")
	cmd.MarkFlagsMutuallyExclusive("table", "font")
}

// load returns the selected provider together with its symbol table.
func (f *providerFlags) load() (metrics.Provider, *metrics.Table, error) {
	switch {
	case f.font != "":
		o, err := metrics.NewOpenTypeFile(f.font, f.symbols, metrics.WithBackend(f.backend))
		if err != nil {
			return nil, nil, err
		}
		mathbox.Logger().Info("font loaded", "name", o.Name(), "path", f.font)
		return o, o.Table, nil
	case f.symbols != "":
		return nil, nil, errors.New("--symbols requires --font")
	case f.table != "":
		t, err := metrics.LoadTableFile(f.table)
		if err != nil {
			return nil, nil, err
		}
		return t, t, nil
	default:
		t := metrics.Default()
		return t, t, nil
	}
}
