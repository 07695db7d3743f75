package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/mathbox/metrics"
)

func newSymbolsCommand() *cobra.Command {
	var (
		provider providerFlags
		class    string
	)

	cmd := &cobra.Command{
		Use:   "symbols",
		Short: "List the symbols of a metric table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := metrics.Class(-1)
			if class != "" {
				var ok bool
				if c, ok = metrics.ParseClass(class); !ok {
					return fmt.Errorf("unknown class %q", class)
				}
			}

			_, table, err := provider.load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range table.SymbolNames(c) {
				sym, err := table.Symbol(name)
				if err != nil {
					return err
				}
				line := fmt.Sprintf("%-12s %s %s", styleValue.Render(name), styleDim.Render(sym.Class.String()), sym.CharFont)
				if sym.Combining != 0 {
					line += styleHighlight.Render(fmt.Sprintf(" U+%04X", sym.Combining))
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	provider.register(cmd)
	cmd.Flags().StringVar(&class, "class", "", "only list symbols of this class (e.g. accent)")

	return cmd
}
