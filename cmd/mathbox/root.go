package main

import (
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/mathbox"
)

// newLogger creates the CLI logger. It doubles as the slog handler given to
// mathbox.SetLogger, so library debug records share its format.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "mathbox",
	})
}

func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "mathbox",
		Short:        "mathbox lays out formulas as box trees",
		Long:         `mathbox lays out formulas with accents, fractions, scripts and radicals and prints the resulting box geometry.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			mathbox.SetLogger(slog.New(newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newLayoutCommand())
	root.AddCommand(newSymbolsCommand())

	return root
}
