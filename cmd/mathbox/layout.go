package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/mathbox"
	"github.com/gogpu/mathbox/box"
	"github.com/gogpu/mathbox/style"
)

type layoutOptions struct {
	provider providerFlags
	style    string
	accent   string
	json     bool
}

// layoutResult is one laid out argument in --json output.
type layoutResult struct {
	Text string   `json:"text"`
	Box  *box.Box `json:"box"`
}

func newLayoutCommand() *cobra.Command {
	var opts layoutOptions

	cmd := &cobra.Command{
		Use:   "layout [flags] TEXT...",
		Short: "Lay out text and print its box tree",
		Long: `Lay out each TEXT argument and print its box tree.

Precomposed characters are split into base and combining marks; each mark
becomes an accent over the base. With --accent the whole text is placed
under the named accent.`,
		Example: `  mathbox layout "é"
  mathbox layout --accent widehat --style Text www
  mathbox layout --font DejaVuSans.ttf --symbols dejavu.toml --json "é"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd, opts, args)
		},
	}

	opts.provider.register(cmd)
	cmd.Flags().StringVar(&opts.style, "style", "Display", "math style: Display, Text, Script, ScriptScript or a Cramped variant")
	cmd.Flags().StringVar(&opts.accent, "accent", "", "accent symbol to place over each text")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print box trees as JSON")

	return cmd
}

func runLayout(cmd *cobra.Command, opts layoutOptions, args []string) error {
	s, err := parseStyle(opts.style)
	if err != nil {
		return err
	}
	p, symbols, err := opts.provider.load()
	if err != nil {
		return err
	}

	atoms := make([]mathbox.Atom, len(args))
	for i, arg := range args {
		row, err := mathbox.Text(symbols, arg)
		if err != nil {
			return fmt.Errorf("%q: %w", arg, err)
		}
		atoms[i] = row
		if opts.accent != "" {
			if atoms[i], err = mathbox.NewAccentedAtomByName(symbols, row, opts.accent); err != nil {
				return err
			}
		}
	}

	boxes, err := mathbox.LayoutAll(cmd.Context(), mathbox.NewEnvironment(p, s), atoms)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		results := make([]layoutResult, len(args))
		for i := range args {
			results[i] = layoutResult{Text: args[i], Box: boxes[i]}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for i, b := range boxes {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s %s\n", styleTitle.Render(args[i]), styleDim.Render("("+s.String()+")"))
		printTree(out, b, 1)
	}
	return nil
}

func parseStyle(name string) (style.Style, error) {
	for s := style.Display; s <= style.ScriptScriptCramped; s++ {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown style %q", name)
}

// printTree writes the box tree with the kind of each box highlighted.
func printTree(w io.Writer, b *box.Box, level int) {
	kind, rest, _ := strings.Cut(box.Describe(b), " ")
	fmt.Fprintf(w, "%s%s %s\n", strings.Repeat("  ", level), kindStyle(b.Kind).Render(kind), styleDim.Render(rest))
	for _, c := range b.Children {
		printTree(w, c, level+1)
	}
}
