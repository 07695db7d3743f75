// Command mathbox lays out formulas and prints their box trees.
//
// Usage:
//
//	mathbox layout [--style Text] [--accent hat] [--json] TEXT...
//	mathbox layout --font f.ttf --symbols s.toml TEXT...
//	mathbox symbols [--class accent]
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, styleError.Render("error:"), err)
		os.Exit(1)
	}
}
