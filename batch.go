package mathbox

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/mathbox/box"
)

// LayoutAll lays out every atom in env concurrently and returns the boxes
// in input order. The first failure cancels the remaining passes and is
// returned with the index of the failing atom.
func LayoutAll(ctx context.Context, env *Environment, atoms []Atom, opts ...BatchOption) ([]*box.Box, error) {
	if env == nil {
		return nil, ErrNilEnvironment
	}

	o := defaultBatchOptions()
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]*box.Box, len(atoms))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, a := range atoms {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := Layout(a, env)
			if err != nil {
				return fmt.Errorf("mathbox: atom %d: %w", i, err)
			}
			out[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
