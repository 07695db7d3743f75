package mathbox

import "runtime"

// BatchOption configures LayoutAll.
type BatchOption func(*batchOptions)

// batchOptions holds optional configuration for LayoutAll.
type batchOptions struct {
	concurrency int
}

// defaultBatchOptions returns the default batch options.
func defaultBatchOptions() batchOptions {
	return batchOptions{
		concurrency: runtime.GOMAXPROCS(0),
	}
}

// WithConcurrency limits the number of layout passes LayoutAll runs at
// once. Values below 1 are treated as 1.
//
// Example:
//
//	boxes, err := mathbox.LayoutAll(ctx, env, atoms, mathbox.WithConcurrency(4))
func WithConcurrency(n int) BatchOption {
	return func(o *batchOptions) {
		o.concurrency = max(n, 1)
	}
}
