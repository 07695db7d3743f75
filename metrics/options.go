package metrics

import "github.com/gogpu/mathbox/style"

// Option configures a Table or OpenType provider.
type Option func(*config)

// config holds provider configuration.
type config struct {
	scales        *style.Scales
	backend       string
	cacheCapacity int
}

// defaultConfig returns the default provider configuration.
func defaultConfig() config {
	return config{
		backend:       defaultBackendName,
		cacheCapacity: 256,
	}
}

// WithScales overrides the script-level size factors. Without it the
// table's [scales] section is used, and style.DefaultScales when that is
// absent too.
func WithScales(sc style.Scales) Option {
	return func(c *config) {
		c.scales = &sc
	}
}

// WithBackend selects the glyph measuring backend of an OpenType provider.
// The default is "ximage"; "gotext" is also registered.
// Unknown names fall back to the default.
func WithBackend(name string) Option {
	return func(c *config) {
		c.backend = name
	}
}

// WithCacheCapacity sets the per-shard capacity of the OpenType glyph cache.
func WithCacheCapacity(n int) Option {
	return func(c *config) {
		c.cacheCapacity = n
	}
}
