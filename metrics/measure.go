package metrics

import "sync"

// Measurer measures the glyphs of one parsed font file.
// All results are in em units. Implementations must be safe for
// concurrent use.
type Measurer interface {
	// HasGlyph reports whether the font maps r to a real glyph.
	HasGlyph(r rune) bool

	// Measure returns the metrics of the glyph for r.
	// The second result is false when the font has no glyph for r.
	Measure(r rune) (Metrics, bool)

	// XHeight returns the height of lowercase letters.
	XHeight() float64
}

// Backend parses font data (TTF or OTF) into a Measurer.
type Backend func(data []byte) (Measurer, error)

// defaultBackendName is the name of the default measuring backend.
const defaultBackendName = "ximage"

var (
	backendMu sync.RWMutex

	// backendRegistry holds registered measuring backends.
	backendRegistry = map[string]Backend{
		"ximage": newXImageMeasurer,
		"gotext": newGoTextMeasurer,
	}
)

// RegisterBackend registers a glyph measuring backend under name, replacing
// any backend registered under the same name.
func RegisterBackend(name string, b Backend) {
	backendMu.Lock()
	defer backendMu.Unlock()
	backendRegistry[name] = b
}

// getBackend returns the backend by name, or the default if not found.
func getBackend(name string) Backend {
	backendMu.RLock()
	defer backendMu.RUnlock()
	if b, ok := backendRegistry[name]; ok {
		return b
	}
	return backendRegistry[defaultBackendName]
}

// fromFontUnits converts lengths measured at ppem == upem into em units.
func fromFontUnits(v, upem float64) float64 {
	return v / upem
}
