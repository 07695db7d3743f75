package mathbox

import (
	"log/slog"

	"github.com/gogpu/mathbox/internal/logging"
)

// SetLogger configures the logger for mathbox and all its sub-packages.
// By default, mathbox produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by mathbox:
//   - [slog.LevelDebug]: layout diagnostics (ladder steps, provider loads)
//
// Example:
//
//	mathbox.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by mathbox.
// Sub-packages such as metrics share the same logger.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
