// Package logging holds the logger shared by mathbox and its sub-packages.
//
// The root package exposes SetLogger and Logger; sub-packages such as
// metrics read the logger from here so they do not import the root package.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// NewNop creates a logger that silently discards all output.
func NewNop() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that Set can
// be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(NewNop())
}

// Set stores l as the shared logger. A nil logger restores silence.
func Set(l *slog.Logger) {
	if l == nil {
		l = NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the shared logger. It never returns nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
