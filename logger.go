package minicad

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false, so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger for minicad and all its sub-packages.
// By default, nothing is logged.  Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: shape placement, undo/redo, redraw statistics
//   - [slog.LevelInfo]: files written
//   - [slog.LevelWarn]: out-of-range input which was corrected, such as a
//     stroke thickness below one
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.  Sub-packages call this to share the
// configuration made with [SetLogger].
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
