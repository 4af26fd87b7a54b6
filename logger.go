package panzoom

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. The model itself is single-threaded,
// but the logger is process-global and may be swapped from anywhere.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for panzoom, all its sub-packages and the
// gg drawing library used by the renderer. By default nothing is logged.
// Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: every applied transform, gesture state changes
//   - [slog.LevelInfo]: lifecycle events (window opened, scenario written)
//   - [slog.LevelWarn]: degraded calls such as a missing overview projector
//
// Example:
//
//	panzoom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	// Propagate to gg so rasterizer diagnostics share the same sink.
	gg.SetLogger(l)
}

// Logger returns the current logger.
// Sub-packages (board, minimap, editor, render) call this so that a single
// SetLogger call configures the whole module.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
