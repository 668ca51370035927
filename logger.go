package quill

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/quillui/quill/paint"
	"github.com/quillui/quill/storage"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := slog.New(nopHandler{})
	loggerPtr.Store(l)
}

// SetLogger configures the logger for quill and all its sub-packages.
// By default, quill produces no log output.
//
// Log levels used by quill:
//   - [slog.LevelDebug]: lifecycle events (state loaded, state persisted)
//   - [slog.LevelWarn]: non-fatal misuse (stale shape index, storage I/O
//     failures, overflowing strip cells)
//
// Pass nil to disable logging (restore the default silent behavior).
//
// Example:
//
//	quill.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	stored := l
	if stored == nil {
		stored = slog.New(nopHandler{})
	}
	loggerPtr.Store(stored)
	paint.SetLogger(l)
	storage.SetLogger(l)
}

// Logger returns the current logger used by quill.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
