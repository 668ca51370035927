// Package storage provides the persisted key-value store that quill
// applications use to restore state (window positions, app settings)
// across runs. The only implementation here is FileStorage, a TOML file
// on disk in the platform's data directory.
package storage

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Storage is a persisted string key-value store.
//
// Values written with SetString are kept in memory until Flush is
// called; implementations decide where flushed data ends up.
type Storage interface {
	// GetString returns the value stored for key, if any.
	GetString(key string) (string, bool)

	// SetString stores value under key.
	SetString(key, value string)

	// Flush persists all pending changes.
	Flush()
}

// nopHandler is a slog.Handler that silently discards all log records.
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

// SetLogger configures the logger for the storage package.
// Pass nil to restore the default silent behavior.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by the storage package.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
