package ggtex

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/ggtex/text"
)

// nopHandler discards all records. Enabled returns false so callers skip
// building attributes altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ggtex and its text package.
// By default ggtex produces no log output. Pass nil to restore that.
//
// Log levels used by ggtex:
//   - [slog.LevelDebug]: rasterized runs, font registration, ignored
//     control sequence arguments
//   - [slog.LevelWarn]: fonts the shaper cannot load
//
// Example:
//
//	ggtex.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	text.SetLogger(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
