package gscene

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/axisgl/gscene/glprim"
	"github.com/axisgl/gscene/glscale"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger for the scene and its glprim and glscale
// subpackages. By default nothing is logged. Passing nil restores the
// silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
	glprim.SetLogger(l.With("pkg", "glprim"))
	glscale.SetLogger(l.With("pkg", "glscale"))
}

// Logger returns the current scene logger.
func Logger() *slog.Logger { return loggerPtr.Load() }
