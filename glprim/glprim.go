// Package glprim generates simple closed meshes (spheres, cones, cylinders and
// wireframe arrows) and draws them with a single OpenGL shader program.
//
// Mesh generation is pure CPU work and can be used without a GL context.
// Everything that touches the GPU lives behind the cgo build tag.
package glprim

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
)

var (
	//go:embed shaders/base.vert
	DefaultVertexShader string
	//go:embed shaders/base.frag
	DefaultFragmentShader string
)

// Capabilities reports which parts of the GL pipeline the current context
// supports. The primitive pipeline needs both.
type Capabilities struct {
	Shaders       bool
	VertexBuffers bool
}

// OK returns true if the primitive pipeline can be initialized.
func (c Capabilities) OK() bool { return c.Shaders && c.VertexBuffers }

// CapabilitiesFromVersion derives capabilities from a GL_VERSION string such as
// "4.6.0 NVIDIA 535.183.01" or "OpenGL ES 3.2 Mesa". Shaders need GL 2.0 and
// vertex buffer objects GL 1.5.
func CapabilitiesFromVersion(version string) (Capabilities, error) {
	v := strings.TrimPrefix(strings.TrimSpace(version), "OpenGL ES ")
	var major, minor int
	_, err := fmt.Sscanf(v, "%d.%d", &major, &minor)
	if err != nil {
		return Capabilities{}, fmt.Errorf("parsing GL version %q: %w", version, err)
	}
	return Capabilities{
		Shaders:       major >= 2,
		VertexBuffers: major >= 2 || (major == 1 && minor >= 5),
	}, nil
}

// nulTerminated returns src terminated with a NUL byte as GL expects.
func nulTerminated(src string) string {
	if strings.HasSuffix(src, "\x00") {
		return src
	}
	return src + "\x00"
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used for shader and buffer diagnostics.
// Passing nil restores the default silent logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

func logger() *slog.Logger { return loggerPtr.Load() }
