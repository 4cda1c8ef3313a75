//go:build tinygo || !cgo

package glprim

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

var errNoCGO = errors.New("primitive rendering requires CGo and is not supported on TinyGo")

type gpuPrimitive struct{}

type gpuProgram struct{}

// ProbeCapabilities reports no GL support on builds without CGo.
func ProbeCapabilities() Capabilities { return Capabilities{} }

// CompileShaders always fails on builds without CGo.
func (m *Manager) CompileShaders(vertexSource, fragmentSource string) error {
	logger().Error("primitive shaders not compiled", "err", errNoCGO)
	return errNoCGO
}

// CreateVertexBuffers is a no-op on builds without CGo.
func (m *Manager) CreateVertexBuffers() error { return errNoCGO }

// DrawPrimitives is a no-op on builds without CGo.
func (m *Manager) DrawPrimitives(viewProjection mgl32.Mat4) {}

// Delete is a no-op on builds without CGo.
func (m *Manager) Delete() error { return nil }
