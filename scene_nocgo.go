//go:build tinygo || !cgo

package gscene

import (
	"errors"

	"github.com/axisgl/gscene/glprim"
	"github.com/axisgl/gscene/glscale"
)

var errNoCGO = errors.New("scene rendering requires CGo and is not supported on TinyGo")

func newGLDrawer(prims *glprim.Manager, caps glprim.Capabilities, vertexSrc, fragmentSrc string, titles *glscale.Rasterizer) (drawer, error) {
	return nil, errNoCGO
}
