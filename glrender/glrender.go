// Package glrender streams world space triangles out of scene primitives and
// encodes them as STL meshes.
package glrender

import (
	"io"

	"github.com/axisgl/gscene/glprim"
	"github.com/soypat/geometry/ms3"
)

type Renderer interface {
	ReadTriangles(dst []ms3.Triangle) (n int, err error)
}

// RenderAll reads the full contents of a Renderer and returns the slice read.
// It does not return error on io.EOF, like the io.ReadAll implementation.
func RenderAll(r Renderer) ([]ms3.Triangle, error) {
	const startSize = 4096
	var err error
	var nt int
	result := make([]ms3.Triangle, 0, startSize)
	buf := make([]ms3.Triangle, startSize)
	for {
		nt, err = r.ReadTriangles(buf)
		if err == nil || err == io.EOF {
			result = append(result, buf[:nt]...)
		}
		if err != nil {
			break
		}
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}

// PrimitiveRenderer reads the surface triangles of a list of primitives in
// order, transformed by each primitive's local matrix. Primitives drawn as
// points have no surface and are skipped.
type PrimitiveRenderer struct {
	prims   []*glprim.Primitive
	pending []ms3.Triangle
}

// NewPrimitiveRenderer returns a renderer over prims. The primitive list is
// not copied; matrices are read as triangles are consumed.
func NewPrimitiveRenderer(prims []*glprim.Primitive) *PrimitiveRenderer {
	return &PrimitiveRenderer{prims: prims}
}

// ReadTriangles implements [Renderer]. It returns io.EOF once every primitive
// has been consumed.
func (pr *PrimitiveRenderer) ReadTriangles(dst []ms3.Triangle) (n int, err error) {
	for n < len(dst) {
		if len(pr.pending) == 0 {
			if len(pr.prims) == 0 {
				return n, io.EOF
			}
			p := pr.prims[0]
			pr.prims = pr.prims[1:]
			if p.DrawStyle() == glprim.Points {
				continue
			}
			pr.pending = p.Triangles(pr.pending[:0])
			continue
		}
		c := copy(dst[n:], pr.pending)
		n += c
		pr.pending = pr.pending[c:]
	}
	return n, nil
}
