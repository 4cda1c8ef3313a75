package glprim

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
)

// DrawStyle selects how a primitive's index buffers are rasterized.
type DrawStyle uint8

const (
	// Surface draws the surface index buffer as filled triangles.
	Surface DrawStyle = iota
	// TriangleWireframe draws the surface index buffer with polygon mode set to lines.
	TriangleWireframe
	// Wireframe draws the wireframe index buffer as blended line segments.
	Wireframe
	// Points draws every vertex as a point.
	Points
)

func (ds DrawStyle) String() string {
	switch ds {
	case Surface:
		return "surface"
	case TriangleWireframe:
		return "triangle-wireframe"
	case Wireframe:
		return "wireframe"
	case Points:
		return "points"
	}
	return "DrawStyle(?)"
}

var zAxis = mgl32.Vec3{0, 0, 1}

// Primitive is a mesh with a placement in world space. The mesh is generated
// along the +Z axis in local space and rotated so that +Z points along the
// primitive's direction.
type Primitive struct {
	positions []ms3.Vec
	surface   []uint32 // triangle list.
	wire      []uint32 // line list.

	pos   ms3.Vec
	dir   ms3.Vec
	local mgl32.Mat4
	color color.Color
	style DrawStyle
	// fixedStyle primitives ignore SetDrawStyle.
	fixedStyle bool
	// dirty is set when positions changed after the GPU copy was made.
	dirty bool
	gpu   gpuPrimitive
}

func newPrimitive(npos, nsurf, nwire int, dir ms3.Vec) *Primitive {
	p := &Primitive{
		positions: make([]ms3.Vec, 0, npos),
		surface:   make([]uint32, 0, nsurf),
		wire:      make([]uint32, 0, nwire),
		dir:       dir,
		color:     color.Gray{Y: 0x80},
		style:     Surface,
	}
	p.UpdateMatrix()
	return p
}

// Positions returns the vertex positions in local space. The slice must not be modified.
func (p *Primitive) Positions() []ms3.Vec { return p.positions }

// SurfaceIndices returns the triangle list indexing into Positions.
func (p *Primitive) SurfaceIndices() []uint32 { return p.surface }

// WireframeIndices returns the line list indexing into Positions.
func (p *Primitive) WireframeIndices() []uint32 { return p.wire }

// Pos returns the world position of the local origin.
func (p *Primitive) Pos() ms3.Vec { return p.pos }

// Direction returns the world direction the local +Z axis is rotated onto.
func (p *Primitive) Direction() ms3.Vec { return p.dir }

// Matrix returns the local to world transform.
func (p *Primitive) Matrix() mgl32.Mat4 { return p.local }

// Color returns the primitive's draw color.
func (p *Primitive) Color() color.Color { return p.color }

// DrawStyle returns the primitive's draw style.
func (p *Primitive) DrawStyle() DrawStyle { return p.style }

// SetColor sets the draw color. A nil color is ignored.
func (p *Primitive) SetColor(c color.Color) {
	if c != nil {
		p.color = c
	}
}

// SetDrawStyle sets the draw style. Primitives with a fixed style, such as arrows, ignore the call.
func (p *Primitive) SetDrawStyle(ds DrawStyle) {
	if p.fixedStyle {
		return
	}
	p.style = ds
}

// SetPos moves the primitive and recomputes its matrix.
func (p *Primitive) SetPos(pos ms3.Vec) {
	p.pos = pos
	p.UpdateMatrix()
}

// SetDirection rotates the primitive so that its local +Z axis points along dir
// and recomputes its matrix.
func (p *Primitive) SetDirection(dir ms3.Vec) {
	p.dir = dir
	p.UpdateMatrix()
}

// UpdateMatrix recomputes the local transform: a translation to the position
// followed by the shortest-arc rotation taking +Z onto the direction.
// A zero direction leaves the mesh unrotated.
func (p *Primitive) UpdateMatrix() {
	m := mgl32.Translate3D(p.pos.X, p.pos.Y, p.pos.Z)
	d := vec3(p.dir)
	if d.Len() > 0 {
		m = m.Mul4(mgl32.QuatBetweenVectors(zAxis, d).Mat4())
	}
	p.local = m
}

// Triangles appends the surface triangles in world space to dst.
func (p *Primitive) Triangles(dst []ms3.Triangle) []ms3.Triangle {
	for i := 0; i+2 < len(p.surface); i += 3 {
		var t ms3.Triangle
		for k := range t {
			t[k] = p.transform(p.positions[p.surface[i+k]])
		}
		dst = append(dst, t)
	}
	return dst
}

func (p *Primitive) transform(v ms3.Vec) ms3.Vec {
	w := p.local.Mul4x1(vec3(v).Vec4(1))
	return ms3.Vec{X: w[0], Y: w[1], Z: w[2]}
}

func vec3(v ms3.Vec) mgl32.Vec3 { return mgl32.Vec3{v.X, v.Y, v.Z} }

func colorVec3(c color.Color) mgl32.Vec3 {
	r, g, b, _ := c.RGBA()
	return mgl32.Vec3{float32(r) / 0xffff, float32(g) / 0xffff, float32(b) / 0xffff}
}
