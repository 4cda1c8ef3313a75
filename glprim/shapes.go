package glprim

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

// Mesh generators expect segments >= 3. Smaller values produce degenerate
// (possibly empty) meshes but never out of range indices.

// NewSphere returns an ellipsoid centered at the local origin with radii rx, ry, rz.
// segments is the number of meridians; the sphere has segments-1 latitude rings
// between the two poles. Vertex 0 is the +Z pole and vertex 1 the -Z pole.
func NewSphere(segments int, rx, ry, rz float32, dir ms3.Vec) *Primitive {
	s := max(segments, 0)
	rings := max(s-1, 0)
	p := newPrimitive(s*rings+2, 6*s+6*s*max(s-2, 0), 2*(s*s+s*rings), dir)
	p.positions = append(p.positions, ms3.Vec{Z: rz}, ms3.Vec{Z: -rz})
	dphi := math32.Pi / float32(s)
	dtheta := 2 * math32.Pi / float32(s)
	for i := 1; i <= rings; i++ {
		sphi, cphi := math32.Sincos(float32(i) * dphi)
		for j := 0; j < s; j++ {
			stheta, ctheta := math32.Sincos(float32(j) * dtheta)
			p.positions = append(p.positions, ms3.Vec{
				X: rx * sphi * ctheta,
				Y: ry * sphi * stheta,
				Z: rz * cphi,
			})
		}
	}
	if rings == 0 {
		return p
	}
	ring := func(r, j int) uint32 { return uint32(2 + r*s + j%s) }
	last := rings - 1
	// Caps.
	for j := 0; j < s; j++ {
		p.wire = append(p.wire, 0, ring(0, j), 1, ring(last, j))
		p.surface = append(p.surface,
			0, ring(0, j), ring(0, j+1),
			ring(last, j), 1, ring(last, j+1),
		)
	}
	// Body.
	for r := 0; r < rings; r++ {
		for j := 0; j < s; j++ {
			if r+1 < rings {
				p.wire = append(p.wire, ring(r, j), ring(r+1, j))
			}
			p.wire = append(p.wire, ring(r, j), ring(r, j+1))
		}
	}
	for r := 0; r+1 < rings; r++ {
		for j := 0; j < s; j++ {
			a, b := ring(r, j), ring(r, j+1)
			c, d := ring(r+1, j+1), ring(r+1, j)
			p.surface = append(p.surface, a, c, b, a, d, c)
		}
	}
	return p
}

// NewCone returns a cone with its base disk centered on the local origin and
// its apex at (0,0,height). Vertex 0 is the apex, vertex 1 the base center.
func NewCone(segments int, height, radius float32, dir ms3.Vec) *Primitive {
	s := max(segments, 0)
	p := newPrimitive(s+2, 6*s, 6*s, dir)
	p.positions = append(p.positions, ms3.Vec{Z: height}, ms3.Vec{})
	p.positions = appendRim(p.positions, s, radius, 0)
	rim := func(j int) uint32 { return uint32(2 + j%s) }
	for j := 0; j < s; j++ {
		p.wire = append(p.wire, 0, rim(j), 1, rim(j), rim(j), rim(j+1))
		p.surface = append(p.surface,
			0, rim(j), rim(j+1),
			rim(j), 1, rim(j+1),
		)
	}
	return p
}

// NewCylinder returns a closed cylinder with its bottom disk centered on the
// local origin and its top disk at z=height. Vertex 0 is the top center,
// vertex 1 the bottom center, followed by the top rim and then the bottom rim.
func NewCylinder(segments int, height, radius float32, dir ms3.Vec) *Primitive {
	s := max(segments, 0)
	p := newPrimitive(2*s+2, 12*s, 10*s, dir)
	p.positions = append(p.positions, ms3.Vec{Z: height}, ms3.Vec{})
	p.positions = appendRim(p.positions, s, radius, height)
	p.positions = appendRim(p.positions, s, radius, 0)
	top := func(j int) uint32 { return uint32(2 + j%s) }
	bot := func(j int) uint32 { return uint32(2 + s + j%s) }
	for j := 0; j < s; j++ {
		p.wire = append(p.wire,
			0, top(j),
			1, bot(j),
			top(j), bot(j),
			top(j), top(j+1),
			bot(j), bot(j+1),
		)
		p.surface = append(p.surface,
			0, top(j), top(j+1),
			bot(j), 1, bot(j+1),
			top(j), bot(j+1), top(j+1),
			top(j), bot(j), bot(j+1),
		)
	}
	return p
}

// Arrow is a wireframe arrow: a shaft from the local origin to a cone tip at
// (0,0,length). Arrows are always drawn with the [Wireframe] style.
type Arrow struct {
	*Primitive
	arrowHeight float32
}

// NewSimpleArrow returns an arrow of total height with a cone head of
// arrowHeight and radius. Vertex 0 is the tip, vertex 1 the center of the
// cone base, followed by the cone rim. The last vertex is the shaft base.
func NewSimpleArrow(segments int, height, arrowHeight, radius float32, dir ms3.Vec) *Arrow {
	s := max(segments, 0)
	p := newPrimitive(s+3, 0, 6*s+2, dir)
	p.style = Wireframe
	p.fixedStyle = true
	p.positions = append(p.positions, ms3.Vec{Z: height}, ms3.Vec{Z: height - arrowHeight})
	p.positions = appendRim(p.positions, s, radius, height-arrowHeight)
	p.positions = append(p.positions, ms3.Vec{})
	rim := func(j int) uint32 { return uint32(2 + j%s) }
	for j := 0; j < s; j++ {
		p.wire = append(p.wire, 0, rim(j), 1, rim(j), rim(j), rim(j+1))
	}
	p.wire = append(p.wire, 1, uint32(len(p.positions)-1))
	return &Arrow{Primitive: p, arrowHeight: arrowHeight}
}

// ArrowHeight returns the height of the arrow's cone head.
func (a *Arrow) ArrowHeight() float32 { return a.arrowHeight }

// Length returns the distance from the shaft base to the tip.
func (a *Arrow) Length() float32 { return a.positions[0].Z }

// SetLength moves the tip to z=length and the cone base to z=length-ArrowHeight.
// The shaft base stays at the local origin.
func (a *Arrow) SetLength(length float32) {
	base := len(a.positions) - 1
	a.positions[0].Z = length
	for i := 1; i < base; i++ {
		a.positions[i].Z = length - a.arrowHeight
	}
	a.dirty = true
}

// appendRim appends n points on a circle of radius r at height z, starting on +X
// and advancing counter-clockwise seen from +Z.
func appendRim(dst []ms3.Vec, n int, r, z float32) []ms3.Vec {
	dtheta := 2 * math32.Pi / float32(n)
	for j := 0; j < n; j++ {
		st, ct := math32.Sincos(float32(j) * dtheta)
		dst = append(dst, ms3.Vec{X: r * ct, Y: r * st, Z: z})
	}
	return dst
}
