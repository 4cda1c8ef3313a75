package glprim

import (
	"github.com/soypat/geometry/ms3"
)

// Manager owns an ordered collection of primitives and the shader program
// used to draw them. Primitives are drawn in insertion order.
// A Manager must only be used from the goroutine owning the GL context.
type Manager struct {
	prims  []*Primitive
	prog   gpuProgram
	linked bool
}

// NewManager returns an empty manager. Call [Manager.CompileShaders] with a
// current GL context before drawing.
func NewManager() *Manager {
	return &Manager{}
}

// Primitives returns the managed primitives in draw order.
func (m *Manager) Primitives() []*Primitive { return m.prims }

// Len returns the number of managed primitives.
func (m *Manager) Len() int { return len(m.prims) }

// Linked returns true if the shader program compiled and linked successfully.
// An unlinked manager draws nothing.
func (m *Manager) Linked() bool { return m.linked }

// AddSphere creates a sphere, appends it to the draw list and returns it.
func (m *Manager) AddSphere(segments int, rx, ry, rz float32, dir ms3.Vec) *Primitive {
	return m.add(NewSphere(segments, rx, ry, rz, dir))
}

// AddCone creates a cone, appends it to the draw list and returns it.
func (m *Manager) AddCone(segments int, height, radius float32, dir ms3.Vec) *Primitive {
	return m.add(NewCone(segments, height, radius, dir))
}

// AddCylinder creates a cylinder, appends it to the draw list and returns it.
func (m *Manager) AddCylinder(segments int, height, radius float32, dir ms3.Vec) *Primitive {
	return m.add(NewCylinder(segments, height, radius, dir))
}

// AddSimpleArrow creates an arrow, appends it to the draw list and returns it.
func (m *Manager) AddSimpleArrow(segments int, height, arrowHeight, radius float32, dir ms3.Vec) *Arrow {
	a := NewSimpleArrow(segments, height, arrowHeight, radius, dir)
	m.add(a.Primitive)
	return a
}

func (m *Manager) add(p *Primitive) *Primitive {
	m.prims = append(m.prims, p)
	return p
}
