//go:build !tinygo && cgo

package glprim

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/glgl/v4.6-core/glgl"
)

type gpuPrimitive struct {
	vao, vbo         uint32
	surfEBO, wireEBO uint32
	created          bool
}

type gpuProgram struct {
	prog      glgl.Program
	colorLoc  int32
	matrixLoc int32
	posAttrib uint32
}

// ProbeCapabilities reads the version string of the current GL context.
func ProbeCapabilities() Capabilities {
	version := gl.GoStr(gl.GetString(gl.VERSION))
	caps, err := CapabilitiesFromVersion(version)
	if err != nil {
		logger().Warn("unrecognized GL version string", "version", version, "err", err)
	}
	return caps
}

// CompileShaders compiles and links the program shared by all primitives. The
// vertex shader must declare the aPos attribute and the matrix uniform, the
// fragment shader the color uniform. On failure the manager stays unlinked and
// draws nothing.
func (m *Manager) CompileShaders(vertexSource, fragmentSource string) error {
	if m.linked {
		return errors.New("primitive shaders already compiled")
	}
	prog, err := glgl.CompileProgram(glgl.ShaderSource{
		Vertex:   nulTerminated(vertexSource),
		Fragment: nulTerminated(fragmentSource),
	})
	if err != nil {
		logger().Error("primitive shader compilation failed", "err", err)
		return fmt.Errorf("compiling primitive shaders: %w", err)
	}
	gp := gpuProgram{prog: prog}
	gp.colorLoc, err = prog.UniformLocation("color\x00")
	if err == nil {
		gp.matrixLoc, err = prog.UniformLocation("matrix\x00")
	}
	if err == nil {
		gp.posAttrib, err = prog.AttribLocation("aPos\x00")
	}
	if err != nil {
		prog.Delete()
		logger().Error("primitive shader interface mismatch", "err", err)
		return fmt.Errorf("primitive shader interface: %w", err)
	}
	m.prog = gp
	m.linked = true
	logger().Debug("primitive shaders linked", "program", prog.ID())
	return nil
}

// CreateVertexBuffers uploads every primitive that has no GPU buffers yet.
// It is safe to call repeatedly. DrawPrimitives calls it for primitives
// added after the last call.
func (m *Manager) CreateVertexBuffers() error {
	if !m.linked {
		return errors.New("create vertex buffers: shaders not linked")
	}
	var errs []error
	for i, p := range m.prims {
		if p.gpu.created {
			continue
		}
		if err := p.createBuffers(m.prog.posAttrib); err != nil {
			errs = append(errs, fmt.Errorf("primitive %d: %w", i, err))
		}
	}
	gl.BindVertexArray(0)
	return errors.Join(errs...)
}

// DrawPrimitives draws all primitives in insertion order with the given
// view-projection matrix. It does nothing if the program is not linked.
// Blend, line smoothing and polygon mode state are restored before returning.
func (m *Manager) DrawPrimitives(viewProjection mgl32.Mat4) {
	if !m.linked || len(m.prims) == 0 {
		return
	}
	m.prog.prog.Bind()
	defer m.prog.prog.Unbind()
	for i, p := range m.prims {
		if !p.gpu.created {
			if err := p.createBuffers(m.prog.posAttrib); err != nil {
				logger().Warn("skipping primitive without buffers", "index", i, "err", err)
				continue
			}
		} else if p.dirty {
			p.uploadPositions()
		}
		col := colorVec3(p.color)
		gl.Uniform3f(m.prog.colorLoc, col[0], col[1], col[2])
		mvp := viewProjection.Mul4(p.local)
		gl.UniformMatrix4fv(m.prog.matrixLoc, 1, false, &mvp[0])
		gl.BindVertexArray(p.gpu.vao)
		switch p.style {
		case Surface:
			drawElements(gl.TRIANGLES, p.gpu.surfEBO, len(p.surface))
		case TriangleWireframe:
			var mode [2]int32
			gl.GetIntegerv(gl.POLYGON_MODE, &mode[0])
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
			drawElements(gl.TRIANGLES, p.gpu.surfEBO, len(p.surface))
			gl.PolygonMode(gl.FRONT_AND_BACK, uint32(mode[0]))
		case Wireframe:
			restoreBlend := enableBlend()
			restoreSmooth := setCaps(true, gl.LINE_SMOOTH)
			drawElements(gl.LINES, p.gpu.wireEBO, len(p.wire))
			restoreSmooth()
			restoreBlend()
		case Points:
			gl.PointSize(3)
			gl.DrawArrays(gl.POINTS, 0, int32(len(p.positions)))
		}
	}
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers of every primitive and the shader program.
func (m *Manager) Delete() error {
	for _, p := range m.prims {
		p.deleteBuffers()
	}
	if m.linked {
		m.prog.prog.Delete()
		m.linked = false
	}
	return glgl.Err()
}

func (p *Primitive) createBuffers(posAttrib uint32) error {
	if len(p.positions) == 0 {
		return errors.New("primitive has no vertices")
	}
	g := &p.gpu
	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)
	gl.GenBuffers(1, &g.vbo)
	if g.vbo == 0 {
		return glErrOrMessage("zero id for vertex buffer")
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, vecSize*len(p.positions), gl.Ptr(&p.positions[0]), gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointer(posAttrib, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))
	g.surfEBO = loadElements(p.surface)
	g.wireEBO = loadElements(p.wire)
	g.created = true
	p.dirty = false
	return glgl.Err()
}

func (p *Primitive) uploadPositions() {
	gl.BindBuffer(gl.ARRAY_BUFFER, p.gpu.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, vecSize*len(p.positions), gl.Ptr(&p.positions[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	p.dirty = false
}

func (p *Primitive) deleteBuffers() {
	g := &p.gpu
	if !g.created {
		return
	}
	for _, buf := range []*uint32{&g.vbo, &g.surfEBO, &g.wireEBO} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
		}
	}
	gl.DeleteVertexArrays(1, &g.vao)
	*g = gpuPrimitive{}
}

const vecSize = int(unsafe.Sizeof(ms3.Vec{}))

// loadElements creates an element buffer bound to the current vertex array.
// Empty index lists yield the zero buffer.
func loadElements(indices []uint32) uint32 {
	if len(indices) == 0 {
		return 0
	}
	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 4*len(indices), gl.Ptr(&indices[0]), gl.STATIC_DRAW)
	return ebo
}

func drawElements(mode, ebo uint32, count int) {
	if ebo == 0 || count == 0 {
		return
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.DrawElements(mode, int32(count), gl.UNSIGNED_INT, gl.PtrOffset(0))
}

// setCaps enables or disables each capability and returns a function that
// restores their previous state.
func setCaps(on bool, caps ...uint32) (restore func()) {
	prev := make([]bool, len(caps))
	for i, c := range caps {
		prev[i] = gl.IsEnabled(c)
		setCap(c, on)
	}
	return func() {
		for i, c := range caps {
			setCap(c, prev[i])
		}
	}
}

func setCap(c uint32, on bool) {
	if on {
		gl.Enable(c)
	} else {
		gl.Disable(c)
	}
}

// enableBlend turns on alpha blending and returns a function that restores
// the previous blend capability and function.
func enableBlend() (restore func()) {
	var src, dst, srcAlpha, dstAlpha int32
	gl.GetIntegerv(gl.BLEND_SRC_RGB, &src)
	gl.GetIntegerv(gl.BLEND_DST_RGB, &dst)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &srcAlpha)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &dstAlpha)
	restoreCap := setCaps(true, gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return func() {
		gl.BlendFuncSeparate(uint32(src), uint32(dst), uint32(srcAlpha), uint32(dstAlpha))
		restoreCap()
	}
}

func glErrOrMessage(defaultMsg string) (err error) {
	err = glgl.Err()
	if err == nil {
		err = errors.New(defaultMsg)
	} else {
		err = fmt.Errorf("%s: %w", defaultMsg, err)
	}
	return err
}
