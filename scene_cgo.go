//go:build !tinygo && cgo

package gscene

import (
	"errors"
	"image/color"

	"github.com/axisgl/gscene/glprim"
	"github.com/axisgl/gscene/glscale"
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
)

type glDrawer struct {
	prims    *glprim.Manager
	renderer *glscale.Renderer
	textures *glscale.TextureSet
}

func newGLDrawer(prims *glprim.Manager, caps glprim.Capabilities, vertexSrc, fragmentSrc string, titles *glscale.Rasterizer) (drawer, error) {
	switch {
	case !caps.OK():
		Logger().Warn("primitive pipeline unavailable", "shaders", caps.Shaders, "vertexBuffers", caps.VertexBuffers)
	case !prims.Linked():
		err := prims.CompileShaders(vertexSrc, fragmentSrc)
		if err == nil {
			err = prims.CreateVertexBuffers()
		}
		if err != nil {
			Logger().Error("primitives disabled", "err", err)
		}
	}
	r, err := glscale.NewRenderer(titles)
	if err != nil {
		return nil, err
	}
	return &glDrawer{prims: prims, renderer: r, textures: glscale.NewTextureSet()}, nil
}

func (d *glDrawer) begin(width, height int, background color.Color) {
	r, g, b, a := background.RGBA()
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
	gl.Enable(gl.DEPTH_TEST)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *glDrawer) uploadLabels(ai *glscale.AxisImages) error { return d.textures.Upload(ai) }

func (d *glDrawer) drawPrimitives(vp mgl32.Mat4) { d.prims.DrawPrimitives(vp) }

func (d *glDrawer) drawLines(vp mgl32.Mat4, lines []ms3.Vec, c color.Color) {
	d.renderer.DrawLines(vp, lines, c)
}

func (d *glDrawer) drawPanels(vp mgl32.Mat4, panels []glscale.Panel) {
	d.renderer.DrawPanels(vp, panels, d.textures)
}

func (d *glDrawer) drawText(text string, x, y float32, width, height int) {
	d.renderer.DrawText(text, x, y, width, height)
}

func (d *glDrawer) setTextRaster(r *glscale.Rasterizer) { d.renderer.SetTextRasterizer(r) }

func (d *glDrawer) delete() error {
	return errors.Join(d.prims.Delete(), d.textures.Delete(), d.renderer.Delete())
}
