//go:build !tinygo && cgo

package glscale

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/axisgl/gscene/glprim"
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/glgl/v4.6-core/glgl"
)

// TextureSet holds one GL texture per label slot. Uploading into an occupied
// slot deletes the previous texture first.
type TextureSet struct {
	ids [numAxes][NumVariants]uint32
}

// NewTextureSet returns an empty texture set.
func NewTextureSet() *TextureSet { return &TextureSet{} }

// Upload replaces the textures of every variant present in ai.
func (ts *TextureSet) Upload(ai *AxisImages) error {
	if ai == nil || ai.Axis >= numAxes {
		return errors.New("invalid axis images")
	}
	for v, img := range ai.Images {
		if img == nil {
			continue
		}
		slot := &ts.ids[ai.Axis][v]
		if *slot != 0 {
			gl.DeleteTextures(1, slot)
			*slot = 0
		}
		id, err := uploadTexture(img)
		if err != nil {
			return fmt.Errorf("uploading %s %s labels: %w", ai.Axis, Variant(v), err)
		}
		*slot = id
	}
	logger().Debug("label textures uploaded", "axis", ai.Axis.String(), "labels", len(ai.Labels))
	return nil
}

// ID returns the texture bound to a slot or 0 if the slot is empty.
func (ts *TextureSet) ID(key TextureKey) uint32 {
	if key.Axis >= numAxes || key.Variant >= NumVariants {
		return 0
	}
	return ts.ids[key.Axis][key.Variant]
}

// Delete releases every texture in the set.
func (ts *TextureSet) Delete() error {
	for a := range ts.ids {
		for v := range ts.ids[a] {
			if ts.ids[a][v] != 0 {
				gl.DeleteTextures(1, &ts.ids[a][v])
				ts.ids[a][v] = 0
			}
		}
	}
	return glgl.Err()
}

func uploadTexture(img *image.RGBA) (uint32, error) {
	b := img.Bounds()
	if b.Empty() {
		return 0, errors.New("empty image")
	}
	var id uint32
	gl.GenTextures(1, &id)
	if id == 0 {
		return 0, glErrOrMessage("zero id for label texture")
	}
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&img.Pix[img.PixOffset(b.Min.X, b.Min.Y)]))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	if err := glgl.Err(); err != nil {
		gl.DeleteTextures(1, &id)
		return 0, err
	}
	return id, nil
}

type textTexture struct {
	id   uint32
	w, h int
}

// Renderer draws grid lines, label panels and screen-space text. Each draw
// restores the depth test, blend and line smoothing state it found.
type Renderer struct {
	lineProg   glgl.Program
	lineColor  int32
	lineMatrix int32
	linePos    uint32

	panelProg    glgl.Program
	panelMatrix  int32
	panelSampler int32
	panelPos     uint32
	panelUV      uint32

	lineVAO, lineVBO   uint32
	panelVAO, panelVBO uint32
	scratch            []float32

	raster *Rasterizer
	text   map[string]textTexture
}

// NewRenderer compiles the line and panel programs. textRaster rasterizes
// strings passed to [Renderer.DrawText] and may be nil if no text is drawn.
func NewRenderer(textRaster *Rasterizer) (*Renderer, error) {
	r := &Renderer{raster: textRaster, text: make(map[string]textTexture)}
	var err error
	r.lineProg, err = glgl.CompileProgram(glgl.ShaderSource{
		Vertex:   glprim.DefaultVertexShader + "\x00",
		Fragment: glprim.DefaultFragmentShader + "\x00",
	})
	if err != nil {
		logger().Error("grid shader compilation failed", "err", err)
		return nil, fmt.Errorf("compiling grid shaders: %w", err)
	}
	r.panelProg, err = glgl.CompileProgram(glgl.ShaderSource{
		Vertex:   panelVertexShader + "\x00",
		Fragment: panelFragmentShader + "\x00",
	})
	if err != nil {
		r.lineProg.Delete()
		logger().Error("panel shader compilation failed", "err", err)
		return nil, fmt.Errorf("compiling panel shaders: %w", err)
	}
	var errs [7]error
	r.lineColor, errs[0] = r.lineProg.UniformLocation("color\x00")
	r.lineMatrix, errs[1] = r.lineProg.UniformLocation("matrix\x00")
	r.linePos, errs[2] = r.lineProg.AttribLocation("aPos\x00")
	r.panelMatrix, errs[3] = r.panelProg.UniformLocation("matrix\x00")
	r.panelSampler, errs[4] = r.panelProg.UniformLocation("tex\x00")
	r.panelPos, errs[5] = r.panelProg.AttribLocation("aPos\x00")
	r.panelUV, errs[6] = r.panelProg.AttribLocation("aUV\x00")
	if err = errors.Join(errs[:]...); err != nil {
		r.lineProg.Delete()
		r.panelProg.Delete()
		return nil, fmt.Errorf("scale shader interface: %w", err)
	}

	gl.GenVertexArrays(1, &r.lineVAO)
	gl.BindVertexArray(r.lineVAO)
	gl.GenBuffers(1, &r.lineVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.EnableVertexAttribArray(r.linePos)
	gl.VertexAttribPointer(r.linePos, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.GenVertexArrays(1, &r.panelVAO)
	gl.BindVertexArray(r.panelVAO)
	gl.GenBuffers(1, &r.panelVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.panelVBO)
	const stride = 5 * 4
	gl.EnableVertexAttribArray(r.panelPos)
	gl.VertexAttribPointer(r.panelPos, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(r.panelUV)
	gl.VertexAttribPointer(r.panelUV, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	if err = glgl.Err(); err != nil {
		r.Delete()
		return nil, err
	}
	return r, nil
}

// DrawLines draws consecutive endpoint pairs as blended line segments.
func (r *Renderer) DrawLines(viewProjection mgl32.Mat4, lines []ms3.Vec, c color.Color) {
	if len(lines) < 2 {
		return
	}
	r.scratch = r.scratch[:0]
	for _, v := range lines {
		r.scratch = append(r.scratch, v.X, v.Y, v.Z)
	}
	r.lineProg.Bind()
	defer r.lineProg.Unbind()
	col := colorFloats(c)
	gl.Uniform3f(r.lineColor, col[0], col[1], col[2])
	gl.UniformMatrix4fv(r.lineMatrix, 1, false, &viewProjection[0])
	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(r.scratch), gl.Ptr(&r.scratch[0]), gl.STREAM_DRAW)
	restoreBlend := enableBlend()
	restoreSmooth := setCaps(true, gl.LINE_SMOOTH)
	gl.DrawArrays(gl.LINES, 0, int32(len(lines)))
	restoreSmooth()
	restoreBlend()
	gl.BindVertexArray(0)
}

// DrawPanels draws each panel as a blended textured quad using the textures
// in ts. Panels whose slot is empty are skipped.
func (r *Renderer) DrawPanels(viewProjection mgl32.Mat4, panels []Panel, ts *TextureSet) {
	if len(panels) == 0 || ts == nil {
		return
	}
	r.panelProg.Bind()
	defer r.panelProg.Unbind()
	gl.UniformMatrix4fv(r.panelMatrix, 1, false, &viewProjection[0])
	gl.Uniform1i(r.panelSampler, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(r.panelVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.panelVBO)
	restoreBlend := enableBlend()
	for i := range panels {
		id := ts.ID(panels[i].Texture)
		if id == 0 {
			continue
		}
		r.drawQuad(id, panels[i].Corners, panels[i].UV)
	}
	restoreBlend()
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindVertexArray(0)
}

// DrawText draws text with its top-left corner at window coordinates
// (x, y), origin at the bottom-left of a width by height viewport.
func (r *Renderer) DrawText(text string, x, y float32, width, height int) {
	if r.raster == nil || text == "" || width <= 0 || height <= 0 {
		return
	}
	tt, ok := r.text[text]
	if !ok {
		img := r.raster.Text(text)
		id, err := uploadTexture(img)
		if err != nil {
			logger().Warn("text texture upload failed", "text", text, "err", err)
			return
		}
		tt = textTexture{id: id, w: img.Bounds().Dx(), h: img.Bounds().Dy()}
		r.text[text] = tt
	}
	ortho := mgl32.Ortho2D(0, float32(width), 0, float32(height))
	w, h := float32(tt.w), float32(tt.h)
	corners := [4]ms3.Vec{{X: x, Y: y - h}, {X: x + w, Y: y - h}, {X: x + w, Y: y}, {X: x, Y: y}}
	uv := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	r.panelProg.Bind()
	defer r.panelProg.Unbind()
	gl.UniformMatrix4fv(r.panelMatrix, 1, false, &ortho[0])
	gl.Uniform1i(r.panelSampler, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(r.panelVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.panelVBO)
	restoreDepth := setCaps(false, gl.DEPTH_TEST)
	restoreBlend := enableBlend()
	r.drawQuad(tt.id, corners, uv)
	restoreBlend()
	restoreDepth()
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindVertexArray(0)
}

// drawQuad expects the panel program and vertex array bound.
func (r *Renderer) drawQuad(tex uint32, c [4]ms3.Vec, uv [4][2]float32) {
	r.scratch = r.scratch[:0]
	for _, k := range [6]int{0, 1, 2, 0, 2, 3} {
		r.scratch = append(r.scratch, c[k].X, c[k].Y, c[k].Z, uv[k][0], uv[k][1])
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(r.scratch), gl.Ptr(&r.scratch[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// SetTextRasterizer replaces the rasterizer used by DrawText and drops all
// cached text textures.
func (r *Renderer) SetTextRasterizer(textRaster *Rasterizer) {
	r.raster = textRaster
	r.clearText()
}

func (r *Renderer) clearText() {
	for k, tt := range r.text {
		gl.DeleteTextures(1, &tt.id)
		delete(r.text, k)
	}
}

// Delete releases the programs, buffers and cached text textures.
func (r *Renderer) Delete() error {
	r.clearText()
	for _, vao := range []*uint32{&r.lineVAO, &r.panelVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
			*vao = 0
		}
	}
	for _, vbo := range []*uint32{&r.lineVBO, &r.panelVBO} {
		if *vbo != 0 {
			gl.DeleteBuffers(1, vbo)
			*vbo = 0
		}
	}
	if r.lineProg.ID() != 0 {
		r.lineProg.Delete()
	}
	if r.panelProg.ID() != 0 {
		r.panelProg.Delete()
	}
	return glgl.Err()
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

func colorFloats(c color.Color) [3]float32 {
	if c == nil {
		return [3]float32{}
	}
	r, g, b, _ := c.RGBA()
	return [3]float32{float32(r) / 0xffff, float32(g) / 0xffff, float32(b) / 0xffff}
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
