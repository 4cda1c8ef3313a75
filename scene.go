// Package gscene draws an interactive 3D coordinate scene: wireframe axis
// arrows and other simple primitives inside a bounding box whose faces carry
// grid lines and textured tick label panels. Label panels move between box
// faces as the camera rotates so they always read upright.
//
// A Scene does its CPU work (meshes, tick labels, label images, panel and grid
// placement) without a GL context. [Scene.InitGL] attaches the GPU backend
// and [Scene.Frame] draws one frame on the goroutine owning the context.
package gscene

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/axisgl/gscene/glprim"
	"github.com/axisgl/gscene/glscale"
	"github.com/axisgl/gscene/settings"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
)

type (
	Axis      = glscale.Axis
	Plane     = glscale.Plane
	SpaceData = glscale.Space
)

const (
	AxisX = glscale.AxisX
	AxisY = glscale.AxisY
	AxisZ = glscale.AxisZ

	PlaneXY = glscale.PlaneXY
	PlaneYZ = glscale.PlaneYZ
	PlaneXZ = glscale.PlaneXZ
)

const (
	arrowSegments = 6
	arrowHead     = 0.2
	arrowRadius   = 0.05
	titleSize     = 14
)

// PlaneSettings controls one scale plane. Offset is stored and reported but
// does not affect rendering.
type PlaneSettings struct {
	Visible bool
	Offset  float32
}

// Config configures a new Scene. Zero values select defaults.
type Config struct {
	// Font used for tick labels and axis titles. Defaults to Go Regular 10pt,
	// titles are drawn at 14pt.
	Font settings.Font
	// LabelColor is the tick label and axis title color. Defaults to black.
	LabelColor color.Color
	// GridColor defaults to black.
	GridColor color.Color
	// ArrowColor defaults to gray.
	ArrowColor color.Color
	// Background defaults to white.
	Background color.Color
}

// Scene is the coordinate scene. It is not safe for concurrent use.
type Scene struct {
	camera Camera
	prims  *glprim.Manager
	arrowX *glprim.Arrow

	space      SpaceData
	scales     [3]glscale.Settings
	planes     [3]PlaneSettings
	axisXStart float32
	axisXEnd   float32

	font       settings.Font
	labelColor color.Color
	gridColor  color.Color
	background color.Color
	raster     *glscale.Rasterizer
	images     [3]*glscale.AxisImages
	stale      [3]bool

	view     *settings.Group
	onRedraw []func()

	gpu    drawer
	lines  []ms3.Vec
	panels []glscale.Panel
}

// drawer is the GPU side of a Scene.
type drawer interface {
	begin(width, height int, background color.Color)
	uploadLabels(ai *glscale.AxisImages) error
	drawPrimitives(vp mgl32.Mat4)
	drawLines(vp mgl32.Mat4, lines []ms3.Vec, c color.Color)
	drawPanels(vp mgl32.Mat4, panels []glscale.Panel)
	drawText(text string, x, y float32, width, height int)
	setTextRaster(r *glscale.Rasterizer)
	delete() error
}

// NewScene returns the default scene: gray X, Y and Z arrows through a box
// spanning -3..3 on every axis, an X scale from -6 to 6 in steps of 0.5 and
// Y and Z scales from -3 to 3 in steps of 0.25, all planes visible.
func NewScene(cfg Config) (*Scene, error) {
	if cfg.Font.Size <= 0 {
		cfg.Font.Size = 10
	}
	if cfg.Font.Family == "" {
		cfg.Font.Family = "Go Regular"
	}
	if cfg.LabelColor == nil {
		cfg.LabelColor = color.Black
	}
	if cfg.GridColor == nil {
		cfg.GridColor = color.Black
	}
	if cfg.ArrowColor == nil {
		cfg.ArrowColor = color.Gray{Y: 160}
	}
	if cfg.Background == nil {
		cfg.Background = color.White
	}
	s := &Scene{
		camera:     DefaultCamera(),
		prims:      glprim.NewManager(),
		space:      SpaceData{Origin: ms3.Vec{X: -3, Y: -3, Z: -3}, Extent: ms3.Vec{X: 6, Y: 6, Z: 6}},
		axisXStart: -3,
		axisXEnd:   3,
		font:       cfg.Font,
		labelColor: cfg.LabelColor,
		gridColor:  cfg.GridColor,
		background: cfg.Background,
	}
	s.planes[PlaneXY] = PlaneSettings{Visible: true, Offset: 2.995}
	s.planes[PlaneYZ] = PlaneSettings{Visible: true, Offset: 5.995}
	s.planes[PlaneXZ] = PlaneSettings{Visible: true, Offset: 2.995}

	s.arrowX = s.prims.AddSimpleArrow(arrowSegments, s.axisXEnd-s.axisXStart, arrowHead, arrowRadius, ms3.Vec{X: 1})
	s.arrowX.SetPos(ms3.Vec{X: s.axisXStart})
	s.arrowX.SetColor(cfg.ArrowColor)
	y := s.prims.AddSimpleArrow(arrowSegments, 6, arrowHead, arrowRadius, ms3.Vec{Y: 1})
	y.SetPos(ms3.Vec{Y: -3})
	y.SetColor(cfg.ArrowColor)
	z := s.prims.AddSimpleArrow(arrowSegments, 6, arrowHead, arrowRadius, ms3.Vec{Z: 1})
	z.SetPos(ms3.Vec{Z: -3})
	z.SetColor(cfg.ArrowColor)

	var err error
	s.raster, err = newRasterizer(s.font, s.labelColor, 0)
	if err != nil {
		return nil, err
	}
	defaults := [3][3]float32{{-6, 6, 0.5}, {-3, 3, 0.25}, {-3, 3, 0.25}}
	for axis, d := range defaults {
		err = s.setScale(Axis(axis), d[0], d[1], d[2], 2)
		if err != nil {
			return nil, err
		}
	}
	s.view, err = s.newViewSettings()
	if err != nil {
		return nil, err
	}
	return s, nil
}

// newRasterizer builds a label rasterizer for f. A non-zero size overrides
// the font size.
func newRasterizer(f settings.Font, c color.Color, size float64) (*glscale.Rasterizer, error) {
	cfg := glscale.RasterConfig{Size: f.Size, Color: c}
	if size > 0 {
		cfg.Size = size
	}
	if f.File != "" {
		ttf, err := os.ReadFile(f.File)
		if err != nil {
			return nil, fmt.Errorf("reading font %s: %w", f.File, err)
		}
		cfg.TTF = ttf
	}
	return glscale.NewRasterizer(cfg)
}

// Camera returns the camera. Mutations take effect on the next frame.
func (s *Scene) Camera() *Camera { return &s.camera }

// Primitives returns the manager holding the scene's primitives. Primitives
// added to it are drawn before the scales.
func (s *Scene) Primitives() *glprim.Manager { return s.prims }

// OnRedraw registers fn to be called whenever scene state changes and the
// view should be redrawn.
func (s *Scene) OnRedraw(fn func()) {
	if fn != nil {
		s.onRedraw = append(s.onRedraw, fn)
	}
}

func (s *Scene) redraw() {
	for _, fn := range s.onRedraw {
		fn()
	}
}

// ScaleSettings returns the current settings of an axis scale.
func (s *Scene) ScaleSettings(axis Axis) glscale.Settings { return s.scales[axis] }

// PlaneSettings returns the settings of a scale plane.
func (s *Scene) PlaneSettings(plane Plane) PlaneSettings { return s.planes[plane] }

// Space returns the bounding box the scales annotate.
func (s *Scene) Space() SpaceData { return s.space }

// AxisArrowRange returns the start and end of the X axis arrow.
func (s *Scene) AxisArrowRange() (start, end float32) { return s.axisXStart, s.axisXEnd }

// Labels returns the rasterized label images of an axis.
func (s *Scene) Labels(axis Axis) *glscale.AxisImages { return s.images[axis] }

// UpdateAxisScale replaces the scale of an axis and regenerates its label
// images. Invalid parameters leave the previous scale in place.
func (s *Scene) UpdateAxisScale(axis Axis, start, end, step float32, precision int) error {
	err := s.setScale(axis, start, end, step, precision)
	if err != nil {
		return err
	}
	s.syncView()
	s.redraw()
	return nil
}

func (s *Scene) setScale(axis Axis, start, end, step float32, precision int) error {
	if axis > AxisZ {
		return fmt.Errorf("invalid axis %d", axis)
	}
	st, err := glscale.NewSettings(start, end, step, precision)
	if err != nil {
		return fmt.Errorf("%s scale: %w", axis, err)
	}
	ai, err := s.raster.Generate(axis, st, axisExtent(s.space, axis))
	if err != nil {
		return err
	}
	s.scales[axis] = st
	s.images[axis] = ai
	s.stale[axis] = true
	return nil
}

// SetBoundingBox sets the box the scales annotate and regenerates all label
// images, whose height follows the box extents. On error the previous box is kept.
func (s *Scene) SetBoundingBox(origin, extent ms3.Vec) error {
	space := SpaceData{Origin: origin, Extent: extent}
	images, err := s.generateAll(s.raster, space)
	if err != nil {
		return err
	}
	s.space = space
	s.setImages(images)
	s.redraw()
	return nil
}

func (s *Scene) generateAll(r *glscale.Rasterizer, space SpaceData) ([3]*glscale.AxisImages, error) {
	var images [3]*glscale.AxisImages
	var err error
	for axis := AxisX; axis <= AxisZ; axis++ {
		images[axis], err = r.Generate(axis, s.scales[axis], axisExtent(space, axis))
		if err != nil {
			return images, err
		}
	}
	return images, nil
}

func (s *Scene) setImages(images [3]*glscale.AxisImages) {
	s.images = images
	s.stale = [3]bool{true, true, true}
}

// SetAxisArrowRange moves the X axis arrow to start and sets its length to end-start.
func (s *Scene) SetAxisArrowRange(start, end float32) {
	s.axisXStart, s.axisXEnd = start, end
	s.arrowX.SetPos(ms3.Vec{X: start})
	s.arrowX.SetLength(end - start)
	s.redraw()
}

// SetPlaneVisible shows or hides the grid and label panels of a plane.
func (s *Scene) SetPlaneVisible(plane Plane, visible bool) {
	s.planes[plane].Visible = visible
	s.syncView()
	s.redraw()
}

// SetLabelStyle changes the label font and color and regenerates all label images.
func (s *Scene) SetLabelStyle(f settings.Font, c color.Color) error {
	if f.Size <= 0 {
		return errors.New("font size must be positive")
	}
	if c == nil {
		c = s.labelColor
	}
	r, err := newRasterizer(f, c, 0)
	if err != nil {
		return err
	}
	titles, err := newRasterizer(f, c, titleSize)
	if err != nil {
		return err
	}
	images, err := s.generateAll(r, s.space)
	if err != nil {
		return err
	}
	s.raster = r
	s.font = f
	s.labelColor = c
	s.setImages(images)
	if s.gpu != nil {
		s.gpu.setTextRaster(titles)
	}
	s.syncView()
	s.redraw()
	return nil
}

// SetGridColor sets the grid line color.
func (s *Scene) SetGridColor(c color.Color) {
	if c == nil {
		return
	}
	s.gridColor = c
	s.syncView()
	s.redraw()
}

func axisExtent(space SpaceData, axis Axis) float32 {
	switch axis {
	case AxisX:
		return space.Extent.X
	case AxisY:
		return space.Extent.Y
	}
	return space.Extent.Z
}

func (s *Scene) visiblePlanes() (visible [3]bool) {
	for p := range s.planes {
		visible[p] = s.planes[p].Visible
	}
	return visible
}

// Frame draws one frame into a width by height viewport on the goroutine
// owning the GL context. paint, if not nil, draws user content after the
// scales have been drawn once; the scales are then drawn again on top.
// Frame does nothing before a successful [Scene.InitGL].
//
// Frame clears the viewport and enables depth testing before drawing. paint
// runs with depth testing enabled and no program bound. The scene's own draws
// restore the capabilities and blend function they change, so the scales
// drawn after paint leave the state paint set in place.
func (s *Scene) Frame(width, height int, paint func(vp mgl32.Mat4)) {
	if s.gpu == nil || width <= 0 || height <= 0 {
		return
	}
	for axis, stale := range s.stale {
		if !stale {
			continue
		}
		err := s.gpu.uploadLabels(s.images[axis])
		if err != nil {
			Logger().Warn("label upload failed", "axis", Axis(axis), "err", err)
		}
		s.stale[axis] = false
	}
	vp := s.camera.ViewProjection(width, height)
	visible := s.visiblePlanes()
	s.lines = glscale.GridLines(s.lines[:0], visible, s.scales, s.space, s.camera.ZRot, s.camera.XRot)
	s.panels = glscale.Panels(s.panels[:0], visible, s.camera.ZRot, s.camera.XRot, s.space.Bounds())

	s.gpu.begin(width, height, s.background)
	s.gpu.drawPrimitives(vp)
	s.drawScales(vp)
	if paint != nil {
		paint(vp)
	}
	s.drawScales(vp)
	s.drawTitles(width, height)
}

func (s *Scene) drawScales(vp mgl32.Mat4) {
	s.gpu.drawLines(vp, s.lines, s.gridColor)
	s.gpu.drawPanels(vp, s.panels)
}

// axisTitles returns the axis titles and their world positions just past
// the arrow tips.
func (s *Scene) axisTitles() [3]struct {
	text string
	pos  mgl32.Vec3
} {
	return [3]struct {
		text string
		pos  mgl32.Vec3
	}{
		{"X", mgl32.Vec3{s.axisXEnd + 0.1, 0, 0}},
		{"Y", mgl32.Vec3{0, 3 + 0.1, 0}},
		{"Z", mgl32.Vec3{0, 0, 3 + 0.2}},
	}
}

func (s *Scene) drawTitles(width, height int) {
	mv := s.camera.ModelView()
	proj := Projection(width, height)
	viewport := [4]int{0, 0, width, height}
	for _, t := range s.axisTitles() {
		win, ok := Project(t.pos, mv, proj, viewport)
		if !ok {
			continue
		}
		s.gpu.drawText(t.text, win[0], win[1], width, height)
	}
}

// InitGL attaches the GPU backend. It must be called with a current GL
// context. The primitive pipeline is only initialized if caps report
// shader and vertex buffer support and the shaders compile; otherwise it
// is skipped with a logged message and the scales still draw. An error is
// returned only if the scale renderer cannot be created.
func (s *Scene) InitGL(caps glprim.Capabilities, vertexSrc, fragmentSrc string) error {
	if s.gpu != nil {
		return errors.New("scene GL already initialized")
	}
	titles, err := newRasterizer(s.font, s.labelColor, titleSize)
	if err != nil {
		return err
	}
	gpu, err := newGLDrawer(s.prims, caps, vertexSrc, fragmentSrc, titles)
	if err != nil {
		return err
	}
	s.gpu = gpu
	s.stale = [3]bool{true, true, true}
	return nil
}

// Close releases all GPU resources. The scene can be initialized again
// with InitGL.
func (s *Scene) Close() error {
	if s.gpu == nil {
		return nil
	}
	err := s.gpu.delete()
	s.gpu = nil
	return err
}
