//go:build tinygo || !cgo

package glscale

import (
	"errors"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
)

var errNoCGO = errors.New("scale rendering requires CGo and is not supported on TinyGo")

type TextureSet struct{}

func NewTextureSet() *TextureSet { return &TextureSet{} }

func (ts *TextureSet) Upload(ai *AxisImages) error { return errNoCGO }

func (ts *TextureSet) ID(key TextureKey) uint32 { return 0 }

func (ts *TextureSet) Delete() error { return nil }

type Renderer struct{}

func NewRenderer(textRaster *Rasterizer) (*Renderer, error) { return nil, errNoCGO }

func (r *Renderer) DrawLines(viewProjection mgl32.Mat4, lines []ms3.Vec, c color.Color) {}

func (r *Renderer) DrawPanels(viewProjection mgl32.Mat4, panels []Panel, ts *TextureSet) {}

func (r *Renderer) DrawText(text string, x, y float32, width, height int) {}

func (r *Renderer) SetTextRasterizer(textRaster *Rasterizer) {}

func (r *Renderer) Delete() error { return nil }
