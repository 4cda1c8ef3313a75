package glscale

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/transform"
	"github.com/chewxy/math32"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// RasterConfig configures label rasterization. Zero values select defaults.
type RasterConfig struct {
	// TTF is TrueType font data. Defaults to Go Regular.
	TTF []byte
	// Size is the font size in points. Defaults to 10.
	Size float64
	// DPI defaults to 96.
	DPI float64
	// Color of the label text. Defaults to black.
	Color color.Color
}

// Rasterizer draws scale labels into images. It is not safe for concurrent use.
type Rasterizer struct {
	face    font.Face
	src     *image.Uniform
	ascent  fixed.Int26_6
	descent fixed.Int26_6
}

// NewRasterizer parses the configured font and returns a ready Rasterizer.
func NewRasterizer(cfg RasterConfig) (*Rasterizer, error) {
	if cfg.TTF == nil {
		cfg.TTF = goregular.TTF
	}
	if cfg.Size <= 0 {
		cfg.Size = 10
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 96
	}
	if cfg.Color == nil {
		cfg.Color = color.Black
	}
	f, err := truetype.Parse(cfg.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing label font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    cfg.Size,
		DPI:     cfg.DPI,
		Hinting: font.HintingFull,
	})
	m := face.Metrics()
	return &Rasterizer{
		face:    face,
		src:     image.NewUniform(cfg.Color),
		ascent:  m.Ascent,
		descent: m.Descent,
	}, nil
}

// AxisImages holds the rasterized label strips of one axis. Images are
// already mirrored vertically so row 0 is the bottom of the strip, which is
// what GL expects as the first row of texture data.
type AxisImages struct {
	Axis     Axis
	Settings Settings
	Labels   []string
	// Images is indexed by Variant. Variants the axis does not use are nil.
	Images [NumVariants]*image.RGBA
}

// Generate rasterizes every variant of an axis for a box side of extent world units.
// The strip is [PixelsPerUnit] pixels wide and PixelsPerUnit*|extent| tall; tick i
// sits i*step/length of the way along it.
func (r *Rasterizer) Generate(axis Axis, s Settings, extent float32) (*AxisImages, error) {
	if axis >= numAxes {
		return nil, errors.New("invalid axis")
	}
	labels, err := s.Labels()
	if err != nil {
		return nil, fmt.Errorf("%s scale: %w", axis, err)
	}
	imageH := int(math32.Round(PixelsPerUnit * math32.Abs(extent)))
	if imageH < 1 {
		return nil, fmt.Errorf("%s scale: box extent %g too small for label image", axis, extent)
	}
	cell := float32(imageH) * s.Step / s.Length
	ai := &AxisImages{Axis: axis, Settings: s, Labels: labels}
	for _, v := range Variants(axis) {
		img := image.NewRGBA(image.Rect(0, 0, PixelsPerUnit, imageH))
		r.drawStrip(img, labels, cell, v)
		ai.Images[v] = transform.FlipV(img)
	}
	return ai, nil
}

type vAlign uint8

const (
	alignTop vAlign = iota
	alignCenter
	alignBottom
)

// drawStrip draws labels into img. Normal variants count ticks up from the
// bottom edge, inverted ones down from the top edge. The first label sits
// inside the strip flush against its edge, the last flush against the
// opposite edge, the rest are centered on their tick.
func (r *Rasterizer) drawStrip(img *image.RGBA, labels []string, cell float32, v Variant) {
	imageH := float32(img.Bounds().Dy())
	last := len(labels) - 1
	for i, label := range labels {
		var top float32
		var align vAlign
		fi := float32(i)
		if v.inverted() {
			y := cell * fi
			switch i {
			case 0:
				top, align = y, alignTop
			case last:
				top, align = y-cell, alignBottom
			default:
				top, align = y-cell/2, alignCenter
			}
		} else {
			y := imageH - cell*fi
			switch i {
			case 0:
				top, align = y-cell, alignBottom
			case last:
				top, align = y, alignTop
			default:
				top, align = y-cell/2, alignCenter
			}
		}
		r.drawLabel(img, label, top, cell, align, v.alignRight())
	}
}

// drawLabel draws text inside the horizontal band [top, top+height). Right
// aligned text ends 2 pixels before the right edge, left aligned text starts
// 2 pixels after the left edge.
func (r *Rasterizer) drawLabel(img *image.RGBA, text string, top, height float32, align vAlign, right bool) {
	const margin = 2
	ascent := fix2f(r.ascent)
	descent := fix2f(r.descent)
	var baseline float32
	switch align {
	case alignTop:
		baseline = top + ascent
	case alignBottom:
		baseline = top + height - descent
	default:
		baseline = top + (height-(ascent+descent))/2 + ascent
	}
	d := font.Drawer{Dst: img, Src: r.src, Face: r.face}
	x := float32(margin)
	if right {
		x = float32(img.Bounds().Dx()-margin) - fix2f(d.MeasureString(text))
	}
	d.Dot = fixed.Point26_6{X: f2fix(x), Y: f2fix(baseline)}
	d.DrawString(text)
}

// Text rasterizes a single line of text into a tight image, mirrored
// vertically like the label strips.
func (r *Rasterizer) Text(text string) *image.RGBA {
	d := font.Drawer{Face: r.face, Src: r.src}
	w := max(d.MeasureString(text).Ceil(), 1)
	h := max((r.ascent + r.descent).Ceil(), 1)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d.Dst = img
	d.Dot = fixed.Point26_6{Y: r.ascent}
	d.DrawString(text)
	return transform.FlipV(img)
}

func fix2f(v fixed.Int26_6) float32 { return float32(v) / 64 }

func f2fix(v float32) fixed.Int26_6 { return fixed.Int26_6(math32.Round(v * 64)) }
