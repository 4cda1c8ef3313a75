// Package glscale generates axis scale labels and grid lines for a 3D
// coordinate box and decides where they go depending on the view rotation.
//
// Label images are rasterized on the CPU with a TrueType face. Placement and
// grid generation are pure functions of the rotation and the box so they can
// be tested without a GL context. Uploading and drawing live behind the cgo
// build tag.
package glscale

import (
	"context"
	_ "embed"
	"log/slog"
	"sync/atomic"
)

var (
	//go:embed shaders/panel.vert
	panelVertexShader string
	//go:embed shaders/panel.frag
	panelFragmentShader string
)

const (
	// PixelsPerUnit is the label image resolution: one world unit of the box
	// maps to this many pixels along the label strip.
	PixelsPerUnit = 100
	// Delta is the width in world units of a label panel standing out of the box.
	Delta = 1
	// MaxTicks bounds the number of labels or grid lines generated per axis.
	MaxTicks = 10000

	epsilon = 1e-5
)

// Axis identifies one of the three coordinate axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	numAxes
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return "Axis(?)"
}

// Plane identifies one of the three grid planes of the box.
type Plane uint8

const (
	PlaneXY Plane = iota
	PlaneYZ
	PlaneXZ
	numPlanes
)

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneYZ:
		return "YZ"
	case PlaneXZ:
		return "XZ"
	}
	return "Plane(?)"
}

// Variant selects one of the rasterized label layouts. Normal variants put the
// first label at the bottom of the strip, inverted variants at the top. Right
// variants align text to the right edge of the strip, left variants to the left.
type Variant uint8

const (
	NormalRight Variant = iota
	NormalLeft
	InvertedRight
	InvertedLeft
	NumVariants
)

func (v Variant) String() string {
	switch v {
	case NormalRight:
		return "normal-right"
	case NormalLeft:
		return "normal-left"
	case InvertedRight:
		return "inverted-right"
	case InvertedLeft:
		return "inverted-left"
	}
	return "Variant(?)"
}

func (v Variant) inverted() bool { return v == InvertedRight || v == InvertedLeft }

func (v Variant) alignRight() bool { return v == NormalRight || v == InvertedRight }

// Variants returns the variants generated for an axis. The Z axis is only
// ever drawn upright so it has no inverted variants.
func Variants(a Axis) []Variant {
	if a == AxisZ {
		return []Variant{NormalRight, NormalLeft}
	}
	return []Variant{NormalRight, NormalLeft, InvertedRight, InvertedLeft}
}

// TextureKey names one label texture slot.
type TextureKey struct {
	Axis    Axis
	Variant Variant
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used for texture and shader diagnostics.
// Passing nil restores the default silent logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

func logger() *slog.Logger { return loggerPtr.Load() }
