package glscale

import "github.com/soypat/geometry/ms3"

// Panel is a textured quad showing the labels of one axis. Corners are in
// world space and UV holds the texture coordinate of each corner.
type Panel struct {
	Texture TextureKey
	Corners [4]ms3.Vec
	UV      [4][2]float32
}

// Panels appends the label panels of every visible plane for the given view
// rotation (degrees about Z and X) around box to dst. Which box edge carries
// the labels, and which texture variant keeps them readable, is looked up in a
// fixed table indexed by plane, Z rotation quadrant and whether the view looks
// down onto the box. XZ and YZ planes get a panel for their own axis plus a Z
// panel; the XY plane gets a Y and an X panel. Panels stand [Delta] outside the box.
func Panels(dst []Panel, visible [3]bool, zRotDeg, xRotDeg float32, box ms3.Box) []Panel {
	q := QuadrantOf(zRotDeg)
	top := ViewFromTop(xRotDeg)
	for _, plane := range [...]Plane{PlaneXZ, PlaneYZ, PlaneXY} {
		if !visible[plane] {
			continue
		}
		pl := &placements[plane][q]
		if top {
			dst = appendPanels(dst, pl.top, box)
		} else {
			dst = appendPanels(dst, pl.bottom, box)
		}
		dst = appendPanels(dst, pl.always, box)
	}
	return dst
}

func appendPanels(dst []Panel, specs []panelSpec, box ms3.Box) []Panel {
	for _, spec := range specs {
		p := Panel{Texture: spec.tex}
		for i, c := range spec.c {
			p.Corners[i] = ms3.Vec{
				X: c.x.eval(box.Min.X, box.Max.X),
				Y: c.y.eval(box.Min.Y, box.Max.Y),
				Z: c.z.eval(box.Min.Z, box.Max.Z),
			}
			p.UV[i] = [2]float32{c.u, c.v}
		}
		dst = append(dst, p)
	}
	return dst
}

// bound selects a coordinate of a panel corner relative to the box.
type bound uint8

const (
	lo    bound = iota // box minimum.
	hi                 // box maximum.
	loOut              // Delta below the minimum.
	hiOut              // Delta above the maximum.
)

func (b bound) eval(bmin, bmax float32) float32 {
	switch b {
	case lo:
		return bmin
	case hi:
		return bmax
	case loOut:
		return bmin - Delta
	case hiOut:
		return bmax + Delta
	}
	panic("bad bound")
}

type corner struct {
	x, y, z bound
	u, v    float32
}

type panelSpec struct {
	tex TextureKey
	c   [4]corner
}

type placement struct {
	top    []panelSpec // view from above the box.
	bottom []panelSpec // view from below the box.
	always []panelSpec
}

var placements = [numPlanes][4]placement{
	PlaneXY: {
		{ // quadrant 0
			top: []panelSpec{
				{TextureKey{AxisY, NormalRight}, [4]corner{{loOut, lo, lo, 0, 0}, {lo, lo, lo, 1, 0}, {lo, hi, lo, 1, 1}, {loOut, hi, lo, 0, 1}}},
				{TextureKey{AxisX, NormalLeft}, [4]corner{{lo, lo, lo, 0, 0}, {lo, loOut, lo, 1, 0}, {hi, loOut, lo, 1, 1}, {hi, lo, lo, 0, 1}}},
			},
			bottom: []panelSpec{
				{TextureKey{AxisY, InvertedRight}, [4]corner{{loOut, lo, hi, 0, 1}, {lo, lo, hi, 1, 1}, {lo, hi, hi, 1, 0}, {loOut, hi, hi, 0, 0}}},
				{TextureKey{AxisX, InvertedLeft}, [4]corner{{lo, lo, hi, 0, 1}, {lo, loOut, hi, 1, 1}, {hi, loOut, hi, 1, 0}, {hi, lo, hi, 0, 0}}},
			},
		},
		{ // quadrant 1
			top: []panelSpec{
				{TextureKey{AxisY, InvertedLeft}, [4]corner{{loOut, lo, lo, 1, 1}, {lo, lo, lo, 0, 1}, {lo, hi, lo, 0, 0}, {loOut, hi, lo, 1, 0}}},
				{TextureKey{AxisX, NormalRight}, [4]corner{{lo, hi, lo, 1, 0}, {lo, hiOut, lo, 0, 0}, {hi, hiOut, lo, 0, 1}, {hi, hi, lo, 1, 1}}},
			},
			bottom: []panelSpec{
				{TextureKey{AxisY, NormalLeft}, [4]corner{{loOut, lo, hi, 1, 0}, {lo, lo, hi, 0, 0}, {lo, hi, hi, 0, 1}, {loOut, hi, hi, 1, 1}}},
				{TextureKey{AxisX, InvertedRight}, [4]corner{{lo, hi, hi, 1, 1}, {lo, hiOut, hi, 0, 1}, {hi, hiOut, hi, 0, 0}, {hi, hi, hi, 1, 0}}},
			},
		},
		{ // quadrant 2
			top: []panelSpec{
				{TextureKey{AxisY, InvertedRight}, [4]corner{{hiOut, lo, lo, 0, 1}, {hi, lo, lo, 1, 1}, {hi, hi, lo, 1, 0}, {hiOut, hi, lo, 0, 0}}},
				{TextureKey{AxisX, InvertedLeft}, [4]corner{{lo, hi, lo, 0, 1}, {lo, hiOut, lo, 1, 1}, {hi, hiOut, lo, 1, 0}, {hi, hi, lo, 0, 0}}},
			},
			bottom: []panelSpec{
				{TextureKey{AxisY, NormalRight}, [4]corner{{hiOut, lo, hi, 0, 0}, {hi, lo, hi, 1, 0}, {hi, hi, hi, 1, 1}, {hiOut, hi, hi, 0, 1}}},
				{TextureKey{AxisX, NormalLeft}, [4]corner{{lo, hi, hi, 0, 0}, {lo, hiOut, hi, 1, 0}, {hi, hiOut, hi, 1, 1}, {hi, hi, hi, 0, 1}}},
			},
		},
		{ // quadrant 3
			top: []panelSpec{
				{TextureKey{AxisY, NormalLeft}, [4]corner{{hiOut, lo, lo, 1, 0}, {hi, lo, lo, 0, 0}, {hi, hi, lo, 0, 1}, {hiOut, hi, lo, 1, 1}}},
				{TextureKey{AxisX, InvertedRight}, [4]corner{{lo, lo, lo, 1, 1}, {lo, loOut, lo, 0, 1}, {hi, loOut, lo, 0, 0}, {hi, lo, lo, 1, 0}}},
			},
			bottom: []panelSpec{
				{TextureKey{AxisY, InvertedLeft}, [4]corner{{hiOut, lo, hi, 1, 1}, {hi, lo, hi, 0, 1}, {hi, hi, hi, 0, 0}, {hiOut, hi, hi, 1, 0}}},
				{TextureKey{AxisX, NormalRight}, [4]corner{{lo, lo, hi, 1, 0}, {lo, loOut, hi, 0, 0}, {hi, loOut, hi, 0, 1}, {hi, lo, hi, 1, 1}}},
			},
		},
	},
	PlaneYZ: {
		{ // quadrant 0
			top: []panelSpec{
				{TextureKey{AxisY, NormalLeft}, [4]corner{{hi, lo, hiOut, 1, 0}, {hi, lo, hi, 0, 0}, {hi, hi, hi, 0, 1}, {hi, hi, hiOut, 1, 1}}},
			},
			bottom: []panelSpec{
				{TextureKey{AxisY, NormalRight}, [4]corner{{hi, lo, loOut, 0, 0}, {hi, lo, lo, 1, 0}, {hi, hi, lo, 1, 1}, {hi, hi, loOut, 0, 1}}},
			},
			always: []panelSpec{
				{TextureKey{AxisZ, NormalLeft}, [4]corner{{hi, lo, lo, 0, 0}, {hi, loOut, lo, 1, 0}, {hi, loOut, hi, 1, 1}, {hi, lo, hi, 0, 1}}},
			},
		},
		{ // quadrant 1
			top: []panelSpec{
				{TextureKey{AxisY, InvertedRight}, [4]corner{{hi, lo, hiOut, 0, 1}, {hi, lo, hi, 1, 1}, {hi, hi, hi, 1, 0}, {hi, hi, hiOut, 0, 0}}},
			},
			bottom: []panelSpec{
				{TextureKey{AxisY, InvertedLeft}, [4]corner{{hi, lo, loOut, 1, 1}, {hi, lo, lo, 0, 1}, {hi, hi, lo, 0, 0}, {hi, hi, loOut, 1, 0}}},
			},
			always: []panelSpec{
				{TextureKey{AxisZ, NormalRight}, [4]corner{{hi, hi, lo, 1, 0}, {hi, hiOut, lo, 0, 0}, {hi, hiOut, hi, 0, 1}, {hi, hi, hi, 1, 1}}},
			},
		},
		{ // quadrant 2
			top: []panelSpec{
				{TextureKey{AxisY, InvertedLeft}, [4]corner{{lo, lo, hiOut, 1, 1}, {lo, lo, hi, 0, 1}, {lo, hi, hi, 0, 0}, {lo, hi, hiOut, 1, 0}}},
			},
			bottom: []panelSpec{
				{TextureKey{AxisY, InvertedRight}, [4]corner{{lo, lo, loOut, 0, 1}, {lo, lo, lo, 1, 1}, {lo, hi, lo, 1, 0}, {lo, hi, loOut, 0, 0}}},
			},
			always: []panelSpec{
				{TextureKey{AxisZ, NormalLeft}, [4]corner{{lo, hi, lo, 0, 0}, {lo, hiOut, lo, 1, 0}, {lo, hiOut, hi, 1, 1}, {lo, hi, hi, 0, 1}}},
			},
		},
		{ // quadrant 3
			top: []panelSpec{
				{TextureKey{AxisY, NormalRight}, [4]corner{{lo, lo, hiOut, 0, 0}, {lo, lo, hi, 1, 0}, {lo, hi, hi, 1, 1}, {lo, hi, hiOut, 0, 1}}},
			},
			bottom: []panelSpec{
				{TextureKey{AxisY, NormalLeft}, [4]corner{{lo, lo, loOut, 1, 0}, {lo, lo, lo, 0, 0}, {lo, hi, lo, 0, 1}, {lo, hi, loOut, 1, 1}}},
			},
			always: []panelSpec{
				{TextureKey{AxisZ, NormalRight}, [4]corner{{lo, lo, lo, 1, 0}, {lo, loOut, lo, 0, 0}, {lo, loOut, hi, 0, 1}, {lo, lo, hi, 1, 1}}},
			},
		},
	},
	PlaneXZ: {
		{ // quadrant 0
			top: []panelSpec{
				{TextureKey{AxisX, NormalRight}, [4]corner{{lo, hi, hi, 1, 0}, {lo, hi, hiOut, 0, 0}, {hi, hi, hiOut, 0, 1}, {hi, hi, hi, 1, 1}}},
			},
			bottom: []panelSpec{
				{TextureKey{AxisX, NormalLeft}, [4]corner{{lo, hi, lo, 0, 0}, {lo, hi, loOut, 1, 0}, {hi, hi, loOut, 1, 1}, {hi, hi, lo, 0, 1}}},
			},
			always: []panelSpec{
				{TextureKey{AxisZ, NormalRight}, [4]corner{{lo, hi, lo, 1, 0}, {loOut, hi, lo, 0, 0}, {loOut, hi, hi, 0, 1}, {lo, hi, hi, 1, 1}}},
			},
		},
		{ // quadrant 1
			top: []panelSpec{
				{TextureKey{AxisX, NormalLeft}, [4]corner{{lo, lo, hi, 0, 0}, {lo, lo, hiOut, 1, 0}, {hi, lo, hiOut, 1, 1}, {hi, lo, hi, 0, 1}}},
			},
			bottom: []panelSpec{
				{TextureKey{AxisX, NormalRight}, [4]corner{{lo, lo, lo, 1, 0}, {lo, lo, loOut, 0, 0}, {hi, lo, loOut, 0, 1}, {hi, lo, lo, 1, 1}}},
			},
			always: []panelSpec{
				{TextureKey{AxisZ, NormalLeft}, [4]corner{{lo, lo, lo, 0, 0}, {loOut, lo, lo, 1, 0}, {loOut, lo, hi, 1, 1}, {lo, lo, hi, 0, 1}}},
			},
		},
		{ // quadrant 2
			top: []panelSpec{
				{TextureKey{AxisX, InvertedRight}, [4]corner{{lo, lo, hi, 1, 1}, {lo, lo, hiOut, 0, 1}, {hi, lo, hiOut, 0, 0}, {hi, lo, hi, 1, 0}}},
			},
			bottom: []panelSpec{
				{TextureKey{AxisX, InvertedLeft}, [4]corner{{lo, lo, lo, 0, 1}, {lo, lo, loOut, 1, 1}, {hi, lo, loOut, 1, 0}, {hi, lo, lo, 0, 0}}},
			},
			always: []panelSpec{
				{TextureKey{AxisZ, NormalRight}, [4]corner{{hi, lo, lo, 1, 0}, {hiOut, lo, lo, 0, 0}, {hiOut, lo, hi, 0, 1}, {hi, lo, hi, 1, 1}}},
			},
		},
		{ // quadrant 3
			top: []panelSpec{
				{TextureKey{AxisX, InvertedLeft}, [4]corner{{lo, hi, hi, 0, 1}, {lo, hi, hiOut, 1, 1}, {hi, hi, hiOut, 1, 0}, {hi, hi, hi, 0, 0}}},
			},
			bottom: []panelSpec{
				{TextureKey{AxisX, InvertedRight}, [4]corner{{lo, hi, lo, 1, 1}, {lo, hi, loOut, 0, 1}, {hi, hi, loOut, 0, 0}, {hi, hi, lo, 1, 0}}},
			},
			always: []panelSpec{
				{TextureKey{AxisZ, NormalLeft}, [4]corner{{hi, hi, lo, 0, 0}, {hiOut, hi, lo, 1, 0}, {hiOut, hi, hi, 1, 1}, {hi, hi, hi, 0, 1}}},
			},
		},
	},
}
