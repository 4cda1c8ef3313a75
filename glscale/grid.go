package glscale

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

// Space is the coordinate box annotated by the scales, given as an origin
// corner and signed extents along each axis.
type Space struct {
	Origin ms3.Vec
	Extent ms3.Vec
}

// Bounds returns the box with ordered minimum and maximum corners.
func (s Space) Bounds() ms3.Box {
	end := ms3.Add(s.Origin, s.Extent)
	return ms3.Box{
		Min: ms3.Vec{X: math32.Min(s.Origin.X, end.X), Y: math32.Min(s.Origin.Y, end.Y), Z: math32.Min(s.Origin.Z, end.Z)},
		Max: ms3.Vec{X: math32.Max(s.Origin.X, end.X), Y: math32.Max(s.Origin.Y, end.Y), Z: math32.Max(s.Origin.Z, end.Z)},
	}
}

// WorldStep returns the distance in world units between grid lines of an
// axis: the scale step as a fraction of the scale length, times the box extent.
func WorldStep(s Settings, extent float32) float32 {
	if s.Length == 0 {
		return 0
	}
	return s.Step / s.Length * extent
}

// GridLines appends the grid line segments of every visible plane as
// consecutive endpoint pairs. Each plane is drawn on the box face away from
// the viewer: XZ on the far Y face and YZ on the far X face depending on the
// Z rotation, XY on the far Z face depending on the X rotation. Lines start
// at the box origin and advance by the axis' world step to the opposite face.
func GridLines(dst []ms3.Vec, visible [3]bool, scales [3]Settings, space Space, zRotDeg, xRotDeg float32) []ms3.Vec {
	zRot := NormalizeAngle(zRotDeg)
	xRot := NormalizeAngle(xRotDeg)
	bb := space.Bounds()
	bmin, bmax := bb.Min, bb.Max
	o := space.Origin
	xStep := WorldStep(scales[AxisX], space.Extent.X)
	yStep := WorldStep(scales[AxisY], space.Extent.Y)
	zStep := WorldStep(scales[AxisZ], space.Extent.Z)

	if visible[PlaneXZ] {
		y := bmin.Y
		if zRot < 90 || zRot > 270 {
			y = bmax.Y
		}
		dst = appendLines(dst, o.X, xStep, bmin.X, bmax.X, func(x float32) (ms3.Vec, ms3.Vec) {
			return ms3.Vec{X: x, Y: y, Z: bmin.Z}, ms3.Vec{X: x, Y: y, Z: bmax.Z}
		})
		dst = appendLines(dst, o.Z, zStep, bmin.Z, bmax.Z, func(z float32) (ms3.Vec, ms3.Vec) {
			return ms3.Vec{X: bmin.X, Y: y, Z: z}, ms3.Vec{X: bmax.X, Y: y, Z: z}
		})
	}
	if visible[PlaneYZ] {
		x := bmin.X
		if zRot < 180 {
			x = bmax.X
		}
		dst = appendLines(dst, o.Y, yStep, bmin.Y, bmax.Y, func(y float32) (ms3.Vec, ms3.Vec) {
			return ms3.Vec{X: x, Y: y, Z: bmin.Z}, ms3.Vec{X: x, Y: y, Z: bmax.Z}
		})
		dst = appendLines(dst, o.Z, zStep, bmin.Z, bmax.Z, func(z float32) (ms3.Vec, ms3.Vec) {
			return ms3.Vec{X: x, Y: bmin.Y, Z: z}, ms3.Vec{X: x, Y: bmax.Y, Z: z}
		})
	}
	if visible[PlaneXY] {
		z := bmax.Z
		if xRot < 90 || xRot > 270 {
			z = bmin.Z
		}
		dst = appendLines(dst, o.Y, yStep, bmin.Y, bmax.Y, func(y float32) (ms3.Vec, ms3.Vec) {
			return ms3.Vec{X: bmin.X, Y: y, Z: z}, ms3.Vec{X: bmax.X, Y: y, Z: z}
		})
		dst = appendLines(dst, o.X, xStep, bmin.X, bmax.X, func(x float32) (ms3.Vec, ms3.Vec) {
			return ms3.Vec{X: x, Y: bmin.Y, Z: z}, ms3.Vec{X: x, Y: bmax.Y, Z: z}
		})
	}
	return dst
}

// appendLines walks from start by step while inside [vmin, vmax] and appends
// the segment returned by line at each position. A zero or non-finite step
// appends nothing.
func appendLines(dst []ms3.Vec, start, step, vmin, vmax float32, line func(float32) (ms3.Vec, ms3.Vec)) []ms3.Vec {
	if step == 0 || !finite(step) {
		return dst
	}
	for i := 0; i < MaxTicks; i++ {
		v := start + float32(i)*step
		if v < vmin-epsilon || v > vmax+epsilon {
			break
		}
		a, b := line(v)
		dst = append(dst, a, b)
	}
	return dst
}
