package glscale

import (
	"testing"

	"github.com/soypat/geometry/ms3"
)

func defaultScales(t *testing.T) [3]Settings {
	t.Helper()
	x, err := NewSettings(-6, 6, 0.5, 2)
	if err != nil {
		t.Fatal(err)
	}
	y, err := NewSettings(-3, 3, 0.25, 2)
	if err != nil {
		t.Fatal(err)
	}
	return [3]Settings{x, y, y}
}

var defaultSpace = Space{Origin: ms3.Vec{X: -3, Y: -3, Z: -3}, Extent: ms3.Vec{X: 6, Y: 6, Z: 6}}

func TestWorldStep(t *testing.T) {
	scales := defaultScales(t)
	if got := WorldStep(scales[AxisX], 6); got != 0.25 {
		t.Errorf("X world step %g, want 0.25", got)
	}
	if got := WorldStep(scales[AxisY], 6); got != 0.25 {
		t.Errorf("Y world step %g, want 0.25", got)
	}
	if got := WorldStep(Settings{}, 6); got != 0 {
		t.Errorf("zero length scale world step %g, want 0", got)
	}
}

func TestGridLines(t *testing.T) {
	scales := defaultScales(t)
	all := [3]bool{true, true, true}
	lines := GridLines(nil, all, scales, defaultSpace, 45, -45)
	// 25 lines per axis, two axes per plane, three planes.
	const want = 2 * 25 * 2 * 3
	if len(lines) != want {
		t.Fatalf("got %d endpoints, want %d", len(lines), want)
	}
	bb := defaultSpace.Bounds()
	for i, v := range lines {
		if v.X < bb.Min.X || v.X > bb.Max.X || v.Y < bb.Min.Y || v.Y > bb.Max.Y || v.Z < bb.Min.Z || v.Z > bb.Max.Z {
			t.Fatalf("endpoint %d at %v outside box", i, v)
		}
	}
	// XZ grid first: on the far Y face for zRot=45.
	for i := 0; i < 100; i++ {
		if lines[i].Y != bb.Max.Y {
			t.Fatalf("XZ endpoint %d at y=%g, want %g", i, lines[i].Y, bb.Max.Y)
		}
	}
	// YZ grid on the max X face for zRot < 180.
	for i := 100; i < 200; i++ {
		if lines[i].X != bb.Max.X {
			t.Fatalf("YZ endpoint %d at x=%g, want %g", i, lines[i].X, bb.Max.X)
		}
	}
	// XY grid on the min Z face when looking down.
	for i := 200; i < 300; i++ {
		if lines[i].Z != bb.Min.Z {
			t.Fatalf("XY endpoint %d at z=%g, want %g", i, lines[i].Z, bb.Min.Z)
		}
	}
}

func TestGridLinesFaceSelection(t *testing.T) {
	scales := defaultScales(t)
	bb := defaultSpace.Bounds()
	tests := []struct {
		plane      Plane
		zRot, xRot float32
		coord      func(ms3.Vec) float32
		want       float32
	}{
		{PlaneXZ, 10, -45, func(v ms3.Vec) float32 { return v.Y }, bb.Max.Y},
		{PlaneXZ, 300, -45, func(v ms3.Vec) float32 { return v.Y }, bb.Max.Y},
		{PlaneXZ, 90, -45, func(v ms3.Vec) float32 { return v.Y }, bb.Min.Y},
		{PlaneXZ, 270, -45, func(v ms3.Vec) float32 { return v.Y }, bb.Min.Y},
		{PlaneYZ, 179, -45, func(v ms3.Vec) float32 { return v.X }, bb.Max.X},
		{PlaneYZ, 180, -45, func(v ms3.Vec) float32 { return v.X }, bb.Min.X},
		{PlaneXY, 45, 0, func(v ms3.Vec) float32 { return v.Z }, bb.Min.Z},
		{PlaneXY, 45, -89, func(v ms3.Vec) float32 { return v.Z }, bb.Min.Z},
		{PlaneXY, 45, -90, func(v ms3.Vec) float32 { return v.Z }, bb.Max.Z},
		{PlaneXY, 45, -180, func(v ms3.Vec) float32 { return v.Z }, bb.Max.Z},
	}
	for _, test := range tests {
		var visible [3]bool
		visible[test.plane] = true
		lines := GridLines(nil, visible, scales, defaultSpace, test.zRot, test.xRot)
		if len(lines) != 100 {
			t.Fatalf("%v z=%g x=%g: got %d endpoints", test.plane, test.zRot, test.xRot, len(lines))
		}
		for _, v := range lines {
			if got := test.coord(v); got != test.want {
				t.Errorf("%v z=%g x=%g: endpoint %v on %g, want %g", test.plane, test.zRot, test.xRot, v, got, test.want)
				break
			}
		}
	}
}

func TestGridLinesDegenerate(t *testing.T) {
	all := [3]bool{true, true, true}
	var scales [3]Settings // zero steps.
	if got := GridLines(nil, all, scales, defaultSpace, 0, 0); len(got) != 0 {
		t.Errorf("zero steps produced %d endpoints", len(got))
	}
	// Negative extents walk from the origin at the box maximum downwards.
	s := defaultScales(t)
	flipped := Space{Origin: ms3.Vec{X: 3, Y: 3, Z: 3}, Extent: ms3.Vec{X: -6, Y: -6, Z: -6}}
	var visible [3]bool
	visible[PlaneXY] = true
	lines := GridLines(nil, visible, s, flipped, 45, -45)
	if len(lines) != 100 {
		t.Fatalf("flipped box: got %d endpoints, want 100", len(lines))
	}
	// Y lines first, then X lines, all on the min Z face when looking down.
	if lines[0].Y != 3 || lines[2].Y != 2.75 || lines[48].Y != -3 {
		t.Errorf("flipped box: Y lines at y=%g, %g ... %g", lines[0].Y, lines[2].Y, lines[48].Y)
	}
	if lines[50].X != 3 || lines[52].X != 2.75 || lines[98].X != -3 {
		t.Errorf("flipped box: X lines at x=%g, %g ... %g", lines[50].X, lines[52].X, lines[98].X)
	}
	for i, v := range lines {
		if v.Z != -3 {
			t.Fatalf("flipped box: endpoint %d at z=%g, want -3", i, v.Z)
		}
	}
}
