package gscene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
)

func TestCameraCommands(t *testing.T) {
	c := DefaultCamera()
	c.Apply(CmdZoomIn)
	c.Apply(CmdZoomIn)
	c.Apply(CmdZoomOut)
	if math32.Abs(c.Scale-1.1) > 1e-6 {
		t.Errorf("scale %g after zoom in twice and out once, want 1.1", c.Scale)
	}
	for i := 0; i < 100; i++ {
		c.Apply(CmdRotateUp)
	}
	if c.XRot != 0 {
		t.Errorf("x rotation %g, want clamped to 0", c.XRot)
	}
	for i := 0; i < 300; i++ {
		c.Apply(CmdRotateDown)
	}
	if c.XRot != -180 {
		t.Errorf("x rotation %g, want clamped to -180", c.XRot)
	}
	c.Apply(CmdRotateLeft)
	c.Apply(CmdRotateForward)
	if c.ZRot != 46 || c.YRot != 1 {
		t.Errorf("got z=%g y=%g rotation", c.ZRot, c.YRot)
	}
	c.Apply(CmdTranslateUp)
	c.Apply(CmdTranslateRight)
	c.Apply(CmdTranslateForward)
	want := ms3.Vec{X: 0.05, Y: 0.05, Z: -0.05}
	if c.Transl != want {
		t.Errorf("translation %v, want %v", c.Transl, want)
	}
	c.Mode = FirstPersonMode
	c.Apply(CmdReset)
	if c.Mode != FirstPersonMode {
		t.Error("reset changed move mode")
	}
	d := DefaultCamera()
	d.Mode = FirstPersonMode
	if c != d {
		t.Errorf("reset camera %+v, want %+v", c, d)
	}
}

func TestCameraFirstPerson(t *testing.T) {
	c := DefaultCamera()
	c.Mode = FirstPersonMode
	c.Apply(CmdTranslateUp)
	if c.Transl.Y != -0.05 {
		t.Errorf("first person up moved y to %g, want -0.05", c.Transl.Y)
	}
	c = DefaultCamera()
	c.Mode = FirstPersonMode
	c.Apply(CmdTranslateRight)
	// Default heading looks along (-1,-1) in the XY plane; right is (-1,1).
	if math32.Abs(c.Transl.X+0.025) > 1e-4 || math32.Abs(c.Transl.Y-0.025) > 1e-4 || c.Transl.Z != 0 {
		t.Errorf("first person right moved to %v", c.Transl)
	}
	c.Apply(CmdTranslateLeft)
	if math32.Abs(c.Transl.X) > 1e-6 || math32.Abs(c.Transl.Y) > 1e-6 {
		t.Errorf("left did not undo right: %v", c.Transl)
	}
}

func TestCameraDragWheel(t *testing.T) {
	c := DefaultCamera()
	c.Drag(400, 150, 800, 600)
	if c.ZRot != 135 || c.XRot != 0 {
		t.Errorf("after drag got z=%g x=%g, want 135, 0 (clamped)", c.ZRot, c.XRot)
	}
	c.Drag(10, 10, 0, 0)
	if c.ZRot != 135 {
		t.Error("drag in empty viewport changed rotation")
	}
	c.Wheel(1, false)
	c.Wheel(-120, true)
	c.Wheel(0, true)
	if math32.Abs(c.ZCam-(-6.9)) > 1e-5 {
		t.Errorf("zCam %g, want -6.9", c.ZCam)
	}
	c.SetTarget(ms3.Vec{X: 1, Y: 2, Z: 3})
	if c.Transl != (ms3.Vec{X: -1, Y: -2, Z: -3}) {
		t.Errorf("target translation %v", c.Transl)
	}
}

func TestViewProjection(t *testing.T) {
	c := DefaultCamera()
	vp := c.ViewProjection(800, 600)
	clip := vp.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if math32.Abs(clip[0]) > 1e-5 || math32.Abs(clip[1]) > 1e-5 {
		t.Errorf("origin not on view axis: clip %v", clip)
	}
	if math32.Abs(clip[3]-6) > 1e-5 {
		t.Errorf("origin clip w %g, want camera distance 6", clip[3])
	}
	// +Z points up the screen at the default view.
	up := vp.Mul4x1(mgl32.Vec4{0, 0, 1, 1})
	if up[1]/up[3] <= 0 {
		t.Errorf("+Z projects below the origin: %v", up)
	}
	if CmdReset.String() != "reset" || Command(200).String() != "Command(200)" {
		t.Error("unexpected command names")
	}
}
