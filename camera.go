package gscene

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
)

const (
	fieldOfView = 60
	zNear       = 1
	zFar        = 250
	zoomFactor  = 1.1
	rotateStep  = 1
	moveStep    = 0.05
	wheelStep   = 0.1
)

// MoveMode selects how sideways translation commands move the camera.
type MoveMode uint8

const (
	// ObjectMode translates along the world axes.
	ObjectMode MoveMode = iota
	// FirstPersonMode moves left and right relative to the current heading and
	// inverts the vertical translation.
	FirstPersonMode
)

// Command is a discrete camera action, usually bound to a key.
type Command uint8

const (
	CmdZoomIn Command = iota
	CmdZoomOut
	CmdRotateUp
	CmdRotateDown
	CmdRotateLeft
	CmdRotateRight
	CmdRotateForward
	CmdRotateBackward
	CmdTranslateUp
	CmdTranslateDown
	CmdTranslateLeft
	CmdTranslateRight
	CmdTranslateForward
	CmdTranslateBackward
	CmdReset
	numCommands
)

var commandNames = [numCommands]string{
	CmdZoomIn:            "zoom-in",
	CmdZoomOut:           "zoom-out",
	CmdRotateUp:          "rotate-up",
	CmdRotateDown:        "rotate-down",
	CmdRotateLeft:        "rotate-left",
	CmdRotateRight:       "rotate-right",
	CmdRotateForward:     "rotate-forward",
	CmdRotateBackward:    "rotate-backward",
	CmdTranslateUp:       "translate-up",
	CmdTranslateDown:     "translate-down",
	CmdTranslateLeft:     "translate-left",
	CmdTranslateRight:    "translate-right",
	CmdTranslateForward:  "translate-forward",
	CmdTranslateBackward: "translate-backward",
	CmdReset:             "reset",
}

func (c Command) String() string {
	if c < numCommands {
		return commandNames[c]
	}
	return "Command(" + strconv.Itoa(int(c)) + ")"
}

// Camera holds the view state. Rotations are in degrees. XRot is kept in
// [-180, 0] so the view never flips under the XY plane's far side.
type Camera struct {
	XRot, YRot, ZRot float32
	Transl           ms3.Vec
	Scale            float32
	ZCam             float32
	Mode             MoveMode
}

// DefaultCamera returns the camera looking down at the origin from 45° above
// the XY plane, rotated 45° about Z.
func DefaultCamera() Camera {
	return Camera{XRot: -45, ZRot: 45, Scale: 1, ZCam: -6}
}

// Reset restores the default view, keeping the move mode.
func (c *Camera) Reset() {
	mode := c.Mode
	*c = DefaultCamera()
	c.Mode = mode
}

// SetTarget translates the scene so p sits at the rotation center.
func (c *Camera) SetTarget(p ms3.Vec) {
	c.Transl = ms3.Scale(-1, p)
}

// Apply performs a discrete camera command.
func (c *Camera) Apply(cmd Command) {
	switch cmd {
	case CmdZoomIn:
		c.Scale *= zoomFactor
	case CmdZoomOut:
		c.Scale /= zoomFactor
	case CmdRotateUp:
		c.XRot += rotateStep
	case CmdRotateDown:
		c.XRot -= rotateStep
	case CmdRotateLeft:
		c.ZRot += rotateStep
	case CmdRotateRight:
		c.ZRot -= rotateStep
	case CmdRotateForward:
		c.YRot += rotateStep
	case CmdRotateBackward:
		c.YRot -= rotateStep
	case CmdTranslateUp, CmdTranslateDown:
		dy := float32(moveStep)
		if cmd == CmdTranslateDown {
			dy = -dy
		}
		if c.Mode == FirstPersonMode {
			dy = -dy
		}
		c.Transl.Y += dy
	case CmdTranslateLeft, CmdTranslateRight:
		d := ms3.Vec{X: moveStep}
		if c.Mode == FirstPersonMode {
			d = c.sideways()
		}
		if cmd == CmdTranslateLeft {
			d = ms3.Scale(-1, d)
		}
		c.Transl.X += d.X
		c.Transl.Y += d.Y
	case CmdTranslateForward:
		c.Transl.Z -= moveStep
	case CmdTranslateBackward:
		c.Transl.Z += moveStep
	case CmdReset:
		c.Reset()
	}
	c.clampX()
}

// sideways returns a moveStep long vector perpendicular to the viewing
// direction, projected onto the XY plane by the caller.
func (c *Camera) sideways() ms3.Vec {
	xq := mgl32.QuatRotate(mgl32.DegToRad(-c.XRot), mgl32.Vec3{1, 0, 0})
	zq := mgl32.QuatRotate(mgl32.DegToRad(-c.ZRot), mgl32.Vec3{0, 0, 1})
	p := zq.Rotate(xq.Rotate(mgl32.Vec3{0, 0, c.ZCam}))
	side := mgl32.QuatBetweenVectors(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}).Rotate(p.Mul(-1))
	if side.Len() == 0 {
		return ms3.Vec{}
	}
	side = side.Normalize().Mul(moveStep)
	return ms3.Vec{X: side[0], Y: side[1], Z: side[2]}
}

// Drag rotates the view by a pointer drag of (dx, dy) pixels in a viewport of
// width by height pixels. A drag across the whole viewport turns the view by
// 180° divided by the zoom scale.
func (c *Camera) Drag(dx, dy float32, width, height int) {
	if width <= 0 || height <= 0 || c.Scale == 0 {
		return
	}
	c.XRot += 180 / c.Scale * dy / float32(height)
	c.ZRot += 180 / c.Scale * dx / float32(width)
	c.clampX()
}

// Wheel moves the camera along its viewing axis. Positive delta moves it
// closer. fast multiplies the step by ten.
func (c *Camera) Wheel(delta float32, fast bool) {
	step := float32(wheelStep)
	if fast {
		step *= 10
	}
	switch {
	case delta > 0:
		c.ZCam += step
	case delta < 0:
		c.ZCam -= step
	}
}

func (c *Camera) clampX() {
	c.XRot = min(max(c.XRot, -180), 0)
}

// ModelView returns the world transform: camera distance, rotations about X,
// Y and Z, translation then uniform scale.
func (c *Camera) ModelView() mgl32.Mat4 {
	m := mgl32.Translate3D(0, 0, c.ZCam)
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(c.XRot)))
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(c.YRot)))
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(c.ZRot)))
	m = m.Mul4(mgl32.Translate3D(c.Transl.X, c.Transl.Y, c.Transl.Z))
	return m.Mul4(mgl32.Scale3D(c.Scale, c.Scale, c.Scale))
}

// Projection returns the perspective projection for a width by height viewport.
func Projection(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(fieldOfView), aspect, zNear, zFar)
}

// ViewProjection returns Projection(width, height) times ModelView.
func (c *Camera) ViewProjection(width, height int) mgl32.Mat4 {
	return Projection(width, height).Mul4(c.ModelView())
}
