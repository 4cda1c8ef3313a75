package glscale

import "github.com/chewxy/math32"

// NormalizeAngle maps an angle in degrees into [0, 360).
func NormalizeAngle(deg float32) float32 {
	a := math32.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		// Tiny negative inputs round up to 360 after the shift.
		a -= 360
	}
	if a == 0 {
		return 0 // No negative zero.
	}
	return a
}

// QuadrantOf returns 0, 1, 2 or 3 for a Z rotation falling in [0,90),
// [90,180), [180,270) or [270,360) after normalization.
func QuadrantOf(zRotDeg float32) int {
	a := NormalizeAngle(zRotDeg)
	switch {
	case a < 90:
		return 0
	case a < 180:
		return 1
	case a < 270:
		return 2
	}
	return 3
}

// ViewFromTop reports whether an X rotation looks down onto the XY plane,
// that is the normalized angle is 0 or at least 270.
func ViewFromTop(xRotDeg float32) bool {
	a := NormalizeAngle(xRotDeg)
	return a == 0 || a >= 270
}
