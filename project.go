package gscene

import "github.com/go-gl/mathgl/mgl32"

// Project maps object coordinates to window coordinates the way gluProject
// does. viewport is {x, y, width, height} and window y grows upwards.
// The returned z is the depth in [0,1] for points inside the view volume.
// ok is false if the point projects to infinity.
//
// It mirrors [mgl32.Project] apart from the w == 0 check, which mgl32 does
// not report.
func Project(obj mgl32.Vec3, modelview, projection mgl32.Mat4, viewport [4]int) (win mgl32.Vec3, ok bool) {
	clip := projection.Mul4x1(modelview.Mul4x1(obj.Vec4(1)))
	if clip[3] == 0 {
		return mgl32.Vec3{}, false
	}
	ndc := clip.Vec3().Mul(1 / clip[3])
	win[0] = (ndc[0]*0.5+0.5)*float32(viewport[2]) + float32(viewport[0])
	win[1] = (ndc[1]*0.5+0.5)*float32(viewport[3]) + float32(viewport[1])
	win[2] = ndc[2]*0.5 + 0.5
	return win, true
}
