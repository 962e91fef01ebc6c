package raster

import (
	"github.com/go-gl/mathgl/mgl64"

	"dashrun/geom"
)

// minW rejects points on or behind the camera plane.
const minW = 1e-3

// Camera is a perspective view for software rendering.
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	// FovY is the vertical field of view in degrees.
	FovY float64
	Near float64
	Far  float64
}

// FirstPerson returns a camera with the game's default lens.
func FirstPerson(eye, target mgl64.Vec3) Camera {
	return Camera{Eye: eye, Target: target, FovY: 70, Near: 0.1, Far: 1000}
}

// ViewProjection returns the combined matrix for a w x h target.
func (c Camera) ViewProjection(w, h int) mgl64.Mat4 {
	proj := mgl64.Perspective(mgl64.DegToRad(c.FovY), float64(w)/float64(h), c.Near, c.Far)
	view := mgl64.LookAtV(c.Eye, c.Target, geom.Up)
	return proj.Mul4(view)
}

// Project maps p to pixel coordinates with y growing downward. ok is false
// when p is behind the camera.
func Project(vp mgl64.Mat4, p mgl64.Vec3, w, h int) (x, y int, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip.W() < minW {
		return 0, 0, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	x = int((ndcX + 1) * 0.5 * float64(w))
	y = int((1 - ndcY) * 0.5 * float64(h))
	return x, y, true
}
