package geom

import "github.com/go-gl/mathgl/mgl64"

// MinLength is the smallest vector length that is safe to normalize.
const MinLength = 1e-6

var (
	Up         = mgl64.Vec3{0, 1, 0}
	ViewAxis   = mgl64.Vec3{0, 0, -1}
	RightAxis  = mgl64.Vec3{1, 0, 0}
	zeroVector = mgl64.Vec3{}
)

// Orientation composes a yaw turn about the world up axis with a pitch
// about the camera's right axis. Positive yaw turns right, positive
// pitch looks up.
func Orientation(yaw, pitch float64) mgl64.Quat {
	qYaw := mgl64.QuatRotate(-yaw, Up)
	qPitch := mgl64.QuatRotate(pitch, RightAxis)
	return qYaw.Mul(qPitch)
}

// Normalize returns v scaled to unit length, or the zero vector and false
// when v is too short to normalize.
func Normalize(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l < MinLength {
		return zeroVector, false
	}
	return v.Mul(1 / l), true
}

// Flatten drops the vertical component of v and normalizes the rest.
func Flatten(v mgl64.Vec3) (mgl64.Vec3, bool) {
	v[1] = 0
	return Normalize(v)
}
