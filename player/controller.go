// Package player holds the first-person camera and the per-frame movement
// intent derived from input.
package player

import (
	"github.com/go-gl/mathgl/mgl64"

	"dashrun/geom"
	"dashrun/level"
)

// Intent is one frame of polled input.
type Intent struct {
	Forward, Back, Left, Right bool
	Sprint                     bool
	Jump                       bool
	// LookDX/LookDY are cursor deltas in pixels since the last poll.
	LookDX, LookDY float64
}

// Params are the tunable constants of the controller.
type Params struct {
	WalkSpeed   float64
	SprintSpeed float64
	Gravity     float64
	JumpImpulse float64
	Sensitivity float64
	PitchLimit  float64
	// Size is the full extent of the collision volume.
	Size mgl64.Vec3
}

// Controller owns camera orientation and velocity. The world package
// resolves its position against level objects.
type Controller struct {
	// Position is the camera point.
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Yaw      float64
	Pitch    float64

	Grounded   bool
	GroundedOn int

	params Params
}

func New(spawn mgl64.Vec3, p Params) *Controller {
	return &Controller{
		Position:   spawn,
		GroundedOn: level.NoObject,
		params:     p,
	}
}

func (c *Controller) Params() Params { return c.params }

func (c *Controller) SetParams(p Params) { c.params = p }

// Look turns the camera by a cursor delta. Yaw is unbounded; pitch is
// clamped so the view never flips over.
func (c *Controller) Look(dx, dy float64) {
	c.Yaw += dx * c.params.Sensitivity
	c.Pitch -= dy * c.params.Sensitivity
	if c.Pitch > c.params.PitchLimit {
		c.Pitch = c.params.PitchLimit
	}
	if c.Pitch < -c.params.PitchLimit {
		c.Pitch = -c.params.PitchLimit
	}
}

func (c *Controller) Orientation() mgl64.Quat {
	return geom.Orientation(c.Yaw, c.Pitch)
}

func (c *Controller) Forward() mgl64.Vec3 {
	return c.Orientation().Rotate(geom.ViewAxis)
}

func (c *Controller) Right() mgl64.Vec3 {
	return c.Orientation().Rotate(geom.RightAxis)
}

// Target is the point one unit along the view direction.
func (c *Controller) Target() mgl64.Vec3 {
	return c.Position.Add(c.Forward())
}

// Displacement converts directional input into this frame's horizontal
// move. Horizontal velocity is rebuilt from scratch every call.
func (c *Controller) Displacement(in Intent, dt float64) mgl64.Vec3 {
	forward, right := c.Forward(), c.Right()

	var dir mgl64.Vec3
	if in.Forward {
		dir = dir.Add(forward)
	}
	if in.Back {
		dir = dir.Sub(forward)
	}
	if in.Right {
		dir = dir.Add(right)
	}
	if in.Left {
		dir = dir.Sub(right)
	}
	dir, _ = geom.Flatten(dir)

	speed := c.params.WalkSpeed
	if in.Sprint {
		speed = c.params.SprintSpeed
	}
	vel := dir.Mul(speed)
	c.Velocity[0] = vel[0]
	c.Velocity[2] = vel[2]
	return vel.Mul(dt)
}

// ApplyGravity accelerates the player downward. It runs every frame,
// grounded or not.
func (c *Controller) ApplyGravity(dt float64) {
	c.Velocity[1] -= c.params.Gravity * dt
}

// Jump replaces vertical velocity with the jump impulse. It only takes
// effect while grounded and reports whether it did.
func (c *Controller) Jump() bool {
	if !c.Grounded {
		return false
	}
	c.Velocity[1] = c.params.JumpImpulse
	c.Unground()
	return true
}

// Bounds is the collision volume, centered on the camera point.
func (c *Controller) Bounds() geom.AABB {
	return geom.FromCenter(c.Position, c.params.Size)
}

// HalfHeight is the distance from the camera point to the bottom of the
// collision volume.
func (c *Controller) HalfHeight() float64 {
	return c.params.Size.Y() / 2
}

// Land records support by object idx.
func (c *Controller) Land(idx int) {
	c.Grounded = true
	c.GroundedOn = idx
}

func (c *Controller) Unground() {
	c.Grounded = false
	c.GroundedOn = level.NoObject
}

func (c *Controller) Mode() Mode {
	if c.Grounded {
		return Grounded
	}
	return Airborne
}
