// Package world resolves the player against level objects and drives the
// moving platforms.
package world

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"dashrun/geom"
	"dashrun/level"
	"dashrun/player"
)

// Session is the single owner of all mutable game state for one run.
type Session struct {
	Player   *player.Controller
	Objects  *level.Arena
	Progress Progression

	params       Params
	log          zerolog.Logger
	frame        uint64
	prevGrounded bool
	ended        bool
}

type Option func(*Session)

func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

func NewSession(p *player.Controller, objects *level.Arena, params Params, opts ...Option) *Session {
	s := &Session{
		Player:   p,
		Objects:  objects,
		Progress: Progression{PlatformSpeed: params.PlatformSpeed},
		params:   params,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.prevGrounded = p.Grounded
	return s
}

func (s *Session) Params() Params { return s.params }

// SetParams swaps the tuning between frames. The current platform speed is
// part of progression and is kept.
func (s *Session) SetParams(p Params) { s.params = p }

func (s *Session) Ended() bool { return s.ended }

func (s *Session) Frame() uint64 { return s.frame }

// State summarizes the session's state machines.
type State struct {
	Mode            player.Mode
	PlatformsActive bool
	Ended           bool
}

func (s *Session) State() State {
	return State{
		Mode:            s.Player.Mode(),
		PlatformsActive: s.Progress.PlatformsActive,
		Ended:           s.ended,
	}
}

// Step advances one frame. Once the session has ended it does nothing.
func (s *Session) Step(in player.Intent, dt float64) {
	if s.ended {
		return
	}
	if dt < 0 {
		dt = 0
	}
	s.frame++

	pl := s.Player
	pl.Look(in.LookDX, in.LookDY)
	move := pl.Displacement(in, dt)
	pl.ApplyGravity(dt)
	if in.Jump {
		pl.Jump()
	}

	pl.Unground()
	s.resolveHorizontal(geom.AxisX, move.X())
	s.resolveHorizontal(geom.AxisZ, move.Z())
	s.resolveVertical(pl.Velocity.Y() * dt)

	s.trackGrounded()

	if pl.Position.Y() < s.params.DeathY {
		s.ended = true
		s.log.Info().
			Uint64("frame", s.frame).
			Float64("y", pl.Position.Y()).
			Int("jumps", s.Progress.SuccessfulJumps).
			Msg("player fell out of the level")
		return
	}

	s.movePlatforms(dt)
}

// firstHit returns the lowest index whose box overlaps b.
func (s *Session) firstHit(b geom.AABB) int {
	hit := level.NoObject
	s.Objects.Each(func(i int, o *level.Object) bool {
		if b.Intersects(o.Bounds()) {
			hit = i
			return false
		}
		return true
	})
	return hit
}

// resolveHorizontal moves along axis and steps back on contact.
func (s *Session) resolveHorizontal(axis geom.Axis, d float64) {
	pl := s.Player
	pl.Position[axis] += d
	if s.firstHit(pl.Bounds()) != level.NoObject {
		pl.Position[axis] -= d
	}
}

// resolveVertical moves along Y and, on contact, puts the player on top of
// the object it hit. Only a descending contact counts as landing. While
// descending, a surface within Epsilon below the feet counts as contact so
// a resting player stays grounded however small dt gets.
func (s *Session) resolveVertical(d float64) {
	pl := s.Player
	pl.Position[1] += d

	box := pl.Bounds()
	if pl.Velocity.Y() < 0 {
		box = box.ExtendDown(s.params.Epsilon)
	}
	idx := s.firstHit(box)
	if idx == level.NoObject {
		return
	}
	obj, _ := s.Objects.Get(idx)
	pl.Position[1] = obj.Top() + pl.HalfHeight() + s.params.Epsilon
	if pl.Velocity.Y() < 0 {
		pl.Land(idx)
	}
	pl.Velocity[1] = 0
}

func (s *Session) trackGrounded() {
	pl := s.Player
	grounded := pl.Grounded

	if s.Progress.PlatformsActive && s.prevGrounded && !grounded {
		s.Progress.recordJump(s.params.SpeedGrowth)
		s.log.Info().
			Int("jumps", s.Progress.SuccessfulJumps).
			Float64("speed", s.Progress.PlatformSpeed).
			Msg("successful jump")
	}

	if grounded && !s.Progress.PlatformsActive {
		if obj, ok := s.Objects.Get(pl.GroundedOn); ok && obj.Moving {
			s.activatePlatforms()
		}
	}

	s.prevGrounded = pl.Grounded
}

// activatePlatforms removes the spawn room walls and starts the conveyor.
func (s *Session) activatePlatforms() {
	pl := s.Player
	if support, ok := s.Objects.Get(pl.GroundedOn); ok && support.Tag == level.TagSpawnWall {
		pl.Unground()
	}
	walls := s.Objects.ClearTag(level.TagSpawnWall)
	s.Progress.PlatformsActive = true
	s.log.Info().
		Uint64("frame", s.frame).
		Int("walls_cleared", len(walls)).
		Msg("moving platforms activated")
}

// movePlatforms drifts every moving platform and carries a player standing
// on one by the same amount.
func (s *Session) movePlatforms(dt float64) {
	if !s.Progress.PlatformsActive {
		return
	}
	axis := s.params.PlatformAxis
	step := s.Progress.PlatformSpeed * dt

	s.Objects.Each(func(i int, o *level.Object) bool {
		if !o.Moving {
			return true
		}
		o.Position[axis] += step
		if o.Position[axis] > s.params.WrapThreshold {
			o.Position[axis] = s.params.WrapReset
			s.log.Debug().Int("object", i).Msg("platform wrapped")
		}
		return true
	})

	pl := s.Player
	if !pl.Grounded {
		return
	}
	if obj, ok := s.Objects.Get(pl.GroundedOn); ok && obj.Moving {
		pl.Position = pl.Position.Add(axisVector(axis, step))
	}
}

func axisVector(axis geom.Axis, v float64) mgl64.Vec3 {
	var out mgl64.Vec3
	out[axis] = v
	return out
}
