package world

import "dashrun/geom"

// Params are the tunable constants of the resolver.
type Params struct {
	// Epsilon lifts the player clear of a surface after a vertical snap.
	Epsilon float64
	// DeathY ends the session once the camera drops below it.
	DeathY float64
	// PlatformSpeed is the starting drift speed of moving platforms.
	PlatformSpeed float64
	// SpeedGrowth multiplies the drift speed on every successful jump.
	SpeedGrowth float64

	PlatformAxis geom.Axis
	// A platform that moves past WrapThreshold along PlatformAxis is
	// placed back at WrapReset.
	WrapThreshold float64
	WrapReset     float64
}
