package world

// Progression is the difficulty state of one session.
type Progression struct {
	SuccessfulJumps int
	PlatformSpeed   float64
	// PlatformsActive latches on the first landing on a moving platform
	// and never turns off again.
	PlatformsActive bool
}

func (p *Progression) recordJump(growth float64) {
	p.SuccessfulJumps++
	p.PlatformSpeed *= growth
}
