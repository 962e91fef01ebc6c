// Package input turns polled key and cursor state into player intents.
package input

import "dashrun/player"

// Action is a logical control.
type Action int

const (
	MoveForward Action = iota
	MoveBack
	MoveLeft
	MoveRight
	Sprint
	Jump
	DebugText
)

var actionNames = [...]string{
	MoveForward: "move_forward",
	MoveBack:    "move_back",
	MoveLeft:    "move_left",
	MoveRight:   "move_right",
	Sprint:      "sprint",
	Jump:        "jump",
	DebugText:   "debug_text",
}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Source is the polling surface of the host window.
type Source interface {
	Down(a Action) bool
	// CursorPos is the absolute cursor position in window pixels.
	CursorPos() (x, y float64)
}

// Poller computes cursor deltas between polls.
type Poller struct {
	src    Source
	lastX  float64
	lastY  float64
	primed bool
}

func NewPoller(src Source) *Poller {
	return &Poller{src: src}
}

// CursorDelta returns how far the cursor moved since the previous call.
// The first call only records the position.
func (p *Poller) CursorDelta() (dx, dy float64) {
	x, y := p.src.CursorPos()
	if p.primed {
		dx, dy = x-p.lastX, y-p.lastY
	}
	p.lastX, p.lastY = x, y
	p.primed = true
	return dx, dy
}

// Reset forgets the last cursor position, e.g. after the window regains focus.
func (p *Poller) Reset() { p.primed = false }

func (p *Poller) Down(a Action) bool { return p.src.Down(a) }

// Poll samples every control once.
func (p *Poller) Poll() player.Intent {
	dx, dy := p.CursorDelta()
	return player.Intent{
		Forward: p.src.Down(MoveForward),
		Back:    p.src.Down(MoveBack),
		Left:    p.src.Down(MoveLeft),
		Right:   p.src.Down(MoveRight),
		Sprint:  p.src.Down(Sprint),
		Jump:    p.src.Down(Jump),
		LookDX:  dx,
		LookDY:  dy,
	}
}
