package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dashrun/player"
)

type fakeSource struct {
	down map[Action]bool
	x, y float64
}

func (f *fakeSource) Down(a Action) bool            { return f.down[a] }
func (f *fakeSource) CursorPos() (float64, float64) { return f.x, f.y }

func TestPollerCursorDelta(t *testing.T) {
	src := &fakeSource{x: 100, y: 50}
	p := NewPoller(src)

	dx, dy := p.CursorDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	src.x, src.y = 110, 45
	dx, dy = p.CursorDelta()
	assert.Equal(t, 10.0, dx)
	assert.Equal(t, -5.0, dy)

	p.Reset()
	src.x, src.y = 500, 500
	dx, dy = p.CursorDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestPollerIntent(t *testing.T) {
	src := &fakeSource{down: map[Action]bool{MoveForward: true, Sprint: true, Jump: true}}
	p := NewPoller(src)
	p.Poll()

	src.x = 4
	got := p.Poll()
	assert.Equal(t, player.Intent{Forward: true, Sprint: true, Jump: true, LookDX: 4}, got)
	assert.False(t, p.Down(DebugText))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "debug_text", DebugText.String())
	assert.Equal(t, "unknown", Action(99).String())
}
