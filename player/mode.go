package player

// Mode is the player's support state.
type Mode int

const (
	Airborne Mode = iota
	Grounded
)

func (m Mode) String() string {
	if m == Grounded {
		return "grounded"
	}
	return "airborne"
}
