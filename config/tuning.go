package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"dashrun/geom"
	"dashrun/player"
	"dashrun/world"
)

var ErrInvalidTuning = errors.New("config: invalid tuning")

// Tuning holds the physics constants. Keys missing from a file keep their
// DefaultTuning value.
type Tuning struct {
	Gravity          float64 `yaml:"gravity" toml:"gravity"`
	JumpImpulse      float64 `yaml:"jump_impulse" toml:"jump_impulse"`
	WalkSpeed        float64 `yaml:"walk_speed" toml:"walk_speed"`
	SprintSpeed      float64 `yaml:"sprint_speed" toml:"sprint_speed"`
	MouseSensitivity float64 `yaml:"mouse_sensitivity" toml:"mouse_sensitivity"`
	PitchLimit       float64 `yaml:"pitch_limit" toml:"pitch_limit"`
	PlayerSize       Vec3    `yaml:"player_size" toml:"player_size"`
	Epsilon          float64 `yaml:"epsilon" toml:"epsilon"`
	DeathY           float64 `yaml:"death_y" toml:"death_y"`
	PlatformSpeed    float64 `yaml:"platform_speed" toml:"platform_speed"`
	SpeedGrowth      float64 `yaml:"speed_growth" toml:"speed_growth"`
	// MaxDT caps the frame time handed to the simulation, in seconds.
	MaxDT float64 `yaml:"max_dt" toml:"max_dt"`
}

func DefaultTuning() Tuning {
	return Tuning{
		Gravity:          25,
		JumpImpulse:      9,
		WalkSpeed:        6,
		SprintSpeed:      12,
		MouseSensitivity: 0.003,
		PitchLimit:       1.55,
		PlayerSize:       Vec3{X: 1, Y: 2, Z: 1},
		Epsilon:          0.001,
		DeathY:           -50,
		PlatformSpeed:    4,
		SpeedGrowth:      1.02,
		MaxDT:            0.05,
	}
}

func (t Tuning) Validate() error {
	checks := []struct {
		ok   bool
		name string
		val  any
	}{
		{t.Gravity > 0, "gravity", t.Gravity},
		{t.JumpImpulse > 0, "jump_impulse", t.JumpImpulse},
		{t.WalkSpeed > 0, "walk_speed", t.WalkSpeed},
		{t.SprintSpeed > 0, "sprint_speed", t.SprintSpeed},
		{t.MouseSensitivity > 0, "mouse_sensitivity", t.MouseSensitivity},
		{t.PitchLimit > 0 && t.PitchLimit < math.Pi/2, "pitch_limit", t.PitchLimit},
		{t.PlayerSize.positive(), "player_size", t.PlayerSize},
		{t.Epsilon >= 0, "epsilon", t.Epsilon},
		{!math.IsNaN(t.DeathY), "death_y", t.DeathY},
		{t.PlatformSpeed >= 0, "platform_speed", t.PlatformSpeed},
		{t.SpeedGrowth >= 1, "speed_growth", t.SpeedGrowth},
		{t.MaxDT > 0, "max_dt", t.MaxDT},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s out of range: %v", ErrInvalidTuning, c.name, c.val)
		}
	}
	return nil
}

func (t Tuning) PlayerParams() player.Params {
	return player.Params{
		WalkSpeed:   t.WalkSpeed,
		SprintSpeed: t.SprintSpeed,
		Gravity:     t.Gravity,
		JumpImpulse: t.JumpImpulse,
		Sensitivity: t.MouseSensitivity,
		PitchLimit:  t.PitchLimit,
		Size:        t.PlayerSize.Vec(),
	}
}

// WorldParams combines the tuning with a level's conveyor layout.
func (t Tuning) WorldParams(c Conveyor) world.Params {
	axis, err := geom.ParseAxis(c.Axis)
	if err != nil {
		axis = geom.AxisZ
	}
	return world.Params{
		Epsilon:       t.Epsilon,
		DeathY:        t.DeathY,
		PlatformSpeed: t.PlatformSpeed,
		SpeedGrowth:   t.SpeedGrowth,
		PlatformAxis:  axis,
		WrapThreshold: c.Threshold,
		WrapReset:     c.Reset,
	}
}

// ClampDT bounds a measured frame time to [0, MaxDT].
func (t Tuning) ClampDT(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > t.MaxDT {
		return t.MaxDT
	}
	return dt
}

func LoadTuning(path string) (Tuning, error) {
	format, err := FormatFor(path)
	if err != nil {
		return Tuning{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: read tuning: %w", err)
	}
	t, err := ParseTuning(b, format)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}

func ParseTuning(data []byte, format Format) (Tuning, error) {
	t := DefaultTuning()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &t); err != nil {
			return Tuning{}, fmt.Errorf("unmarshal tuning: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &t); err != nil {
			return Tuning{}, fmt.Errorf("unmarshal tuning: %w", err)
		}
	default:
		return Tuning{}, fmt.Errorf("%w: tuning cannot be %s", ErrUnknownFormat, format)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}
