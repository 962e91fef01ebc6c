package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"dashrun/geom"
	"dashrun/level"
	"dashrun/levels"
)

var ErrInvalidLevel = errors.New("config: invalid level")

// ObjectSpec describes one level object.
type ObjectSpec struct {
	Position Vec3   `yaml:"position" toml:"position"`
	Size     Vec3   `yaml:"size" toml:"size"`
	Moving   bool   `yaml:"moving" toml:"moving"`
	Tag      string `yaml:"tag" toml:"tag"`
	// Color is an SVG color name or #rrggbb.
	Color string `yaml:"color" toml:"color"`
}

// Conveyor places the wrap points of the moving platforms. Platforms drift
// toward +Axis and jump back to Reset once they pass Threshold.
type Conveyor struct {
	Axis      string  `yaml:"axis" toml:"axis"`
	Threshold float64 `yaml:"threshold" toml:"threshold"`
	Reset     float64 `yaml:"reset" toml:"reset"`
}

type LevelSpec struct {
	Name     string       `yaml:"name" toml:"name"`
	Capacity int          `yaml:"capacity" toml:"capacity"`
	Spawn    Vec3         `yaml:"spawn" toml:"spawn"`
	Conveyor Conveyor     `yaml:"conveyor" toml:"conveyor"`
	Objects  []ObjectSpec `yaml:"objects" toml:"objects"`
}

func defaultLevelSpec() LevelSpec {
	return LevelSpec{
		Capacity: level.DefaultCapacity,
		Conveyor: Conveyor{Axis: "z", Threshold: 10, Reset: -230},
	}
}

// DefaultLevel loads the built-in level.
func DefaultLevel() (LevelSpec, error) {
	return LoadLevelFS(levels.FS, levels.Default)
}

func LoadLevel(path string) (LevelSpec, error) {
	return LoadLevelFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func LoadLevelFS(fsys fs.FS, name string) (LevelSpec, error) {
	format, err := FormatFor(name)
	if err != nil {
		return LevelSpec{}, err
	}
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return LevelSpec{}, fmt.Errorf("config: read level: %w", err)
	}
	spec, err := ParseLevel(b, format)
	if err != nil {
		return LevelSpec{}, fmt.Errorf("config: %s: %w", name, err)
	}
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	return spec, nil
}

func ParseLevel(data []byte, format Format) (LevelSpec, error) {
	spec := defaultLevelSpec()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return LevelSpec{}, fmt.Errorf("unmarshal level: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &spec); err != nil {
			return LevelSpec{}, fmt.Errorf("unmarshal level: %w", err)
		}
	case FormatTengo:
		var err error
		if spec, err = runLevelScript(data, spec); err != nil {
			return LevelSpec{}, err
		}
	default:
		return LevelSpec{}, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if err := spec.Validate(); err != nil {
		return LevelSpec{}, err
	}
	return spec, nil
}

func (l LevelSpec) Validate() error {
	if l.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidLevel, l.Capacity)
	}
	if len(l.Objects) > l.Capacity {
		return fmt.Errorf("%w: %d objects exceed capacity %d", ErrInvalidLevel, len(l.Objects), l.Capacity)
	}
	axis, err := geom.ParseAxis(l.Conveyor.Axis)
	if err != nil || axis == geom.AxisY {
		return fmt.Errorf("%w: conveyor axis must be x or z, got %q", ErrInvalidLevel, l.Conveyor.Axis)
	}
	if l.Conveyor.Reset >= l.Conveyor.Threshold {
		return fmt.Errorf("%w: conveyor reset %v must be below threshold %v",
			ErrInvalidLevel, l.Conveyor.Reset, l.Conveyor.Threshold)
	}
	for i, o := range l.Objects {
		if !o.Size.positive() {
			return fmt.Errorf("%w: object %d has non-positive size", ErrInvalidLevel, i)
		}
		if _, err := ParseColor(o.Color); err != nil {
			return fmt.Errorf("%w: object %d: %v", ErrInvalidLevel, i, err)
		}
	}
	return nil
}

// Build fills a new arena with the level's objects in file order.
func (l LevelSpec) Build() (*level.Arena, error) {
	arena := level.NewArena(l.Capacity)
	for i, o := range l.Objects {
		c, err := ParseColor(o.Color)
		if err != nil {
			return nil, fmt.Errorf("config: object %d: %w", i, err)
		}
		if _, err := arena.Add(level.Object{
			Position: o.Position.Vec(),
			Size:     o.Size.Vec(),
			Moving:   o.Moving,
			Tag:      o.Tag,
			Color:    c,
		}); err != nil {
			return nil, fmt.Errorf("config: object %d: %w", i, err)
		}
	}
	return arena, nil
}

// ParseColor resolves an SVG color name or a #rrggbb hex string. The empty
// string yields level.DefaultColor.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return level.DefaultColor, nil
	}
	if strings.HasPrefix(s, "#") {
		var r, g, b uint8
		if len(s) != 7 {
			return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
		}
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("bad hex color %q: %w", s, err)
		}
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}
