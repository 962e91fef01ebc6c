package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"dashrun/level"
	"dashrun/levels"
)

func TestDefaultLevel(t *testing.T) {
	spec, err := DefaultLevel()
	require.NoError(t, err)
	assert.Equal(t, "default", spec.Name)
	assert.Equal(t, 32, spec.Capacity)
	assert.Equal(t, Vec3{X: 0, Y: 3, Z: 0}, spec.Spawn)

	arena, err := spec.Build()
	require.NoError(t, err)
	assert.Len(t, arena.Tagged(level.TagSpawnWall), 4)

	moving := 0
	arena.Each(func(_ int, o *level.Object) bool {
		if o.Moving {
			moving++
		}
		return true
	})
	assert.Equal(t, 24, moving)
}

func TestEmbeddedLevels(t *testing.T) {
	cases := []struct {
		file    string
		name    string
		objects int
		walls   int
		reset   float64
	}{
		{"default.yaml", "default", 29, 4, -230},
		{"sandbox.toml", "sandbox", 2, 0, -40},
		{"conveyor.tengo", "conveyor", 35, 4, -290},
	}

	for _, c := range cases {
		t.Run(c.file, func(t *testing.T) {
			spec, err := LoadLevelFS(levels.FS, c.file)
			require.NoError(t, err)
			assert.Equal(t, c.name, spec.Name)
			require.Len(t, spec.Objects, c.objects)
			assert.Equal(t, c.reset, spec.Conveyor.Reset)

			arena, err := spec.Build()
			require.NoError(t, err)
			assert.Equal(t, c.objects, arena.Len())
			assert.Len(t, arena.Tagged(level.TagSpawnWall), c.walls)
		})
	}
}

func TestTengoLevelScript(t *testing.T) {
	src := `
capacity := 4
spawn := [1, 2, 3]
objects := []
for i := 0; i < 3; i++ {
	objects = append(objects, {position: [i * 2, 0, 0], size: {x: 1, y: 1.5, z: 1}, moving: i == 2})
}
`
	spec, err := ParseLevel([]byte(src), FormatTengo)
	require.NoError(t, err)
	assert.Equal(t, 4, spec.Capacity)
	assert.Equal(t, Vec3{X: 1, Y: 2, Z: 3}, spec.Spawn)
	require.Len(t, spec.Objects, 3)
	assert.Equal(t, 4.0, spec.Objects[2].Position.X)
	assert.Equal(t, 1.5, spec.Objects[1].Size.Y)
	assert.True(t, spec.Objects[2].Moving)
	assert.False(t, spec.Objects[0].Moving)
	assert.Equal(t, "z", spec.Conveyor.Axis, "conveyor keeps defaults")
}

func TestTengoLevelScriptErrors(t *testing.T) {
	cases := map[string]string{
		"syntax":       "objects := [",
		"bad_object":   "objects := [1]",
		"bad_vector":   `objects := [{position: "here", size: [1, 1, 1]}]`,
		"short_vector": `objects := [{position: [1, 2], size: [1, 1, 1]}]`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseLevel([]byte(src), FormatTengo)
			assert.Error(t, err)
		})
	}
}

func TestLevelValidate(t *testing.T) {
	valid := func() LevelSpec {
		s := defaultLevelSpec()
		s.Objects = []ObjectSpec{{Size: Vec3{X: 1, Y: 1, Z: 1}}}
		return s
	}

	cases := []struct {
		name   string
		mutate func(*LevelSpec)
	}{
		{"zero_capacity", func(s *LevelSpec) { s.Capacity = 0 }},
		{"over_capacity", func(s *LevelSpec) { s.Capacity = 1; s.Objects = append(s.Objects, s.Objects[0]) }},
		{"vertical_conveyor", func(s *LevelSpec) { s.Conveyor.Axis = "y" }},
		{"unknown_axis", func(s *LevelSpec) { s.Conveyor.Axis = "w" }},
		{"reset_above_threshold", func(s *LevelSpec) { s.Conveyor.Reset = 20 }},
		{"zero_size", func(s *LevelSpec) { s.Objects[0].Size.Z = 0 }},
		{"bad_color", func(s *LevelSpec) { s.Objects[0].Color = "not-a-color" }},
	}

	require.NoError(t, valid().Validate())
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := valid()
			c.mutate(&s)
			assert.True(t, errors.Is(s.Validate(), ErrInvalidLevel))
		})
	}
}

func TestLoadLevelFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.yaml")
	data := "objects:\n  - {position: {x: 0, y: 0, z: 0}, size: {x: 2, y: 2, z: 2}, tag: spawn_wall}\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	spec, err := LoadLevel(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", spec.Name)
	assert.Equal(t, level.DefaultCapacity, spec.Capacity)

	arena, err := spec.Build()
	require.NoError(t, err)
	o, ok := arena.Get(0)
	require.True(t, ok)
	assert.Equal(t, level.DefaultColor, o.Color)
	assert.Equal(t, level.TagSpawnWall, o.Tag)
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"", level.DefaultColor, true},
		{"orange", colornames.Orange, true},
		{"SteelBlue", colornames.Steelblue, true},
		{"#ff8000", color.RGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, true},
		{"#ff80", color.RGBA{}, false},
		{"#gg0000", color.RGBA{}, false},
		{"chartreuse-ish", color.RGBA{}, false},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseColor(c.in)
			if !c.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}
