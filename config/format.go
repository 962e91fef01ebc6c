// Package config loads tuning and level files.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Format is a config file encoding.
type Format int

const (
	FormatYAML Format = iota + 1
	FormatTOML
	FormatTengo
)

var ErrUnknownFormat = errors.New("config: unknown file format")

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatTengo:
		return "tengo"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// FormatFor picks a format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".tengo":
		return FormatTengo, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Vec3 is a point or extent written as {x, y, z}.
type Vec3 struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
	Z float64 `yaml:"z" toml:"z"`
}

func (v Vec3) Vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func (v Vec3) positive() bool {
	return v.X > 0 && v.Y > 0 && v.Z > 0
}
