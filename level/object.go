package level

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/colornames"

	"dashrun/geom"
)

// TagSpawnWall marks the walls of the spawn room. They are removed the
// first time the player lands on a moving platform.
const TagSpawnWall = "spawn_wall"

// DefaultColor is used for objects that do not name a color.
var DefaultColor = colornames.Firebrick

// Object is a static box or moving platform in the level.
type Object struct {
	// Position is the center of the box.
	Position mgl64.Vec3
	// Size holds full width, height and depth.
	Size   mgl64.Vec3
	Moving bool
	Tag    string
	Color  color.RGBA
}

func (o Object) Bounds() geom.AABB {
	return geom.FromCenter(o.Position, o.Size)
}

// Top is the world height of the object's upper face.
func (o Object) Top() float64 {
	return o.Position.Y() + o.Size.Y()/2
}
