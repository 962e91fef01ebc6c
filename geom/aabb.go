package geom

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis indexes a component of an mgl64.Vec3.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

// ParseAxis accepts "x", "y" or "z" in any case.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("geom: unknown axis %q", s)
}

// AABB is an axis-aligned box given by its min and max corners.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// FromCenter builds a box from a center point and full extents.
func FromCenter(center, size mgl64.Vec3) AABB {
	half := size.Mul(0.5)
	return AABB{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// Intersects reports whether the boxes overlap with positive volume.
// Boxes that only share a face do not intersect.
func (a AABB) Intersects(b AABB) bool {
	return a.Min[0] < b.Max[0] && a.Max[0] > b.Min[0] &&
		a.Min[1] < b.Max[1] && a.Max[1] > b.Min[1] &&
		a.Min[2] < b.Max[2] && a.Max[2] > b.Min[2]
}

// ExtendDown lowers the bottom face by d.
func (a AABB) ExtendDown(d float64) AABB {
	a.Min[1] -= d
	return a
}

func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

// Corners returns the eight corners in the order used by CubeEdges.
func (a AABB) Corners() [8]mgl64.Vec3 {
	var out [8]mgl64.Vec3
	c := a.Center()
	s := a.Size()
	for i := 0; i < 8; i++ {
		u := UnitCube[i]
		out[i] = mgl64.Vec3{
			c[0] + float64(u[0])*s[0],
			c[1] + float64(u[1])*s[1],
			c[2] + float64(u[2])*s[2],
		}
	}
	return out
}
