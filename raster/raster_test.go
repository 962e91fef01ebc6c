package raster

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"dashrun/level"
)

func pixel(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func TestDrawLine(t *testing.T) {
	red := colornames.Red
	cases := []struct {
		name           string
		x1, y1, x2, y2 int
		lit            []image.Point
	}{
		{"horizontal", 1, 2, 5, 2, []image.Point{{1, 2}, {3, 2}, {5, 2}}},
		{"vertical_reverse", 4, 6, 4, 1, []image.Point{{4, 6}, {4, 3}, {4, 1}}},
		{"diagonal", 0, 0, 3, 3, []image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"single_point", 7, 7, 7, 7, []image.Point{{7, 7}}},
		{"clipped", -5, 0, 2, 0, []image.Point{{0, 0}, {2, 0}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, 10, 10))
			DrawLine(img, c.x1, c.y1, c.x2, c.y2, red)
			for _, p := range c.lit {
				assert.Equal(t, red, pixel(img, p.X, p.Y), "pixel %v", p)
			}
		})
	}
}

func TestProject(t *testing.T) {
	cam := FirstPerson(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, -1})
	vp := cam.ViewProjection(200, 100)

	x, y, ok := Project(vp, mgl64.Vec3{0, 0, -5}, 200, 100)
	require.True(t, ok)
	assert.Equal(t, 100, x)
	assert.Equal(t, 50, y)

	x, _, ok = Project(vp, mgl64.Vec3{1, 0, -5}, 200, 100)
	require.True(t, ok)
	assert.Greater(t, x, 100, "+x projects right of center")

	_, y, ok = Project(vp, mgl64.Vec3{0, 1, -5}, 200, 100)
	require.True(t, ok)
	assert.Less(t, y, 50, "+y projects above center")

	_, _, ok = Project(vp, mgl64.Vec3{0, 0, 5}, 200, 100)
	assert.False(t, ok)
}

func TestSnapshotDrawsObjects(t *testing.T) {
	arena := level.NewArena(2)
	_, err := arena.Add(level.Object{
		Position: mgl64.Vec3{0, 0, -6},
		Size:     mgl64.Vec3{2, 2, 2},
		Color:    colornames.Orange,
	})
	require.NoError(t, err)

	cam := FirstPerson(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, -1})
	img := Snapshot(cam, arena, 64, 48)

	assert.Equal(t, Background, pixel(img, 0, 0))
	assert.Equal(t, colornames.White, pixel(img, 32, 24))

	found := 0
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			if pixel(img, x, y) == colornames.Orange {
				found++
			}
		}
	}
	assert.Greater(t, found, 20)
}

func TestWritePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	DrawCrosshair(img, colornames.Red)

	path := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, WritePNG(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	assert.Error(t, WritePNG(filepath.Join(t.TempDir(), "missing", "x.png"), img))
}
