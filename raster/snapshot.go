package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/colornames"

	"dashrun/geom"
	"dashrun/level"
)

var Background = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}

// Snapshot renders every level object as a wireframe box seen from cam.
func Snapshot(cam Camera, objects *level.Arena, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)

	vp := cam.ViewProjection(w, h)
	objects.Each(func(_ int, o *level.Object) bool {
		DrawBox(img, vp, o.Bounds(), o.Color)
		return true
	})
	DrawCrosshair(img, colornames.White)
	return img
}

// DrawBox draws the twelve edges of box. Edges with an end behind the
// camera, or projected far off screen, are skipped.
func DrawBox(img *image.RGBA, vp mgl64.Mat4, box geom.AABB, col color.RGBA) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	corners := box.Corners()

	var px [8]image.Point
	var visible [8]bool
	for i, c := range corners {
		x, y, ok := Project(vp, c, w, h)
		px[i] = image.Point{X: x, Y: y}
		visible[i] = ok && onCanvas(x, w) && onCanvas(y, h)
	}

	for i := 0; i < len(geom.CubeEdges); i += 2 {
		a, b := geom.CubeEdges[i], geom.CubeEdges[i+1]
		if !visible[a] || !visible[b] {
			continue
		}
		DrawLine(img, px[a].X, px[a].Y, px[b].X, px[b].Y, col)
	}
}

// onCanvas bounds line length so DrawLine never walks millions of pixels.
func onCanvas(v, size int) bool {
	return v > -4*size && v < 5*size
}

func DrawCrosshair(img *image.RGBA, col color.RGBA) {
	const arm = 6
	cx, cy := img.Bounds().Dx()/2, img.Bounds().Dy()/2
	DrawLine(img, cx-arm, cy, cx+arm, cy, col)
	DrawLine(img, cx, cy-arm, cx, cy+arm, col)
}

func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return f.Close()
}
