package softrender

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/chewxy/math32"
)

// Rasterizer fills screen-space triangles onto a surface it owns. Triangles
// arrive back to front and are painted over whatever is already there.
type Rasterizer interface {
	Clear(c color.RGBA)
	FillTriangle(t Triangle)
}

// ImageTarget rasterizes into an in-memory RGBA image. It needs no display
// and is what the snapshot tool and the tests draw with.
type ImageTarget struct {
	img *image.RGBA
}

func NewImageTarget(w, h int) *ImageTarget {
	return &ImageTarget{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (t *ImageTarget) Image() *image.RGBA {
	return t.img
}

func (t *ImageTarget) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *ImageTarget) Clear(c color.RGBA) {
	draw.Draw(t.img, t.img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// FillTriangle paints every pixel center covered by t with t's flat color.
// Either winding is accepted.
func (t *ImageTarget) FillTriangle(tri Triangle) {
	w, h := t.Size()
	x0, y0 := roundPx(tri.P[0].X), roundPx(tri.P[0].Y)
	x1, y1 := roundPx(tri.P[1].X), roundPx(tri.P[1].Y)
	x2, y2 := roundPx(tri.P[2].X), roundPx(tri.P[2].Y)

	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	if area < 0 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	minX, maxX := min(x0, x1, x2), max(x0, x1, x2)
	minY, maxY := min(y0, y1, y2), max(y0, y1, y2)
	minX, minY = max(minX, 0), max(minY, 0)
	maxX, maxY = min(maxX, w-1), min(maxY, h-1)
	if minX > maxX || minY > maxY {
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			t.img.SetRGBA(x, y, tri.Col)
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func roundPx(v float32) int {
	return int(math32.Floor(v + 0.5))
}
