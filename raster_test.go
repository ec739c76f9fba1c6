package softrender

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

func TestImageTargetClear(t *testing.T) {
	target := NewImageTarget(4, 3)
	target.Clear(blue)

	w, h := target.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			assert.Equal(t, blue, target.Image().RGBAAt(x, y))
		}
	}
}

func TestImageTargetFillTriangle(t *testing.T) {
	testCases := []struct {
		name string
		tri  Triangle
	}{
		{name: "clockwise", tri: NewTriangle(Vec3{1, 1, 0}, Vec3{18, 1, 0}, Vec3{1, 18, 0}, red)},
		{name: "counter-clockwise", tri: NewTriangle(Vec3{1, 1, 0}, Vec3{1, 18, 0}, Vec3{18, 1, 0}, red)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			target := NewImageTarget(20, 20)
			target.Clear(black)
			target.FillTriangle(tc.tri)

			img := target.Image()
			assert.Equal(t, red, img.RGBAAt(3, 3))
			assert.Equal(t, red, img.RGBAAt(1, 1), "vertices are covered")
			assert.Equal(t, black, img.RGBAAt(15, 15), "beyond the hypotenuse")
			assert.Equal(t, black, img.RGBAAt(0, 0))
		})
	}
}

func TestImageTargetPaintersOrder(t *testing.T) {
	target := NewImageTarget(10, 10)
	target.Clear(black)

	far := NewTriangle(Vec3{0, 0, 0}, Vec3{9, 0, 0}, Vec3{0, 9, 0}, red)
	near := NewTriangle(Vec3{0, 0, 0}, Vec3{5, 0, 0}, Vec3{0, 5, 0}, blue)
	target.FillTriangle(far)
	target.FillTriangle(near)

	assert.Equal(t, blue, target.Image().RGBAAt(1, 1))
	assert.Equal(t, red, target.Image().RGBAAt(6, 1))
}

func TestImageTargetIgnoresDegenerateAndOffscreen(t *testing.T) {
	target := NewImageTarget(5, 5)
	target.Clear(black)

	assert.NotPanics(t, func() {
		target.FillTriangle(NewTriangle(Vec3{0, 0, 0}, Vec3{2, 2, 0}, Vec3{4, 4, 0}, red))
		target.FillTriangle(NewTriangle(Vec3{-50, -50, 0}, Vec3{-40, -50, 0}, Vec3{-50, -40, 0}, red))
		target.FillTriangle(NewTriangle(Vec3{-50, -50, 0}, Vec3{100, -50, 0}, Vec3{-50, 100, 0}, blue))
	})
	assert.Equal(t, blue, target.Image().RGBAAt(2, 2))
}
