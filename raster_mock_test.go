package softrender

import "image/color"

// recordingRasterizer is a mock for testing purposes
type recordingRasterizer struct {
	cleared  []color.RGBA
	filled   []Triangle
	presents int
}

func (r *recordingRasterizer) Clear(c color.RGBA) {
	r.cleared = append(r.cleared, c)
	r.filled = r.filled[:0]
}

func (r *recordingRasterizer) FillTriangle(t Triangle) {
	r.filled = append(r.filled, t)
}

func (r *recordingRasterizer) Present() error {
	r.presents++
	return nil
}
