package softrender

import "image/color"

// Triangle is three points with one flat color. Mesh triangles are in
// model space; the pipeline hands out copies in screen space.
type Triangle struct {
	P   [3]Vec3
	Col color.RGBA
}

func NewTriangle(p0, p1, p2 Vec3, col color.RGBA) Triangle {
	return Triangle{P: [3]Vec3{p0, p1, p2}, Col: col}
}

// Midpoint is the mean z of the three points. It is the only key used to
// order triangles for drawing.
func (t Triangle) Midpoint() float32 {
	return (t.P[0].Z + t.P[1].Z + t.P[2].Z) / 3
}

// Normal is the unit normal of the winding p0, p1, p2. Degenerate
// triangles give the zero vector.
func (t Triangle) Normal() Vec3 {
	line1 := t.P[1].Sub(t.P[0])
	line2 := t.P[2].Sub(t.P[0])
	return line1.Cross(line2).Normalized()
}

// Transform maps all three points through m as points (w = 1).
func (t Triangle) Transform(m Matrix4) Triangle {
	out := t
	for i := range out.P {
		out.P[i] = TransformPoint(t.P[i], m)
	}
	return out
}

func (t Triangle) WithColor(col color.RGBA) Triangle {
	t.Col = col
	return t
}

// Area2D is the screen-space area, ignoring z.
func (t Triangle) Area2D() float32 {
	a, b, c := t.P[0], t.P[1], t.P[2]
	area := ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)) / 2
	if area < 0 {
		return -area
	}
	return area
}
