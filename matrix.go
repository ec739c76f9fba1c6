package softrender

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Matrix4 is a row-major 4x4 matrix used with row vectors (v' = v*M), so
// the translation lives in row 3.
type Matrix4 struct {
	Mat [4][4]float32
}

const (
	ROTX = 0
	ROTY = 1
	ROTZ = 2
)

func EmptyMatrix() Matrix4 {
	return Matrix4{}
}

func IdentMatrix() Matrix4 {
	var m Matrix4
	m.Mat[0][0], m.Mat[1][1], m.Mat[2][2], m.Mat[3][3] = 1, 1, 1, 1
	return m
}

// NewRotationMatrix builds a rotation of theta radians around the axis
// named by ROTX, ROTY or ROTZ. Any other axis gives the identity.
func NewRotationMatrix(axis int, theta float32) Matrix4 {
	m := IdentMatrix()
	c, s := math32.Cos(theta), math32.Sin(theta)
	switch axis {
	case ROTX:
		m.Mat[1][1] = c
		m.Mat[1][2] = s
		m.Mat[2][1] = -s
		m.Mat[2][2] = c
	case ROTY:
		m.Mat[0][0] = c
		m.Mat[0][2] = s
		m.Mat[2][0] = -s
		m.Mat[2][2] = c
	case ROTZ:
		m.Mat[0][0] = c
		m.Mat[0][1] = s
		m.Mat[1][0] = -s
		m.Mat[1][1] = c
	}
	return m
}

func TransMatrix(x, y, z float32) Matrix4 {
	m := IdentMatrix()
	m.Mat[3][0] = x
	m.Mat[3][1] = y
	m.Mat[3][2] = z
	return m
}

// ProjectionMatrix maps view space to clip space. aspect is height/width
// and fovScale is 1/tan(fov/2). The input z ends up in w.
func ProjectionMatrix(aspect, fovScale, near, far float32) Matrix4 {
	var m Matrix4
	q := far / (far - near)
	m.Mat[0][0] = aspect * fovScale
	m.Mat[1][1] = fovScale
	m.Mat[2][2] = q
	m.Mat[2][3] = 1
	m.Mat[3][2] = -near * q
	return m
}

// PointAtMatrix places an object at pos facing target. The rows are the
// right, up and forward basis vectors followed by pos.
func PointAtMatrix(pos, target, up Vec3) Matrix4 {
	forward := target.Sub(pos).Normalized()
	newUp := up.Sub(forward.Scale(up.Dot(forward))).Normalized()
	right := newUp.Cross(forward)

	return Matrix4{Mat: [4][4]float32{
		{right.X, right.Y, right.Z, 0},
		{newUp.X, newUp.Y, newUp.Z, 0},
		{forward.X, forward.Y, forward.Z, 0},
		{pos.X, pos.Y, pos.Z, 1},
	}}
}

// PointAtInverse inverts a matrix built by PointAtMatrix. It relies on the
// upper 3x3 block being orthonormal and is wrong for anything else.
func (m Matrix4) PointAtInverse() Matrix4 {
	a := &m.Mat
	right := Vec3{a[0][0], a[0][1], a[0][2]}
	up := Vec3{a[1][0], a[1][1], a[1][2]}
	forward := Vec3{a[2][0], a[2][1], a[2][2]}
	t := Vec3{a[3][0], a[3][1], a[3][2]}

	return Matrix4{Mat: [4][4]float32{
		{a[0][0], a[1][0], a[2][0], 0},
		{a[0][1], a[1][1], a[2][1], 0},
		{a[0][2], a[1][2], a[2][2], 0},
		{-t.Dot(right), -t.Dot(up), -t.Dot(forward), 1},
	}}
}

// MultiplyBy returns m*o. With row vectors, v*m*o applies m first.
func (m Matrix4) MultiplyBy(o Matrix4) Matrix4 {
	var r Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.Mat[i][j] = m.Mat[i][0]*o.Mat[0][j] +
				m.Mat[i][1]*o.Mat[1][j] +
				m.Mat[i][2]*o.Mat[2][j] +
				m.Mat[i][3]*o.Mat[3][j]
		}
	}
	return r
}

// ToMgl converts to mgl32. mgl is column-major with column vectors, so our
// rows flatten straight into its storage and the result is the transpose
// in mgl's terms: v*m here equals ToMgl(m).Mul4x1(v) there.
func (m Matrix4) ToMgl() mgl32.Mat4 {
	var out mgl32.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i*4+j] = m.Mat[i][j]
		}
	}
	return out
}

func FromMgl(in mgl32.Mat4) Matrix4 {
	var m Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m.Mat[i][j] = in[i*4+j]
		}
	}
	return m
}

// Inverse is a general inverse through mgl32. A singular matrix gives the
// zero matrix.
func (m Matrix4) Inverse() Matrix4 {
	return FromMgl(m.ToMgl().Inv())
}

func (m Matrix4) String() string {
	var sb strings.Builder
	for i, row := range m.Mat {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, val := range row {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%f", val))
		}
	}
	return sb.String()
}
