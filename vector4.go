package softrender

// wEpsilon is the smallest w a projected vertex may have before the
// perspective divide refuses it.
const wEpsilon = 1e-6

// Vec4 is a homogeneous coordinate. W is always given explicitly: 1 for
// points, 0 for directions that must not pick up translation.
type Vec4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

func NewVec4(v Vec3, w float32) Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// MulMatrix treats v as a row vector and returns v * m. The translation row
// is weighted by W.
func (v Vec4) MulMatrix(m Matrix4) Vec4 {
	a := &m.Mat
	return Vec4{
		X: v.X*a[0][0] + v.Y*a[1][0] + v.Z*a[2][0] + v.W*a[3][0],
		Y: v.X*a[0][1] + v.Y*a[1][1] + v.Z*a[2][1] + v.W*a[3][1],
		Z: v.X*a[0][2] + v.Y*a[1][2] + v.Z*a[2][2] + v.W*a[3][2],
		W: v.X*a[0][3] + v.Y*a[1][3] + v.Z*a[2][3] + v.W*a[3][3],
	}
}

func (v Vec4) Vec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// PerspectiveDivide divides x, y and z by w. It reports false for points at
// or behind the eye, which the caller drops.
func (v Vec4) PerspectiveDivide() (Vec3, bool) {
	if v.W <= wEpsilon {
		return Vec3{}, false
	}
	return Vec3{X: v.X / v.W, Y: v.Y / v.W, Z: v.Z / v.W}, true
}

// TransformPoint maps a point (w = 1) through m.
func TransformPoint(p Vec3, m Matrix4) Vec3 {
	return NewVec4(p, 1).MulMatrix(m).Vec3()
}

// TransformDirection maps a direction (w = 0) through m, ignoring translation.
func TransformDirection(d Vec3, m Matrix4) Vec3 {
	return NewVec4(d, 0).MulMatrix(m).Vec3()
}
