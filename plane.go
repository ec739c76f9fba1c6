package softrender

// Plane is Ax + By + Cz + D = 0 with a unit normal (A, B, C). Points with a
// non-negative distance are inside.
type Plane struct {
	A, B, C, D float32
}

// NewPlane builds the plane through point with the given normal. The normal
// is normalized here, so callers may pass any length.
func NewPlane(point, normal Vec3) Plane {
	n := normal.Normalized()
	return Plane{
		A: n.X,
		B: n.Y,
		C: n.Z,
		D: -n.Dot(point),
	}
}

func (p Plane) Normal() Vec3 {
	return Vec3{p.A, p.B, p.C}
}

// Distance is the signed distance from v to the plane.
func (p Plane) Distance(v Vec3) float32 {
	return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D
}

// LineIntersect returns the point where the line through start and end
// meets the plane. A line parallel to the plane returns start.
func (p Plane) LineIntersect(start, end Vec3) Vec3 {
	n := p.Normal()
	ad := start.Dot(n)
	bd := end.Dot(n)
	if bd == ad {
		return start
	}
	t := (-p.D - ad) / (bd - ad)
	return start.Add(end.Sub(start).Scale(t))
}

// ClipTriangle clips tri against the plane and returns 0, 1 or 2
// triangles, all carrying tri's color.
//
// One vertex inside gives (in0, I(in0,out0), I(in0,out1)). Two inside give
// (in0, in1, I(in0,out0)) followed by (in1, I(in1,out0), I(in0,out0)).
// Inside and outside vertices keep their order within tri.
func (p Plane) ClipTriangle(tri Triangle) []Triangle {
	var inside, outside [3]Vec3
	nIn, nOut := 0, 0

	for _, v := range tri.P {
		if p.Distance(v) >= 0 {
			inside[nIn] = v
			nIn++
		} else {
			outside[nOut] = v
			nOut++
		}
	}

	switch nIn {
	case 0:
		return nil
	case 3:
		return []Triangle{tri}
	case 1:
		return []Triangle{{
			P: [3]Vec3{
				inside[0],
				p.LineIntersect(inside[0], outside[0]),
				p.LineIntersect(inside[0], outside[1]),
			},
			Col: tri.Col,
		}}
	default:
		i00 := p.LineIntersect(inside[0], outside[0])
		i10 := p.LineIntersect(inside[1], outside[0])
		return []Triangle{
			{P: [3]Vec3{inside[0], inside[1], i00}, Col: tri.Col},
			{P: [3]Vec3{inside[1], i10, i00}, Col: tri.Col},
		}
	}
}
