package softrender

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const float32EqualityThreshold = 1e-5

func assertVecAlmostEqual(t *testing.T, want, got Vec3, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, float32EqualityThreshold, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, float32EqualityThreshold, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, float32EqualityThreshold, msgAndArgs...)
}

func assertTrianglesAlmostEqual(t *testing.T, want, got []Triangle) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		for j := range want[i].P {
			assertVecAlmostEqual(t, want[i].P[j], got[i].P[j], "triangle %d point %d", i, j)
		}
	}
}

func tri(a, b, c Vec3) Triangle {
	return NewTriangle(a, b, c, color.RGBA{R: 10, G: 20, B: 30, A: 255})
}

func TestClipTriangleAgainstNearPlane(t *testing.T) {
	near := NewPlane(Vec3{0, 0, 10}, Vec3{0, 0, 1})

	testCases := []struct {
		name     string
		input    Triangle
		expected []Triangle
	}{
		{
			name:     "Triangle fully in front of near plane",
			input:    tri(Vec3{0, 0, 20}, Vec3{1, 0, 20}, Vec3{0, 1, 20}),
			expected: []Triangle{tri(Vec3{0, 0, 20}, Vec3{1, 0, 20}, Vec3{0, 1, 20})},
		},
		{
			name:     "Triangle fully behind near plane",
			input:    tri(Vec3{0, 0, 5}, Vec3{1, 0, 5}, Vec3{0, 1, 5}),
			expected: nil,
		},
		{
			name:  "Triangle with one point in front",
			input: tri(Vec3{0, 0, 15}, Vec3{0, 1, 5}, Vec3{1, 0, 5}),
			expected: []Triangle{
				tri(Vec3{0, 0, 15}, Vec3{0, 0.5, 10}, Vec3{0.5, 0, 10}),
			},
		},
		{
			name:  "Triangle with two points in front",
			input: tri(Vec3{0, 0, 5}, Vec3{0, 1, 15}, Vec3{1, 0, 15}),
			expected: []Triangle{
				tri(Vec3{0, 1, 15}, Vec3{1, 0, 15}, Vec3{0, 0.5, 10}),
				tri(Vec3{1, 0, 15}, Vec3{0.5, 0, 10}, Vec3{0, 0.5, 10}),
			},
		},
		{
			name:     "Triangle on the near plane",
			input:    tri(Vec3{0, 0, 10}, Vec3{1, 0, 10}, Vec3{0, 1, 10}),
			expected: []Triangle{tri(Vec3{0, 0, 10}, Vec3{1, 0, 10}, Vec3{0, 1, 10})},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clipped := near.ClipTriangle(tc.input)
			assertTrianglesAlmostEqual(t, tc.expected, clipped)
			for _, c := range clipped {
				assert.Equal(t, tc.input.Col, c.Col, "clipped triangles keep the source color")
			}
		})
	}
}

func TestClipTrianglePreservesArea(t *testing.T) {
	input := tri(Vec3{0, 0, 0}, Vec3{4, 0, 0}, Vec3{0, 4, 0})

	testCases := []struct {
		name   string
		normal Vec3
		area   float32
		count  int
	}{
		{name: "keep x >= 1", normal: Vec3{1, 0, 0}, area: 4.5, count: 1},
		{name: "keep x <= 1", normal: Vec3{-1, 0, 0}, area: 3.5, count: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			plane := NewPlane(Vec3{1, 0, 0}, tc.normal)
			clipped := plane.ClipTriangle(input)
			require.Len(t, clipped, tc.count)

			var area float32
			for _, c := range clipped {
				area += c.Area2D()
			}
			assert.InDelta(t, tc.area, area, float32EqualityThreshold)
		})
	}
}

func TestClipTriangleAgainstTiltedPlane(t *testing.T) {
	plane := NewPlane(Vec3{0.5, -0.25, 1}, Vec3{1, 2, -0.5})

	testCases := []struct {
		name  string
		input Triangle
	}{
		{name: "all inside", input: tri(Vec3{3, 3, 0}, Vec3{4, 3, 0}, Vec3{3, 4, 0})},
		{name: "all outside", input: tri(Vec3{-3, -3, 0}, Vec3{-4, -3, 0}, Vec3{-3, -4, 0})},
		{name: "one inside", input: tri(Vec3{4, 2, 1}, Vec3{-3, -1, 2}, Vec3{-2, -3, -1})},
		{name: "two inside", input: tri(Vec3{4, 2, 1}, Vec3{1, 3, -2}, Vec3{-2, -3, -1})},
		{name: "vertex on plane", input: tri(Vec3{0.5, -0.25, 1}, Vec3{2, 2, 0}, Vec3{-2, -2, 0})},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clipped := plane.ClipTriangle(tc.input)
			assert.LessOrEqual(t, len(clipped), 2)
			for i, c := range clipped {
				assert.Equal(t, tc.input.Col, c.Col)
				for j, v := range c.P {
					assert.GreaterOrEqual(t, plane.Distance(v), float32(-float32EqualityThreshold),
						"triangle %d point %d", i, j)
				}
			}
		})
	}
}

func TestPlaneNormalizesNormal(t *testing.T) {
	p := NewPlane(Vec3{0, 0, 2}, Vec3{0, 0, 5})

	assertVecAlmostEqual(t, Vec3{0, 0, 1}, p.Normal())
	assert.InDelta(t, 3, p.Distance(Vec3{7, -3, 5}), float32EqualityThreshold)
	assert.InDelta(t, -2, p.Distance(Vec3{0, 0, 0}), float32EqualityThreshold)
}

func TestLineIntersect(t *testing.T) {
	p := NewPlane(Vec3{0, 0, 0.1}, Vec3{0, 0, 1})

	hit := p.LineIntersect(Vec3{2, 4, -1}, Vec3{2, 4, 1})
	assertVecAlmostEqual(t, Vec3{2, 4, 0.1}, hit)

	parallel := p.LineIntersect(Vec3{0, 0, 1}, Vec3{1, 0, 1})
	assertVecAlmostEqual(t, Vec3{0, 0, 1}, parallel)
}

func TestClipToScreenKeepsFragmentsOnScreen(t *testing.T) {
	p := NewPipeline(PipelineConfig{Width: 100, Height: 80, FOV: 90, Near: 0.1, Far: 1000})

	testCases := []struct {
		name    string
		input   Triangle
		visible bool
	}{
		{name: "inside", input: tri(Vec3{10, 10, 0}, Vec3{50, 10, 0}, Vec3{10, 50, 0}), visible: true},
		{name: "off the left", input: tri(Vec3{-50, 10, 0}, Vec3{-10, 10, 0}, Vec3{-10, 50, 0}), visible: false},
		{name: "across one corner", input: tri(Vec3{-20, -20, 0}, Vec3{50, 10, 0}, Vec3{10, 50, 0}), visible: true},
		{name: "covering the screen", input: tri(Vec3{-1000, -1000, 0}, Vec3{3000, -1000, 0}, Vec3{-1000, 3000, 0}), visible: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			frags := p.ClipToScreen(tc.input)
			if !tc.visible {
				assert.Empty(t, frags)
				return
			}
			assert.NotEmpty(t, frags)
			const slack = 0.01
			for _, f := range frags {
				for _, v := range f.P {
					assert.GreaterOrEqual(t, v.X, float32(-slack))
					assert.LessOrEqual(t, v.X, float32(99+slack))
					assert.GreaterOrEqual(t, v.Y, float32(-slack))
					assert.LessOrEqual(t, v.Y, float32(79+slack))
				}
			}
		})
	}
}
