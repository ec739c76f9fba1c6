package softrender

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

var worldUp = Vec3{0, 1, 0}

func TestCameraLookAt(t *testing.T) {
	testCases := []struct {
		name     string
		yaw      float32
		pitch    float32
		expected Vec3
	}{
		{name: "straight ahead", yaw: 0, pitch: 0, expected: Vec3{0, 0, 1}},
		{name: "quarter turn", yaw: math32.Pi / 2, pitch: 0, expected: Vec3{1, 0, 0}},
		{name: "half turn", yaw: math32.Pi, pitch: 0, expected: Vec3{0, 0, -1}},
		{name: "looking up", yaw: 0, pitch: math32.Pi / 4, expected: Vec3{0, math32.Sqrt2 / 2, math32.Sqrt2 / 2}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCamera(Vec3{}, worldUp)
			c.LookAt(tc.yaw, tc.pitch)
			assertVecAlmostEqual(t, tc.expected, c.LookDirection)
			assert.InDelta(t, 1, c.LookDirection.Length(), 1e-5)
		})
	}
}

func TestCameraBasis(t *testing.T) {
	c := NewCamera(Vec3{}, worldUp)
	c.LookAt(0, 0)

	assertVecAlmostEqual(t, Vec3{0, 0, 1}, c.Forward())
	assertVecAlmostEqual(t, Vec3{1, 0, 0}, c.Right())
	assertVecAlmostEqual(t, Vec3{0, 1, 0}, c.Up())
}

func TestCameraFrontIgnoresPitch(t *testing.T) {
	c := NewCamera(Vec3{}, worldUp)
	c.Yaw = math32.Pi / 2
	c.Pitch = 1.2
	c.LookAt(c.Yaw, c.Pitch)

	assertVecAlmostEqual(t, Vec3{1, 0, 0}, c.Front())
	assert.Greater(t, c.Forward().Y, float32(0.9))
}

func TestCameraClampAngles(t *testing.T) {
	limit := 89.9 * math32.Pi / 180

	testCases := []struct {
		name      string
		yaw       float32
		pitch     float32
		wantYaw   float32
		wantPitch float32
	}{
		{name: "in range", yaw: 1, pitch: 0.5, wantYaw: 1, wantPitch: 0.5},
		{name: "pitch too high", yaw: 0, pitch: 3, wantYaw: 0, wantPitch: limit},
		{name: "pitch too low", yaw: 0, pitch: -3, wantYaw: 0, wantPitch: -limit},
		{name: "yaw wraps", yaw: 2*math32.Pi + 0.5, pitch: 0, wantYaw: 0.5, wantPitch: 0},
		{name: "negative yaw keeps sign", yaw: -2*math32.Pi - 0.5, pitch: 0, wantYaw: -0.5, wantPitch: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCamera(Vec3{}, worldUp)
			c.Yaw, c.Pitch = tc.yaw, tc.pitch
			c.ClampAngles()
			assert.InDelta(t, tc.wantYaw, c.Yaw, 1e-5)
			assert.InDelta(t, tc.wantPitch, c.Pitch, 1e-5)
		})
	}
}

func TestCameraViewMatrix(t *testing.T) {
	c := NewCamera(Vec3{0, 0, -5}, worldUp)
	c.LookAt(0, 0)

	// a point five units ahead of the camera sits on the view axis
	assertVecAlmostEqual(t, Vec3{0, 0, 5}, TransformPoint(Vec3{0, 0, 0}, c.ViewMatrix()))

	c.LookAt(math32.Pi/2, 0)
	assertVecAlmostEqual(t, Vec3{0, 0, 3}, TransformPoint(Vec3{3, 0, -5}, c.ViewMatrix()))
}

func TestCameraSetPositionAndAddAngle(t *testing.T) {
	c := NewCamera(Vec3{}, worldUp)
	c.SetPosition(1, 2, 3)
	assert.Equal(t, Vec3{1, 2, 3}, c.Position)

	c.AddAngle(math32.Pi/2, 0.25)
	c.AddAngle(0, -0.5)
	assert.InDelta(t, math32.Pi/2, c.Yaw, 1e-6)
	assert.InDelta(t, -0.25, c.Pitch, 1e-6)
	assert.Equal(t, Vec3{0, 0, 1}, c.LookDirection, "angles alone do not turn the camera")

	c.LookAt(c.Yaw, 0)
	assertVecAlmostEqual(t, Vec3{1, 0, 0}, c.LookDirection)
}
