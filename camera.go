package softrender

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// maxPitch keeps the look direction off the world-up axis, where the
// right vector would collapse.
var maxPitch = mgl32.DegToRad(89.9)

// Camera is a free-look camera steered by yaw and pitch. LookDirection is
// derived from the angles by LookAt and is never integrated on its own.
type Camera struct {
	Position      Vec3
	LookDirection Vec3
	Yaw           float32
	Pitch         float32
	Roll          float32 // stored, not used by any transform
	WorldUp       Vec3
}

func NewCamera(pos Vec3, worldUp Vec3) *Camera {
	return &Camera{
		Position:      pos,
		LookDirection: Vec3{0, 0, 1},
		WorldUp:       worldUp,
	}
}

// LookAt points the camera along the given yaw and pitch, in radians.
// Yaw 0 looks down +z and yaw pi/2 looks down +x.
func (c *Camera) LookAt(yaw, pitch float32) {
	cp := math32.Cos(pitch)
	c.LookDirection = Vec3{
		X: cp * math32.Sin(yaw),
		Y: math32.Sin(pitch),
		Z: cp * math32.Cos(yaw),
	}
	c.LookDirection.Normalize()
}

func (c *Camera) Forward() Vec3 {
	return c.LookDirection
}

// Front is the heading flattened onto the ground plane, so walking does
// not climb when the camera looks up.
func (c *Camera) Front() Vec3 {
	return Vec3{math32.Sin(c.Yaw), 0, math32.Cos(c.Yaw)}
}

func (c *Camera) Right() Vec3 {
	return c.WorldUp.Cross(c.Forward()).Normalized()
}

func (c *Camera) Up() Vec3 {
	return c.Forward().Cross(c.Right())
}

// ClampAngles limits pitch to +-89.9 degrees and wraps yaw into (-2pi, 2pi).
func (c *Camera) ClampAngles() {
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	} else if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
	c.Yaw = math32.Mod(c.Yaw, 2*math32.Pi)
}

// ViewMatrix maps world space into the camera's view space.
func (c *Camera) ViewMatrix() Matrix4 {
	target := c.Position.Add(c.LookDirection)
	return PointAtMatrix(c.Position, target, c.Up()).PointAtInverse()
}

// SetPosition moves the camera without touching its orientation.
func (c *Camera) SetPosition(x, y, z float32) {
	c.Position = Vec3{x, y, z}
}

// AddAngle turns the camera. Call ClampAngles and LookAt afterwards.
func (c *Camera) AddAngle(yaw, pitch float32) {
	c.Yaw += yaw
	c.Pitch += pitch
}
