package softrender

import "log"

// Action is a held movement or look control.
type Action uint16

const (
	ActionForward Action = 1 << iota
	ActionBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionAscend
	ActionDescend
	ActionRise
	ActionSink
	ActionPitchDown
	ActionPitchUp
)

// ActionSet is the set of actions held during one frame.
type ActionSet uint16

func NewActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

func (s ActionSet) Has(a Action) bool {
	return s&ActionSet(a) != 0
}

func (s ActionSet) With(a Action) ActionSet {
	return s | ActionSet(a)
}

// FrameInput is everything the host saw since the previous frame.
type FrameInput struct {
	Held              ActionSet
	PointerDX         float32
	PointerDY         float32
	TogglePointerLock bool
	Quit              bool
}

// Controller turns frame input into camera motion.
type Controller struct {
	MoveSpeed        float32 // units per second
	TurnSpeed        float32 // radians per second for keyboard pitch
	MouseSensitivity float32 // radians per pixel of pointer motion
	PointerLocked    bool
}

func NewController(cfg *Config) *Controller {
	return &Controller{
		MoveSpeed:        cfg.MoveSpeed,
		TurnSpeed:        cfg.TurnSpeed,
		MouseSensitivity: cfg.MouseSensitivity,
		PointerLocked:    true,
	}
}

// Apply moves and turns cam for a frame of dt seconds, then rebuilds its
// look direction. Pointer motion only turns the camera while the pointer
// is locked; a lock toggle in the same frame takes effect afterwards.
func (c *Controller) Apply(cam *Camera, in FrameInput, dt float32) {
	if c.PointerLocked {
		cam.AddAngle(-in.PointerDX*c.MouseSensitivity, -in.PointerDY*c.MouseSensitivity)
	}
	if in.TogglePointerLock {
		c.PointerLocked = !c.PointerLocked
		log.Printf("Pointer lock: %v", c.PointerLocked)
	}

	step := c.MoveSpeed * dt
	held := in.Held
	var move Vec3

	if held.Has(ActionRise) {
		move.Y += step
	}
	if held.Has(ActionSink) {
		move.Y -= step
	}
	if held.Has(ActionPitchDown) {
		cam.AddAngle(0, -c.TurnSpeed*dt)
	}
	if held.Has(ActionPitchUp) {
		cam.AddAngle(0, c.TurnSpeed*dt)
	}
	if held.Has(ActionForward) {
		move = move.Add(cam.Front().Scale(step))
	}
	if held.Has(ActionBack) {
		move = move.Sub(cam.Front().Scale(step))
	}
	if held.Has(ActionStrafeLeft) {
		move = move.Add(cam.Right().Scale(step))
	}
	if held.Has(ActionStrafeRight) {
		move = move.Sub(cam.Right().Scale(step))
	}
	if held.Has(ActionAscend) {
		move = move.Add(cam.WorldUp.Scale(step))
	}
	if held.Has(ActionDescend) {
		move = move.Sub(cam.WorldUp.Scale(step))
	}

	p := cam.Position.Add(move)
	cam.SetPosition(p.X, p.Y, p.Z)
	cam.ClampAngles()
	cam.LookAt(cam.Yaw, cam.Pitch)
}
