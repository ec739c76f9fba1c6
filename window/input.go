package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/softrender"
)

var keyBindings = map[ebiten.Key]softrender.Action{
	ebiten.KeyW:          softrender.ActionForward,
	ebiten.KeyS:          softrender.ActionBack,
	ebiten.KeyA:          softrender.ActionStrafeLeft,
	ebiten.KeyD:          softrender.ActionStrafeRight,
	ebiten.KeySpace:      softrender.ActionAscend,
	ebiten.KeyShiftLeft:  softrender.ActionDescend,
	ebiten.KeyArrowUp:    softrender.ActionRise,
	ebiten.KeyArrowDown:  softrender.ActionSink,
	ebiten.KeyArrowLeft:  softrender.ActionPitchDown,
	ebiten.KeyArrowRight: softrender.ActionPitchUp,
}

// pointer turns absolute cursor positions into per-frame motion.
type pointer struct {
	lastX, lastY int
	primed       bool
}

func (p *pointer) delta() (float32, float32) {
	x, y := ebiten.CursorPosition()
	if !p.primed {
		p.lastX, p.lastY, p.primed = x, y, true
		return 0, 0
	}
	dx, dy := x-p.lastX, y-p.lastY
	p.lastX, p.lastY = x, y
	return float32(dx), float32(dy)
}

// reset drops the next motion sample, so a cursor jump on capture does
// not spin the camera.
func (p *pointer) reset() {
	p.primed = false
}

func pollInput(p *pointer) softrender.FrameInput {
	var in softrender.FrameInput
	for key, action := range keyBindings {
		if ebiten.IsKeyPressed(key) {
			in.Held = in.Held.With(action)
		}
	}
	in.PointerDX, in.PointerDY = p.delta()
	in.TogglePointerLock = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.Quit = inpututil.IsKeyJustPressed(ebiten.KeyQ)
	return in
}
