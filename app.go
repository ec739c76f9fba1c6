package softrender

import (
	"context"
	"fmt"
	"log"
	"time"
)

// InputSource is polled once per frame for what the user did.
type InputSource interface {
	Poll() FrameInput
}

// Surface is a rasterizer whose frames must be shown once filled.
type Surface interface {
	Rasterizer
	Present() error
}

// App owns the mesh and camera and drives them one frame at a time.
type App struct {
	Config     Config
	Mesh       *Mesh
	Camera     *Camera
	Controller *Controller
	Pipeline   *Pipeline

	theta   float32
	frags   []Triangle
	stats   FrameStats
	running bool
}

// NewApp loads the configured mesh and places the camera at the origin
// looking down +z.
func NewApp(cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mesh, err := cfg.LoadMesh()
	if err != nil {
		return nil, err
	}
	lo, hi := mesh.Bounds()
	log.Printf("Mesh loaded: %d triangles, bounds %v to %v", mesh.Len(), lo, hi)

	return &App{
		Config:     cfg,
		Mesh:       mesh,
		Camera:     NewCamera(Vec3{}, cfg.Up()),
		Controller: NewController(&cfg),
		Pipeline:   NewPipeline(cfg.Pipeline()),
	}, nil
}

// Step advances the camera and the model spin by dt seconds and builds
// the frame's fragments in draw order.
func (a *App) Step(in FrameInput, dt float32) []Triangle {
	a.Controller.Apply(a.Camera, in, dt)
	a.theta += a.Config.World.SpinRate * dt

	world := WorldMatrix(a.Config.World, a.theta)
	a.frags, a.stats = a.Pipeline.Frame(a.Mesh, a.Camera, world)
	return a.frags
}

// Draw clears r and fills the fragments of the last Step.
func (a *App) Draw(r Rasterizer) {
	r.Clear(a.Config.BackgroundColor())
	a.Pipeline.Render(r, a.frags)
}

func (a *App) Stats() FrameStats {
	return a.stats
}

func (a *App) Running() bool {
	return a.running
}

// Run ticks, polls, steps and presents until the input asks to quit or
// ctx is done.
func (a *App) Run(ctx context.Context, src InputSource, surface Surface) error {
	clock := NewClock(a.Config.TargetFPS)
	a.running = true
	defer func() { a.running = false }()

	for a.running {
		dt := clock.Tick()

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		in := src.Poll()
		if in.Quit {
			a.running = false
			break
		}

		a.Step(in, float32(dt)/float32(time.Second))
		a.Draw(surface)
		if err := surface.Present(); err != nil {
			return fmt.Errorf("present frame: %w", err)
		}
	}
	return nil
}
