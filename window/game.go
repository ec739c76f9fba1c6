package window

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/softrender"
)

// Game hosts an App in an ebiten window. ebiten paces Update at the
// configured TPS, so the frame clock only measures and never sleeps.
type Game struct {
	app    *softrender.App
	clock  *softrender.Clock
	raster *EbitenRasterizer
	ptr    pointer
	locked bool
}

func NewGame(app *softrender.App) *Game {
	g := &Game{
		app:    app,
		clock:  softrender.NewClock(0),
		raster: NewEbitenRasterizer(),
	}
	g.applyCursor()
	return g
}

func (g *Game) Update() error {
	dt := g.clock.Tick()
	in := pollInput(&g.ptr)
	if in.Quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.raster.Outline = !g.raster.Outline
	}

	g.app.Step(in, float32(dt)/float32(time.Second))
	if g.locked != g.app.Controller.PointerLocked {
		g.applyCursor()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.raster.Begin(screen)
	g.app.Draw(g.raster)
	g.raster.Flush()

	s := g.app.Stats()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %0.2f\nTris: %d culled: %d near: %d dropped: %d drawn: %d",
		ebiten.ActualFPS(), s.Source, s.Culled, s.NearClipped, s.Dropped, s.Fragments))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.app.Config.Width, g.app.Config.Height
}

func (g *Game) applyCursor() {
	g.locked = g.app.Controller.PointerLocked
	if g.locked {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	g.ptr.reset()
}

// Run opens a window for cfg and blocks until it is closed.
func Run(cfg softrender.Config) error {
	app, err := softrender.NewApp(cfg)
	if err != nil {
		return err
	}

	log.Println("Opening window...")
	ebiten.SetWindowTitle("softrender")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TargetFPS > 0 {
		ebiten.SetTPS(cfg.TargetFPS)
	}
	return ebiten.RunGame(NewGame(app))
}
