// Command snapshot renders frames without a window and writes the last one
// to a PNG or WebP file.
package main

import (
	"flag"
	"log"

	"github.com/smasonuk/softrender"
)

func main() {
	configPath := flag.String("config", "", "TOML or YAML config file")
	meshPath := flag.String("mesh", "", "OBJ mesh to load (default: built-in cube)")
	out := flag.String("out", "frame.png", "output image (.png or .webp)")
	width := flag.Int("width", 0, "image width in pixels")
	height := flag.Int("height", 0, "image height in pixels")
	fov := flag.Float64("fov", 0, "vertical field of view in degrees")
	frames := flag.Int("frames", 1, "frames to simulate before capturing")
	fps := flag.Int("fps", 60, "simulated frames per second")
	yaw := flag.Float64("yaw", 0, "camera yaw turned per frame, in pointer pixels")
	forward := flag.Bool("forward", false, "hold forward for every frame")
	supersample := flag.Int("supersample", 1, "render at this multiple of the size, then downsample")
	flag.Parse()

	cfg := softrender.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = softrender.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
	}
	if err := cfg.Resolve(softrender.Flags{
		Width:    *width,
		Height:   *height,
		FOV:      *fov,
		MeshPath: *meshPath,
	}); err != nil {
		log.Fatalf("Error in config: %v", err)
	}

	outW, outH := cfg.Width, cfg.Height
	if *supersample > 1 {
		cfg.Width *= *supersample
		cfg.Height *= *supersample
	}

	app, err := softrender.NewApp(cfg)
	if err != nil {
		log.Fatalf("Error creating renderer: %v", err)
	}

	var held softrender.ActionSet
	if *forward {
		held = held.With(softrender.ActionForward)
	}
	dt := float32(1) / float32(max(*fps, 1))
	for i := 0; i < max(*frames, 1); i++ {
		app.Step(softrender.FrameInput{Held: held, PointerDX: float32(*yaw)}, dt)
	}

	target := softrender.NewImageTarget(cfg.Width, cfg.Height)
	app.Draw(target)
	img := softrender.Downsample(target.Image(), outW, outH)

	s := app.Stats()
	log.Printf("Frame: %d source, %d culled, %d near clipped, %d dropped, %d drawn",
		s.Source, s.Culled, s.NearClipped, s.Dropped, s.Fragments)

	if err := softrender.WriteSnapshot(*out, img); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s", *out)
}
