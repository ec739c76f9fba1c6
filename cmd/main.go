package main

import (
	"flag"
	"log"

	"github.com/smasonuk/softrender"
	"github.com/smasonuk/softrender/window"
)

func main() {
	configPath := flag.String("config", "", "TOML or YAML config file")
	meshPath := flag.String("mesh", "", "OBJ mesh to load (default: built-in cube)")
	width := flag.Int("width", 0, "window width in pixels")
	height := flag.Int("height", 0, "window height in pixels")
	fov := flag.Float64("fov", 0, "vertical field of view in degrees")
	fps := flag.Int("fps", 0, "target frames per second")
	flag.Parse()

	cfg := softrender.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = softrender.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
	}

	err := cfg.Resolve(softrender.Flags{
		Width:     *width,
		Height:    *height,
		FOV:       *fov,
		TargetFPS: *fps,
		MeshPath:  *meshPath,
	})
	if err != nil {
		log.Fatalf("Error in config: %v", err)
	}
	log.Printf("Resolution %dx%d, fov %g, near %g, far %g", cfg.Width, cfg.Height, cfg.FOV, cfg.Near, cfg.Far)

	if err := window.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
