// Command bmeshview opens a window and displays a demo mesh as a
// wireframe using bmesh.Draw, an orbit camera, and an OpenGL 4.1 core
// context.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/daniel-amthauer/BMeshUnreal/internal/config"
	"github.com/daniel-amthauer/BMeshUnreal/internal/demo"
	"github.com/daniel-amthauer/BMeshUnreal/internal/logger"
	"github.com/daniel-amthauer/BMeshUnreal/internal/viewer"
)

var shapeFlag = flag.String("shape", "hexagon", fmt.Sprintf("demo shape to display, one of %v", demo.Names))

func main() {
	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	mesh, err := demo.Build(*shapeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	winCfg := viewer.WindowConfig{
		Title:      "bmeshview",
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		Fullscreen: cfg.Viewer.Fullscreen,
		VSync:      cfg.Viewer.VSync,
	}
	if err := viewer.Run(winCfg, mesh); err != nil {
		logger.Error("viewer exited with error")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
