// Command bmeshtool exercises the bmesh library from the command line:
// building demo shapes, running subdivision, and iterating the squarify
// relaxation, all against the same layered configuration and logging
// conventions used by the viewer.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/daniel-amthauer/BMeshUnreal/internal/config"
	"github.com/daniel-amthauer/BMeshUnreal/internal/demo"
	"github.com/daniel-amthauer/BMeshUnreal/internal/logger"
	"github.com/daniel-amthauer/BMeshUnreal/pkg/bmesh"
	"github.com/daniel-amthauer/BMeshUnreal/pkg/bmesh/ops"
)

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

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}

	var runErr error
	switch args[0] {
	case "demo":
		runErr = runDemo(args[1:])
	case "subdivide":
		runErr = runSubdivide(args[1:], cfg)
	case "squarify":
		runErr = runSquarify(args[1:], cfg)
	case "config":
		runErr = runConfig(args[1:], cfg)
	default:
		usage()
		os.Exit(2)
	}

	if runErr != nil {
		logger.Error("command failed", zap.Error(runErr))
		fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: bmeshtool <command> [args]

commands:
  demo <shape>                  build a shape and validate its invariants
  subdivide <shape> [-iters N]  build a shape and subdivide it N times
  squarify <shape> [-iters N] [-rate R] [-uniform]
                                 build a shape and relax it toward squares
  config save [-path FILE]      write the resolved config to disk

shapes: %v
`, demo.Names)
}

func runDemo(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("demo requires a shape name")
	}
	mesh, err := demo.Build(args[0])
	if err != nil {
		return err
	}
	if err := bmesh.Validate(mesh); err != nil {
		return fmt.Errorf("invariant violated: %w", err)
	}
	fmt.Printf("vertices=%d edges=%d loops=%d faces=%d\n",
		len(mesh.Vertices()), len(mesh.Edges()), len(mesh.Loops()), len(mesh.Faces()))
	return nil
}

func runSubdivide(args []string, cfg *config.Config) error {
	fs := flag.NewFlagSet("subdivide", flag.ExitOnError)
	iters := fs.Int("iters", cfg.Squarify.Iterations, "number of subdivision passes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("subdivide requires a shape name")
	}
	mesh, err := demo.Build(fs.Arg(0))
	if err != nil {
		return err
	}
	for i := 0; i < *iters; i++ {
		ops.Subdivide(mesh)
	}
	if err := bmesh.Validate(mesh); err != nil {
		return fmt.Errorf("invariant violated after subdivide: %w", err)
	}
	fmt.Printf("after %d subdivisions: vertices=%d edges=%d loops=%d faces=%d\n",
		*iters, len(mesh.Vertices()), len(mesh.Edges()), len(mesh.Loops()), len(mesh.Faces()))
	return nil
}

func runSquarify(args []string, cfg *config.Config) error {
	fs := flag.NewFlagSet("squarify", flag.ExitOnError)
	iters := fs.Int("iters", cfg.Squarify.Iterations, "number of relaxation passes")
	rate := fs.Float64("rate", cfg.Squarify.Rate, "relaxation rate")
	uniform := fs.Bool("uniform", cfg.Squarify.UniformLength, "relax toward a uniform quad size")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("squarify requires a shape name")
	}
	mesh, err := demo.Build(fs.Arg(0))
	if err != nil {
		return err
	}

	for i := 0; i < *iters; i++ {
		before := make([]float64, len(mesh.Vertices()))
		for j, v := range mesh.Vertices() {
			before[j] = v.Position.Length()
		}
		ops.SquarifyQuads(mesh, *rate, *uniform)

		maxDisplacement := 0.0
		for j, v := range mesh.Vertices() {
			d := v.Position.Length() - before[j]
			if d < 0 {
				d = -d
			}
			if d > maxDisplacement {
				maxDisplacement = d
			}
		}
		fmt.Printf("iteration %d: max displacement = %f\n", i, maxDisplacement)
	}
	return nil
}

func runConfig(args []string, cfg *config.Config) error {
	if len(args) < 1 || args[0] != "save" {
		return fmt.Errorf("config requires a subcommand: save")
	}
	fs := flag.NewFlagSet("config save", flag.ExitOnError)
	path := fs.String("path", "", "write to this path instead of the default config directory")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	if *path != "" {
		if err := cfg.SaveTo(*path); err != nil {
			return fmt.Errorf("saving config to %s: %w", *path, err)
		}
		fmt.Printf("wrote config to %s\n", *path)
		return nil
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("wrote config to %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	return nil
}
