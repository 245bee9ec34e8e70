package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagIterations = flag.Int("iterations", 0, "Number of operator iterations to run")
	flagRate       = flag.Float64("rate", 0, "Squarify relaxation rate")
	flagUniform    = flag.Bool("uniform", false, "Squarify toward a uniform quad size")
	flagWidth      = flag.Int("width", 0, "Viewer window width")
	flagHeight     = flag.Int("height", 0, "Viewer window height")
	flagFullscreen = flag.Bool("fullscreen", false, "Run the viewer fullscreen")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagIterations > 0 {
		cfg.Squarify.Iterations = *flagIterations
	}
	if *flagRate > 0 {
		cfg.Squarify.Rate = *flagRate
	}
	if *flagUniform {
		cfg.Squarify.UniformLength = true
	}
	if *flagWidth > 0 {
		cfg.Viewer.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Viewer.Height = *flagHeight
	}
	if *flagFullscreen {
		cfg.Viewer.Fullscreen = true
	}
}
