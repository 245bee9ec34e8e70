// Package config handles configuration loading for the bmesh command
// line tools.
package config

// Config holds all tool settings.
type Config struct {
	Squarify SquarifyConfig `yaml:"squarify"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SquarifyConfig holds the default parameters for the squarify operator
// when invoked from the CLI without explicit flags.
type SquarifyConfig struct {
	Iterations    int     `yaml:"iterations"`
	Rate          float64 `yaml:"rate"`
	UniformLength bool    `yaml:"uniform_length"`
}

// ViewerConfig holds the debug-line viewer's window settings.
type ViewerConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Squarify: SquarifyConfig{
			Iterations:    20,
			Rate:          0.5,
			UniformLength: false,
		},
		Viewer: ViewerConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
