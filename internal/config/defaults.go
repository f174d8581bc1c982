package config

import (
	_ "embed"
)

//go:embed defaults/windmaze.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It matches the embedded defaults/windmaze.yaml.
func Default() Config {
	return Config{
		Maze: "reference",
		Wind: "",
		Search: SearchConfig{
			Strategy:       "mark-on-push",
			Reconstruction: "parent",
		},
		Output: OutputConfig{
			Color:     string(ColorAuto),
			Discovery: true,
		},
		Journal: JournalConfig{
			Enabled: true,
			Path:    "~/.windmaze/runs.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Source: "default",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
