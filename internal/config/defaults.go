package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/t2048.yaml.
func Default() Config {
	return Config{
		TickRate: 60,
		Animation: AnimationConfig{
			SlideTicks: 8,
			PopTicks:   6,
		},
		Input: InputConfig{
			SwipeThreshold: 2,
		},
		Storage: StorageConfig{
			DBPath: "~/.t2048/scores.db",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.t2048/t2048.log",
		},
		Source: "embedded",
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
