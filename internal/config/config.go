// Package config provides YAML-based configuration loading for the game,
// the SSH server and the high-score store.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Config is the complete application configuration.
type Config struct {
	TickRate  int             `yaml:"tick_rate"`
	Animation AnimationConfig `yaml:"animation"`
	Input     InputConfig     `yaml:"input"`
	Storage   StorageConfig   `yaml:"storage"`
	SSH       SSHConfig       `yaml:"ssh"`
	Log       LogConfig       `yaml:"log"`

	// Source is the file the config was read from, or "embedded".
	Source string `yaml:"-"`
}

// AnimationConfig defines tile animation lengths in ticks.
type AnimationConfig struct {
	SlideTicks int `yaml:"slide_ticks"`
	PopTicks   int `yaml:"pop_ticks"`
}

// InputConfig defines pointer input parameters.
type InputConfig struct {
	SwipeThreshold int `yaml:"swipe_threshold"` // Minimum mouse drag in cells
}

// StorageConfig defines where high scores are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// SSHConfig defines the remote play server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // Empty means ~/.t2048/ssh_host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Used by interactive play only
}

// Validate checks that values are usable.
func (c Config) Validate() error {
	if c.TickRate < 1 || c.TickRate > 240 {
		return fmt.Errorf("config: tick_rate must be in [1,240], got %d", c.TickRate)
	}
	if c.Animation.SlideTicks < 0 || c.Animation.PopTicks < 0 {
		return fmt.Errorf("config: animation ticks must not be negative")
	}
	if c.Input.SwipeThreshold < 1 {
		return fmt.Errorf("config: input.swipe_threshold must be at least 1, got %d", c.Input.SwipeThreshold)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("config: ssh.idle_timeout must not be negative")
	}
	return nil
}

// Runtime returns the per-game runtime settings for the given screen size.
func (c Config) Runtime(screenW, screenH int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    screenW,
		ScreenH:    screenH,
		TickRate:   c.TickRate,
		Seed:       seed,
		SlideTicks: c.Animation.SlideTicks,
		PopTicks:   c.Animation.PopTicks,
	}
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// DataDir returns ~/.t2048, where scores, logs and screenshots live.
func DataDir() string {
	return ExpandHome("~/.t2048")
}
