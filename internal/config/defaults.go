package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the hardcoded default configuration.
// Used as the final fallback if the embedded YAML cannot be parsed.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Session: SessionConfig{
			CompleteDelayMs: 1500,
			IntroMs:         2500,
		},
		Controls: ControlsConfig{
			HoldWindowMs: 150,
		},
		Difficulty: DifficultyConfig{
			GravityScale: 1.0,
			TimeScale:    1.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for writing a starter
// config file.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}

// IntroDuration returns the level banner duration as a time.Duration.
func (s SessionConfig) IntroDuration() time.Duration {
	return time.Duration(s.IntroMs) * time.Millisecond
}

// HoldWindow returns the key-hold approximation window as a
// time.Duration.
func (c ControlsConfig) HoldWindow() time.Duration {
	return time.Duration(c.HoldWindowMs) * time.Millisecond
}
