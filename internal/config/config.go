// Package config provides YAML-based configuration loading and
// difficulty management for the platformer.
package config

// PlatformerConfig contains all tunable host-side settings for the
// platformer. Level-specific physics live in the level files; this
// config covers the world frame, session pacing and input handling.
type PlatformerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Session    SessionConfig    `yaml:"session"`
	Controls   ControlsConfig   `yaml:"controls"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the simulation space in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SessionConfig defines campaign pacing.
type SessionConfig struct {
	CompleteDelayMs float64 `yaml:"complete_delay_ms"` // pause after finishing a level
	IntroMs         int     `yaml:"intro_ms"`          // level name banner duration
}

// ControlsConfig defines terminal input handling.
// Terminals report key presses but not releases, so held movement keys
// are approximated by keeping the action active for a short window
// after the last repeat event.
type ControlsConfig struct {
	HoldWindowMs int `yaml:"hold_window_ms"`
}

// DifficultyConfig scales the physics of every loaded level.
// Multipliers of 1.0 leave the level-authored physics untouched.
type DifficultyConfig struct {
	GravityScale float64 `yaml:"gravity_scale"`
	TimeScale    float64 `yaml:"time_scale"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ValidPreset reports whether the given preset name is recognized.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}
