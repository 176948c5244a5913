package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default
func Load(customPath string) (PlatformerConfig, error) {
	var cfg PlatformerConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.normalize()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("platformer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.normalize()
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/platformer.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.normalize()
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.normalize()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}

// normalize fills zero-valued fields with defaults so partial config
// files remain usable.
func (c *PlatformerConfig) normalize() {
	def := DefaultPlatformerConfig()
	if c.World.Width <= 0 {
		c.World.Width = def.World.Width
	}
	if c.World.Height <= 0 {
		c.World.Height = def.World.Height
	}
	if c.Session.CompleteDelayMs <= 0 {
		c.Session.CompleteDelayMs = def.Session.CompleteDelayMs
	}
	if c.Session.IntroMs <= 0 {
		c.Session.IntroMs = def.Session.IntroMs
	}
	if c.Controls.HoldWindowMs <= 0 {
		c.Controls.HoldWindowMs = def.Controls.HoldWindowMs
	}
	c.Difficulty.Normalize()
}
