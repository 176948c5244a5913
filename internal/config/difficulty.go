package config

// presetScaling maps each named preset to its physics multipliers.
// Easy softens gravity and slows the clock a little; hard does the
// opposite. Fixed is absent: it keeps whatever the config file says.
var presetScaling = map[DifficultyPreset]DifficultyConfig{
	DifficultyEasy:   {GravityScale: 0.85, TimeScale: 0.9},
	DifficultyNormal: {GravityScale: 1.0, TimeScale: 1.0},
	DifficultyHard:   {GravityScale: 1.2, TimeScale: 1.1},
}

// ApplyPreset overwrites the difficulty multipliers with the values for
// the given preset. DifficultyFixed leaves the loaded config untouched
// so users can tune custom multipliers in their config file.
func ApplyPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		return
	}
	if scaling, ok := presetScaling[preset]; ok {
		cfg.Difficulty = scaling
	}
}

// Normalize fills unset multipliers with the identity so that a partial
// config file never zeroes the physics.
func (d *DifficultyConfig) Normalize() {
	if d.GravityScale <= 0 {
		d.GravityScale = 1.0
	}
	if d.TimeScale <= 0 {
		d.TimeScale = 1.0
	}
}
