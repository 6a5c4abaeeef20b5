package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDash loads the runner configuration.
// Search order: customPath -> ~/.dash/configs/dash.yaml -> ./configs/dash.yaml -> embedded default
//
// Files are decoded over the defaults, so partial files only override the
// keys they set. The result is not validated; call Validate before use.
func LoadDash(customPath string) (DashConfig, error) {
	cfg := DefaultDashConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("dash.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultDashConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/dash.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultDashConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDashYAML, &cfg); err != nil {
		return DefaultDashConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dash", "configs", filename)
}

// ApplyPreset modifies the config based on a named preset.
// Presets only pick starting lives and the scroll speed constant.
func ApplyPreset(cfg *DashConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Session.StartLives = 5
		cfg.Physics.Speed = 4.0
	case PresetHard:
		cfg.Session.StartLives = 2
		cfg.Physics.Speed = 6.5
	}
}

// LivesCap is the most lives a session can ever hold.
const LivesCap = 5

// Validate reports configuration errors. Invalid ranges are programming
// errors and must stop the program before a session starts.
func (c DashConfig) Validate() error {
	var errs []error

	checkRange := func(name string, lo, hi int) {
		if lo > hi {
			errs = append(errs, fmt.Errorf("%s: min %d > max %d", name, lo, hi))
		}
	}
	checkPositive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	checkChance := func(name string, p float64) {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("%s must be in [0, 1], got %v", name, p))
		}
	}

	checkPositive("world.width", c.World.Width)
	checkPositive("world.height", c.World.Height)
	if c.World.GroundHeight < 0 || c.World.GroundHeight >= c.World.Height {
		errs = append(errs, fmt.Errorf("world.ground_height must be in [0, height), got %v", c.World.GroundHeight))
	}

	checkPositive("physics.gravity", c.Physics.Gravity)
	checkPositive("physics.jump_strength", c.Physics.JumpStrength)
	checkPositive("physics.speed", c.Physics.Speed)
	checkPositive("player.size", c.Player.Size)
	checkChance("player.x_ratio", c.Player.XRatio)

	checkRange("obstacles.width", c.Obstacles.MinWidth, c.Obstacles.MaxWidth)
	checkRange("obstacles.height", c.Obstacles.MinHeight, c.Obstacles.MaxHeight)
	checkRange("obstacles.distance", c.Obstacles.MinDistance, c.Obstacles.MaxDistance)
	checkPositive("obstacles.min_width", float64(c.Obstacles.MinWidth))
	checkPositive("obstacles.min_height", float64(c.Obstacles.MinHeight))
	if c.Obstacles.Pending < 1 {
		errs = append(errs, fmt.Errorf("obstacles.pending must be at least 1, got %d", c.Obstacles.Pending))
	}

	checkPositive("spikes.width", float64(c.Spikes.Width))
	checkPositive("spikes.height", float64(c.Spikes.Height))
	checkChance("spikes.chance", c.Spikes.Chance)

	checkChance("powerups.spawn_chance", c.PowerUps.SpawnChance)
	checkChance("powerups.slow_factor", c.PowerUps.SlowFactor)
	checkPositive("powerups.size", c.PowerUps.Size)
	if c.PowerUps.ScoreBoost < 0 {
		errs = append(errs, fmt.Errorf("powerups.score_boost must not be negative, got %d", c.PowerUps.ScoreBoost))
	}

	if c.Session.MaxLives < 1 || c.Session.MaxLives > LivesCap {
		errs = append(errs, fmt.Errorf("session.max_lives must be in [1, %d], got %d", LivesCap, c.Session.MaxLives))
	}
	if c.Session.StartLives < 1 || c.Session.StartLives > c.Session.MaxLives {
		errs = append(errs, fmt.Errorf("session.start_lives must be in [1, max_lives], got %d", c.Session.StartLives))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
