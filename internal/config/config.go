// Package config provides YAML-based configuration loading and validation
// for the runner. Values are expressed in reference units of an 800x400
// world and scaled by the simulation when the world size differs.
package config

// DashConfig contains all configuration for the runner.
type DashConfig struct {
	World     WorldConfig    `yaml:"world"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Spikes    SpikeConfig    `yaml:"spikes"`
	PowerUps  PowerUpConfig  `yaml:"powerups"`
	Session   SessionConfig  `yaml:"session"`
}

// WorldConfig defines the simulated world size.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// PhysicsConfig defines player physics and collision windows.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jump_strength"`
	Speed        float64 `yaml:"speed"` // Scroll speed in units per tick

	// LandingTolerance is how far past an obstacle top (in units, on top of
	// one tick of fall) the player may start a tick and still land on it.
	LandingTolerance float64 `yaml:"landing_tolerance"`

	// SideGraze is the depth below an obstacle top that is not treated as a
	// side hit. Tunable heuristic.
	SideGraze float64 `yaml:"side_graze"`
}

// PlayerConfig defines player placement and size.
type PlayerConfig struct {
	Size   float64 `yaml:"size"`
	XRatio float64 `yaml:"x_ratio"` // Horizontal position as a fraction of world width
}

// ObstacleConfig defines platform ranges and course spacing.
type ObstacleConfig struct {
	MinWidth    int `yaml:"min_width"`
	MaxWidth    int `yaml:"max_width"`
	MinHeight   int `yaml:"min_height"`
	MaxHeight   int `yaml:"max_height"`
	MinDistance int `yaml:"min_distance"`
	MaxDistance int `yaml:"max_distance"`
	Pending     int `yaml:"pending"`    // Obstacles+spikes kept ahead of the player
	SeedCount   int `yaml:"seed_count"` // Entities placed when a course starts
}

// SpikeConfig defines spike sizes and frequency.
type SpikeConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Chance float64 `yaml:"chance"`
}

// PowerUpConfig defines power-up spawning and effect strength.
type PowerUpConfig struct {
	SpawnChance   float64 `yaml:"spawn_chance"` // Per tick
	MaxLive       int     `yaml:"max_live"`
	Size          float64 `yaml:"size"`
	ShieldTicks   int     `yaml:"shield_ticks"`
	SlowTimeTicks int     `yaml:"slow_time_ticks"`
	SlowFactor    float64 `yaml:"slow_factor"`
	ScoreBoost    int     `yaml:"score_boost"`

	// Refresh makes re-collecting an active effect reset its timer instead
	// of stacking a second entry.
	Refresh bool `yaml:"refresh"`
}

// SessionConfig defines lives and damage handling.
type SessionConfig struct {
	StartLives       int `yaml:"start_lives"`
	MaxLives         int `yaml:"max_lives"`
	HitInvincibility int `yaml:"hit_invincibility"` // Ticks of immunity after a hit
}

// Preset represents a named starting setup.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty means no preset.
func ParsePreset(s string) (Preset, bool) {
	switch Preset(s) {
	case PresetEasy, PresetNormal, PresetHard:
		return Preset(s), true
	case "":
		return "", true
	default:
		return "", false
	}
}
