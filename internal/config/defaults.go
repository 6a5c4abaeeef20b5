package config

import (
	_ "embed"
)

//go:embed defaults/dash.yaml
var defaultDashYAML []byte

// DefaultDashConfig returns the built-in runner configuration.
func DefaultDashConfig() DashConfig {
	return DashConfig{
		World: WorldConfig{
			Width:        800,
			Height:       400,
			GroundHeight: 50,
		},
		Physics: PhysicsConfig{
			Gravity:          1.0,
			JumpStrength:     18.0,
			Speed:            5.0,
			LandingTolerance: 5,
			SideGraze:        10,
		},
		Player: PlayerConfig{
			Size:   40,
			XRatio: 0.2,
		},
		Obstacles: ObstacleConfig{
			MinWidth:    60,
			MaxWidth:    120,
			MinHeight:   50,
			MaxHeight:   120,
			MinDistance: 150,
			MaxDistance: 300,
			Pending:     5,
			SeedCount:   20,
		},
		Spikes: SpikeConfig{
			Width:  30,
			Height: 30,
			Chance: 0.3,
		},
		PowerUps: PowerUpConfig{
			SpawnChance:   0.005,
			MaxLive:       2,
			Size:          30,
			ShieldTicks:   300, // 5 seconds at 60 ticks per second
			SlowTimeTicks: 300,
			SlowFactor:    0.5,
			ScoreBoost:    10,
		},
		Session: SessionConfig{
			StartLives:       3,
			MaxLives:         5,
			HitInvincibility: 120,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDashYAML
}
