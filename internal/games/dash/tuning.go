package dash

import (
	"fmt"

	"github.com/vovakirdan/tui-dash/internal/config"
)

// Reference world size the configuration values are expressed in.
const (
	referenceWidth  = 800.0
	referenceHeight = 400.0
)

// Course seeding spacing in reference units. The initial course is more
// generous than live refills so the opening stays traversable.
const (
	seedExtraMin = 30 // Added to the minimum step distance
	seedExtraMax = 50 // Added to the maximum step distance
	seedSpikeGap = 20 // Extra room on both sides of a seeded spike
)

// Power-up spawn window in reference units.
const (
	powerUpSpawnMin    = 50 // Horizontal offset past the right edge
	powerUpSpawnMax    = 200
	powerUpGroundClear = 50 // Minimum clearance above the ground
)

// Tuning holds every size, speed and timer the simulation uses, derived once
// from a DashConfig when a session is created.
type Tuning struct {
	WorldW    float64
	WorldH    float64
	GroundTop float64 // Y of the ground line

	Gravity          float64
	JumpStrength     float64
	Speed            float64 // Base scroll speed
	LandingTolerance float64
	SideGraze        float64

	PlayerSize float64
	PlayerX    float64

	ObstacleWidthMin  int
	ObstacleWidthMax  int
	ObstacleHeightMin int
	ObstacleHeightMax int
	MinDistance       int
	MaxDistance       int
	Pending           int
	SeedCount         int
	SeedExtraMin      int
	SeedExtraMax      int
	SeedSpikeGap      int

	SpikeWidth  int
	SpikeHeight int
	SpikeChance float64

	PowerUpChance   float64
	MaxPowerUps     int
	PowerUpSize     float64
	PowerUpSpawnMin int
	PowerUpSpawnMax int
	PowerUpTop      int
	PowerUpBottom   int
	ShieldTicks     int
	SlowTimeTicks   int
	SlowFactor      float64
	ScoreBoost      int
	RefreshEffects  bool

	StartLives       int
	MaxLives         int
	HitInvincibility int
}

// NewTuning validates cfg and derives the simulation tuning from it.
func NewTuning(cfg config.DashConfig) (Tuning, error) {
	if err := cfg.Validate(); err != nil {
		return Tuning{}, err
	}

	sx := cfg.World.Width / referenceWidth
	sy := cfg.World.Height / referenceHeight

	t := Tuning{
		WorldW:    cfg.World.Width,
		WorldH:    cfg.World.Height,
		GroundTop: cfg.World.Height - float64(scaleInt(cfg.World.GroundHeight, sy)),

		Gravity:          cfg.Physics.Gravity * sy,
		JumpStrength:     cfg.Physics.JumpStrength * sy,
		Speed:            cfg.Physics.Speed * sx,
		LandingTolerance: cfg.Physics.LandingTolerance * sy,
		SideGraze:        cfg.Physics.SideGraze * sy,

		PlayerSize: float64(scaleInt(cfg.Player.Size, sx)),
		PlayerX:    float64(scaleInt(cfg.World.Width*cfg.Player.XRatio, 1)),

		ObstacleWidthMin:  scaleInt(float64(cfg.Obstacles.MinWidth), sx),
		ObstacleWidthMax:  scaleInt(float64(cfg.Obstacles.MaxWidth), sx),
		ObstacleHeightMin: scaleInt(float64(cfg.Obstacles.MinHeight), sy),
		ObstacleHeightMax: scaleInt(float64(cfg.Obstacles.MaxHeight), sy),
		MinDistance:       scaleInt(float64(cfg.Obstacles.MinDistance), sx),
		MaxDistance:       scaleInt(float64(cfg.Obstacles.MaxDistance), sx),
		Pending:           cfg.Obstacles.Pending,
		SeedCount:         cfg.Obstacles.SeedCount,
		SeedExtraMin:      scaleInt(seedExtraMin, sx),
		SeedExtraMax:      scaleInt(seedExtraMax, sx),
		SeedSpikeGap:      scaleInt(seedSpikeGap, sx),

		SpikeWidth:  scaleInt(float64(cfg.Spikes.Width), sx),
		SpikeHeight: scaleInt(float64(cfg.Spikes.Height), sy),
		SpikeChance: cfg.Spikes.Chance,

		PowerUpChance:   cfg.PowerUps.SpawnChance,
		MaxPowerUps:     cfg.PowerUps.MaxLive,
		PowerUpSize:     float64(scaleInt(cfg.PowerUps.Size, sx)),
		PowerUpSpawnMin: scaleInt(powerUpSpawnMin, sx),
		PowerUpSpawnMax: scaleInt(powerUpSpawnMax, sx),
		ShieldTicks:     cfg.PowerUps.ShieldTicks,
		SlowTimeTicks:   cfg.PowerUps.SlowTimeTicks,
		SlowFactor:      cfg.PowerUps.SlowFactor,
		ScoreBoost:      cfg.PowerUps.ScoreBoost,
		RefreshEffects:  cfg.PowerUps.Refresh,

		StartLives:       cfg.Session.StartLives,
		MaxLives:         cfg.Session.MaxLives,
		HitInvincibility: cfg.Session.HitInvincibility,
	}

	t.PowerUpTop = int(t.WorldH / 4)
	t.PowerUpBottom = int(t.GroundTop) - scaleInt(powerUpGroundClear, sy)
	if t.PowerUpBottom < t.PowerUpTop {
		t.PowerUpBottom = t.PowerUpTop
	}

	// Scaling keeps order, but tiny worlds can collapse sizes to zero.
	if t.PlayerSize <= 0 || t.ObstacleWidthMin <= 0 || t.ObstacleHeightMin <= 0 ||
		t.SpikeWidth <= 0 || t.SpikeHeight <= 0 {
		return Tuning{}, fmt.Errorf("dash: world %vx%v too small for configured sizes", t.WorldW, t.WorldH)
	}

	return t, nil
}

// MustTuning is NewTuning for configurations known to be valid.
func MustTuning(cfg config.DashConfig) Tuning {
	t, err := NewTuning(cfg)
	if err != nil {
		panic(err)
	}
	return t
}

// GroundY returns the resting Y of an entity of the given height.
func (t *Tuning) GroundY(height float64) float64 {
	return t.GroundTop - height
}

func scaleInt(v, s float64) int {
	return int(v * s)
}
