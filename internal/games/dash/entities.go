package dash

import "github.com/vovakirdan/tui-dash/internal/core"

// Body is the shared shape of scrolling course entities.
type Body struct {
	X, Y          float64 // Top-left corner in world units
	Width, Height float64
	Passed        bool // Set once the player has cleared it and it was scored
}

// Box returns the collision box.
func (b Body) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.Width, b.Height)
}

// Right returns the x-coordinate of the right edge.
func (b Body) Right() float64 {
	return b.X + b.Width
}

func (b Body) offscreen() bool {
	return b.X <= -b.Width
}

// Obstacle is a ground platform. Landing on its top is safe, hitting
// its side is fatal.
type Obstacle struct {
	Body
}

// Spike is a hazard that is fatal on any overlap.
type Spike struct {
	Body
}

// EntityKind distinguishes course entities produced by the generator.
type EntityKind int

const (
	EntityObstacle EntityKind = iota
	EntitySpike
)

// String returns the name of the entity kind.
func (k EntityKind) String() string {
	switch k {
	case EntityObstacle:
		return "obstacle"
	case EntitySpike:
		return "spike"
	default:
		return "unknown"
	}
}

// Entity is a newly generated obstacle or spike.
type Entity struct {
	Kind EntityKind
	Body Body
}

// PowerUpKind represents the collectible power-up types.
type PowerUpKind int

const (
	PowerUpExtraLife  PowerUpKind = iota // One more life, up to the cap
	PowerUpShield                        // Timed invincibility
	PowerUpScoreBoost                    // Flat score bonus
	PowerUpSlowTime                      // Timed half-speed scrolling
	powerUpKindCount                     // Sentinel for counting kinds
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpExtraLife:
		return "extra_life"
	case PowerUpShield:
		return "shield"
	case PowerUpScoreBoost:
		return "score_boost"
	case PowerUpSlowTime:
		return "slow_time"
	default:
		return "unknown"
	}
}

// Label returns a short display name.
func (k PowerUpKind) Label() string {
	switch k {
	case PowerUpExtraLife:
		return "Life"
	case PowerUpShield:
		return "Shield"
	case PowerUpScoreBoost:
		return "+Score"
	case PowerUpSlowTime:
		return "Slow"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpExtraLife:
		return '♥'
	case PowerUpShield:
		return '◎'
	case PowerUpScoreBoost:
		return '★'
	case PowerUpSlowTime:
		return '◷'
	default:
		return '?'
	}
}

// PowerUp is a collectible floating above the course.
type PowerUp struct {
	X, Y float64
	Size float64
	Kind PowerUpKind
}

// Box returns the pickup box.
func (p PowerUp) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Size, p.Size)
}

func (p PowerUp) offscreen() bool {
	return p.X <= -p.Size
}
