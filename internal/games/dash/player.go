package dash

import (
	"math"

	"github.com/vovakirdan/tui-dash/internal/core"
)

// Rotation steps in degrees per airborne tick.
const (
	spinFast      = 6.0
	spinSlow      = 4.0
	spinFastSpeed = 10.0 // |velocity| above which the faster spin is used
)

// Player is the auto-running square. It moves only vertically; the
// course scrolls past it.
type Player struct {
	t *Tuning

	x, y          float64
	size          float64
	vel           float64 // Vertical velocity, positive is down
	jumping       bool
	canDoubleJump bool
	onObstacle    bool // Standing on an obstacle top
	launched      bool // Jumped since the last Update
	rotation      float64
}

// NewPlayer creates a player resting on the ground.
func NewPlayer(t *Tuning) *Player {
	p := &Player{t: t}
	p.Reset()
	return p
}

// Reset puts the player back on the ground at rest.
func (p *Player) Reset() {
	p.size = p.t.PlayerSize
	p.x = p.t.PlayerX
	p.y = p.t.GroundY(p.size)
	p.vel = 0
	p.jumping = false
	p.canDoubleJump = false
	p.onObstacle = false
	p.launched = false
	p.rotation = 0
}

// Box returns the collision box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.x, p.y, p.size, p.size)
}

// Velocity returns the vertical velocity.
func (p *Player) Velocity() float64 { return p.vel }

// Jumping reports whether the player is airborne from a jump.
func (p *Player) Jumping() bool { return p.jumping }

// CanDoubleJump reports whether a second jump is still available.
func (p *Player) CanDoubleJump() bool { return p.canDoubleJump }

// OnObstacle reports whether the player is standing on an obstacle.
func (p *Player) OnObstacle() bool { return p.onObstacle }

// Rotation returns the display rotation in degrees, in [0, 360).
func (p *Player) Rotation() float64 { return p.rotation }

// Jump starts a jump from the ground or an obstacle top, or spends the
// double jump while airborne. Without a double jump left it does nothing.
// Repeated calls before the next Update act as one call.
func (p *Player) Jump() {
	switch {
	case p.launched:
	case !p.jumping || p.onObstacle:
		p.vel = -p.t.JumpStrength
		p.jumping = true
		p.canDoubleJump = true
		p.onObstacle = false
		p.launched = true
	case p.canDoubleJump:
		p.vel = -p.t.JumpStrength
		p.canDoubleJump = false
	}
}

// Update applies one tick of physics and resolves collisions against the
// course. It returns true on a fatal collision: any spike overlap or an
// obstacle side hit.
func (p *Player) Update(obstacles []Obstacle, spikes []Spike) bool {
	p.launched = false
	p.vel += p.t.Gravity
	p.y += p.vel

	if ground := p.t.GroundY(p.size); p.y >= ground {
		p.y = ground
		p.vel = 0
		p.jumping = false
		p.onObstacle = false
	}

	if p.jumping {
		step := spinSlow
		if math.Abs(p.vel) > spinFastSpeed {
			step = spinFast
		}
		p.rotation = math.Mod(p.rotation+step, 360)
	}

	box := p.Box()
	for _, s := range spikes {
		if box.Overlaps(s.Box()) {
			return true
		}
	}

	p.onObstacle = false
	for _, o := range obstacles {
		ob := o.Box()
		if p.landsOn(box, ob) {
			p.y = ob.Y - p.size
			p.vel = 0
			p.jumping = false
			p.onObstacle = true
			return false
		}
		if box.Overlaps(ob) && !p.grazes(box, ob) {
			return true
		}
	}

	return false
}

// landsOn reports whether the player, falling, crossed the top of ob
// during this tick while horizontally over it.
func (p *Player) landsOn(box, ob core.Box) bool {
	if p.vel <= 0 || !box.OverlapsX(ob) {
		return false
	}
	bottom := box.Bottom()
	return bottom >= ob.Y && bottom-p.vel <= ob.Y+p.t.LandingTolerance
}

// grazes reports whether the player's bottom is only just below the top
// of ob. Such overlaps are not side hits.
func (p *Player) grazes(box, ob core.Box) bool {
	bottom := box.Bottom()
	return bottom > ob.Y && bottom < ob.Y+p.t.SideGraze
}
