package dash

import "github.com/vovakirdan/tui-dash/internal/core"

// SessionState is the gameplay state of a World.
type SessionState int

const (
	StatePlaying SessionState = iota
	StateGameOver
)

// String returns the name of the state.
func (s SessionState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Impact is a screen-shake request emitted on a collision.
type Impact struct {
	Intensity int
	Duration  int // Ticks
}

// Impact pulses for a survived hit and for the final hit.
var (
	impactHit      = Impact{Intensity: 5, Duration: 10}
	impactGameOver = Impact{Intensity: 10, Duration: 20}
)

// TickResult reports what happened during one tick.
type TickResult struct {
	Collided     bool          // The player hit something, even if shielded
	LifeLost     bool          // A collision cost a life
	GameOver     bool          // This tick ended the session
	NewHighScore bool          // The session ended above the previous high score
	Scored       int           // Entities passed this tick
	Picked       []PowerUpKind // Power-ups collected this tick
	Impact       Impact        // Zero unless a life was lost
}

// World owns the whole simulation: course, player, effects, score, lives.
// It is advanced one fixed tick at a time and never blocks or fails.
type World struct {
	t      Tuning
	gen    *Generator
	player *Player

	obstacles []Obstacle
	spikes    []Spike
	powerUps  []PowerUp
	effects   []ActiveEffect

	speed         float64
	score         int
	lives         int
	highScore     int
	invincibility int
	state         SessionState
	tick          uint64
}

// NewWorld creates a world with a freshly seeded course.
func NewWorld(t Tuning, rng Source) *World {
	w := &World{t: t}
	w.gen = NewGenerator(rng, &w.t)
	w.player = NewPlayer(&w.t)
	w.Restart()
	return w
}

// Restart begins a new session. The high score is kept.
func (w *World) Restart() {
	w.player.Reset()
	w.obstacles, w.spikes = w.gen.SeedCourse(w.t.SeedCount)
	w.powerUps = nil
	w.effects = nil
	w.speed = w.t.Speed
	w.score = 0
	w.lives = w.t.StartLives
	w.invincibility = 0
	w.state = StatePlaying
	w.tick = 0
}

// Tick advances the simulation by one step. jump requests a jump this tick.
// Once the session is over Tick does nothing until Restart.
func (w *World) Tick(jump bool) TickResult {
	var res TickResult
	if w.state == StateGameOver {
		return res
	}
	w.tick++

	if w.invincibility > 0 {
		w.invincibility--
	}

	w.obstacles, w.spikes, w.powerUps = w.gen.Cull(w.obstacles, w.spikes, w.powerUps)

	if e, ok := w.gen.Refill(w.obstacles, w.spikes); ok {
		switch e.Kind {
		case EntitySpike:
			w.spikes = append(w.spikes, Spike{e.Body})
		default:
			w.obstacles = append(w.obstacles, Obstacle{e.Body})
		}
	}

	if p, ok := w.gen.MaybeSpawnPowerUp(len(w.powerUps)); ok {
		w.powerUps = append(w.powerUps, p)
	}

	w.advanceCourse(&res)
	w.collectPowerUps(&res)

	if jump {
		w.player.Jump()
	}
	if w.player.Update(w.obstacles, w.spikes) {
		res.Collided = true
		if w.invincibility <= 0 {
			w.loseLife(&res)
		}
	}

	w.tickEffects()
	return res
}

// advanceCourse scrolls obstacles and spikes and scores those the player
// has cleared for the first time.
func (w *World) advanceCourse(res *TickResult) {
	px := w.player.x
	for i := range w.obstacles {
		res.Scored += w.advance(&w.obstacles[i].Body, px)
	}
	for i := range w.spikes {
		res.Scored += w.advance(&w.spikes[i].Body, px)
	}
}

func (w *World) advance(b *Body, px float64) int {
	b.X -= w.speed
	if !b.Passed && b.Right() < px {
		b.Passed = true
		w.score++
		return 1
	}
	return 0
}

// collectPowerUps scrolls power-ups and applies those touching the player.
func (w *World) collectPowerUps(res *TickResult) {
	if len(w.powerUps) == 0 {
		return
	}

	box := w.player.Box()
	kept := make([]PowerUp, 0, len(w.powerUps))
	for _, p := range w.powerUps {
		p.X -= w.speed
		if box.Overlaps(p.Box()) {
			w.applyPowerUp(p.Kind)
			res.Picked = append(res.Picked, p.Kind)
			continue
		}
		kept = append(kept, p)
	}
	w.powerUps = kept
}

func (w *World) loseLife(res *TickResult) {
	res.LifeLost = true
	w.lives--

	if w.lives > 0 {
		w.invincibility = w.t.HitInvincibility
		res.Impact = impactHit
		return
	}

	w.lives = 0
	w.state = StateGameOver
	res.GameOver = true
	res.Impact = impactGameOver
	if w.score > w.highScore {
		w.highScore = w.score
		res.NewHighScore = true
	}
}

// SetHighScore seeds the high score, usually from persistent storage.
func (w *World) SetHighScore(score int) {
	w.highScore = score
}

// State returns the session state.
func (w *World) State() SessionState { return w.state }

// Score returns the current score.
func (w *World) Score() int { return w.score }

// Lives returns the remaining lives.
func (w *World) Lives() int { return w.lives }

// HighScore returns the best score known to the world.
func (w *World) HighScore() int { return w.highScore }

// Speed returns the current scroll speed.
func (w *World) Speed() float64 { return w.speed }

// Invincibility returns the remaining ticks of damage immunity.
func (w *World) Invincibility() int { return w.invincibility }

// Player returns the player. Callers must treat it as read-only.
func (w *World) Player() *Player { return w.player }

// Tuning returns the tuning the world was built with.
func (w *World) Tuning() Tuning { return w.t }

// PowerUpView is a power-up as seen by renderers.
type PowerUpView struct {
	Box  core.Box
	Kind PowerUpKind
}

// Snapshot is a read-only copy of the world for rendering and tests.
type Snapshot struct {
	Tick          uint64
	State         SessionState
	Score         int
	Lives         int
	HighScore     int
	Invincibility int
	Speed         float64

	Player         core.Box
	PlayerRotation float64
	PlayerJumping  bool

	Obstacles []core.Box
	Spikes    []core.Box
	PowerUps  []PowerUpView
	Effects   []ActiveEffect
}

// Snapshot copies the current world state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:           w.tick,
		State:          w.state,
		Score:          w.score,
		Lives:          w.lives,
		HighScore:      w.highScore,
		Invincibility:  w.invincibility,
		Speed:          w.speed,
		Player:         w.player.Box(),
		PlayerRotation: w.player.rotation,
		PlayerJumping:  w.player.jumping,
		Obstacles:      make([]core.Box, len(w.obstacles)),
		Spikes:         make([]core.Box, len(w.spikes)),
		PowerUps:       make([]PowerUpView, len(w.powerUps)),
		Effects:        append([]ActiveEffect(nil), w.effects...),
	}
	for i, o := range w.obstacles {
		s.Obstacles[i] = o.Box()
	}
	for i, sp := range w.spikes {
		s.Spikes[i] = sp.Box()
	}
	for i, p := range w.powerUps {
		s.PowerUps[i] = PowerUpView{Box: p.Box(), Kind: p.Kind}
	}
	return s
}
