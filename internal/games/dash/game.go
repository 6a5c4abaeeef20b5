// Package dash implements a side-scrolling runner. The player auto-runs,
// jumps and double-jumps over platforms and spikes, collects power-ups
// and keeps a score until collisions use up its lives.
//
// The simulation (World) is pure and deterministic for a given random
// Source. Game adapts it to the registry interface used by the platform.
package dash

import (
	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/registry"
)

// GameID is the registry and score storage identifier.
const GameID = "dash"

// Ticks a pickup banner stays on screen.
const bannerTicks = 60

// Game implements the runner on top of a World.
type Game struct {
	cfg       config.DashConfig
	world     *World
	runtime   core.RuntimeConfig
	paused    bool
	highScore int
	newHigh   bool // The last session ended with a record

	shake      Impact // Remaining screen shake
	banner     string // Last pickup, shown briefly
	bannerLeft int
}

// New creates a runner using the configuration found on the standard
// search path, or the defaults when none loads.
func New() *Game {
	cfg, err := config.LoadDash("")
	if err != nil {
		cfg = config.DefaultDashConfig()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a runner with an explicit configuration. An invalid
// configuration falls back to the defaults at Reset; callers validate first.
func NewWithConfig(cfg config.DashConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dash Runner"
}

// Reset starts a fresh session, keeping the best score seen so far.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	t, err := NewTuning(g.cfg)
	if err != nil {
		t = MustTuning(config.DefaultDashConfig())
	}

	if g.world != nil {
		g.highScore = max(g.highScore, g.world.HighScore())
	}

	g.world = NewWorld(t, NewRandSource(runtime.Seed))
	g.world.SetHighScore(g.highScore)
	g.paused = false
	g.newHigh = false
	g.shake = Impact{}
	g.banner = ""
	g.bannerLeft = 0
}

// SetHighScore seeds the best known score, usually from disk.
func (g *Game) SetHighScore(score int) {
	g.highScore = max(g.highScore, score)
	if g.world != nil {
		g.world.SetHighScore(max(g.world.HighScore(), g.highScore))
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		g.Reset(core.DefaultConfig())
	}

	if g.shake.Duration > 0 {
		g.shake.Duration--
	}
	if g.bannerLeft > 0 {
		g.bannerLeft--
	}

	if g.world.State() == StateGameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	res := g.world.Tick(in.Has(core.ActionJump))

	if res.NewHighScore {
		g.newHigh = true
	}
	if res.Impact.Duration > 0 {
		g.shake = res.Impact
	}
	if n := len(res.Picked); n > 0 {
		g.banner = res.Picked[n-1].Label() + "!"
		g.bannerLeft = bannerTicks
	}

	return core.StepResult{
		State:        g.State(),
		Hit:          res.LifeLost,
		NewHighScore: res.NewHighScore,
	}
}

// World exposes the underlying simulation.
func (g *Game) World() *World {
	return g.world
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{HighScore: g.highScore}
	}
	return core.GameState{
		Score:     g.world.Score(),
		HighScore: g.world.HighScore(),
		Lives:     g.world.Lives(),
		GameOver:  g.world.State() == StateGameOver,
		Paused:    g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
