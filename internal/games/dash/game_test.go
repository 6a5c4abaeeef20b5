package dash

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame() *Game {
	return NewWithConfig(config.DefaultDashConfig())
}

func TestGameUsesItsConfig(t *testing.T) {
	cfg := config.DefaultDashConfig()
	cfg.Session.StartLives = 5
	cfg.Physics.Speed = 6.5

	g := NewWithConfig(cfg)
	g.Reset(testRuntime(1))

	if st := g.State(); st.Lives != 5 {
		t.Errorf("Lives = %d, expected 5 from the config", st.Lives)
	}
	if g.World().Speed() != 6.5 {
		t.Errorf("Speed = %v, expected 6.5 from the config", g.World().Speed())
	}

	// A second game is unaffected
	other := newTestGame()
	other.Reset(testRuntime(1))
	if other.State().Lives != 3 {
		t.Errorf("other game Lives = %d, expected default 3", other.State().Lives)
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must give identical runs
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%25 == 0 || i%25 == 8 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() Snapshot {
		g := newTestGame()
		g.Reset(testRuntime(12345))
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.World().Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Score != s2.Score || s1.Tick != s2.Tick || s1.Lives != s2.Lives {
		t.Errorf("runs differ: score %d/%d tick %d/%d lives %d/%d",
			s1.Score, s2.Score, s1.Tick, s2.Tick, s1.Lives, s2.Lives)
	}
	if s1.Player != s2.Player {
		t.Errorf("player positions differ: %+v vs %+v", s1.Player, s2.Player)
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame()
	g.Reset(testRuntime(42))

	for i := 0; i < 50; i++ {
		in := core.NewInputFrame()
		if i%10 == 0 {
			in.Set(core.ActionJump)
		}
		g.Step(in)
	}

	g.Reset(testRuntime(42))

	state := g.State()
	if state.Score != 0 || state.GameOver || state.Paused {
		t.Errorf("Reset() left state %+v", state)
	}
	if state.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", state.Lives)
	}
	if g.World().Snapshot().Tick != 0 {
		t.Error("Reset() should start a fresh world")
	}
}

func TestGameKeepsHighScore(t *testing.T) {
	g := newTestGame()
	g.Reset(testRuntime(1))
	g.SetHighScore(42)

	if g.State().HighScore != 42 {
		t.Errorf("HighScore = %d, expected 42", g.State().HighScore)
	}

	g.Reset(testRuntime(2))
	if g.State().HighScore != 42 {
		t.Errorf("HighScore = %d after Reset(), expected 42", g.State().HighScore)
	}

	// A lower value never replaces a known record
	g.SetHighScore(10)
	if g.State().HighScore != 42 {
		t.Errorf("HighScore = %d, expected 42", g.State().HighScore)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame()
	g.Reset(testRuntime(1))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	if !g.Step(pause).State.Paused {
		t.Fatal("pause input should pause the game")
	}

	tick := g.World().Snapshot().Tick
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.World().Snapshot().Tick != tick {
		t.Error("paused game should not advance")
	}

	if g.Step(pause).State.Paused {
		t.Error("second pause input should resume")
	}
	if g.World().Snapshot().Tick != tick+1 {
		t.Error("resuming should advance one tick")
	}
}

func TestGameStepReportsHit(t *testing.T) {
	g := newTestGame()
	g.Reset(testRuntime(1))
	w := g.World()
	w.spikes = append(w.spikes, spikeOnPlayer(w))

	res := g.Step(core.NewInputFrame())
	if !res.Hit {
		t.Error("Step() should report the lost life")
	}
	if res.State.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", res.State.Lives)
	}
	if g.shake.Duration != 10 {
		t.Errorf("shake duration = %d, expected 10", g.shake.Duration)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame()
	g.Reset(testRuntime(1))
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score: 0", string(GroundChar), string(PlayerChar), string(LifeChar)} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q", want)
		}
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame()
	g.Reset(testRuntime(1))
	w := g.World()
	w.lives = 1
	w.spikes = append(w.spikes, spikeOnPlayer(w))

	if !g.Step(core.NewInputFrame()).State.GameOver {
		t.Fatal("expected game over")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay not rendered")
	}
}

func TestProjection(t *testing.T) {
	tu := testTuning(t)
	proj := newProjection(&tu, 80, 21, 0)

	// 800x400 world onto 80 columns and 20 playfield rows
	r := proj.rect(NewPlayer(&tu).Box())
	if r.X != 16 || r.W != 4 {
		t.Errorf("player columns = %d+%d, expected 16+4", r.X, r.W)
	}
	if r.Y != 1+15 || r.H != 3 {
		t.Errorf("player rows = %d+%d, expected 16+3", r.Y, r.H)
	}

	tiny := proj.rect(core.NewBox(0, 0, 0.1, 0.1))
	if tiny.W != 1 || tiny.H != 1 {
		t.Errorf("tiny box = %+v, expected at least one cell", tiny)
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("registry.Create(%q) failed: %v", GameID, err)
	}
	if g.Title() != "Dash Runner" {
		t.Errorf("Title() = %q", g.Title())
	}
}
