package dash

import (
	"testing"

	"github.com/vovakirdan/tui-dash/internal/config"
)

// scriptedSource replays fixed draws. When a queue runs out Uniform
// returns min and Chance returns false.
type scriptedSource struct {
	ints  []int
	bools []bool
}

func (s *scriptedSource) Uniform(lo, hi int) int {
	if len(s.ints) == 0 {
		return lo
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return max(min(v, hi), lo)
}

func (s *scriptedSource) Chance(p float64) bool {
	if len(s.bools) == 0 {
		return false
	}
	v := s.bools[0]
	s.bools = s.bools[1:]
	return v
}

func testTuning(t *testing.T) Tuning {
	t.Helper()
	tu, err := NewTuning(config.DefaultDashConfig())
	if err != nil {
		t.Fatalf("NewTuning() failed: %v", err)
	}
	return tu
}

// newEmptyWorld returns a world with no course and no refills, so tests
// can place entities by hand.
func newEmptyWorld(t *testing.T, mutate ...func(*Tuning)) *World {
	t.Helper()
	tu := testTuning(t)
	tu.Pending = 0
	tu.SeedCount = 0
	for _, m := range mutate {
		m(&tu)
	}
	return NewWorld(tu, &scriptedSource{})
}

// spikeOnPlayer returns a spike covering the resting player.
func spikeOnPlayer(w *World) Spike {
	b := w.player.Box()
	return Spike{Body{X: b.X, Y: b.Y, Width: b.W, Height: b.H}}
}

// powerUpOnPlayer returns a power-up overlapping the resting player.
func powerUpOnPlayer(w *World, kind PowerUpKind) PowerUp {
	b := w.player.Box()
	return PowerUp{X: b.X + 5, Y: b.Y + 5, Size: w.t.PowerUpSize, Kind: kind}
}
