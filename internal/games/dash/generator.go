package dash

// Generator places obstacles, spikes and power-ups ahead of the player
// and culls them once they scroll off the left edge.
type Generator struct {
	rng Source
	t   *Tuning
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng Source, t *Tuning) *Generator {
	return &Generator{rng: rng, t: t}
}

// Refill produces at most one new obstacle or spike when fewer than
// Pending entities remain. The new entity starts a random distance past
// the rightmost existing entity, and never before the right world edge.
func (g *Generator) Refill(obstacles []Obstacle, spikes []Spike) (Entity, bool) {
	if len(obstacles)+len(spikes) >= g.t.Pending {
		return Entity{}, false
	}

	rightmost := g.t.WorldW
	for _, o := range obstacles {
		rightmost = max(rightmost, o.X)
	}
	for _, s := range spikes {
		rightmost = max(rightmost, s.X)
	}

	x := rightmost + float64(g.rng.Uniform(g.t.MinDistance, g.t.MaxDistance))
	if g.rng.Chance(g.t.SpikeChance) {
		return Entity{Kind: EntitySpike, Body: g.newSpike(x).Body}, true
	}
	return Entity{Kind: EntityObstacle, Body: g.newObstacle(x).Body}, true
}

// SeedCourse lays out n entities left to right starting at the right
// world edge, with wider spacing than live refills.
func (g *Generator) SeedCourse(n int) ([]Obstacle, []Spike) {
	obstacles := make([]Obstacle, 0, n)
	var spikes []Spike

	x := g.t.WorldW
	for i := 0; i < n; i++ {
		d := float64(g.rng.Uniform(g.t.MinDistance+g.t.SeedExtraMin, g.t.MaxDistance+g.t.SeedExtraMax))
		gap := float64(g.t.SeedSpikeGap)

		if g.rng.Chance(g.t.SpikeChance) {
			s := g.newSpike(x + gap)
			spikes = append(spikes, s)
			x += s.Width + d + gap
			continue
		}

		o := g.newObstacle(x)
		obstacles = append(obstacles, o)
		x += o.Width + d
	}

	return obstacles, spikes
}

// MaybeSpawnPowerUp rolls for a new power-up while fewer than MaxPowerUps
// are live. It spawns past the right edge at a reachable height.
func (g *Generator) MaybeSpawnPowerUp(live int) (PowerUp, bool) {
	if live >= g.t.MaxPowerUps || !g.rng.Chance(g.t.PowerUpChance) {
		return PowerUp{}, false
	}

	x := g.t.WorldW + float64(g.rng.Uniform(g.t.PowerUpSpawnMin, g.t.PowerUpSpawnMax))
	y := float64(g.rng.Uniform(g.t.PowerUpTop, g.t.PowerUpBottom))
	kind := PowerUpKind(g.rng.Uniform(0, int(powerUpKindCount)-1))

	return PowerUp{X: x, Y: y, Size: g.t.PowerUpSize, Kind: kind}, true
}

// Cull drops every entity that has fully left the screen.
func (g *Generator) Cull(obstacles []Obstacle, spikes []Spike, powerUps []PowerUp) ([]Obstacle, []Spike, []PowerUp) {
	return compact(obstacles, Obstacle.offscreen),
		compact(spikes, Spike.offscreen),
		compact(powerUps, PowerUp.offscreen)
}

func (g *Generator) newObstacle(x float64) Obstacle {
	w := float64(g.rng.Uniform(g.t.ObstacleWidthMin, g.t.ObstacleWidthMax))
	h := float64(g.rng.Uniform(g.t.ObstacleHeightMin, g.t.ObstacleHeightMax))
	return Obstacle{Body{X: x, Y: g.t.GroundY(h), Width: w, Height: h}}
}

func (g *Generator) newSpike(x float64) Spike {
	w := float64(g.rng.Uniform(g.t.SpikeWidth, g.t.SpikeWidth*2))
	h := float64(g.rng.Uniform(g.t.SpikeHeight, g.t.SpikeHeight*3/2))
	return Spike{Body{X: x, Y: g.t.GroundY(h), Width: w, Height: h}}
}

// compact returns the items for which drop is false, in order, in a new slice.
func compact[T any](items []T, drop func(T) bool) []T {
	kept := make([]T, 0, len(items))
	for _, it := range items {
		if !drop(it) {
			kept = append(kept, it)
		}
	}
	return kept
}
