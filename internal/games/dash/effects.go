package dash

// ActiveEffect is a timed power-up effect.
type ActiveEffect struct {
	Kind      PowerUpKind
	Remaining int // Ticks left
	Duration  int // Ticks at pickup, for progress display

	// RestoreSpeed is the scroll speed to return to when a slow_time
	// effect ends.
	RestoreSpeed float64
}

// applyPowerUp applies the immediate part of a pickup and records any
// timed effect.
func (w *World) applyPowerUp(kind PowerUpKind) {
	switch kind {
	case PowerUpExtraLife:
		w.lives = min(w.lives+1, w.t.MaxLives)
	case PowerUpShield:
		w.invincibility = w.t.ShieldTicks
		w.addEffect(ActiveEffect{Kind: PowerUpShield, Remaining: w.t.ShieldTicks, Duration: w.t.ShieldTicks})
	case PowerUpScoreBoost:
		w.score += w.t.ScoreBoost
	case PowerUpSlowTime:
		// A running slow_time already holds the pre-slow speed.
		restore := w.speed
		if prev, ok := w.findEffect(PowerUpSlowTime); ok {
			restore = prev.RestoreSpeed
		}
		w.speed = restore * w.t.SlowFactor
		w.addEffect(ActiveEffect{
			Kind:         PowerUpSlowTime,
			Remaining:    w.t.SlowTimeTicks,
			Duration:     w.t.SlowTimeTicks,
			RestoreSpeed: restore,
		})
	}
}

// addEffect appends e, or with refresh semantics resets the timer of an
// existing entry of the same kind.
func (w *World) addEffect(e ActiveEffect) {
	if w.t.RefreshEffects {
		for i := range w.effects {
			if w.effects[i].Kind == e.Kind {
				w.effects[i].Remaining = e.Remaining
				w.effects[i].Duration = e.Duration
				return
			}
		}
	}
	w.effects = append(w.effects, e)
}

// tickEffects counts every active effect down by one tick and applies
// expiry for those that reach zero.
func (w *World) tickEffects() {
	if len(w.effects) == 0 {
		return
	}

	kept := make([]ActiveEffect, 0, len(w.effects))
	var expired []ActiveEffect
	for _, e := range w.effects {
		e.Remaining--
		if e.Remaining > 0 {
			kept = append(kept, e)
		} else {
			expired = append(expired, e)
		}
	}
	w.effects = kept

	for _, e := range expired {
		w.expire(e)
	}
}

// expire reverts a finished effect. A shield ending clears invincibility
// even while another shield entry is still counting down; refresh mode
// keeps a single entry per kind.
func (w *World) expire(e ActiveEffect) {
	switch e.Kind {
	case PowerUpShield:
		w.invincibility = 0
	case PowerUpSlowTime:
		if _, ok := w.findEffect(PowerUpSlowTime); !ok {
			w.speed = e.RestoreSpeed
		}
	case PowerUpExtraLife, PowerUpScoreBoost:
		// Instant kinds never become active effects.
	}
}

func (w *World) findEffect(kind PowerUpKind) (ActiveEffect, bool) {
	for _, e := range w.effects {
		if e.Kind == kind {
			return e, true
		}
	}
	return ActiveEffect{}, false
}
