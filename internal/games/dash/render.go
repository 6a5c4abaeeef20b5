package dash

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-dash/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar      = '■'
	PlayerSpinChar  = '◆'
	ObstacleChar    = '█'
	ObstacleTopChar = '▀'
	SpikeChar       = '▲'
	GroundChar      = '═'
	GroundFillChar  = '░'
	LifeChar        = '♥'
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// projection maps world units to screen cells.
type projection struct {
	sx, sy float64
	offX   int
}

func newProjection(t *Tuning, w, h, offX int) projection {
	return projection{
		sx:   float64(w) / t.WorldW,
		sy:   float64(h-hudRows) / t.WorldH,
		offX: offX,
	}
}

// rect returns the cells covered by b, at least one cell in each direction.
func (p projection) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X*p.sx)) + p.offX
	x1 := int(math.Ceil(b.Right()*p.sx)) + p.offX
	y0 := hudRows + int(math.Floor(b.Y*p.sy))
	y1 := hudRows + int(math.Ceil(b.Bottom()*p.sy))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func (p projection) row(y float64) int {
	return hudRows + int(math.Round(y*p.sy))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	snap := g.world.Snapshot()
	t := g.world.Tuning()
	proj := newProjection(&t, dst.Width(), dst.Height(), g.shakeOffset(snap.Tick))

	g.drawGround(dst, proj, &t)

	for _, b := range snap.Obstacles {
		r := proj.rect(b)
		dst.DrawRect(r, ObstacleChar, core.ColorBlue)
		dst.DrawHLine(r.X, r.Y, r.W, ObstacleTopChar, core.ColorBrightBlue)
	}
	for _, b := range snap.Spikes {
		dst.DrawRect(proj.rect(b), SpikeChar, core.ColorBrightRed)
	}
	for _, p := range snap.PowerUps {
		r := proj.rect(p.Box)
		dst.SetColored(r.X+r.W/2, r.Y+r.H/2, p.Kind.Glyph(), powerUpColor(p.Kind))
	}

	g.drawPlayer(dst, proj, snap)
	g.drawHUD(dst, snap)

	if g.bannerLeft > 0 && snap.State == StatePlaying {
		dst.DrawTextCentered(2, g.banner)
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if snap.State == StateGameOver {
		subtitle := fmt.Sprintf("Score: %d  |  R restart  B title", snap.Score)
		if g.newHigh {
			subtitle = fmt.Sprintf("New high score: %d  |  R restart  B title", snap.Score)
		}
		drawCenteredMessage(dst, "GAME OVER", subtitle)
	}
}

// shakeOffset returns the horizontal jitter for the current tick.
func (g *Game) shakeOffset(tick uint64) int {
	if g.shake.Duration <= 0 {
		return 0
	}
	amp := max(g.shake.Intensity/5, 1)
	if tick%2 == 0 {
		return amp
	}
	return -amp
}

func (g *Game) drawGround(dst *core.Screen, proj projection, t *Tuning) {
	top := proj.row(t.GroundTop)
	dst.DrawHLine(0, top, dst.Width(), GroundChar, core.ColorGreen)
	for y := top + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundFillChar, core.ColorGray)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, proj projection, snap Snapshot) {
	// Blink while invincible
	if snap.Invincibility > 0 && snap.Tick%10 >= 7 {
		return
	}

	ch := PlayerChar
	if snap.PlayerJumping && int(snap.PlayerRotation/45)%2 == 1 {
		ch = PlayerSpinChar
	}

	color := core.ColorBrightCyan
	if snap.Invincibility > 0 {
		color = core.ColorBrightYellow
	}
	dst.DrawRect(proj.rect(snap.Player), ch, color)
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	scoreColor := core.ColorWhite
	if snap.Score > 0 && snap.Score >= snap.HighScore {
		scoreColor = core.ColorBrightYellow
	}
	left := fmt.Sprintf(" Score: %d  Hi: %d ", snap.Score, snap.HighScore)
	dst.DrawTextColored(0, 0, left, scoreColor)

	x := len(left)
	dst.DrawTextColored(x, 0, strings.Repeat(string(LifeChar), snap.Lives), core.ColorRed)
	x += snap.Lives + 1

	for _, e := range snap.Effects {
		text := fmt.Sprintf(" %s %ds", e.Kind.Label(), secondsLeft(e.Remaining, g.runtime.TickRate))
		dst.DrawTextColored(x, 0, text, powerUpColor(e.Kind))
		x += len([]rune(text))
	}
}

// secondsLeft rounds remaining ticks up to whole seconds.
func secondsLeft(ticks, rate int) int {
	if rate <= 0 {
		rate = 60
	}
	return (ticks + rate - 1) / rate
}

func powerUpColor(k PowerUpKind) core.Color {
	switch k {
	case PowerUpExtraLife:
		return core.ColorBrightRed
	case PowerUpShield:
		return core.ColorBrightYellow
	case PowerUpScoreBoost:
		return core.ColorBrightGreen
	case PowerUpSlowTime:
		return core.ColorBrightMagenta
	default:
		return core.ColorDefault
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
