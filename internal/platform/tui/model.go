package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/registry"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

// AppState is the screen the application is showing.
type AppState int

const (
	AppTitle AppState = iota
	AppPlaying
	AppGameOver
)

// String returns the name of the state.
func (s AppState) String() string {
	switch s {
	case AppTitle:
		return "title"
	case AppPlaying:
		return "playing"
	case AppGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Options configures a play session.
type Options struct {
	Runtime core.RuntimeConfig

	// Store records finished runs. May be nil.
	Store *storage.Store

	// HighScores holds the all-time record. May be nil.
	HighScores *storage.HighScoreFile

	// ScreenshotDir is where ctrl+s writes the screen. Empty disables it.
	ScreenshotDir string
}

// Result summarizes a finished session.
type Result struct {
	LastScore int
	HighScore int
	Runs      int

	// Warnings are persistence errors collected while the terminal was in
	// the alternate screen. Play continued past each of them.
	Warnings []error
}

// Model is the Bubble Tea model driving the title, playing and game-over
// screens around a single game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	fixedSeed  bool
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame

	state     AppState
	gameState core.GameState
	highScore int
	lastScore int
	newRecord bool
	runTicks  int
	runs      int
	warnings  []error
	quitting  bool
}

// NewModel creates a model showing the title screen. The high score is
// loaded here; a failed load is kept as a warning and counts as 0.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		fixedSeed:  fixedSeed,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		state:      AppTitle,
	}
	m.help.Width = cfg.ScreenW
	m.loadHighScore()

	return m
}

// loadHighScore reads the record from the JSON file, falling back to the
// score history when the file is missing or behind.
func (m *Model) loadHighScore() {
	if m.opts.HighScores != nil {
		score, err := m.opts.HighScores.Load()
		if err != nil {
			m.warn(err)
		}
		m.highScore = score
	}
	if m.opts.Store != nil {
		best, err := m.opts.Store.HighScore(m.game.ID())
		if err != nil {
			m.warn(err)
		}
		m.highScore = max(m.highScore, best)
	}
}

func (m *Model) warn(err error) {
	m.warnings = append(m.warnings, err)
}

// State returns the current application state.
func (m Model) State() AppState {
	return m.state
}

// Result returns the session summary.
func (m Model) Result() Result {
	return Result{
		LastScore: m.lastScore,
		HighScore: m.highScore,
		Runs:      m.runs,
		Warnings:  m.warnings,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input according to the current state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case AppTitle:
		if action == core.ActionConfirm || action == core.ActionJump {
			m.enterPlaying()
		}

	case AppPlaying:
		switch action {
		case core.ActionBack:
			// Abandoned runs are not recorded.
			m.state = AppTitle
		case core.ActionJump, core.ActionPause:
			m.inputFrame.Set(action)
		}

	case AppGameOver:
		switch action {
		case core.ActionRestart, core.ActionConfirm:
			m.enterPlaying()
		case core.ActionBack:
			m.state = AppTitle
		}
	}

	return m, nil
}

// handleResize processes window resize events. The world is independent
// of the terminal size, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game while playing. Game over keeps stepping
// so shake and banners can settle.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.state != AppTitle {
		result := m.game.Step(m.inputFrame)
		m.gameState = result.State
		if !result.State.Paused && !result.State.GameOver {
			m.runTicks++
		}

		if m.state == AppPlaying && result.State.GameOver {
			m.enterGameOver()
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// enterPlaying starts a fresh run.
func (m *Model) enterPlaying() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}

	m.game.Reset(m.config)
	if seeder, ok := m.game.(registry.HighScoreSeeder); ok {
		seeder.SetHighScore(m.highScore)
	}

	m.gameState = m.game.State()
	m.inputFrame.Clear()
	m.newRecord = false
	m.runTicks = 0
	m.state = AppPlaying
}

// enterGameOver records the finished run.
func (m *Model) enterGameOver() {
	m.state = AppGameOver
	m.lastScore = m.gameState.Score
	m.runs++

	if m.opts.Store != nil {
		_, err := m.opts.Store.SaveRun(storage.Run{
			GameID: m.game.ID(),
			Score:  m.lastScore,
			Ticks:  m.runTicks,
			Seed:   m.config.Seed,
		})
		if err != nil {
			m.warn(err)
		}
	}

	if m.lastScore > m.highScore {
		m.highScore = m.lastScore
		m.newRecord = true
		if m.opts.HighScores != nil {
			if err := m.opts.HighScores.Save(m.highScore); err != nil {
				m.warn(err)
			}
		}
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}

	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.warn(fmt.Errorf("tui: cannot create screenshot directory: %w", err))
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.warn(fmt.Errorf("tui: cannot save screenshot: %w", err))
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == AppTitle {
		return m.titleView()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// powerUpGuide lists the collectibles shown on the title screen.
var powerUpGuide = []struct {
	glyph string
	color string
	text  string
}{
	{"♥", "9", "extra life (up to 5)"},
	{"◎", "11", "shield: 5s invincibility"},
	{"★", "10", "+10 score"},
	{"◷", "13", "slow time: half speed for 5s"},
}

// titleView renders the title panel centered on screen.
func (m Model) titleView() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("14"))
	recordStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("11"))
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3)

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.game.Title()))
	b.WriteString("\n\n")
	b.WriteString(recordStyle.Render(fmt.Sprintf("High score: %d", m.highScore)))
	if m.runs > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("   Last run: %d", m.lastScore)))
	}
	b.WriteString("\n\n")

	b.WriteString("Jump over platforms, land on top of them,\n")
	b.WriteString("and never touch a spike. Double jump in the air.\n\n")

	for _, p := range powerUpGuide {
		glyph := lipgloss.NewStyle().Foreground(lipgloss.Color(p.color)).Render(p.glyph)
		b.WriteString(fmt.Sprintf("  %s  %s\n", glyph, p.text))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	panel := panelStyle.Render(b.String())
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, panel)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game registry.Game, opts Options) (Result, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model.Result(), err
	}

	if m, ok := final.(Model); ok {
		return m.Result(), nil
	}
	return model.Result(), nil
}
