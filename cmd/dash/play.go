package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/games/dash"
	"github.com/vovakirdan/tui-dash/internal/platform/tui"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start the runner on its title screen.

Controls:
  Enter      - Start a run
  Space/Up/W - Jump (again in the air to double jump)
  P          - Pause
  R          - Restart (after game over)
  B/Esc      - Back to the title screen
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Presets:
  easy   - 5 lives, slower scrolling
  normal - configuration as loaded
  hard   - 2 lives, faster scrolling

Examples:
  dash play
  dash play --preset easy
  dash play --seed 7 --fps 30`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := loadGameConfig()
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return err
	}
	game := dash.NewWithConfig(cfg)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	} else {
		logger.Debug("cannot read terminal size, using 80x24", "err", termErr)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - the game still works
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		store = nil
	}

	highScores, err := storage.NewHighScoreFile(flagHighScore)
	if err != nil {
		logger.Warn("high score will not be saved", "err", err)
		highScores = nil
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:         store,
		HighScores:    highScores,
		ScreenshotDir: screenshotDir(),
	}

	logger.Debug("starting", "seed", flagSeed, "fps", flagFPS, "size", fmt.Sprintf("%dx%d", width, height))
	res, runErr := tui.Run(game, opts)

	// Close store before reporting
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("could not close scores database", "err", err)
		}
	}

	for _, w := range res.Warnings {
		logger.Warn("persistence problem during play", "err", w)
	}

	if runErr != nil {
		logger.Error("terminal session failed", "err", runErr)
		return runErr
	}

	logger.Debug("session finished", "runs", res.Runs, "last", res.LastScore, "high", res.HighScore)
	return nil
}

// screenshotDir returns ~/.dash/screenshots, or "" when there is no home.
func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dash", "screenshots")
}
