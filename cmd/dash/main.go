// dash is a side-scrolling runner for the terminal.
//
// Usage:
//
//	dash                  - Play (same as dash play)
//	dash play             - Play a run
//	dash scores           - Print the best runs
//	dash board            - Interactive scoreboard
//	dash config           - Print the effective configuration
//	dash reset            - Delete the high score and run history
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--preset <name>       - easy, normal or hard
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for a reproducible course
//	--db <path>           - Scores database (default: ~/.dash/scores.db)
//	--high-score <path>   - High score file (default: ~/.dash/high_score.json)
//	--verbose             - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/games/dash"
	"github.com/vovakirdan/tui-dash/internal/registry"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

var (
	// Global flags
	flagConfig    string
	flagPreset    string
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagHighScore string
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dash",
	Short: "Dash - a side-scrolling runner in your terminal",
	Long: `Dash is a terminal runner. Your square runs on its own: jump and
double jump over platforms, land on top of them, avoid spikes and
collect power-ups. Three lives, one high score.

Available commands:
  play     - Play a run (default)
  scores   - Print the best runs
  board    - Interactive scoreboard
  config   - Print the effective configuration
  reset    - Delete the high score and run history

Examples:
  dash
  dash play --preset hard
  dash play --seed 42 --config ./my-dash.yaml
  dash scores --limit 20`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dash/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "high-score", storage.DefaultHighScorePath, "Path to high score file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(resetCmd)
}

// newLogger creates the CLI logger writing to stderr.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dash",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadGameConfig loads, adjusts and validates the game configuration.
// Any error here stops the program before the terminal is taken over.
func loadGameConfig() (config.DashConfig, error) {
	preset, ok := config.ParsePreset(flagPreset)
	if !ok {
		return config.DashConfig{}, fmt.Errorf("unknown preset %q (want easy, normal or hard)", flagPreset)
	}

	cfg, err := config.LoadDash(flagConfig)
	if err != nil {
		return config.DashConfig{}, err
	}

	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}

	if err := cfg.Validate(); err != nil {
		return config.DashConfig{}, err
	}

	// Surface derived-size problems now rather than at first reset
	if _, err := dash.NewTuning(cfg); err != nil {
		return config.DashConfig{}, err
	}

	return cfg, nil
}

// gameTitle returns the display name of the registered runner.
func gameTitle() string {
	game, err := registry.Create(dash.GameID)
	if err != nil {
		return dash.GameID
	}
	return game.Title()
}
