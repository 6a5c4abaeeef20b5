package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dash/internal/games/dash"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

var flagKeepHistory bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the high score and run history",
	Long: `Remove the high score file and every recorded run.

Examples:
  dash reset
  dash reset --keep-history`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagKeepHistory, "keep-history", false, "Only reset the high score file")
}

func runReset(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	highScores, err := storage.NewHighScoreFile(flagHighScore)
	if err != nil {
		return err
	}
	if err := highScores.Reset(); err != nil {
		logger.Error("could not remove high score", "path", highScores.Path(), "err", err)
		return err
	}
	logger.Info("high score reset", "path", highScores.Path())

	if flagKeepHistory {
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	if err := store.ClearScores(dash.GameID); err != nil {
		return err
	}
	logger.Info("run history cleared", "db", flagDBPath)
	return nil
}
