package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dash/internal/games/dash"
	"github.com/vovakirdan/tui-dash/internal/platform/tui"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Interactive scoreboard",
	Long: `Browse recorded runs in a scrollable table.

Controls:
  Up/Down or K/J - Scroll
  Home/G         - Jump to the top
  Q/Esc          - Quit`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("could not open scores database", "path", flagDBPath, "err", err)
		return err
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	return tui.RunScoreboard(store, dash.GameID, gameTitle(), flagFPS, width, height)
}
