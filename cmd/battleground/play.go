package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tank-battleground/internal/platform/tui"
	"github.com/vovakirdan/tank-battleground/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start a round of the given mode on this terminal.

Controls:
  Player 1     W/S forward/back, A/D turn, Space fire
  Player 2     Up/Down forward/back, Left/Right turn, Enter fire
  P            Pause (volume sliders, mouse drag works here)
  Esc          Resume
  [ ]          Music volume
  - =          Effects volume
  R            Restart (after game over)
  M            Menu (paused or after game over)
  Q/Ctrl+C     Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  battleground play tanks
  battleground play tanks_survival --difficulty hard
  battleground play tanks --config ./my-tanks.toml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'battleground list' to see available modes", gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	warn := stderrLogger()
	store := openStore(warn)
	if store != nil {
		defer store.Close()
	}
	sound := openSound(warn)
	defer sound.Close()

	logger, closeLog := sessionLogger()
	defer closeLog()

	backToMenu, err := tui.Run(game, tui.Saver(store), sound, logger, runtimeConfig())
	if err != nil {
		return err
	}
	if backToMenu {
		return menuLoop(store, sound, logger, runtimeConfig())
	}
	return nil
}
