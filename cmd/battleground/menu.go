package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tank-battleground/internal/audio"
	"github.com/vovakirdan/tank-battleground/internal/core"
	"github.com/vovakirdan/tank-battleground/internal/platform/tui"
	"github.com/vovakirdan/tank-battleground/internal/registry"
	"github.com/vovakirdan/tank-battleground/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start the battleground in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a mode.
After a round you return to the menu with M.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Scoreboard
  Q            - Quit

Examples:
  battleground menu
  battleground menu --fps 30
  battleground menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
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

	return menuLoop(store, sound, logger, runtimeConfig())
}

// menuLoop alternates between the menu, the scoreboard and rounds until the user quits.
func menuLoop(store *storage.Store, sound *audio.Player, logger *log.Logger, cfg core.RuntimeConfig) error {
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}

		// Fresh seed for each round unless --seed pinned one
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, tui.Saver(store), sound, logger, cfg)
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
