package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tank-battleground/internal/audio"
	"github.com/vovakirdan/tank-battleground/internal/config"
	"github.com/vovakirdan/tank-battleground/internal/core"
	"github.com/vovakirdan/tank-battleground/internal/games/tanks"
	"github.com/vovakirdan/tank-battleground/internal/storage"
)

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applyGameFlags validates --config and --difficulty and hands them to the game package.
// A --config file that cannot be read or parsed stops startup.
func applyGameFlags() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.LoadTanks(flagConfig); err != nil {
			return err
		}
	}

	tanks.SetConfigPath(flagConfig)
	tanks.SetDifficultyPreset(flagDifficulty)
	return nil
}

// sessionLogger writes to ~/.battleground/battleground.log while the terminal belongs to the game.
// The returned func closes the file.
func sessionLogger() (*log.Logger, func()) {
	discard := log.New(io.Discard)

	home, err := os.UserHomeDir()
	if err != nil {
		return discard, func() {}
	}
	dir := filepath.Join(home, ".battleground")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "battleground.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return discard, func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "battleground",
	})
	return logger, func() { f.Close() }
}

// stderrLogger reports problems before the game takes over the terminal.
func stderrLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "battleground",
	})
}

// openStore opens the score database. Play goes on without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		return nil
	}
	return store
}

// openSound opens the speaker unless --mute is set. A machine without audio plays silently.
func openSound(logger *log.Logger) *audio.Player {
	if flagMute {
		return nil
	}
	p := audio.NewPlayer()
	if err := p.Init(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
	}
	return p
}
