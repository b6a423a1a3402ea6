// battleground is a two-player tank shooter for the terminal.
//
// Usage:
//
//	battleground list              - List available modes
//	battleground play <mode>       - Play a mode (tanks, tanks_survival)
//	battleground menu              - Pick a mode interactively
//	battleground serve             - Start SSH server for remote couch co-op
//	battleground scores <mode>     - Show high scores and recent matches
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.battleground/scores.db)
//	--config <path>       - Load a custom tanks.yaml or tanks.toml
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tank-battleground/internal/games/tanks"
	"github.com/vovakirdan/tank-battleground/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "battleground",
	Short: "Tank Battleground - two tanks, one keyboard",
	Long: `Tank Battleground is a top-down tank shooter for two players sharing
one keyboard. Defend the diamond in the campaign, or hold out as long
as you can in survival.

Available commands:
  list     - Show all modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores and match history

Examples:
  battleground play tanks
  battleground play tanks_survival --difficulty hard
  battleground menu --config ./configs/tanks.toml
  battleground serve --ssh :2222
  battleground scores tanks`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tanks config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
