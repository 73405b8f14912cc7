// pong is a terminal rendition of the classic paddle game.
//
// Usage:
//
//	pong                  - Play locally (same as 'pong play')
//	pong play             - Play locally
//	pong scores           - Show match history
//	pong serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.pong/matches.db)
//	--config <path>   - Path to custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbismaya/phantom-pong/internal/config"
	"github.com/dbismaya/phantom-pong/internal/core"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Phantom Pong - the classic paddle game in your terminal",
	Long: `Phantom Pong is a terminal rendition of the classic paddle game.
Play against the CPU or a friend on the same keyboard, or host matches
over SSH.

Available commands:
  play     - Play locally (default when no command is given)
  scores   - View match history
  serve    - Start SSH server for remote play

Examples:
  pong
  pong play --mute
  pong scores
  pong serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/matches.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGameConfig loads the layered YAML config and applies global flag
// overrides on top.
func loadGameConfig() (core.Config, error) {
	fileCfg, err := config.Load(flagConfig)
	if err != nil {
		return core.Config{}, err
	}

	cfg := fileCfg.ToCore()
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg, nil
}
