package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbismaya/phantom-pong/internal/audio"
	"github.com/dbismaya/phantom-pong/internal/game"
	"github.com/dbismaya/phantom-pong/internal/platform/tui"
	"github.com/dbismaya/phantom-pong/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play locally",
	Long: `Start a local game session.

Controls:
  W/S         - Move left paddle
  Up/Down     - Move right paddle (two-player mode)
  Enter/Space - Confirm
  +/-         - Adjust ball speed (on the mode screen)
  P           - Pause
  R           - Restart (after game over)
  M/Esc       - Back to the previous screen
  F           - Toggle fullscreen
  Q/Ctrl+C    - Quit

Examples:
  pong play
  pong play --mute
  pong play --seed 42
  pong play --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Sound is best-effort. When the audio device is unavailable the game
	// runs silent rather than refusing to start.
	var sound game.Sound = game.NopSound{}
	var ambience tui.Ambience
	if !flagMute {
		engine := audio.NewEngine()
		if audioErr := engine.Initialize(); audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", audioErr)
		} else {
			sound = engine
			ambience = engine
			defer engine.Cleanup()
		}
	}

	// Open match history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config:   cfg,
		Store:    store,
		Sound:    sound,
		Ambience: ambience,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
