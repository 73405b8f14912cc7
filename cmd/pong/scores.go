package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dbismaya/phantom-pong/internal/platform/tui"
	"github.com/dbismaya/phantom-pong/internal/storage"
)

var (
	flagPlain      bool
	flagScoresMode string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show match history",
	Long: `Display recent match results.

By default an interactive table opens; --plain prints plain text instead.

Examples:
  pong scores
  pong scores --plain
  pong scores --plain --mode cpu`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive table")
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", "", "With --plain, show stats for one mode: cpu or duel")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printPlainScores(store)
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing match history: %v\n", err)
		os.Exit(1)
	}
}

func printPlainScores(store *storage.Store) {
	if flagScoresMode != "" {
		printModeStats(store, flagScoresMode)
		return
	}

	matches, err := store.RecentMatches(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Match History")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pong' to record the first match!")
		return
	}

	fmt.Printf("  %-16s  %-5s  %-7s  %-6s  %-6s  %s\n", "Date", "Mode", "Score", "Winner", "Speed", "Time")
	fmt.Printf("  %-16s  %-5s  %-7s  %-6s  %-6s  %s\n", "----", "----", "-----", "------", "-----", "----")

	for _, m := range matches {
		winner := "P1"
		if m.Winner == "right" {
			winner = "P2"
			if m.Mode == "cpu" {
				winner = "CPU"
			}
		}
		fmt.Printf("  %-16s  %-5s  %-7s  %-6s  %-6s  %ds\n",
			m.CreatedAt.Format("2006-01-02 15:04"),
			m.Mode,
			fmt.Sprintf("%d:%d", m.ScoreLeft, m.ScoreRight),
			winner,
			fmt.Sprintf("%.1fx", m.Multiplier),
			m.DurationSecs,
		)
	}
}

func printModeStats(store *storage.Store, mode string) {
	stats, err := store.ModeStats(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Stats - %s mode\n", mode)
	fmt.Println()

	if stats.Matches == 0 {
		fmt.Println("No matches recorded yet.")
		return
	}

	fmt.Printf("  Matches:    %d\n", stats.Matches)
	fmt.Printf("  Left wins:  %d\n", stats.LeftWins)
	fmt.Printf("  Right wins: %d\n", stats.RightWins)
	fmt.Printf("  Last game:  %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
}
