package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/typefall/internal/platform/tui"
	"github.com/vovakirdan/typefall/internal/ranking"
	"github.com/vovakirdan/typefall/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse the leaderboard",
	Long: `Display the top scores recorded on this machine.

By default opens an interactive table. Use --plain for script-friendly
text output.

Examples:
  typefall scores
  typefall scores --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as plain text")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening game database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	board := ranking.NewFrom(store.LoadRanking())

	if flagPlain {
		printScores(board)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	model := tui.NewScoreboardModel(board, width, height)
	if _, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run(); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", runErr)
		os.Exit(1)
	}
}

func printScores(board *ranking.Board) {
	entries := board.Entries()

	fmt.Println("Typefall - Top Scores")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'typefall play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, e.PlayerName, e.Score, e.Timestamp.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", board.Best())
}
