// typefall is an arcade typing game for the terminal: letters fall from
// the top of the screen and you type them before they hit the floor.
//
// Usage:
//
//	typefall play          - Play the game
//	typefall scores        - Browse the leaderboard
//	typefall profiles      - Manage player profiles
//	typefall serve         - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.typefall/typefall.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "typefall",
	Short: "Typefall - catch falling letters with your keyboard",
	Long: `Typefall is a terminal arcade game: letters rain down the screen
and every correct keystroke catches one. Misses cost lives, wrong keys
build heat, and an overheated keyboard locks you out.

Available commands:
  play     - Play the game
  scores   - Browse the leaderboard
  profiles - Manage player profiles
  serve    - Start SSH server for remote play

Examples:
  typefall play
  typefall play --difficulty hard
  typefall scores
  typefall serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.typefall/typefall.db", "Path to game database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(serveCmd)
}
