package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/typefall/internal/audio"
	"github.com/vovakirdan/typefall/internal/config"
	"github.com/vovakirdan/typefall/internal/core"
	"github.com/vovakirdan/typefall/internal/engine"
	"github.com/vovakirdan/typefall/internal/platform/tui"
	"github.com/vovakirdan/typefall/internal/progression"
	"github.com/vovakirdan/typefall/internal/ranking"
	"github.com/vovakirdan/typefall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagTheme      string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a typefall session in the current terminal.

Controls:
  A-Z        - Catch a falling letter
  Esc        - Pause / resume
  Tab        - Leaderboard
  Q/Ctrl+C   - Quit (from menus)

Difficulty presets:
  easy   - Slow fall, sparse spawns
  normal - Default balance
  hard   - Fast fall, dense spawns

Examples:
  typefall play
  typefall play --difficulty hard
  typefall play --config ./my-typefall.yaml
  typefall play --theme light --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom settings YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Color theme: dark, light (default: last used)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		settings = config.DefaultSettings()
	}
	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		switch preset {
		case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard:
			config.ApplyPreset(&settings, preset)
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			os.Exit(1)
		}
	}

	// Open storage; the game still works without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open game database: %v\n", err)
		store = nil
	}

	var (
		profiles *progression.Manager
		board    *ranking.Board
		theme    tui.Theme
	)
	if store != nil {
		saved, activeID := store.LoadProfiles()
		profiles = progression.NewManagerFrom(saved, activeID)
		board = ranking.NewFrom(store.LoadRanking())
		theme = tui.ThemeByName(store.LoadTheme())
	} else {
		profiles = progression.NewManager()
		board = ranking.New()
		theme = tui.ThemeByName(settings.Display.Theme)
	}
	if flagTheme != "" {
		theme = tui.ThemeByName(flagTheme)
	}

	var player *audio.Player
	if !flagMute {
		player = audio.NewPlayer()
		if audioErr := player.Init(); audioErr != nil {
			// Silent run; audio is never worth failing over.
			player = nil
		}
	}

	eng := engine.New(cfg, &settings, profiles, board)

	runErr := tui.Run(eng, store, player, theme, cfg)

	if player != nil {
		player.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
