package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPractice   bool
)

var playCmd = &cobra.Command{
	Use:   "play [level-id]",
	Short: "Play the campaign",
	Long: `Start the campaign, optionally from a specific level.

With --practice, the session is pinned to the given level and
restarts it on completion instead of advancing.

Controls:
  A/D, Left/Right - Move
  Space/W/Up      - Jump
  Left click      - Walk to that spot
  P               - Pause
  R               - Restart (after winning)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Lighter gravity, slightly slowed time
  normal - Level physics as authored
  hard   - Heavier gravity, slightly sped-up time
  fixed  - Use the multipliers from the config file as-is

Examples:
  platformer play
  platformer play 03_night_watch
  platformer play 03_night_watch --practice
  platformer play --difficulty easy
  platformer play --levels ./my-levels --config ./my-config.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagPractice, "practice", false, "Practice a single level (requires level-id)")
}

func runPlay(cmd *cobra.Command, args []string) {
	levelID := ""
	if len(args) > 0 {
		levelID = args[0]
	}

	if flagPractice && levelID == "" {
		fmt.Fprintln(os.Stderr, "Error: --practice requires a level id")
		fmt.Fprintln(os.Stderr, "Run 'platformer levels' to see available levels.")
		os.Exit(1)
	}

	gameID := "platformer"
	if flagPractice {
		gameID = "platformer_practice"
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Configure the game before creation
	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)
	platformer.SetLevelsDir(flagLevelsDir)
	platformer.SetStartLevel(levelID)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
