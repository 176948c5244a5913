// platformer is a terminal platformer with a fixed-step physics engine.
//
// Usage:
//
//	platformer play [level-id]  - Play the campaign (or practice one level)
//	platformer menu             - Interactive mode and level picker
//	platformer levels           - List available levels
//	platformer validate <file>  - Check level files for errors
//	platformer serve            - Start SSH server for remote play
//	platformer scores           - Show high scores and best times
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.platformer/scores.db)
//	--levels <dir>  - Load levels from a directory instead of the built-in campaign
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game packages to register them
	_ "github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagLevelsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "A terminal platformer with campaign and practice modes",
	Long: `platformer runs a side-view platformer directly in your terminal.

Move with A/D or the arrow keys, jump with Space, or click a spot
to walk there. Reach the exit of each level to advance through the
campaign. Completion times and deaths are recorded per level.

Available commands:
  play      - Play the campaign or practice a single level
  menu      - Interactive mode and level picker
  levels    - List available levels
  validate  - Check level files for errors
  serve     - Start SSH server for remote play
  scores    - View high scores and best times

Examples:
  platformer play
  platformer play 03_night_watch --practice
  platformer menu
  platformer serve --ssh :2222
  platformer scores --times 01_first_steps`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level YAML files (default: built-in campaign)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
