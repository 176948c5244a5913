package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/engine"
	"github.com/vovakirdan/tui-platformer/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the levels of the built-in campaign, or of the directory
given with --levels, in play order.`,
	Run: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	var bps []engine.LevelBlueprint
	var err error

	if flagLevelsDir != "" {
		loaded, loadErr := levels.NewLoader(flagLevelsDir).LoadAll()
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Error loading levels from %s: %v\n", flagLevelsDir, loadErr)
			os.Exit(1)
		}
		bps = levels.Blueprints(loaded)
	} else {
		bps, err = levels.DefaultCampaign()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading campaign: %v\n", err)
			os.Exit(1)
		}
	}

	if len(bps) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, bp := range bps {
		if len(bp.ID) > maxIDLen {
			maxIDLen = len(bp.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "ID", "Name", "Entities")
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "--", "----", "--------")

	// Print levels
	for _, bp := range bps {
		fmt.Printf("  %-*s  %-24s  %d\n", maxIDLen, bp.ID, bp.Name, len(bp.Entities))
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <id>' to start from a level.")
}
