package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/engine"
	"github.com/vovakirdan/tui-platformer/internal/levels"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check level files for errors",
	Long: `Parse and validate one or more level YAML files.

Each file is checked the same way the loader checks it before play:
the YAML must parse, the level needs a start position, entity ids
must be unique, and behavior parameters must be complete. A level
without an exit entity loads but can never be completed, so it is
reported as a warning.

Examples:
  platformer validate my-level.yaml
  platformer validate levels/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	loader := levels.NewLoader(".")
	failed := 0

	for _, path := range args {
		lvl, err := loader.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL  %s: %v\n", path, err)
			failed++
			continue
		}
		if !hasExit(lvl.Blueprint) {
			fmt.Printf("WARN  %s (%s): no exit entity, level cannot be completed\n", path, lvl.Blueprint.ID)
			continue
		}
		fmt.Printf("OK    %s (%s, %d entities)\n", path, lvl.Blueprint.ID, len(lvl.Blueprint.Entities))
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "\n%d of %d file(s) failed validation\n", failed, len(args))
		os.Exit(1)
	}
}

// hasExit reports whether the blueprint contains at least one exit entity.
func hasExit(bp engine.LevelBlueprint) bool {
	for _, e := range bp.Entities {
		if e.Type == engine.TypeExit {
			return true
		}
	}
	return false
}
