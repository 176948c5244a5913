package levels

import (
	"embed"
	"fmt"
	"path"
	"sort"

	"github.com/vovakirdan/tui-platformer/internal/engine"
	"github.com/vovakirdan/tui-platformer/internal/levels/formats"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultCampaign returns the built-in level progression, sorted by ID.
// These ship embedded in the binary so the game works with no level
// files installed.
func DefaultCampaign() ([]engine.LevelBlueprint, error) {
	entries, err := defaultsFS.ReadDir("defaults")
	if err != nil {
		return nil, fmt.Errorf("reading embedded levels: %w", err)
	}

	var bps []engine.LevelBlueprint
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := defaultsFS.ReadFile(path.Join("defaults", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading embedded level %s: %w", entry.Name(), err)
		}
		bp, err := formats.ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parsing embedded level %s: %w", entry.Name(), err)
		}
		if err := bp.Validate(); err != nil {
			return nil, fmt.Errorf("validating embedded level %s: %w", entry.Name(), err)
		}
		bps = append(bps, bp)
	}

	sort.Slice(bps, func(i, j int) bool {
		return bps[i].ID < bps[j].ID
	})

	return bps, nil
}
