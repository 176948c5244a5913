package engine

import "fmt"

// GlobalPhysics holds the process-wide physics dials. They may be mutated
// at any time between frames and take effect on the very next frame.
type GlobalPhysics struct {
	// Gravity is the configured gravity dial. It is multiplied by a fixed
	// unit-scale factor during integration.
	Gravity float64

	// Friction is the per-frame horizontal velocity multiplier applied to
	// the player when no click-to-walk target is active.
	Friction float64

	// TimeScale multiplies the clamped frame delta. 1 is real time.
	TimeScale float64
}

// DefaultPhysics returns the physics constants used when a blueprint
// doesn't specify its own.
func DefaultPhysics() GlobalPhysics {
	return GlobalPhysics{Gravity: 0.5, Friction: 0.8, TimeScale: 1}
}

// LevelBlueprint is an immutable level template. It is only ever read,
// to (re)initialize a World; the simulation never writes back into it.
type LevelBlueprint struct {
	ID          string
	Name        string
	Description string

	// Start is the player spawn position (top-left of the player box).
	Start Vec2

	// Entities are the starting entities, instantiated in order.
	// The player is not part of the template; NewWorld adds it.
	Entities []Entity

	Physics GlobalPhysics
}

// Validate checks the blueprint for authoring errors. A world must never
// be built over an invalid blueprint, so callers check this before
// starting a frame loop.
func (bp *LevelBlueprint) Validate() error {
	if bp.ID == "" {
		return fmt.Errorf("engine: blueprint has no id")
	}
	if bp.Physics.TimeScale < 0 {
		return fmt.Errorf("engine: blueprint %q: negative time scale %v", bp.ID, bp.Physics.TimeScale)
	}

	seen := make(map[string]struct{}, len(bp.Entities)+1)
	seen["player"] = struct{}{}

	for i := range bp.Entities {
		e := &bp.Entities[i]
		if e.ID == "" {
			return fmt.Errorf("engine: blueprint %q: entity %d has no id", bp.ID, i)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("engine: blueprint %q: duplicate entity id %q", bp.ID, e.ID)
		}
		seen[e.ID] = struct{}{}

		if e.Type == TypePlayer {
			return fmt.Errorf("engine: blueprint %q: entity %q declares a player; the player is instantiated from the start position", bp.ID, e.ID)
		}
		if e.Size.X <= 0 || e.Size.Y <= 0 {
			return fmt.Errorf("engine: blueprint %q: entity %q has non-positive size %vx%v", bp.ID, e.ID, e.Size.X, e.Size.Y)
		}
	}
	return nil
}
