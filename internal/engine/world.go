package engine

// Bounds is the fixed world rectangle entities live in, in world units.
type Bounds struct {
	Width  float64
	Height float64
}

// DefaultBounds matches the canvas the original levels were authored for.
func DefaultBounds() Bounds {
	return Bounds{Width: 800, Height: 600}
}

// World is the live, mutable simulation state for the current level: the
// entity set plus the physics dials. A world has a single writer (the
// frame driver); collaborators only ever read committed snapshots between
// frames.
type World struct {
	Entities []Entity
	Physics  GlobalPhysics
	Bounds   Bounds

	// Clock is the simulated logic time in milliseconds. It advances by
	// the clamped, scaled frame delta, so pausing never produces a gap.
	Clock float64

	// ClickTarget is the pending click-to-walk X destination. The engine
	// clears it when consumed, on manual input, or on a blocking hit.
	ClickTarget *float64

	lastStepAt float64 // logic-clock ms of the last footstep cue
	spawnSeq   int     // projectile id counter
	dt         float64 // current frame's time step in seconds
}

// NewWorld instantiates a world from a blueprint: the player is placed at
// the start position and the template entities are copied in order with
// runtime defaults applied. The blueprint is validated first; an invalid
// blueprint never becomes a running world.
func NewWorld(bp *LevelBlueprint, bounds Bounds) (*World, error) {
	if err := bp.Validate(); err != nil {
		return nil, err
	}

	entities := make([]Entity, 0, len(bp.Entities)+1)
	entities = append(entities, Entity{
		ID:           "player",
		Name:         "Player",
		Type:         TypePlayer,
		Pos:          bp.Start,
		Size:         Vec2{X: playerSize, Y: playerSize},
		Solid:        true,
		Visible:      true,
		GravityScale: 1,
		Behavior:     DefaultBehavior{},
	})

	for _, tmpl := range bp.Entities {
		e := tmpl
		if e.Behavior == nil {
			e.Behavior = DefaultBehavior{}
		}
		entities = append(entities, e)
	}

	physics := bp.Physics
	if physics.TimeScale == 0 {
		physics.TimeScale = 1
	}

	return &World{
		Entities: entities,
		Physics:  physics,
		Bounds:   bounds,
	}, nil
}

// Snapshot returns a copy of the entity set safe to read while the next
// frame is being computed.
func (w *World) Snapshot() []Entity {
	out := make([]Entity, len(w.Entities))
	copy(out, w.Entities)
	return out
}

// Player returns the live player entity, or nil if it is gone.
func (w *World) Player() *Entity {
	for i := range w.Entities {
		if w.Entities[i].Type == TypePlayer {
			return &w.Entities[i]
		}
	}
	return nil
}
