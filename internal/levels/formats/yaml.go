// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/engine"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	Start       *YAMLVec     `yaml:"start"`
	Physics     *YAMLPhysics `yaml:"physics,omitempty"`
	Entities    []YAMLEntity `yaml:"entities"`
}

// YAMLVec is a 2D point in world units.
type YAMLVec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// YAMLPhysics holds optional physics overrides. Absent fields keep the
// engine defaults.
type YAMLPhysics struct {
	Gravity   *float64 `yaml:"gravity,omitempty"`
	Friction  *float64 `yaml:"friction,omitempty"`
	TimeScale *float64 `yaml:"time_scale,omitempty"`
}

// YAMLEntity is a single entity template. Boolean and scale fields are
// pointers so that an absent field can fall back to the default for the
// entity's type rather than to the Go zero value.
type YAMLEntity struct {
	ID            string        `yaml:"id"`
	Name          string        `yaml:"name,omitempty"`
	Type          string        `yaml:"type"`
	Pos           YAMLVec       `yaml:"pos"`
	Size          YAMLSize      `yaml:"size"`
	Velocity      *YAMLVec      `yaml:"velocity,omitempty"`
	Static        *bool         `yaml:"static,omitempty"`
	Solid         *bool         `yaml:"solid,omitempty"`
	Visible       *bool         `yaml:"visible,omitempty"`
	Locked        *bool         `yaml:"locked,omitempty"`
	Deadly        *bool         `yaml:"deadly,omitempty"`
	AlwaysVisible *bool         `yaml:"always_visible,omitempty"`
	GravityScale  *float64      `yaml:"gravity_scale,omitempty"`
	Behavior      *YAMLBehavior `yaml:"behavior,omitempty"`
	Label         string        `yaml:"label,omitempty"`
	Description   string        `yaml:"description,omitempty"`
}

// YAMLSize is an entity extent in world units.
type YAMLSize struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// YAMLBehavior selects and parameterizes an entity behavior.
// Zero-valued parameters use the engine defaults.
type YAMLBehavior struct {
	Kind            string   `yaml:"kind"` // "patrol" or "turret"
	Start           *YAMLVec `yaml:"start,omitempty"`
	End             *YAMLVec `yaml:"end,omitempty"`
	Speed           float64  `yaml:"speed,omitempty"`
	FireRateMs      float64  `yaml:"fire_rate_ms,omitempty"`
	ProjectileSpeed float64  `yaml:"projectile_speed,omitempty"`
}

// ParseYAML parses a YAML level file into a blueprint.
// The result is not validated; callers run Blueprint.Validate.
func ParseYAML(data []byte) (engine.LevelBlueprint, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return engine.LevelBlueprint{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.Start == nil {
		return engine.LevelBlueprint{}, fmt.Errorf("level %q: missing start position", yl.ID)
	}

	bp := engine.LevelBlueprint{
		ID:          yl.ID,
		Name:        yl.Name,
		Description: yl.Description,
		Start:       engine.Vec2{X: yl.Start.X, Y: yl.Start.Y},
		Physics:     engine.DefaultPhysics(),
	}
	if yl.Physics != nil {
		if yl.Physics.Gravity != nil {
			bp.Physics.Gravity = *yl.Physics.Gravity
		}
		if yl.Physics.Friction != nil {
			bp.Physics.Friction = *yl.Physics.Friction
		}
		if yl.Physics.TimeScale != nil {
			bp.Physics.TimeScale = *yl.Physics.TimeScale
		}
	}

	bp.Entities = make([]engine.Entity, 0, len(yl.Entities))
	for _, ye := range yl.Entities {
		e, err := buildEntity(ye)
		if err != nil {
			return engine.LevelBlueprint{}, fmt.Errorf("level %q entity %q: %w", yl.ID, ye.ID, err)
		}
		bp.Entities = append(bp.Entities, e)
	}

	return bp, nil
}

// typeDefaults returns the baseline entity for a given type. Explicit
// fields in the file override these.
func typeDefaults(t engine.EntityType) (engine.Entity, error) {
	// GravityScale defaults to 1 for every type; an explicit
	// gravity_scale: 0 in the file still overrides it.
	switch t {
	case engine.TypeWall, engine.TypePlatform:
		return engine.Entity{Static: true, Solid: true, Visible: true, GravityScale: 1}, nil
	case engine.TypeDoor:
		return engine.Entity{Static: true, Solid: true, Visible: true, Locked: true, GravityScale: 1}, nil
	case engine.TypeExit:
		return engine.Entity{Static: true, Visible: true, GravityScale: 1}, nil
	case engine.TypeText:
		return engine.Entity{Static: true, Visible: true, GravityScale: 1}, nil
	case engine.TypeEnemy:
		return engine.Entity{Visible: true, Deadly: true, GravityScale: 1}, nil
	case engine.TypeProjectile:
		return engine.Entity{Visible: true, Deadly: true, GravityScale: 1}, nil
	case engine.TypePlayer:
		// The player is instantiated by the engine, never authored.
		return engine.Entity{}, fmt.Errorf("player entities cannot appear in level files")
	default:
		return engine.Entity{}, fmt.Errorf("unknown entity type %q", t)
	}
}

func buildEntity(ye YAMLEntity) (engine.Entity, error) {
	e, err := typeDefaults(engine.EntityType(ye.Type))
	if err != nil {
		return engine.Entity{}, err
	}

	e.ID = ye.ID
	e.Name = ye.Name
	e.Type = engine.EntityType(ye.Type)
	e.Pos = engine.Vec2{X: ye.Pos.X, Y: ye.Pos.Y}
	e.Size = engine.Vec2{X: ye.Size.W, Y: ye.Size.H}
	e.Label = ye.Label
	e.Description = ye.Description

	if ye.Velocity != nil {
		e.Vel = engine.Vec2{X: ye.Velocity.X, Y: ye.Velocity.Y}
	}
	if ye.Static != nil {
		e.Static = *ye.Static
	}
	if ye.Solid != nil {
		e.Solid = *ye.Solid
	}
	if ye.Visible != nil {
		e.Visible = *ye.Visible
	}
	if ye.Locked != nil {
		e.Locked = *ye.Locked
	}
	if ye.Deadly != nil {
		e.Deadly = *ye.Deadly
	}
	if ye.AlwaysVisible != nil {
		e.AlwaysVisible = *ye.AlwaysVisible
	}
	if ye.GravityScale != nil {
		e.GravityScale = *ye.GravityScale
	}

	behavior, err := buildBehavior(ye.Behavior, e.Pos)
	if err != nil {
		return engine.Entity{}, err
	}
	e.Behavior = behavior

	// Integration and the collision sweeps only run for non-static
	// entities, so anything behavior-driven must not be static.
	if _, ok := e.Behavior.(engine.DefaultBehavior); !ok {
		e.Static = false
	}

	return e, nil
}

func buildBehavior(yb *YAMLBehavior, pos engine.Vec2) (engine.Behavior, error) {
	if yb == nil {
		return engine.DefaultBehavior{}, nil
	}
	switch yb.Kind {
	case "", "none":
		return engine.DefaultBehavior{}, nil
	case "patrol":
		if yb.Start == nil || yb.End == nil {
			return nil, fmt.Errorf("patrol behavior requires start and end")
		}
		return engine.PatrolBehavior{
			Start: engine.Vec2{X: yb.Start.X, Y: yb.Start.Y},
			End:   engine.Vec2{X: yb.End.X, Y: yb.End.Y},
			Speed: yb.Speed,
		}, nil
	case "turret":
		return engine.TurretBehavior{
			FireRate:        yb.FireRateMs,
			ProjectileSpeed: yb.ProjectileSpeed,
		}, nil
	default:
		return nil, fmt.Errorf("unknown behavior kind %q", yb.Kind)
	}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
