package engine

// EntityType tags what kind of object an entity is. Several collision
// rules key off the type (projectiles, walls, the exit), everything else
// keys off the capability flags.
type EntityType string

// Known entity types.
const (
	TypePlayer     EntityType = "player"
	TypeWall       EntityType = "wall"
	TypeDoor       EntityType = "door"
	TypePlatform   EntityType = "platform"
	TypeEnemy      EntityType = "enemy"
	TypeProjectile EntityType = "projectile"
	TypeExit       EntityType = "exit"
	TypeText       EntityType = "text"
)

// Entity is the central mutable simulation record. Entities are plain
// values: the frame driver copies them freely, so they must not hold
// pointers into shared state.
type Entity struct {
	// Identity. ID is unique within a world and immutable after creation.
	ID   string
	Name string
	Type EntityType

	// Geometry. Pos is the top-left corner; Size components are > 0.
	Pos  Vec2
	Size Vec2
	Vel  Vec2

	// Capability flags. These are orthogonal and independently togglable;
	// they are not implied by Type.
	Static        bool // exempt from force integration and pushback
	Solid         bool // participates in blocking collisions
	Visible       bool // when false, excluded from all collision and hazard checks
	Locked        bool // doors only; purely semantic, does not block by itself
	Deadly        bool // contact kills a solid-seeking entity
	AlwaysVisible bool // host-level constraint forbidding visibility toggles

	// GravityScale multiplies the global gravity for this entity.
	// May be zero or negative.
	GravityScale float64

	// Behavior drives AI velocity and targeting updates each frame.
	Behavior Behavior

	// Decorative fields with no physics effect.
	Label       string
	Description string
}

// Bounds returns the entity's axis-aligned bounding box.
func (e *Entity) Bounds() AABB {
	return AABB{X: e.Pos.X, Y: e.Pos.Y, W: e.Size.X, H: e.Size.Y}
}

// Center returns the entity's center point.
func (e *Entity) Center() Vec2 {
	return Vec2{X: e.Pos.X + e.Size.X/2, Y: e.Pos.Y + e.Size.Y/2}
}

// collidable reports whether the entity blocks or harms others this frame.
// Invisible entities are out of play entirely.
func (e *Entity) collidable() bool {
	return e.Visible && (e.Solid || e.Deadly)
}
