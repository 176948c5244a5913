package engine

import (
	"fmt"
	"math"
)

// Behavior is the AI driver attached to an entity. It is a sealed sum
// type: behavior-specific parameters only exist when the concrete variant
// matches, so there is no optional-field ambiguity on the entity itself.
type Behavior interface {
	isBehavior()
}

// DefaultBehavior does nothing. Entities without AI carry it.
type DefaultBehavior struct{}

func (DefaultBehavior) isBehavior() {}

// PatrolBehavior moves an entity back and forth along the line from
// Start to End at a fixed speed, reversing at the endpoints.
type PatrolBehavior struct {
	Start Vec2
	End   Vec2
	Speed float64 // world units per second; defaults to 100 when <= 0
}

func (PatrolBehavior) isBehavior() {}

// TurretBehavior aims at the player and fires projectiles while the
// player is visible and in range. LastFire and HasFired are runtime
// state, never part of a blueprint.
type TurretBehavior struct {
	FireRate        float64 // minimum ms between shots; defaults to 1000 when <= 0
	ProjectileSpeed float64 // world units per second; defaults to 300 when <= 0
	LastFire        float64 // logic-clock ms of the last shot
	HasFired        bool
}

func (TurretBehavior) isBehavior() {}

// updateBehavior runs the entity's AI for this frame, before force
// integration. Turrets may spawn projectiles; those join the world at the
// end of the frame and are first simulated on the next one.
func (w *World) updateBehavior(e *Entity, snapshot []Entity) (spawned []Entity, sounds []Sound) {
	switch b := e.Behavior.(type) {
	case PatrolBehavior:
		updatePatrol(e, b)
		return nil, nil
	case TurretBehavior:
		return w.updateTurret(e, b, snapshot)
	default:
		return nil, nil
	}
}

// updatePatrol steers the entity along its patrol line. Direction only
// flips at or past the endpoints; mid-path it is preserved even if the
// speed parameter changes underneath us.
func updatePatrol(e *Entity, b PatrolBehavior) {
	speed := b.Speed
	if speed <= 0 {
		speed = defaultPatrolSpeed
	}

	path := b.End.Sub(b.Start)
	lenSq := path.Dot(path)
	if lenSq == 0 {
		return
	}

	// Normalized progress along the path; intentionally unclamped so an
	// overshoot past an endpoint still reads as "at the end".
	t := e.Pos.Sub(b.Start).Dot(path) / lenSq
	dir := path.Unit()

	switch {
	case e.Vel.IsZero():
		// First activation: head toward the end point.
		e.Vel = dir.Scale(speed)
	case e.Vel.Dot(path) >= 0 && t >= 1:
		e.Vel = dir.Scale(-speed)
	case e.Vel.Dot(path) < 0 && t <= 0:
		e.Vel = dir.Scale(speed)
	}
}

// updateTurret fires at the player when it is visible and closer than the
// turret range, honoring the fire-rate cooldown on the logic clock.
// The aim is recomputed every qualifying frame; there is no leading.
func (w *World) updateTurret(e *Entity, b TurretBehavior, snapshot []Entity) ([]Entity, []Sound) {
	player := findVisiblePlayer(snapshot)
	if player == nil {
		return nil, nil
	}

	origin := e.Center()
	target := player.Center()
	dx := target.X - origin.X
	dy := target.Y - origin.Y
	if math.Hypot(dx, dy) >= turretRange {
		return nil, nil
	}

	rate := b.FireRate
	if rate <= 0 {
		rate = defaultFireRate
	}
	if b.HasFired && w.Clock-b.LastFire <= rate {
		return nil, nil
	}

	angle := math.Atan2(dy, dx)
	dir := Vec2{X: math.Cos(angle), Y: math.Sin(angle)}

	speed := b.ProjectileSpeed
	if speed <= 0 {
		speed = defaultProjectileSpeed
	}

	muzzle := origin.Add(dir.Scale(turretMuzzleOffset))
	w.spawnSeq++
	shot := Entity{
		ID:       fmt.Sprintf("%s-shot-%d", e.ID, w.spawnSeq),
		Name:     "Projectile",
		Type:     TypeProjectile,
		Pos:      Vec2{X: muzzle.X - projectileSize/2, Y: muzzle.Y - projectileSize/2},
		Size:     Vec2{X: projectileSize, Y: projectileSize},
		Vel:      dir.Scale(speed),
		Visible:  true,
		Deadly:   true,
		Behavior: DefaultBehavior{},
	}

	b.LastFire = w.Clock
	b.HasFired = true
	e.Behavior = b

	return []Entity{shot}, []Sound{SoundShoot}
}

// findVisiblePlayer returns the player entity from the snapshot, or nil
// if the player is absent or invisible.
func findVisiblePlayer(snapshot []Entity) *Entity {
	for i := range snapshot {
		if snapshot[i].Type == TypePlayer && snapshot[i].Visible {
			return &snapshot[i]
		}
	}
	return nil
}
