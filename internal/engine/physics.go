package engine

import "math"

// Tuning constants. The unit-scale factor and control numbers are load
// bearing: levels were authored against these exact values, so changing
// them changes which levels are completable.
const (
	// maxFrameStep caps the per-frame time step in seconds, absorbing
	// frame hitches (background tabs, debugger pauses) uniformly.
	maxFrameStep = 0.05

	// gravityUnitScale converts the configured gravity dial into
	// per-unit acceleration.
	gravityUnitScale = 2000.0

	moveAccel    = 300.0  // horizontal acceleration from held keys, units/s^2
	maxWalkSpeed = 200.0  // click-to-walk cruise speed, units/s
	jumpVelocity = -600.0 // vertical velocity set on jump, units/s

	clickSnapDistance = 5.0 // within this of the target, snap and stop

	footstepIntervalMs  = 300.0
	footstepMinSpeed    = 10.0
	footstepMaxVertical = 5.0

	playerSize     = 32.0
	projectileSize = 10.0

	defaultPatrolSpeed     = 100.0
	defaultProjectileSpeed = 300.0
	defaultFireRate        = 1000.0 // ms
	turretRange            = 500.0
	turretMuzzleOffset     = 35.0

	offCanvasMargin = 100.0 // horizontal slack before a projectile despawns
	fallBoundMargin = 200.0 // below bounds+this, falling entities resolve
)

// integrate applies gravity and, for the player, the control law. Static
// entities never reach this point.
func (w *World) integrate(e *Entity, in Input, dt float64) {
	e.Vel.Y += w.Physics.Gravity * gravityUnitScale * e.GravityScale * dt

	if e.Type != TypePlayer {
		return
	}

	manual := in.Left || in.Right
	if in.Left {
		e.Vel.X -= moveAccel * dt
	}
	if in.Right {
		e.Vel.X += moveAccel * dt
	}

	switch {
	case manual:
		// Manual input overrides any pending click-to-walk target, and
		// friction lands on top of the acceleration in the same frame.
		w.ClickTarget = nil
		e.Vel.X *= w.Physics.Friction
	case w.ClickTarget != nil:
		dx := *w.ClickTarget - e.Center().X
		if math.Abs(dx) < clickSnapDistance {
			// Close enough: consume the target and stop.
			w.ClickTarget = nil
			e.Vel.X = 0
		} else if dx > 0 {
			// A direct velocity set, deliberately bypassing friction so
			// click-walking feels locked on.
			e.Vel.X = maxWalkSpeed
		} else {
			e.Vel.X = -maxWalkSpeed
		}
	default:
		e.Vel.X *= w.Physics.Friction
	}
}

// footstep emits a step cue at most once per footstepIntervalMs while the
// player is effectively walking: moving horizontally and not falling or
// rising fast. Applies to both manual and click-to-walk movement.
func (w *World) footstep(e *Entity) []Sound {
	if e.Type != TypePlayer {
		return nil
	}
	if math.Abs(e.Vel.X) <= footstepMinSpeed || math.Abs(e.Vel.Y) >= footstepMaxVertical {
		return nil
	}
	if w.Clock-w.lastStepAt < footstepIntervalMs {
		return nil
	}
	w.lastStepAt = w.Clock
	return []Sound{SoundStep}
}
