package engine

import "math"

// Advance runs one simulation frame: behavior, integration, axis-separated
// collision resolution, off-world checks, and outcome detection, in that
// order for each entity. It is a total function over the current state;
// every per-frame branch returns a valid next state or an outcome signal,
// never an error.
//
// All collision queries within the frame read a snapshot of the previous
// frame's positions, so an entity's in-progress update never perturbs what
// the others observe. Finalized entities are written into a fresh list
// that becomes the committed state.
//
// On a death outcome the frame is aborted wholesale: no further entities
// are processed and the previous state is left in place for the session
// to replace with a fresh instantiation of the blueprint.
func (w *World) Advance(in Input, rawDeltaMs float64) StepResult {
	var res StepResult

	// Hard cap on the integration step, then the time-scale dial.
	dt := math.Min(rawDeltaMs/1000, maxFrameStep) * w.Physics.TimeScale
	w.dt = dt
	w.Clock += dt * 1000
	res.Dt = dt

	if in.Target != nil {
		t := *in.Target
		w.ClickTarget = &t
		res.Sounds = append(res.Sounds, SoundClick)
	}

	snapshot := w.Snapshot()
	next := make([]Entity, 0, len(snapshot))
	var spawned []Entity

	for i := range snapshot {
		e := snapshot[i]

		shots, cues := w.updateBehavior(&e, snapshot)
		spawned = append(spawned, shots...)
		res.Sounds = append(res.Sounds, cues...)

		died := false
		if !e.Static {
			w.integrate(&e, in, dt)

			died = w.resolveX(&e, snapshot)
			var grounded bool
			if !died {
				died, grounded = w.resolveY(&e, snapshot)
			}

			if !died {
				// Jump is gated strictly on this frame's ground contact;
				// there is no buffering across frames.
				if e.Type == TypePlayer && grounded && in.Jump {
					e.Vel.Y = jumpVelocity
					res.Sounds = append(res.Sounds, SoundJump)
				}
				res.Sounds = append(res.Sounds, w.footstep(&e)...)
				died = w.fellOffWorld(&e)
			}
		}

		if died {
			// Hard short-circuit: the rest of the frame is discarded for
			// all entities, not just this one.
			res.Sounds = append(res.Sounds, SoundDie)
			res.Outcome = OutcomeReset
			return res
		}

		if e.Type == TypePlayer && touchingExit(&e, snapshot) {
			res.Outcome = OutcomeComplete
			next = append(next, e)
			// Remaining entities keep their previous-frame state; the
			// session takes over from here.
			next = append(next, snapshot[i+1:]...)
			w.Entities = append(next, spawned...)
			return res
		}

		// Spent projectiles leave the active set entirely. Entities made
		// invisible for any other reason stay, merely out of play.
		if e.Type == TypeProjectile && !e.Visible {
			continue
		}
		next = append(next, e)
	}

	w.Entities = append(next, spawned...)
	return res
}
