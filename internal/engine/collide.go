package engine

// Collision resolution is axis-separated: the X displacement is resolved
// and committed in full, then the Y displacement is resolved using the
// already-updated X. This is a deliberate simplification rather than a
// continuous sweep, and its corner artifacts are part of the observable
// behavior levels were built around. Keep the order.

// resolveX moves the entity along X, clamping to the world bounds and
// resolving against every collidable entity in the frame snapshot.
// It reports whether the move killed the player.
func (w *World) resolveX(e *Entity, snapshot []Entity) (died bool) {
	nx := e.Pos.X + e.Vel.X*w.dt

	if e.Type == TypeProjectile {
		// Projectiles fly off-canvas instead of clamping; past the margin
		// they despawn.
		if nx+e.Size.X < -offCanvasMargin || nx > w.Bounds.Width+offCanvasMargin {
			e.Visible = false
			e.Pos.X = nx
			return false
		}
	} else {
		if nx < 0 {
			nx = 0
			e.Vel.X = 0
		}
		if nx+e.Size.X > w.Bounds.Width {
			nx = w.Bounds.Width - e.Size.X
			e.Vel.X = 0
		}
	}

	probe := AABB{X: nx, Y: e.Pos.Y, W: e.Size.X, H: e.Size.Y}
	for j := range snapshot {
		o := &snapshot[j]
		if o.ID == e.ID || !o.collidable() {
			continue
		}
		if !probe.Overlaps(o.Bounds()) {
			continue
		}

		switch {
		case e.Type == TypePlayer && o.Deadly:
			return true
		case e.Type == TypeProjectile && o.Type == TypePlayer:
			return true
		case e.Type == TypeProjectile && o.Type == TypeWall:
			e.Visible = false
		case o.Solid:
			// Blocked: hold the pre-move position. Patrollers bounce off
			// instead of stopping.
			if _, patrol := e.Behavior.(PatrolBehavior); patrol {
				e.Vel.X = -e.Vel.X
			} else {
				e.Vel.X = 0
				if e.Type == TypePlayer {
					w.ClickTarget = nil
				}
			}
			nx = e.Pos.X
			probe.X = nx
		}
	}

	e.Pos.X = nx
	return false
}

// resolveY moves the entity along Y using the post-X position. Downward
// hits snap the entity to rest on top of the obstacle and ground it;
// upward hits snap it to hang just below.
func (w *World) resolveY(e *Entity, snapshot []Entity) (died, grounded bool) {
	ny := e.Pos.Y + e.Vel.Y*w.dt

	if e.Type != TypeProjectile && ny < 0 {
		ny = 0
		e.Vel.Y = 0
	}

	probe := AABB{X: e.Pos.X, Y: ny, W: e.Size.X, H: e.Size.Y}
	for j := range snapshot {
		o := &snapshot[j]
		if o.ID == e.ID || !o.collidable() {
			continue
		}
		if !probe.Overlaps(o.Bounds()) {
			continue
		}

		switch {
		case e.Type == TypePlayer && o.Deadly:
			return true, false
		case e.Type == TypeProjectile && o.Type == TypePlayer:
			return true, false
		case e.Type == TypeProjectile && o.Type == TypeWall:
			e.Visible = false
		case o.Solid:
			if e.Vel.Y > 0 {
				ny = o.Pos.Y - e.Size.Y
				e.Vel.Y = 0
				grounded = true
			} else if e.Vel.Y < 0 {
				ny = o.Pos.Y + o.Size.Y
				e.Vel.Y = 0
			}
			probe.Y = ny
		}
	}

	e.Pos.Y = ny
	return false, grounded
}

// fellOffWorld handles entities dropping past the lower kill bound.
// The player dies, projectiles despawn, scenery is left alone.
func (w *World) fellOffWorld(e *Entity) (died bool) {
	if e.Pos.Y <= w.Bounds.Height+fallBoundMargin {
		return false
	}
	switch e.Type {
	case TypePlayer:
		return true
	case TypeProjectile:
		e.Visible = false
	}
	return false
}

// touchingExit reports whether the entity overlaps any visible exit.
// Any overlap counts, not just one produced by this frame's resolution.
func touchingExit(e *Entity, snapshot []Entity) bool {
	box := e.Bounds()
	for j := range snapshot {
		o := &snapshot[j]
		if o.Type != TypeExit || !o.Visible || o.ID == e.ID {
			continue
		}
		if box.Overlaps(o.Bounds()) {
			return true
		}
	}
	return false
}
