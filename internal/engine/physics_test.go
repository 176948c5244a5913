package engine

import (
	"math"
	"testing"
)

func TestGravityScaling(t *testing.T) {
	// Three falling boxes with different gravity scales, far from any
	// geometry.
	mk := func(id string, scale float64) Entity {
		return Entity{
			ID: id, Type: TypeEnemy,
			Pos: Vec2{X: 100, Y: 100}, Size: Vec2{X: 10, Y: 10},
			Visible: true, GravityScale: scale,
			Behavior: DefaultBehavior{},
		}
	}
	w := &World{
		Entities: []Entity{mk("normal", 1), mk("floaty", 0), mk("riser", -0.5)},
		Physics:  GlobalPhysics{Gravity: 0.5, Friction: 1, TimeScale: 1},
		Bounds:   Bounds{Width: 10000, Height: 10000},
	}

	w.Advance(Input{}, 16)

	want := 0.5 * gravityUnitScale * 0.016 // 16
	if v := w.Entities[0].Vel.Y; math.Abs(v-want) > 1e-9 {
		t.Errorf("scale 1: vel.y = %v, want %v", v, want)
	}
	if v := w.Entities[1].Vel.Y; v != 0 {
		t.Errorf("scale 0: vel.y = %v, want 0", v)
	}
	if v := w.Entities[2].Vel.Y; math.Abs(v+want/2) > 1e-9 {
		t.Errorf("scale -0.5: vel.y = %v, want %v", v, -want/2)
	}
}

func TestManualInputFrictionAfterAcceleration(t *testing.T) {
	bp := testBlueprint(Vec2{X: 100, Y: 418})
	bp.Physics.Gravity = 0
	bp.Physics.Friction = 0.5
	w := mustWorld(t, bp)

	w.Advance(Input{Right: true}, 100) // dt = 0.05

	// Acceleration first, then friction on top, same frame.
	want := (300 * 0.05) * 0.5
	if v := w.Player().Vel.X; math.Abs(v-want) > 1e-9 {
		t.Errorf("vel.x = %v, want %v", v, want)
	}
}

func TestBothDirectionsCancel(t *testing.T) {
	bp := testBlueprint(Vec2{X: 100, Y: 418})
	bp.Physics.Gravity = 0
	w := mustWorld(t, bp)

	w.Advance(Input{Left: true, Right: true}, 16)
	if v := w.Player().Vel.X; v != 0 {
		t.Errorf("opposing inputs should cancel, vel.x = %v", v)
	}
}

func TestManualInputOverridesClickTarget(t *testing.T) {
	bp := testBlueprint(Vec2{X: 100, Y: 418})
	w := mustWorld(t, bp)

	target := 700.0
	w.Advance(Input{Target: &target}, 16)
	if w.ClickTarget == nil {
		t.Fatal("click target not stored")
	}

	w.Advance(Input{Left: true}, 16)
	if w.ClickTarget != nil {
		t.Error("manual input should clear the click target")
	}
}

func TestClickWalkVelocitySetAndSnap(t *testing.T) {
	bp := testBlueprint(Vec2{X: 100, Y: 418})
	bp.Physics.Gravity = 0
	w := mustWorld(t, bp)

	target := 300.0
	res := w.Advance(Input{Target: &target}, 16)
	if !containsSound(res.Sounds, SoundClick) {
		t.Error("new click target should emit the click cue")
	}
	// A direct set, not an acceleration.
	if v := w.Player().Vel.X; v != maxWalkSpeed {
		t.Errorf("click-walk vel.x = %v, want %v", v, maxWalkSpeed)
	}

	// Park the player center within the snap distance of the target.
	w.Player().Pos.X = target - playerSize/2 - 2
	w.Advance(Input{}, 16)
	if w.ClickTarget != nil {
		t.Error("target within snap distance should be consumed")
	}
	if v := w.Player().Vel.X; v != 0 {
		t.Errorf("snap should zero vel.x, got %v", v)
	}
}

func TestJumpRequiresSameFrameGrounding(t *testing.T) {
	bp := testBlueprint(Vec2{X: 100, Y: 418})
	w := mustWorld(t, bp)

	// Resting on the floor: the Y pass grounds the player, so a held
	// jump key fires this very frame.
	res := w.Advance(Input{Jump: true}, 16)
	if v := w.Player().Vel.Y; v != jumpVelocity {
		t.Errorf("grounded jump vel.y = %v, want %v", v, jumpVelocity)
	}
	if !containsSound(res.Sounds, SoundJump) {
		t.Error("jump should emit the jump cue")
	}

	// Airborne: no grounding event this frame, no jump.
	res = w.Advance(Input{Jump: true}, 16)
	if v := w.Player().Vel.Y; v == jumpVelocity {
		t.Error("airborne jump should not re-trigger")
	}
	if containsSound(res.Sounds, SoundJump) {
		t.Error("airborne frame emitted a jump cue")
	}
}

func TestFootstepCooldown(t *testing.T) {
	bp := testBlueprint(Vec2{X: 50, Y: 418})
	w := mustWorld(t, bp)

	steps := 0
	for i := 0; i < 63; i++ { // ~1008ms simulated
		res := w.Advance(Input{Right: true}, 16)
		if containsSound(res.Sounds, SoundStep) {
			steps++
		}
	}

	// At most once per 300ms: 0, 300, 600, 900.
	if steps > 4 {
		t.Errorf("emitted %d step cues in ~1s, want at most 4", steps)
	}
	if steps == 0 {
		t.Error("walking player never emitted a step cue")
	}
}

func TestStaticEntitiesNeverMove(t *testing.T) {
	bp := testBlueprint(Vec2{X: 50, Y: 100})
	w := mustWorld(t, bp)

	for i := 0; i < 50; i++ {
		w.Advance(Input{}, 16)
	}
	for _, e := range w.Snapshot() {
		if e.Type == TypeWall && (e.Pos != (Vec2{X: 0, Y: 450}) || !e.Vel.IsZero()) {
			t.Errorf("static wall moved: pos %v vel %v", e.Pos, e.Vel)
		}
	}
}
