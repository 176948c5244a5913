package engine

import (
	"math"
	"testing"
)

// testBlueprint builds a minimal valid level: a floor wall spanning the
// canvas bottom and a configurable start position.
func testBlueprint(start Vec2, extra ...Entity) LevelBlueprint {
	entities := []Entity{
		{
			ID:      "floor",
			Name:    "Floor",
			Type:    TypeWall,
			Pos:     Vec2{X: 0, Y: 450},
			Size:    Vec2{X: 800, Y: 50},
			Static:  true,
			Solid:   true,
			Visible: true,
		},
	}
	entities = append(entities, extra...)
	return LevelBlueprint{
		ID:       "test-level",
		Name:     "Test Level",
		Start:    start,
		Entities: entities,
		Physics:  GlobalPhysics{Gravity: 0.5, Friction: 0.8, TimeScale: 1},
	}
}

func mustWorld(t *testing.T, bp LevelBlueprint) *World {
	t.Helper()
	w, err := NewWorld(&bp, DefaultBounds())
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func TestDeltaTimeClamp(t *testing.T) {
	steps := []struct {
		rawMs     float64
		timeScale float64
		want      float64
	}{
		{16, 1, 0.016},
		{50, 1, 0.05},
		{500, 1, 0.05},    // frame hitch capped
		{100000, 1, 0.05}, // tab backgrounded for a while
		{500, 2, 0.1},     // cap applies before the time scale
		{16, 0.5, 0.008},
	}

	for _, tc := range steps {
		bp := testBlueprint(Vec2{X: 50, Y: 400})
		bp.Physics.TimeScale = tc.timeScale
		w := mustWorld(t, bp)
		res := w.Advance(Input{}, tc.rawMs)
		if math.Abs(res.Dt-tc.want) > 1e-12 {
			t.Errorf("raw %vms scale %v: dt = %v, want %v", tc.rawMs, tc.timeScale, res.Dt, tc.want)
		}
	}
}

func TestFallAndLand(t *testing.T) {
	w := mustWorld(t, testBlueprint(Vec2{X: 50, Y: 400}))

	for i := 0; i < 120; i++ {
		res := w.Advance(Input{}, 16)
		if res.Outcome != OutcomeNone {
			t.Fatalf("frame %d: unexpected outcome %v", i, res.Outcome)
		}
	}

	p := w.Player()
	if p == nil {
		t.Fatal("player missing after landing")
	}
	if p.Vel.Y != 0 {
		t.Errorf("landed player velocity.y = %v, want 0", p.Vel.Y)
	}
	if p.Pos.Y != 450-playerSize {
		t.Errorf("landed player pos.y = %v, want %v", p.Pos.Y, 450-playerSize)
	}
}

func TestAxisSeparationCornerClip(t *testing.T) {
	// A block whose top corner the player approaches diagonally. The X
	// displacement resolves first against the pre-move Y, so the player
	// slides over the corner and the Y pass lands it on top — rather
	// than being stopped laterally as a joint sweep would do.
	block := Entity{
		ID: "block", Type: TypeWall,
		Pos: Vec2{X: 200, Y: 420}, Size: Vec2{X: 60, Y: 30},
		Static: true, Solid: true, Visible: true,
	}
	bp := testBlueprint(Vec2{X: 180, Y: 385}, block)
	bp.Physics.Gravity = 0
	bp.Physics.Friction = 1
	w := mustWorld(t, bp)

	p := w.Player()
	p.Vel = Vec2{X: 200, Y: 100} // down-right into the corner

	w.Advance(Input{}, 50) // dt = 0.05: tentative move (+10, +5)

	p = w.Player()
	if p.Pos.X != 190 {
		t.Errorf("X pass should commit fully before Y runs: pos.x = %v, want 190", p.Pos.X)
	}
	if p.Pos.Y != 420-playerSize {
		t.Errorf("Y pass should snap onto the block using the post-X position: pos.y = %v, want %v",
			p.Pos.Y, 420-playerSize)
	}
	if p.Vel.Y != 0 {
		t.Errorf("velocity.y = %v, want 0 after snapping to rest", p.Vel.Y)
	}
}

func TestDeathShortCircuit(t *testing.T) {
	spikes := Entity{
		ID: "spikes", Type: TypeEnemy,
		Pos: Vec2{X: 40, Y: 410}, Size: Vec2{X: 60, Y: 40},
		Static: true, Deadly: true, Visible: true,
	}
	patrol := Entity{
		ID: "walker", Type: TypeEnemy,
		Pos: Vec2{X: 300, Y: 100}, Size: Vec2{X: 20, Y: 20},
		Visible: true,
		Behavior: PatrolBehavior{
			Start: Vec2{X: 300, Y: 100}, End: Vec2{X: 400, Y: 100}, Speed: 100,
		},
	}
	bp := testBlueprint(Vec2{X: 50, Y: 400}, spikes, patrol)
	w := mustWorld(t, bp)
	before := w.Snapshot()

	res := w.Advance(Input{}, 16)

	if res.Outcome != OutcomeReset {
		t.Fatalf("outcome = %v, want reset", res.Outcome)
	}
	if !containsSound(res.Sounds, SoundDie) {
		t.Errorf("death should emit the die cue, got %v", res.Sounds)
	}

	// The frame was aborted wholesale: nothing past the detection point
	// was committed, including the patroller's update.
	after := w.Snapshot()
	if len(after) != len(before) {
		t.Fatalf("entity count changed on aborted frame: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i].Pos != after[i].Pos || before[i].Vel != after[i].Vel {
			t.Errorf("entity %q mutated on aborted frame", before[i].ID)
		}
	}
}

func TestPauseSkipsWork(t *testing.T) {
	bp := testBlueprint(Vec2{X: 50, Y: 400})
	s, err := NewSession([]LevelBlueprint{bp}, DefaultBounds(), DefaultSessionConfig())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	s.SetPaused(true)
	before := s.Snapshot()
	for i := 0; i < 30; i++ {
		res := s.Advance(Input{}, 16)
		if res.Outcome != OutcomeNone || len(res.Sounds) != 0 {
			t.Fatalf("paused tick produced signals: %+v", res)
		}
	}
	after := s.Snapshot()
	for i := range before {
		if before[i].Pos != after[i].Pos {
			t.Errorf("entity %q moved while paused", before[i].ID)
		}
	}

	// Resuming applies no catch-up: the first active frame is still
	// clamped like any other.
	s.SetPaused(false)
	res := s.Advance(Input{}, 5000)
	if res.Dt > maxFrameStep {
		t.Errorf("post-resume dt = %v, want <= %v", res.Dt, maxFrameStep)
	}
}

func TestClickWalkToExit(t *testing.T) {
	exit := Entity{
		ID: "exit", Name: "Exit", Type: TypeExit,
		Pos: Vec2{X: 700, Y: 400}, Size: Vec2{X: 30, Y: 50},
		Static: true, Visible: true,
	}
	bp := testBlueprint(Vec2{X: 50, Y: 418}, exit)
	s, err := NewSession([]LevelBlueprint{bp}, DefaultBounds(), DefaultSessionConfig())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	target := 730.0
	completes, resets, wins := 0, 0, 0

	for i := 0; i < 600; i++ {
		in := Input{}
		if i == 0 {
			in.Target = &target
		}
		res := s.Advance(in, 16)
		switch res.Outcome {
		case OutcomeComplete:
			completes++
			if res.RunMillis <= 0 {
				t.Errorf("complete outcome missing run duration")
			}
		case OutcomeReset:
			resets++
		case OutcomeWon:
			wins++
		}
	}

	if completes != 1 {
		t.Errorf("Complete emitted %d times, want exactly 1", completes)
	}
	if resets != 0 {
		t.Errorf("Reset emitted %d times, want 0", resets)
	}
	if wins != 1 {
		t.Errorf("Won emitted %d times, want 1 (single-level progression)", wins)
	}
	if s.State() != SessionWon {
		t.Errorf("session state = %v, want won", s.State())
	}
}

func TestWonIsTerminalUntilRestart(t *testing.T) {
	exit := Entity{
		ID: "exit", Type: TypeExit,
		Pos: Vec2{X: 40, Y: 380}, Size: Vec2{X: 50, Y: 70},
		Static: true, Visible: true,
	}
	bp := testBlueprint(Vec2{X: 50, Y: 400}, exit)
	s, err := NewSession([]LevelBlueprint{bp}, DefaultBounds(), DefaultSessionConfig())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	for i := 0; i < 300 && s.State() != SessionWon; i++ {
		s.Advance(Input{}, 16)
	}
	if s.State() != SessionWon {
		t.Fatal("session never reached won")
	}

	for i := 0; i < 30; i++ {
		if res := s.Advance(Input{}, 16); res.Outcome != OutcomeNone {
			t.Fatalf("won session emitted %v", res.Outcome)
		}
	}

	s.Restart()
	if s.State() != SessionRunning {
		t.Errorf("restart should re-enter running, got %v", s.State())
	}
	if s.LevelIndex() != 0 {
		t.Errorf("restart should rewind to level 0, got %d", s.LevelIndex())
	}
}

func TestDeathReinitializesWorld(t *testing.T) {
	spikes := Entity{
		ID: "spikes", Type: TypeEnemy,
		Pos: Vec2{X: 200, Y: 430}, Size: Vec2{X: 40, Y: 20},
		Static: true, Deadly: true, Visible: true,
	}
	bp := testBlueprint(Vec2{X: 50, Y: 418}, spikes)
	s, err := NewSession([]LevelBlueprint{bp}, DefaultBounds(), DefaultSessionConfig())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	// Walk right into the spikes.
	sawReset := false
	for i := 0; i < 600; i++ {
		res := s.Advance(Input{Right: true}, 16)
		if res.Outcome == OutcomeReset {
			sawReset = true
			break
		}
	}
	if !sawReset {
		t.Fatal("player never died")
	}

	// The committed state equals a freshly instantiated blueprint.
	fresh, _ := NewWorld(&bp, DefaultBounds())
	got := s.Snapshot()
	if len(got) != len(fresh.Entities) {
		t.Fatalf("reset world has %d entities, want %d", len(got), len(fresh.Entities))
	}
	for i := range got {
		if got[i].ID != fresh.Entities[i].ID || got[i].Pos != fresh.Entities[i].Pos {
			t.Errorf("entity %d not reinitialized: got %q at %v", i, got[i].ID, got[i].Pos)
		}
	}
	if s.ClickTarget() != nil {
		t.Error("reset should clear the click target")
	}
	if s.Deaths() != 1 {
		t.Errorf("deaths = %d, want 1", s.Deaths())
	}
}

func containsSound(sounds []Sound, want Sound) bool {
	for _, s := range sounds {
		if s == want {
			return true
		}
	}
	return false
}
