package engine

import (
	"strings"
	"testing"
)

func TestBlueprintValidation(t *testing.T) {
	valid := testBlueprint(Vec2{X: 50, Y: 400})
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid blueprint rejected: %v", err)
	}

	cases := []struct {
		name    string
		mutate  func(*LevelBlueprint)
		wantErr string
	}{
		{
			"missing id",
			func(bp *LevelBlueprint) { bp.ID = "" },
			"no id",
		},
		{
			"zero-size entity",
			func(bp *LevelBlueprint) { bp.Entities[0].Size = Vec2{} },
			"non-positive size",
		},
		{
			"negative-size entity",
			func(bp *LevelBlueprint) { bp.Entities[0].Size = Vec2{X: -5, Y: 10} },
			"non-positive size",
		},
		{
			"duplicate entity id",
			func(bp *LevelBlueprint) {
				bp.Entities = append(bp.Entities, bp.Entities[0])
			},
			"duplicate entity id",
		},
		{
			"player template",
			func(bp *LevelBlueprint) {
				bp.Entities = append(bp.Entities, Entity{
					ID: "impostor", Type: TypePlayer,
					Size: Vec2{X: 32, Y: 32}, Visible: true,
				})
			},
			"player",
		},
		{
			"entity without id",
			func(bp *LevelBlueprint) {
				bp.Entities = append(bp.Entities, Entity{
					Type: TypeWall, Size: Vec2{X: 10, Y: 10},
				})
			},
			"has no id",
		},
		{
			"negative time scale",
			func(bp *LevelBlueprint) { bp.Physics.TimeScale = -1 },
			"time scale",
		},
	}

	for _, tc := range cases {
		bp := testBlueprint(Vec2{X: 50, Y: 400})
		tc.mutate(&bp)

		err := bp.Validate()
		if err == nil {
			t.Errorf("%s: expected a validation error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.wantErr) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.wantErr)
		}

		// A world must never be built over an invalid blueprint.
		if _, werr := NewWorld(&bp, DefaultBounds()); werr == nil {
			t.Errorf("%s: NewWorld accepted an invalid blueprint", tc.name)
		}
	}
}

func TestNewWorldInstantiation(t *testing.T) {
	bp := testBlueprint(Vec2{X: 123, Y: 45})
	bp.Physics.TimeScale = 0 // absent in the template
	bp.Entities[0].Behavior = nil

	w, err := NewWorld(&bp, DefaultBounds())
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	p := w.Player()
	if p == nil {
		t.Fatal("no player instantiated")
	}
	if p.Pos != (Vec2{X: 123, Y: 45}) {
		t.Errorf("player at %v, want the blueprint start", p.Pos)
	}
	if p.Size != (Vec2{X: playerSize, Y: playerSize}) {
		t.Errorf("player size = %v", p.Size)
	}
	if !p.Vel.IsZero() {
		t.Errorf("player velocity should default to zero, got %v", p.Vel)
	}
	if p.GravityScale != 1 {
		t.Errorf("player gravity scale = %v, want 1", p.GravityScale)
	}

	// Runtime defaults on templates.
	if w.Physics.TimeScale != 1 {
		t.Errorf("absent time scale should default to 1, got %v", w.Physics.TimeScale)
	}
	if _, ok := w.Entities[1].Behavior.(DefaultBehavior); !ok {
		t.Errorf("nil behavior should normalize to DefaultBehavior, got %T", w.Entities[1].Behavior)
	}

	// The blueprint itself must stay untouched.
	if bp.Entities[0].Behavior != nil {
		t.Error("NewWorld mutated the blueprint template")
	}
}

func TestSessionAdvancesThroughLevels(t *testing.T) {
	exitAtStart := Entity{
		ID: "exit", Type: TypeExit,
		Pos: Vec2{X: 40, Y: 380}, Size: Vec2{X: 50, Y: 70},
		Static: true, Visible: true,
	}
	first := testBlueprint(Vec2{X: 50, Y: 400}, exitAtStart)
	first.ID = "lvl-1"
	second := testBlueprint(Vec2{X: 50, Y: 400}, exitAtStart)
	second.ID = "lvl-2"

	s, err := NewSession([]LevelBlueprint{first, second}, DefaultBounds(), DefaultSessionConfig())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	var outcomes []Outcome
	var levelIDs []string
	for i := 0; i < 500 && s.State() != SessionWon; i++ {
		res := s.Advance(Input{}, 16)
		if res.Outcome != OutcomeNone {
			outcomes = append(outcomes, res.Outcome)
			levelIDs = append(levelIDs, res.LevelID)
		}
	}

	want := []Outcome{OutcomeComplete, OutcomeComplete, OutcomeWon}
	if len(outcomes) != len(want) {
		t.Fatalf("outcomes = %v, want %v", outcomes, want)
	}
	for i := range want {
		if outcomes[i] != want[i] {
			t.Fatalf("outcomes = %v, want %v", outcomes, want)
		}
	}
	if levelIDs[0] != "lvl-1" || levelIDs[1] != "lvl-2" {
		t.Errorf("outcome level ids = %v", levelIDs)
	}
	if s.CompletedLevels() != 2 {
		t.Errorf("completed = %d, want 2", s.CompletedLevels())
	}
}

func TestSessionIntroBanner(t *testing.T) {
	bp := testBlueprint(Vec2{X: 50, Y: 400})
	bp.Name = "First Steps"
	bp.Description = "walk right"

	s, err := NewSession([]LevelBlueprint{bp}, DefaultBounds(), DefaultSessionConfig())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	res := s.Advance(Input{}, 16)
	if len(res.Messages) != 1 {
		t.Fatalf("first frame messages = %v, want the intro banner", res.Messages)
	}
	msg := res.Messages[0]
	if !strings.Contains(msg.Text, "First Steps") || !strings.Contains(msg.Text, "walk right") {
		t.Errorf("banner text = %q", msg.Text)
	}
	if msg.Duration <= 0 {
		t.Error("banner should carry a display-duration hint")
	}

	// Only once per level start.
	res = s.Advance(Input{}, 16)
	if len(res.Messages) != 0 {
		t.Errorf("second frame repeated the banner: %v", res.Messages)
	}
}

func TestPhysicsMutableBetweenFrames(t *testing.T) {
	bp := testBlueprint(Vec2{X: 100, Y: 100})
	s, err := NewSession([]LevelBlueprint{bp}, DefaultBounds(), DefaultSessionConfig())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	// Zero gravity mid-run: takes effect on the very next frame.
	s.Physics().Gravity = 0
	s.Advance(Input{}, 16)

	for _, e := range s.Snapshot() {
		if e.Type == TypePlayer && e.Vel.Y != 0 {
			t.Errorf("gravity hack ignored: vel.y = %v", e.Vel.Y)
		}
	}
}

func TestEmptySessionRejected(t *testing.T) {
	if _, err := NewSession(nil, DefaultBounds(), DefaultSessionConfig()); err == nil {
		t.Error("session over zero levels should fail")
	}
}
