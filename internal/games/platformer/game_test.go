package platformer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

func resetGlobals() {
	configPath = ""
	difficultyPreset = ""
	levelsDir = ""
	startLevelID = ""
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	t.Cleanup(resetGlobals)
	g := New()
	g.Reset(core.DefaultConfig())
	if g.session == nil {
		t.Fatalf("session failed to build: %v", g.loadErr)
	}
	return g
}

func TestGameRegistration(t *testing.T) {
	if !registry.Exists("platformer") {
		t.Error("platformer not registered")
	}
	if !registry.Exists("platformer_practice") {
		t.Error("platformer_practice not registered")
	}
}

func TestResetLoadsEmbeddedCampaign(t *testing.T) {
	g := newTestGame(t)

	if g.session.LevelCount() < 3 {
		t.Errorf("campaign has %d levels, expected several", g.session.LevelCount())
	}
	state := g.State()
	if state.GameOver || state.Paused || state.Score != 0 {
		t.Errorf("fresh game state = %+v", state)
	}
}

func TestStartLevelSelection(t *testing.T) {
	t.Cleanup(resetGlobals)

	full := New()
	full.Reset(core.DefaultConfig())
	total := full.session.LevelCount()

	ids := campaignIDs(t)
	if len(ids) < 2 {
		t.Skip("campaign too small")
	}
	secondID := ids[1]

	SetStartLevel(secondID)
	g := New()
	g.Reset(core.DefaultConfig())
	if g.session.LevelCount() != total-1 {
		t.Errorf("campaign from %s has %d levels, expected %d", secondID, g.session.LevelCount(), total-1)
	}
	if g.session.CurrentLevel().ID != secondID {
		t.Errorf("campaign starts at %s, expected %s", g.session.CurrentLevel().ID, secondID)
	}

	p := NewPractice()
	p.Reset(core.DefaultConfig())
	if p.session.LevelCount() != 1 || p.session.CurrentLevel().ID != secondID {
		t.Errorf("practice should play only %s, got %d levels starting at %s",
			secondID, p.session.LevelCount(), p.session.CurrentLevel().ID)
	}
}

func campaignIDs(t *testing.T) []string {
	t.Helper()
	bps, err := levels.DefaultCampaign()
	if err != nil {
		t.Fatal(err)
	}
	ids := make([]string, len(bps))
	for i, bp := range bps {
		ids[i] = bp.ID
	}
	return ids
}

func TestClickMapsToWorldX(t *testing.T) {
	g := newTestGame(t)

	in := core.NewInputFrame()
	in.SetClick(40, 10)
	g.Step(in)

	target := g.session.ClickTarget()
	if target == nil {
		t.Fatal("click did not set a walk target")
	}
	// 80 columns over 800 world units: column 40 is world x 405
	if *target < 400 || *target > 410 {
		t.Errorf("click target = %v, expected around 405", *target)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	if !g.State().Paused {
		t.Error("pause action should pause the game")
	}
	g.Step(in)
	if g.State().Paused {
		t.Error("second pause action should resume")
	}
}

func TestPhysicsHackActions(t *testing.T) {
	g := newTestGame(t)
	base := g.session.Physics().Gravity

	in := core.NewInputFrame()
	in.Set(core.ActionGravityDown)
	g.Step(in)
	if got := g.session.Physics().Gravity; got >= base {
		t.Errorf("gravity = %v after decrease, was %v", got, base)
	}

	in = core.NewInputFrame()
	in.Set(core.ActionTimeDown)
	for i := 0; i < 100; i++ {
		g.Step(in)
	}
	if got := g.session.Physics().TimeScale; got < 0.1 {
		t.Errorf("time scale = %v, should clamp at 0.1", got)
	}
}

func TestLevelCompleteAndWonEvents(t *testing.T) {
	t.Cleanup(resetGlobals)

	// A single level whose exit overlaps the spawn finishes immediately.
	dir := t.TempDir()
	level := `
id: instant
name: Instant
start: {x: 50, y: 418}
entities:
  - id: floor
    type: wall
    pos: {x: 0, y: 450}
    size: {w: 800, h: 150}
  - id: exit
    type: exit
    pos: {x: 40, y: 400}
    size: {w: 64, h: 64}
`
	if err := os.WriteFile(filepath.Join(dir, "instant.yaml"), []byte(level), 0o644); err != nil {
		t.Fatal(err)
	}
	SetLevelsDir(dir)

	g := New()
	g.Reset(core.DefaultConfig())
	if g.session == nil {
		t.Fatalf("session failed to build: %v", g.loadErr)
	}

	var sawComplete, sawWon bool
	for i := 0; i < 300; i++ {
		res := g.Step(core.NewInputFrame())
		for _, ev := range res.Events {
			switch ev.Kind {
			case core.EventLevelComplete:
				sawComplete = true
				if ev.LevelID != "instant" {
					t.Errorf("completion event for %s, expected instant", ev.LevelID)
				}
			case core.EventWon:
				sawWon = true
			}
		}
		if sawWon {
			break
		}
	}

	if !sawComplete {
		t.Error("no level completion event emitted")
	}
	if !sawWon {
		t.Error("no won event emitted")
	}
	if !g.State().GameOver {
		t.Error("campaign should be over after winning")
	}
	if g.State().Score != pointsPerLevel {
		t.Errorf("score = %d, expected %d", g.State().Score, pointsPerLevel)
	}
}

func TestDeathEmitsEvent(t *testing.T) {
	t.Cleanup(resetGlobals)

	// Spawn over a pit: the player falls out of the world and dies.
	dir := t.TempDir()
	level := `
id: pit
name: Pit
start: {x: 50, y: 418}
entities:
  - id: ledge
    type: wall
    pos: {x: 700, y: 450}
    size: {w: 100, h: 150}
  - id: exit
    type: exit
    pos: {x: 730, y: 386}
    size: {w: 48, h: 64}
`
	if err := os.WriteFile(filepath.Join(dir, "pit.yaml"), []byte(level), 0o644); err != nil {
		t.Fatal(err)
	}
	SetLevelsDir(dir)

	g := New()
	g.Reset(core.DefaultConfig())
	if g.session == nil {
		t.Fatalf("session failed to build: %v", g.loadErr)
	}

	sawDeath := false
	for i := 0; i < 600 && !sawDeath; i++ {
		res := g.Step(core.NewInputFrame())
		for _, ev := range res.Events {
			if ev.Kind == core.EventDeath {
				sawDeath = true
			}
		}
	}
	if !sawDeath {
		t.Error("falling off the world should emit a death event")
	}
	if g.session.TotalDeaths() == 0 {
		t.Error("death count should increase")
	}
}

func TestRenderShowsPlayerAndHUD(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(g.runtime.ScreenW, g.runtime.ScreenH)
	g.Render(screen)

	out := screen.String()
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player glyph missing from render")
	}
	if !strings.Contains(out, "Lvl 1/") {
		t.Error("HUD level indicator missing")
	}
	if !strings.ContainsRune(out, WallChar) {
		t.Error("wall glyphs missing from render")
	}
}

func TestScreenTooSmall(t *testing.T) {
	t.Cleanup(resetGlobals)
	g := New()
	cfg := core.DefaultConfig()
	cfg.ScreenW = 10
	cfg.ScreenH = 5
	g.Reset(cfg)

	// Stepping and rendering must both be safe
	g.Step(core.NewInputFrame())
	screen := core.NewScreen(10, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "small") {
		t.Error("small-screen message missing")
	}
}
