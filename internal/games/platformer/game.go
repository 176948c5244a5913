// Package platformer adapts the side-scroller simulation in
// internal/engine to the terminal platform layer. All physics and level logic
// live in the engine; this package maps terminal input onto simulation
// input and draws the world into a character screen.
package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/engine"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play the progression start to finish
	ModePractice                 // Loop a single level, counting clears
)

// Score weights. Completions dominate; deaths chip away.
const (
	pointsPerLevel = 100
	pointsPerDeath = 10
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 2

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// levelsDir stores a custom level directory set via CLI
var levelsDir string

// startLevelID stores the level to start from, set via CLI
var startLevelID string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	p := config.DifficultyPreset(preset)
	if config.ValidPreset(p) {
		difficultyPreset = p
	} else {
		difficultyPreset = ""
	}
}

// SetLevelsDir points the game at a directory of level files instead of
// the embedded campaign.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetStartLevel starts the progression at the level with the given ID.
// In practice mode only that level is played.
func SetStartLevel(id string) {
	startLevelID = id
}

// Game adapts an engine session to the platform's Game interface.
type Game struct {
	mode GameMode

	session *engine.Session
	dtMs    float64 // fixed per-tick delta handed to the simulation

	// Banner and sound feedback, in remaining ticks
	banner      string
	bannerTicks int
	lastSound   engine.Sound
	soundTicks  int

	// Practice mode bookkeeping
	clears int

	loadErr error

	runtime        core.RuntimeConfig
	cfg            config.PlatformerConfig
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new platformer game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewPractice creates a new platformer instance in practice mode.
func NewPractice() *Game {
	return &Game{mode: ModePractice}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "platformer_practice"
	}
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Platformer (Practice)"
	}
	return "Platformer"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dtMs = 1000.0 / float64(tickRate)

	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.banner = ""
	g.bannerTicks = 0
	g.lastSound = ""
	g.soundTicks = 0
	g.clears = 0

	g.session, g.loadErr = g.buildSession()
}

// buildSession loads the level set and constructs a fresh session.
func (g *Game) buildSession() (*engine.Session, error) {
	var bps []engine.LevelBlueprint
	var err error

	if levelsDir != "" {
		var loaded []levels.Level
		loaded, err = levels.NewLoader(levelsDir).LoadAll()
		if err == nil {
			bps = levels.Blueprints(loaded)
		}
	} else {
		bps, err = levels.DefaultCampaign()
	}
	if err != nil {
		return nil, err
	}

	bps = g.selectLevels(bps)

	// Difficulty multiplies the level-authored physics.
	for i := range bps {
		bps[i].Physics.Gravity *= g.cfg.Difficulty.GravityScale
		bps[i].Physics.TimeScale *= g.cfg.Difficulty.TimeScale
	}

	bounds := engine.Bounds{Width: g.cfg.World.Width, Height: g.cfg.World.Height}
	sessionCfg := engine.SessionConfig{
		CompleteDelayMs: g.cfg.Session.CompleteDelayMs,
		IntroDuration:   g.cfg.Session.IntroDuration(),
	}
	return engine.NewSession(bps, bounds, sessionCfg)
}

// selectLevels applies the start-level and mode rules to the loaded set.
func (g *Game) selectLevels(bps []engine.LevelBlueprint) []engine.LevelBlueprint {
	start := 0
	if startLevelID != "" {
		for i, bp := range bps {
			if bp.ID == startLevelID {
				start = i
				break
			}
		}
	}
	if g.mode == ModePractice {
		if start < len(bps) {
			return bps[start : start+1]
		}
		return bps
	}
	return bps[start:]
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.session == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart after winning the campaign
	if in.Has(core.ActionRestart) && g.session.State() == engine.SessionWon {
		g.session.Restart()
		g.clears = 0
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.session.SetPaused(!g.session.Paused())
	}

	g.applyPhysicsHacks(in)

	res := g.session.Advance(g.buildInput(in), g.dtMs)

	if g.bannerTicks > 0 {
		g.bannerTicks--
	}
	if g.soundTicks > 0 {
		g.soundTicks--
	}
	for _, msg := range res.Messages {
		g.banner = msg.Text
		g.bannerTicks = g.durationTicks(msg)
	}
	if len(res.Sounds) > 0 {
		g.lastSound = res.Sounds[len(res.Sounds)-1]
		g.soundTicks = int(500 / g.dtMs)
	}

	events := g.collectEvents(res)

	// Practice mode loops forever: a finished progression restarts
	// immediately and counts as a clear.
	if g.mode == ModePractice && g.session.State() == engine.SessionWon {
		g.clears++
		g.session.Restart()
	}

	return core.StepResult{State: g.State(), Events: events}
}

// buildInput maps platform actions and clicks onto simulation input.
func (g *Game) buildInput(in core.InputFrame) engine.Input {
	input := engine.Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Jump:  in.Has(core.ActionJump),
	}
	if in.Clicked {
		x := g.cellToWorldX(in.ClickX)
		input.Target = &x
	}
	return input
}

// applyPhysicsHacks lets the player fiddle with gravity and time scale
// at runtime.
func (g *Game) applyPhysicsHacks(in core.InputFrame) {
	phys := g.session.Physics()
	if in.Has(core.ActionGravityDown) {
		phys.Gravity = math.Max(0, phys.Gravity-0.05)
	}
	if in.Has(core.ActionGravityUp) {
		phys.Gravity += 0.05
	}
	if in.Has(core.ActionTimeDown) {
		phys.TimeScale = math.Max(0.1, phys.TimeScale-0.05)
	}
	if in.Has(core.ActionTimeUp) {
		phys.TimeScale = math.Min(3, phys.TimeScale+0.05)
	}
}

// collectEvents translates simulation outcomes into platform events.
func (g *Game) collectEvents(res engine.StepResult) []core.Event {
	var events []core.Event
	switch res.Outcome {
	case engine.OutcomeComplete:
		events = append(events, core.Event{
			Kind:    core.EventLevelComplete,
			LevelID: res.LevelID,
			Millis:  res.RunMillis,
			Deaths:  g.session.Deaths(),
		})
	case engine.OutcomeReset:
		events = append(events, core.Event{
			Kind:    core.EventDeath,
			LevelID: res.LevelID,
		})
	case engine.OutcomeWon:
		events = append(events, core.Event{
			Kind:    core.EventWon,
			LevelID: res.LevelID,
			Millis:  res.RunMillis,
		})
	}
	return events
}

// durationTicks converts a message display duration into ticks.
func (g *Game) durationTicks(msg engine.Message) int {
	if msg.Duration <= 0 {
		return int(1500 / g.dtMs)
	}
	return int(float64(msg.Duration.Milliseconds()) / g.dtMs)
}

// score is completions minus a death penalty, never negative.
func (g *Game) score() int {
	if g.session == nil {
		return 0
	}
	completed := g.session.CompletedLevels() + g.clears*g.session.LevelCount()
	s := completed*pointsPerLevel - g.session.TotalDeaths()*pointsPerDeath
	if s < 0 {
		s = 0
	}
	return s
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score: g.score(),
		// Practice never ends; the campaign ends when it is won.
		GameOver: g.mode == ModeCampaign && g.session.State() == engine.SessionWon,
		Paused:   g.session.Paused(),
	}
}

// Register the games with the registry
func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
	registry.Register("platformer_practice", func() registry.Game {
		return NewPractice()
	})
}
