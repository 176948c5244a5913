// Package engine implements the platformer simulation core: a fixed-step
// world of axis-aligned entities advanced once per frame. The engine is pure
// logic with no rendering, audio, or terminal dependencies; it communicates
// with the host exclusively through StepResult signals.
package engine

import "time"

// Sound is an abstract audio cue name emitted by the simulation.
// The host decides what (if anything) to do with it.
type Sound string

// Sound cues the engine can emit during a frame.
const (
	SoundShoot         Sound = "shoot"
	SoundDie           Sound = "die"
	SoundJump          Sound = "jump"
	SoundStep          Sound = "step"
	SoundClick         Sound = "click"
	SoundLevelComplete Sound = "levelComplete"
	SoundWin           Sound = "win"
)

// Outcome describes a level lifecycle transition detected during a frame.
type Outcome int

const (
	OutcomeNone     Outcome = iota // Nothing happened
	OutcomeReset                   // Player died, level restarts
	OutcomeComplete                // Player reached the exit
	OutcomeWon                     // Last level completed
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeReset:
		return "reset"
	case OutcomeComplete:
		return "complete"
	case OutcomeWon:
		return "won"
	default:
		return "none"
	}
}

// Message is transient text the host should display for a limited time,
// such as a level intro banner.
type Message struct {
	Text     string
	Duration time.Duration
}

// Input is the set of control signals held during one frame, plus an
// optional click-to-walk target. Target is a world-space X coordinate;
// it persists inside the world until consumed or overridden by manual
// horizontal input.
type Input struct {
	Left  bool
	Right bool
	Jump  bool

	// Target, when non-nil, sets a new click-to-walk destination.
	Target *float64
}

// StepResult is the return value of one simulation frame. Side effects
// never escape the engine any other way.
type StepResult struct {
	// Outcome is the lifecycle transition triggered this frame, if any.
	Outcome Outcome

	// LevelID identifies the level the outcome applies to.
	LevelID string

	// Sounds lists the cues emitted this frame, in occurrence order.
	Sounds []Sound

	// Messages lists transient texts to display, with duration hints.
	Messages []Message

	// RunMillis is the level attempt duration; set when Outcome is
	// OutcomeComplete or OutcomeWon.
	RunMillis float64

	// Dt is the simulated time step in seconds after clamping and
	// time scaling.
	Dt float64
}
