package engine

import (
	"fmt"
	"math"
	"time"
)

// SessionState is the level-lifecycle state of a running session.
type SessionState int

const (
	SessionRunning       SessionState = iota
	SessionResetting                  // transient: world is being reinitialized
	SessionLevelComplete              // transient: completion delay before advancing
	SessionWon                        // terminal until an explicit restart
)

// String returns a human-readable name for the state.
func (s SessionState) String() string {
	switch s {
	case SessionResetting:
		return "resetting"
	case SessionLevelComplete:
		return "levelComplete"
	case SessionWon:
		return "won"
	default:
		return "running"
	}
}

// SessionConfig tunes the lifecycle timings around the simulation.
type SessionConfig struct {
	// CompleteDelayMs is how long LevelComplete lingers before the next
	// level starts (or the session is won).
	CompleteDelayMs float64

	// IntroDuration is the display-duration hint on level intro banners.
	IntroDuration time.Duration
}

// DefaultSessionConfig returns the standard lifecycle timings.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		CompleteDelayMs: 1500,
		IntroDuration:   2500 * time.Millisecond,
	}
}

// Session owns the level progression: it drives the world frame by frame
// and governs the Running -> Resetting / LevelComplete -> Won transitions.
// While a transient state is in flight the frame driver is never asked to
// process further collision outcomes, so transitions cannot re-enter.
type Session struct {
	levels []LevelBlueprint
	bounds Bounds
	cfg    SessionConfig

	index int
	world *World
	state SessionState

	paused       bool
	completeLeft float64 // ms remaining in the LevelComplete delay
	elapsedMs    float64 // simulated time in the current attempt
	introPending bool

	deaths      int // deaths on the current level
	totalDeaths int
	completed   int // levels completed this session
}

// NewSession validates every blueprint up front and starts the first
// level. A malformed level anywhere in the progression blocks the whole
// session from starting.
func NewSession(levels []LevelBlueprint, bounds Bounds, cfg SessionConfig) (*Session, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("engine: session needs at least one level")
	}
	for i := range levels {
		if err := levels[i].Validate(); err != nil {
			return nil, err
		}
	}
	if cfg.CompleteDelayMs <= 0 {
		cfg = DefaultSessionConfig()
	}

	s := &Session{
		levels: levels,
		bounds: bounds,
		cfg:    cfg,
	}
	if err := s.startLevel(0); err != nil {
		return nil, err
	}
	return s, nil
}

// startLevel builds a fresh world for the given level index.
func (s *Session) startLevel(index int) error {
	world, err := NewWorld(&s.levels[index], s.bounds)
	if err != nil {
		return err
	}
	s.index = index
	s.world = world
	s.state = SessionRunning
	s.elapsedMs = 0
	s.deaths = 0
	s.introPending = true
	return nil
}

// Advance drives one scheduler tick. A paused session performs no state
// change but must still be ticked; resuming applies no catch-up time
// because the world clamps the raw delta regardless.
func (s *Session) Advance(in Input, rawDeltaMs float64) StepResult {
	levelID := s.levels[s.index].ID
	if s.paused {
		return StepResult{LevelID: levelID}
	}

	switch s.state {
	case SessionWon:
		return StepResult{LevelID: levelID}

	case SessionLevelComplete:
		s.completeLeft -= math.Min(rawDeltaMs, maxFrameStep*1000)
		if s.completeLeft > 0 {
			return StepResult{LevelID: levelID}
		}
		if s.index+1 >= len(s.levels) {
			s.state = SessionWon
			return StepResult{
				Outcome:   OutcomeWon,
				LevelID:   levelID,
				Sounds:    []Sound{SoundWin},
				Messages:  []Message{{Text: "You won!", Duration: s.cfg.IntroDuration}},
				RunMillis: s.elapsedMs,
			}
		}
		// Validated at construction, so this cannot fail.
		_ = s.startLevel(s.index + 1)
		return StepResult{LevelID: s.levels[s.index].ID}

	default:
		res := s.world.Advance(in, rawDeltaMs)
		res.LevelID = levelID
		s.elapsedMs += res.Dt * 1000

		if s.introPending {
			s.introPending = false
			res.Messages = append(res.Messages, s.introBanner())
		}

		switch res.Outcome {
		case OutcomeReset:
			s.deaths++
			s.totalDeaths++
			// Transient Resetting: reinitialize from the current
			// blueprint, drop the click target, re-arm the loop.
			s.state = SessionResetting
			world, err := NewWorld(&s.levels[s.index], s.bounds)
			if err == nil {
				s.world = world
			}
			s.elapsedMs = 0
			s.state = SessionRunning
		case OutcomeComplete:
			s.completed++
			res.RunMillis = s.elapsedMs
			res.Sounds = append(res.Sounds, SoundLevelComplete)
			s.state = SessionLevelComplete
			s.completeLeft = s.cfg.CompleteDelayMs
		}
		return res
	}
}

// introBanner builds the level intro message.
func (s *Session) introBanner() Message {
	lvl := &s.levels[s.index]
	text := lvl.Name
	if text == "" {
		text = lvl.ID
	}
	if lvl.Description != "" {
		text = text + " - " + lvl.Description
	}
	return Message{Text: text, Duration: s.cfg.IntroDuration}
}

// Restart rewinds the whole session to the first level. This is the only
// way out of SessionWon.
func (s *Session) Restart() {
	s.totalDeaths = 0
	s.completed = 0
	_ = s.startLevel(0)
}

// SetPaused suspends or resumes logic execution. The session still
// expects to be ticked while paused.
func (s *Session) SetPaused(paused bool) { s.paused = paused }

// Paused reports whether logic execution is suspended.
func (s *Session) Paused() bool { return s.paused }

// State returns the current lifecycle state.
func (s *Session) State() SessionState { return s.state }

// CurrentLevel returns the blueprint of the level in play.
func (s *Session) CurrentLevel() *LevelBlueprint { return &s.levels[s.index] }

// LevelIndex returns the zero-based index of the level in play.
func (s *Session) LevelIndex() int { return s.index }

// LevelCount returns the number of levels in the progression.
func (s *Session) LevelCount() int { return len(s.levels) }

// Snapshot returns a read-only copy of the committed entity set.
func (s *Session) Snapshot() []Entity { return s.world.Snapshot() }

// ClickTarget returns the pending click-to-walk destination, if any.
func (s *Session) ClickTarget() *float64 { return s.world.ClickTarget }

// Physics exposes the live physics dials. Mutations take effect on the
// very next frame.
func (s *Session) Physics() *GlobalPhysics { return &s.world.Physics }

// Bounds returns the world rectangle.
func (s *Session) Bounds() Bounds { return s.bounds }

// Deaths returns the death count on the current level.
func (s *Session) Deaths() int { return s.deaths }

// TotalDeaths returns the death count across the session.
func (s *Session) TotalDeaths() int { return s.totalDeaths }

// CompletedLevels returns how many levels have been completed.
func (s *Session) CompletedLevels() int { return s.completed }

// ElapsedMillis returns the simulated time spent on the current attempt.
func (s *Session) ElapsedMillis() float64 { return s.elapsedMs }
