// Package session holds the quiz state machine shared by the standard
// and time-attack modes. The package mutates a State struct through
// HandleAnswer and Settle; screens own presentation and timers.
package session

import (
	"time"

	"github.com/abhisek/mathgarden/internal/problemgen"
)

// Mode identifies the kind of play session.
type Mode string

const (
	ModeStandard   Mode = "standard"
	ModeTimeAttack Mode = "time_attack"
	ModeMemory     Mode = "memory"
)

// StandardTarget is how many correct answers finish a standard session.
const StandardTarget = 10

// TimeAttackDuration is the time-attack countdown length.
const TimeAttackDuration = 60 * time.Second

// TimeAttack always runs mixed questions at medium difficulty.
const (
	TimeAttackOperation  = problemgen.OpMixed
	TimeAttackDifficulty = problemgen.DiffMedium
)

// State is the ephemeral record of one play session. It exists only
// while a session is active and is discarded on exit.
type State struct {
	Mode       Mode
	Operation  problemgen.Operation
	Difficulty problemgen.Difficulty

	// SessionID groups this session's events in the log.
	SessionID string

	// Progress counts correctly answered questions. Wrong answers do
	// not advance it.
	Progress int

	// Score is star reward accrued but not yet settled into the
	// ledger. Abandoning the session discards it.
	Score int

	// Streak is the current consecutive-correct run.
	Streak int

	Current   *problemgen.Problem
	StartTime time.Time
}

// NewState begins a session. Time-attack sessions force their fixed
// operation and difficulty.
func NewState(mode Mode, op problemgen.Operation, diff problemgen.Difficulty, sessionID string) *State {
	if mode == ModeTimeAttack {
		op = TimeAttackOperation
		diff = TimeAttackDifficulty
	}
	return &State{
		Mode:       mode,
		Operation:  op,
		Difficulty: diff,
		SessionID:  sessionID,
		StartTime:  time.Now(),
	}
}

// Done reports whether a standard session has reached its target.
// Time-attack sessions end on the clock, never here.
func (s *State) Done() bool {
	return s.Mode == ModeStandard && s.Progress >= StandardTarget
}

// Fraction returns completed progress in [0,1] for the progress bar.
func (s *State) Fraction() float64 {
	if s.Mode != ModeStandard {
		return 0
	}
	return float64(s.Progress) / float64(StandardTarget)
}
