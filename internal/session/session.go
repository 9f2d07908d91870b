package session

import (
	"context"

	"github.com/abhisek/mathgarden/internal/audio"
	"github.com/abhisek/mathgarden/internal/ledger"
	"github.com/abhisek/mathgarden/internal/problemgen"
)

// Outcome describes the result of one answered question.
type Outcome struct {
	Correct bool

	// Done is set when the answer finished a standard session.
	Done bool

	Cue audio.Cue

	// Unlocked holds achievements newly unlocked by this answer.
	Unlocked []ledger.Achievement
}

// NextProblem generates and installs the next question.
func NextProblem(state *State, gen *problemgen.Generator) *problemgen.Problem {
	state.Current = gen.Generate(state.Operation, state.Difficulty)
	return state.Current
}

// HandleAnswer applies one answer selection. Correct answers earn one
// star of session reward and advance progress; wrong answers reset the
// streak and leave progress where it was. Lifetime
// stats, streak bests and achievement unlocks land in the ledger
// immediately; the session reward settles only at Settle.
func HandleAnswer(ctx context.Context, state *State, svc *ledger.Service, picked int) Outcome {
	if state.Current == nil {
		return Outcome{}
	}

	correct := picked == state.Current.Answer
	svc.RecordAnswer(ctx, correct)

	if !correct {
		state.Streak = 0
		return Outcome{Cue: audio.CueWrong, Unlocked: svc.EvaluateUnlocks(ctx)}
	}

	state.Score++
	state.Progress++
	state.Streak++
	svc.RecordStreak(ctx, state.Streak)

	return Outcome{
		Correct:  true,
		Done:     state.Done(),
		Cue:      audio.CueCorrect,
		Unlocked: svc.EvaluateUnlocks(ctx),
	}
}

// SettleResult summarizes a finished session.
type SettleResult struct {
	Earned       int
	NewHighScore bool

	// Unlocked holds achievements satisfied by the settled balance
	// (e.g. the star-total achievement).
	Unlocked []ledger.Achievement
}

// Settle merges the session reward into the ledger. Called exactly
// once, at session end; abandoned sessions skip it and forfeit the
// uncommitted score.
func Settle(ctx context.Context, state *State, svc *ledger.Service) SettleResult {
	res := SettleResult{Earned: state.Score}

	source := ledger.SourceSession
	if state.Mode == ModeTimeAttack {
		source = ledger.SourceTimeAttack
		res.NewHighScore = svc.RecordTimeAttackScore(ctx, state.Score)
	}

	svc.SettleReward(ctx, source, state.Score)
	res.Unlocked = svc.EvaluateUnlocks(ctx)
	return res
}
