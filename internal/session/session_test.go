package session

import (
	"context"
	"math/rand"
	"testing"

	"github.com/abhisek/mathgarden/internal/ledger"
	"github.com/abhisek/mathgarden/internal/problemgen"
)

func testDeps() (*ledger.Service, *problemgen.Generator) {
	svc := ledger.NewService(ledger.Default(), nil, nil)
	gen := problemgen.New(rand.New(rand.NewSource(1)))
	return svc, gen
}

func TestNewStateForcesTimeAttackSettings(t *testing.T) {
	s := NewState(ModeTimeAttack, problemgen.OpAdd, problemgen.DiffEasy, "sess-1")
	if s.Operation != TimeAttackOperation {
		t.Errorf("Operation = %q, want %q", s.Operation, TimeAttackOperation)
	}
	if s.Difficulty != TimeAttackDifficulty {
		t.Errorf("Difficulty = %q, want %q", s.Difficulty, TimeAttackDifficulty)
	}

	std := NewState(ModeStandard, problemgen.OpMul, problemgen.DiffHard, "sess-2")
	if std.Operation != problemgen.OpMul || std.Difficulty != problemgen.DiffHard {
		t.Errorf("standard state = %q/%q, want mul/hard", std.Operation, std.Difficulty)
	}
}

func TestHandleAnswerCorrect(t *testing.T) {
	svc, gen := testDeps()
	ctx := context.Background()
	state := NewState(ModeStandard, problemgen.OpAdd, problemgen.DiffEasy, "sess-1")

	p := NextProblem(state, gen)
	out := HandleAnswer(ctx, state, svc, p.Answer)

	if !out.Correct {
		t.Fatal("correct answer reported as wrong")
	}
	if state.Score != 1 || state.Progress != 1 || state.Streak != 1 {
		t.Errorf("state = score %d progress %d streak %d, want 1/1/1",
			state.Score, state.Progress, state.Streak)
	}
	if svc.Ledger().Stats.TotalCorrect != 1 {
		t.Errorf("lifetime correct = %d, want 1", svc.Ledger().Stats.TotalCorrect)
	}
	if svc.Ledger().BestStreak != 1 {
		t.Errorf("BestStreak = %d, want 1", svc.Ledger().BestStreak)
	}
	// Session reward is not in the ledger until Settle.
	if svc.Ledger().Stars != 0 {
		t.Errorf("Stars = %d, want 0 before settle", svc.Ledger().Stars)
	}
	if len(out.Unlocked) != 1 || out.Unlocked[0].ID != "first_blood" {
		t.Errorf("Unlocked = %v, want first answer achievement", out.Unlocked)
	}
}

func TestHandleAnswerWrong(t *testing.T) {
	svc, gen := testDeps()
	ctx := context.Background()
	state := NewState(ModeStandard, problemgen.OpAdd, problemgen.DiffEasy, "sess-1")
	state.Streak = 3

	p := NextProblem(state, gen)
	out := HandleAnswer(ctx, state, svc, p.Answer+1)

	if out.Correct || out.Done {
		t.Errorf("outcome = %+v, want incorrect and not done", out)
	}
	if state.Score != 0 || state.Progress != 0 {
		t.Errorf("wrong answer advanced score/progress: %d/%d", state.Score, state.Progress)
	}
	if state.Streak != 0 {
		t.Errorf("Streak = %d, want reset to 0", state.Streak)
	}
	if svc.Ledger().Stats.TotalQuestions != 1 {
		t.Errorf("TotalQuestions = %d, want 1", svc.Ledger().Stats.TotalQuestions)
	}
}

func TestStandardSessionCompletes(t *testing.T) {
	svc, gen := testDeps()
	ctx := context.Background()
	state := NewState(ModeStandard, problemgen.OpAdd, problemgen.DiffEasy, "sess-1")

	var done bool
	for i := 0; i < StandardTarget; i++ {
		p := NextProblem(state, gen)
		out := HandleAnswer(ctx, state, svc, p.Answer)
		done = out.Done
	}

	if !done {
		t.Fatal("session not done after reaching the target")
	}
	if !state.Done() {
		t.Fatal("Done() = false at target")
	}
	if state.Score != StandardTarget {
		t.Errorf("Score = %d, want %d", state.Score, StandardTarget)
	}
	if got := state.Fraction(); got != 1.0 {
		t.Errorf("Fraction = %v, want 1.0", got)
	}

	res := Settle(ctx, state, svc)
	if res.Earned != StandardTarget {
		t.Errorf("Earned = %d, want %d", res.Earned, StandardTarget)
	}
	if svc.Ledger().Stars != StandardTarget {
		t.Errorf("Stars = %d, want %d", svc.Ledger().Stars, StandardTarget)
	}
}

func TestTimeAttackSettleUpdatesHighScore(t *testing.T) {
	svc, _ := testDeps()
	ctx := context.Background()

	state := NewState(ModeTimeAttack, "", "", "sess-1")
	state.Score = 15
	res := Settle(ctx, state, svc)

	if !res.NewHighScore {
		t.Error("first time attack score was not a record")
	}
	if svc.Ledger().Stats.TimeAttackHighScore != 15 {
		t.Errorf("high score = %d, want 15", svc.Ledger().Stats.TimeAttackHighScore)
	}

	// A worse follow-up run settles stars but keeps the record.
	state2 := NewState(ModeTimeAttack, "", "", "sess-2")
	state2.Score = 6
	res2 := Settle(ctx, state2, svc)
	if res2.NewHighScore {
		t.Error("lower score counted as a record")
	}
	if svc.Ledger().Stars != 21 {
		t.Errorf("Stars = %d, want 21", svc.Ledger().Stars)
	}
}

func TestTimeAttackNeverDone(t *testing.T) {
	state := NewState(ModeTimeAttack, "", "", "sess-1")
	state.Progress = StandardTarget + 5
	if state.Done() {
		t.Error("time attack reported Done; it ends on the clock")
	}
	if state.Fraction() != 0 {
		t.Errorf("Fraction = %v, want 0 for time attack", state.Fraction())
	}
}
