package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/abhisek/mathgarden/internal/ledger"
	"github.com/abhisek/mathgarden/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestPrintStatsUsesEventLogTotals(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	// Ledger carries stale lifetime counters; the event log is the
	// source of truth for answer totals.
	data := &store.LedgerData{
		Version:         1,
		Stars:           40,
		BestStreak:      6,
		UnlockedAvatars: []string{ledger.DefaultAvatarID},
		CurrentAvatar:   ledger.DefaultAvatarID,
		UnlockedThemes:  []string{ledger.DefaultThemeID},
		CurrentTheme:    ledger.DefaultThemeID,
		SoundEnabled:    true,
		Achievements:    []string{"first_blood"},
		Stats:           &store.PlayerStatData{TotalQuestions: 99, TotalCorrect: 99},
	}
	if err := st.LedgerRepo().Save(ctx, data); err != nil {
		t.Fatalf("save ledger: %v", err)
	}

	for _, correct := range []bool{true, true, false, true} {
		err := st.EventRepo().AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:     "s1",
			Mode:          "standard",
			Operation:     "add",
			Difficulty:    "easy",
			QuestionText:  "1 + 1 = ?",
			CorrectAnswer: 2,
			PlayerAnswer:  2,
			Correct:       correct,
		})
		if err != nil {
			t.Fatalf("append answer event: %v", err)
		}
	}
	err := st.EventRepo().AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: "s1", Action: "end", Mode: "standard",
		QuestionsAnswered: 4, StarsEarned: 3, DurationSecs: 30,
	})
	if err != nil {
		t.Fatalf("append session event: %v", err)
	}

	var buf bytes.Buffer
	if err := printStats(ctx, &buf, st); err != nil {
		t.Fatalf("printStats: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Stars:               40",
		"Best streak:         6",
		"Questions answered:  4",
		"Correct answers:     3 (75%)",
		"Recent games",
		"standard",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintStatsEmptyStore(t *testing.T) {
	st := openTestStore(t)

	var buf bytes.Buffer
	if err := printStats(context.Background(), &buf, st); err != nil {
		t.Fatalf("printStats: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Questions answered:  0") {
		t.Errorf("output missing zero totals:\n%s", out)
	}
	if strings.Contains(out, "Recent games") {
		t.Errorf("empty store should not list recent games:\n%s", out)
	}
}
