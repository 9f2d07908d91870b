package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore opens an isolated in-memory database.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	st, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func testLedgerData(stars int) *LedgerData {
	return &LedgerData{
		Version:         1,
		Stars:           stars,
		UnlockedAvatars: []string{"default"},
		CurrentAvatar:   "default",
		UnlockedThemes:  []string{"default"},
		CurrentTheme:    "default",
		SoundEnabled:    true,
		Achievements:    []string{},
		DailyQuest:      &QuestData{Target: 12, Progress: 3, Date: "2026-03-14"},
		Garden:          &GardenData{Level: 2, XP: 40, TreeStage: 1},
		Stats:           &PlayerStatData{TotalQuestions: 20, TotalCorrect: 15, TimeAttackHighScore: 9},
	}
}

func TestLedgerSaveAndLatest(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	repo := st.LedgerRepo()

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "empty store should report no ledger")

	require.NoError(t, repo.Save(ctx, testLedgerData(10)))
	require.NoError(t, repo.Save(ctx, testLedgerData(25)))

	got, err = repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 25, got.Stars, "Latest must return the newest copy")
	assert.Equal(t, "2026-03-14", got.DailyQuest.Date)
	assert.Equal(t, 2, got.Garden.Level)
	assert.Equal(t, 15, got.Stats.TotalCorrect)
}

func TestLatestRecoversCorruptSnapshot(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	repo := st.LedgerRepo()

	// Plant a snapshot whose JSON no longer matches the ledger shape.
	_, err := st.Client().Snapshot.Create().
		SetSequence(5).
		SetData(map[string]any{"version": 1, "stars": "lots"}).
		Save(ctx)
	require.NoError(t, err)

	got, err := repo.Latest(ctx)
	require.NoError(t, err, "corrupt data must not surface as an error")
	assert.Nil(t, got, "corrupt snapshot should read as absent")

	// A newer valid snapshot reads back normally.
	dataMap, err := ledgerDataToMap(testLedgerData(7))
	require.NoError(t, err)
	_, err = st.Client().Snapshot.Create().
		SetSequence(6).
		SetData(dataMap).
		Save(ctx)
	require.NoError(t, err)

	got, err = repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 7, got.Stars)
}

func TestLedgerPrune(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	repo := st.LedgerRepo()

	for i := 0; i < ledgerKeep+10; i++ {
		require.NoError(t, repo.Save(ctx, testLedgerData(i)))
	}

	count, err := st.Client().Snapshot.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, ledgerKeep, count)

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, ledgerKeep+9, got.Stars, "prune must keep the newest copies")
}

func TestAppendAndQueryRewardEvents(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	repo := st.EventRepo()

	require.NoError(t, repo.AppendRewardEvent(ctx, RewardEventData{
		Source: "session", Amount: 10, Balance: 10,
	}))
	require.NoError(t, repo.AppendRewardEvent(ctx, RewardEventData{
		Source: "purchase", Amount: -50, Balance: 5, Detail: "cat",
	}))

	events, err := repo.QueryRewardEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.Equal(t, "purchase", events[0].Source)
	assert.Equal(t, -50, events[0].Amount)
	assert.Equal(t, "cat", events[0].Detail)
	assert.Equal(t, "session", events[1].Source)
	assert.Greater(t, events[0].Sequence, events[1].Sequence)

	limited, err := repo.QueryRewardEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "purchase", limited[0].Source)
}

func TestSessionSummaries(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	repo := st.EventRepo()

	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "start", Mode: "standard",
	}))
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "end", Mode: "standard",
		QuestionsAnswered: 10, StarsEarned: 10, DurationSecs: 95,
	}))
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s2", Action: "abandon", Mode: "time_attack",
		QuestionsAnswered: 4, DurationSecs: 20,
	}))

	summaries, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, summaries, 1, "only finished sessions are summarized")
	assert.Equal(t, "s1", summaries[0].SessionID)
	assert.Equal(t, 10, summaries[0].StarsEarned)
	assert.Equal(t, 95, summaries[0].DurationSecs)
}

func TestAnswerTotals(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	repo := st.EventRepo()

	answers := []bool{true, true, false, true}
	for i, ok := range answers {
		require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID:     "s1",
			Mode:          "standard",
			Operation:     "add",
			Difficulty:    "easy",
			QuestionText:  fmt.Sprintf("%d + 1 = ?", i),
			CorrectAnswer: i + 1,
			PlayerAnswer:  i + 1,
			Correct:       ok,
		}))
	}

	total, correct, err := repo.AnswerTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Equal(t, 3, correct)
}

func TestSequenceSharedAcrossRepos(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.EventRepo().AppendRewardEvent(ctx, RewardEventData{
		Source: "session", Amount: 1, Balance: 1,
	}))
	require.NoError(t, st.LedgerRepo().Save(ctx, testLedgerData(1)))
	require.NoError(t, st.EventRepo().AppendRewardEvent(ctx, RewardEventData{
		Source: "session", Amount: 1, Balance: 2,
	}))

	events, err := st.EventRepo().QueryRewardEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	// The ledger save in between consumed a sequence number.
	assert.Equal(t, events[1].Sequence+2, events[0].Sequence)
}
