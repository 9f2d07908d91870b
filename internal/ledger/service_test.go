package ledger

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/abhisek/mathgarden/internal/audio"
	"github.com/abhisek/mathgarden/internal/store"
)

// mockLedgerRepo implements store.LedgerRepo in memory.
type mockLedgerRepo struct {
	saved  []*store.LedgerData
	latest *store.LedgerData
}

func (m *mockLedgerRepo) Save(_ context.Context, data *store.LedgerData) error {
	m.saved = append(m.saved, data)
	m.latest = data
	return nil
}

func (m *mockLedgerRepo) Latest(_ context.Context) (*store.LedgerData, error) {
	return m.latest, nil
}

// mockEventRepo implements store.EventRepo, recording reward events.
type mockEventRepo struct {
	rewards  []store.RewardEventData
	sessions []store.SessionEventData
}

func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, _ store.AnswerEventData) error {
	return nil
}
func (m *mockEventRepo) AppendRewardEvent(_ context.Context, data store.RewardEventData) error {
	m.rewards = append(m.rewards, data)
	return nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessions = append(m.sessions, data)
	return nil
}
func (m *mockEventRepo) QueryRewardEvents(_ context.Context, _ store.QueryOpts) ([]store.RewardEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QuerySessionSummaries(_ context.Context, _ store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AnswerTotals(_ context.Context) (int, int, error) {
	return 0, 0, nil
}

func newTestService() (*Service, *mockLedgerRepo, *mockEventRepo) {
	repo := &mockLedgerRepo{}
	events := &mockEventRepo{}
	svc := NewService(Default(), repo, events)
	svc.Now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	}
	svc.Rand = rand.New(rand.NewSource(1))
	return svc, repo, events
}

func TestCheckDailyQuestRollsOncePerDate(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	svc.CheckDailyQuest(ctx)
	first := svc.Ledger().DailyQuest

	if first.Date != "2026-03-14" {
		t.Errorf("Date = %q, want 2026-03-14", first.Date)
	}
	if first.Target < QuestTargetMin || first.Target > QuestTargetMax {
		t.Errorf("Target = %d, want %d..%d", first.Target, QuestTargetMin, QuestTargetMax)
	}
	if svc.Ledger().LastLogin != "2026-03-14" {
		t.Errorf("LastLogin = %q, want 2026-03-14", svc.Ledger().LastLogin)
	}

	// Same date again must not reissue.
	svc.Ledger().DailyQuest.Progress = 3
	svc.CheckDailyQuest(ctx)
	if svc.Ledger().DailyQuest.Progress != 3 {
		t.Error("second check on the same date reset the quest")
	}

	// Next day rolls a fresh quest.
	svc.Now = func() time.Time {
		return time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	}
	svc.CheckDailyQuest(ctx)
	q := svc.Ledger().DailyQuest
	if q.Date != "2026-03-15" || q.Progress != 0 || q.Claimed {
		t.Errorf("rollover quest = %+v, want fresh quest for 2026-03-15", q)
	}

	if len(repo.saved) == 0 {
		t.Error("quest rollover was not persisted")
	}
}

func TestClaimDailyQuest(t *testing.T) {
	svc, _, events := newTestService()
	ctx := context.Background()
	svc.CheckDailyQuest(ctx)

	if _, err := svc.ClaimDailyQuest(ctx); err != ErrQuestIncomplete {
		t.Fatalf("claim before target: err = %v, want ErrQuestIncomplete", err)
	}

	svc.Ledger().DailyQuest.Progress = svc.Ledger().DailyQuest.Target
	reward, err := svc.ClaimDailyQuest(ctx)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if reward != QuestReward {
		t.Errorf("reward = %d, want %d", reward, QuestReward)
	}
	if svc.Ledger().Stars != QuestReward {
		t.Errorf("Stars = %d, want %d", svc.Ledger().Stars, QuestReward)
	}

	if _, err := svc.ClaimDailyQuest(ctx); err != ErrQuestClaimed {
		t.Fatalf("second claim: err = %v, want ErrQuestClaimed", err)
	}

	if len(events.rewards) != 1 {
		t.Fatalf("reward events = %d, want 1", len(events.rewards))
	}
	ev := events.rewards[0]
	if ev.Source != SourceQuest || ev.Amount != QuestReward || ev.Balance != QuestReward {
		t.Errorf("reward event = %+v", ev)
	}
}

func TestRecordAnswerAdvancesQuestOnlyWhileUnclaimed(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	svc.CheckDailyQuest(ctx)

	svc.RecordAnswer(ctx, true)
	svc.RecordAnswer(ctx, false)
	svc.RecordAnswer(ctx, true)

	l := svc.Ledger()
	if l.Stats.TotalQuestions != 3 || l.Stats.TotalCorrect != 2 {
		t.Errorf("stats = %+v, want 3 questions, 2 correct", l.Stats)
	}
	if l.DailyQuest.Progress != 2 {
		t.Errorf("quest progress = %d, want 2", l.DailyQuest.Progress)
	}

	l.DailyQuest.Claimed = true
	svc.RecordAnswer(ctx, true)
	if l.DailyQuest.Progress != 2 {
		t.Error("claimed quest still accumulated progress")
	}
}

func TestPurchaseAvatar(t *testing.T) {
	svc, _, events := newTestService()
	ctx := context.Background()

	if err := svc.PurchaseAvatar(ctx, "cat"); err != ErrInsufficientFunds {
		t.Fatalf("broke purchase: err = %v, want ErrInsufficientFunds", err)
	}
	if err := svc.PurchaseAvatar(ctx, "nessie"); err != ErrUnknownCosmetic {
		t.Fatalf("unknown avatar: err = %v, want ErrUnknownCosmetic", err)
	}
	if err := svc.PurchaseAvatar(ctx, DefaultAvatarID); err != ErrAlreadyUnlocked {
		t.Fatalf("owned avatar: err = %v, want ErrAlreadyUnlocked", err)
	}

	svc.Ledger().Stars = 60
	if err := svc.PurchaseAvatar(ctx, "cat"); err != nil {
		t.Fatalf("purchase: %v", err)
	}

	l := svc.Ledger()
	if l.Stars != 10 {
		t.Errorf("Stars = %d, want 10", l.Stars)
	}
	if !l.HasAvatar("cat") || l.CurrentAvatar != "cat" {
		t.Errorf("avatar state = %v / %q", l.UnlockedAvatars, l.CurrentAvatar)
	}

	ev := events.rewards[len(events.rewards)-1]
	if ev.Source != SourcePurchase || ev.Amount != -50 || ev.Detail != "cat" {
		t.Errorf("purchase event = %+v", ev)
	}
}

func TestSelectAvatarRequiresOwnership(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if err := svc.SelectAvatar(ctx, "lion"); err != ErrLocked {
		t.Fatalf("err = %v, want ErrLocked", err)
	}
	if err := svc.SelectAvatar(ctx, DefaultAvatarID); err != nil {
		t.Fatalf("select owned: %v", err)
	}
}

func TestSelectThemeUnlocksOnFirstUse(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if err := svc.SelectTheme(ctx, "ocean"); err != nil {
		t.Fatalf("select: %v", err)
	}
	l := svc.Ledger()
	if !l.HasTheme("ocean") || l.CurrentTheme != "ocean" {
		t.Errorf("theme state = %v / %q", l.UnlockedThemes, l.CurrentTheme)
	}
	if err := svc.SelectTheme(ctx, "disco"); err != ErrUnknownCosmetic {
		t.Fatalf("unknown theme: err = %v, want ErrUnknownCosmetic", err)
	}
}

func TestWaterGarden(t *testing.T) {
	svc, _, events := newTestService()
	ctx := context.Background()

	if _, err := svc.WaterGarden(ctx); err != ErrInsufficientFunds {
		t.Fatalf("broke watering: err = %v, want ErrInsufficientFunds", err)
	}

	// Level 1 needs 100 XP, each watering adds 20: four waterings stay
	// on level 1, the fifth levels up.
	svc.Ledger().Stars = 100
	for i := 0; i < 4; i++ {
		leveled, err := svc.WaterGarden(ctx)
		if err != nil {
			t.Fatalf("water %d: %v", i, err)
		}
		if leveled {
			t.Fatalf("water %d leveled up early", i)
		}
	}

	leveled, err := svc.WaterGarden(ctx)
	if err != nil {
		t.Fatalf("final water: %v", err)
	}
	if !leveled {
		t.Fatal("fifth watering did not level up")
	}

	g := svc.Ledger().Garden
	if g.Level != 2 || g.XP != 0 {
		t.Errorf("garden = level %d xp %d, want level 2 xp 0", g.Level, g.XP)
	}
	if g.TreeStage != 1 {
		t.Errorf("TreeStage = %d, want 1", g.TreeStage)
	}
	if g.LastWatered.IsZero() {
		t.Error("LastWatered not set")
	}
	if svc.Ledger().Stars != 50 {
		t.Errorf("Stars = %d, want 50", svc.Ledger().Stars)
	}

	if len(events.rewards) != 5 {
		t.Fatalf("reward events = %d, want 5", len(events.rewards))
	}
	if events.rewards[0].Source != SourceWater || events.rewards[0].Amount != -WaterCost {
		t.Errorf("water event = %+v", events.rewards[0])
	}
}

func TestGardenXPCarryOver(t *testing.T) {
	g := Garden{Level: 1, XP: 90}
	if leveled := g.applyXP(20); !leveled {
		t.Fatal("90+20 on level 1 did not level up")
	}
	if g.Level != 2 || g.XP != 10 {
		t.Errorf("garden = level %d xp %d, want level 2 xp 10", g.Level, g.XP)
	}

	g = Garden{Level: 1, XP: 95}
	g.applyXP(20)
	if g.Level != 2 || g.XP != 15 {
		t.Errorf("garden = level %d xp %d, want level 2 xp 15", g.Level, g.XP)
	}
}

func TestEvaluateUnlocksReturnsOnlyNew(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	svc.RecordAnswer(ctx, true)
	newly := svc.EvaluateUnlocks(ctx)
	if len(newly) != 1 || newly[0].ID != "first_blood" {
		t.Fatalf("newly = %v, want [first_blood]", newly)
	}

	// Re-evaluating returns nothing; unlocks are never removed.
	if again := svc.EvaluateUnlocks(ctx); len(again) != 0 {
		t.Errorf("second evaluation returned %v", again)
	}
	if !svc.Ledger().HasAchievement("first_blood") {
		t.Error("achievement not recorded")
	}
}

func TestSettleReward(t *testing.T) {
	svc, _, events := newTestService()
	ctx := context.Background()

	svc.SettleReward(ctx, SourceSession, 0)
	if len(events.rewards) != 0 {
		t.Fatal("zero settle emitted a reward event")
	}

	svc.SettleReward(ctx, SourceSession, 7)
	if svc.Ledger().Stars != 7 {
		t.Errorf("Stars = %d, want 7", svc.Ledger().Stars)
	}
	ev := events.rewards[0]
	if ev.Source != SourceSession || ev.Amount != 7 || ev.Balance != 7 {
		t.Errorf("settle event = %+v", ev)
	}
}

func TestRecordTimeAttackScore(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if !svc.RecordTimeAttackScore(ctx, 12) {
		t.Fatal("first score was not a record")
	}
	if svc.RecordTimeAttackScore(ctx, 12) {
		t.Error("equal score counted as a record")
	}
	if svc.RecordTimeAttackScore(ctx, 9) {
		t.Error("lower score counted as a record")
	}
	if svc.Ledger().Stats.TimeAttackHighScore != 12 {
		t.Errorf("high score = %d, want 12", svc.Ledger().Stats.TimeAttackHighScore)
	}
}

func TestRecordStreakKeepsBest(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	svc.RecordStreak(ctx, 4)
	svc.RecordStreak(ctx, 2)
	if svc.Ledger().BestStreak != 4 {
		t.Errorf("BestStreak = %d, want 4", svc.Ledger().BestStreak)
	}
}

func TestToggleSoundAndCues(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if svc.CueFor(audio.CueCorrect) != audio.CueCorrect {
		t.Error("cue suppressed while sound enabled")
	}
	if on := svc.ToggleSound(ctx); on {
		t.Error("toggle from default did not disable sound")
	}
	if svc.CueFor(audio.CueCorrect) != audio.CueNone {
		t.Error("cue not suppressed while sound disabled")
	}
}

func TestLoadRecoversCorruptData(t *testing.T) {
	repo := &mockLedgerRepo{
		latest: &store.LedgerData{
			Stars:         -10,
			CurrentAvatar: "nessie",
			CurrentTheme:  "",
			DailyQuest:    &store.QuestData{Target: -1},
			Garden:        &store.GardenData{Level: 0, XP: -5},
			Stats:         &store.PlayerStatData{TotalQuestions: 1, TotalCorrect: 5},
		},
	}
	svc, err := Load(context.Background(), repo, &mockEventRepo{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	l := svc.Ledger()
	if l.Stars != 0 {
		t.Errorf("Stars = %d, want 0", l.Stars)
	}
	if l.CurrentAvatar != DefaultAvatarID {
		t.Errorf("CurrentAvatar = %q, want %q", l.CurrentAvatar, DefaultAvatarID)
	}
	if l.CurrentTheme != DefaultThemeID {
		t.Errorf("CurrentTheme = %q, want %q", l.CurrentTheme, DefaultThemeID)
	}
	if l.DailyQuest.Target <= 0 {
		t.Errorf("quest target = %d, want > 0", l.DailyQuest.Target)
	}
	if l.Garden.Level != 1 {
		t.Errorf("garden level = %d, want 1", l.Garden.Level)
	}
	if l.Stats.TotalCorrect != 1 {
		t.Errorf("TotalCorrect = %d, want clamped to 1", l.Stats.TotalCorrect)
	}
}

func TestLoadFreshStart(t *testing.T) {
	svc, err := Load(context.Background(), &mockLedgerRepo{}, &mockEventRepo{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	l := svc.Ledger()
	if l.Stars != 0 || !l.SoundEnabled || l.CurrentAvatar != DefaultAvatarID {
		t.Errorf("fresh ledger = %+v", l)
	}
}

func TestLedgerDataRoundTrip(t *testing.T) {
	l := Default()
	l.Stars = 123
	l.BestStreak = 7
	l.UnlockedAvatars = append(l.UnlockedAvatars, "cat")
	l.Achievements = append(l.Achievements, "first_blood")
	l.Garden.LastWatered = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	l.Stats = Stats{TotalQuestions: 40, TotalCorrect: 30, TimeAttackHighScore: 11}

	got := fromData(l.toData())

	if got.Stars != 123 || got.BestStreak != 7 {
		t.Errorf("round trip lost scalars: %+v", got)
	}
	if !got.HasAvatar("cat") || !got.HasAchievement("first_blood") {
		t.Error("round trip lost unlock lists")
	}
	if !got.Garden.LastWatered.Equal(l.Garden.LastWatered) {
		t.Errorf("LastWatered = %v, want %v", got.Garden.LastWatered, l.Garden.LastWatered)
	}
	if got.Stats != l.Stats {
		t.Errorf("Stats = %+v, want %+v", got.Stats, l.Stats)
	}
}
