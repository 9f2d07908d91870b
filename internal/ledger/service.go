package ledger

import (
	"context"
	"math/rand"
	"time"

	"github.com/abhisek/mathgarden/internal/audio"
	"github.com/abhisek/mathgarden/internal/store"
)

// Daily quest tuning.
const (
	QuestTargetMin = 10
	QuestTargetMax = 15
	QuestReward    = 50
)

// Reward event sources.
const (
	SourceSession    = "session"
	SourceTimeAttack = "time_attack"
	SourceMemory     = "memory"
	SourceQuest      = "quest"
	SourcePurchase   = "purchase"
	SourceWater      = "water"
)

// Service owns the ledger and is the only mutation path. Every durable
// change is written through to the LedgerRepo before returning; star
// movements additionally append a reward event.
type Service struct {
	ledger *Ledger
	repo   store.LedgerRepo
	events store.EventRepo

	// Now and Rand are injected so quest rollover and quest targets
	// are reproducible under test.
	Now  func() time.Time
	Rand *rand.Rand
}

// NewService wraps an already-loaded ledger.
func NewService(l *Ledger, repo store.LedgerRepo, events store.EventRepo) *Service {
	return &Service{
		ledger: l,
		repo:   repo,
		events: events,
		Now:    time.Now,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Load reads the latest ledger from the repo, recovering corrupt or
// missing data with defaults, and returns a Service around it.
func Load(ctx context.Context, repo store.LedgerRepo, events store.EventRepo) (*Service, error) {
	data, err := repo.Latest(ctx)
	if err != nil {
		return nil, err
	}

	var l *Ledger
	if data == nil {
		l = Default()
	} else {
		l = fromData(data)
	}
	return NewService(l, repo, events), nil
}

// Ledger returns the owned ledger. Callers must treat it as read-only;
// mutation goes through Service methods.
func (s *Service) Ledger() *Ledger {
	return s.ledger
}

// persist writes the ledger through to storage. Persistence is assumed
// infallible for gameplay purposes; failures are dropped the same way
// event appends are.
func (s *Service) persist(ctx context.Context) {
	if s.repo == nil {
		return
	}
	_ = s.repo.Save(ctx, s.ledger.toData())
}

// reward appends a star movement to the event log.
func (s *Service) reward(ctx context.Context, source string, amount int, detail string) {
	if s.events == nil {
		return
	}
	_ = s.events.AppendRewardEvent(ctx, store.RewardEventData{
		Source:  source,
		Amount:  amount,
		Balance: s.ledger.Stars,
		Detail:  detail,
	})
}

// RecordAnswer updates lifetime stats for one answered question.
// Correct answers also advance the daily quest while it is unclaimed.
func (s *Service) RecordAnswer(ctx context.Context, correct bool) {
	s.ledger.Stats.TotalQuestions++
	if correct {
		s.ledger.Stats.TotalCorrect++
		if !s.ledger.DailyQuest.Claimed {
			s.ledger.DailyQuest.Progress++
		}
	}
	s.persist(ctx)
}

// RecordStreak records a correct-answer run, keeping the best.
func (s *Service) RecordStreak(ctx context.Context, run int) {
	if run <= s.ledger.BestStreak {
		return
	}
	s.ledger.BestStreak = run
	s.persist(ctx)
}

// SettleReward credits session-accrued stars into the ledger. Source
// names the game mode for the event log.
func (s *Service) SettleReward(ctx context.Context, source string, amount int) {
	if amount <= 0 {
		return
	}
	s.ledger.Stars += amount
	s.persist(ctx)
	s.reward(ctx, source, amount, "")
}

// RecordTimeAttackScore updates the time-attack high score. Returns
// true when score sets a new record.
func (s *Service) RecordTimeAttackScore(ctx context.Context, score int) bool {
	if score <= s.ledger.Stats.TimeAttackHighScore {
		return false
	}
	s.ledger.Stats.TimeAttackHighScore = score
	s.persist(ctx)
	return true
}

// CheckDailyQuest issues a fresh quest on the first access of each
// calendar date. Idempotent within a date.
func (s *Service) CheckDailyQuest(ctx context.Context) {
	today := s.Now().Format(DateFormat)
	if s.ledger.DailyQuest.Date == today {
		return
	}
	s.ledger.DailyQuest = Quest{
		Target: QuestTargetMin + s.Rand.Intn(QuestTargetMax-QuestTargetMin+1),
		Date:   today,
	}
	s.ledger.LastLogin = today
	s.persist(ctx)
}

// ClaimDailyQuest grants the quest reward. It is a no-op error when
// the target is unmet or the reward was already claimed.
func (s *Service) ClaimDailyQuest(ctx context.Context) (int, error) {
	if s.ledger.DailyQuest.Claimed {
		return 0, ErrQuestClaimed
	}
	if !s.ledger.DailyQuest.Complete() {
		return 0, ErrQuestIncomplete
	}
	s.ledger.DailyQuest.Claimed = true
	s.ledger.Stars += QuestReward
	s.persist(ctx)
	s.reward(ctx, SourceQuest, QuestReward, s.ledger.DailyQuest.Date)
	return QuestReward, nil
}

// PurchaseAvatar debits the avatar cost, unlocks it and makes it
// current. Fails without mutation when funds are short or the avatar
// is already owned.
func (s *Service) PurchaseAvatar(ctx context.Context, id string) error {
	av, ok := FindAvatar(id)
	if !ok {
		return ErrUnknownCosmetic
	}
	if s.ledger.HasAvatar(id) {
		return ErrAlreadyUnlocked
	}
	if s.ledger.Stars < av.Cost {
		return ErrInsufficientFunds
	}
	s.ledger.Stars -= av.Cost
	s.ledger.UnlockedAvatars = append(s.ledger.UnlockedAvatars, id)
	s.ledger.CurrentAvatar = id
	s.persist(ctx)
	s.reward(ctx, SourcePurchase, -av.Cost, id)
	return nil
}

// SelectAvatar makes an already-owned avatar current.
func (s *Service) SelectAvatar(ctx context.Context, id string) error {
	if _, ok := FindAvatar(id); !ok {
		return ErrUnknownCosmetic
	}
	if !s.ledger.HasAvatar(id) {
		return ErrLocked
	}
	s.ledger.CurrentAvatar = id
	s.persist(ctx)
	return nil
}

// SelectTheme makes a theme current, unlocking it on first use.
// Themes are free.
func (s *Service) SelectTheme(ctx context.Context, id string) error {
	if _, ok := FindTheme(id); !ok {
		return ErrUnknownCosmetic
	}
	if !s.ledger.HasTheme(id) {
		s.ledger.UnlockedThemes = append(s.ledger.UnlockedThemes, id)
	}
	s.ledger.CurrentTheme = id
	s.persist(ctx)
	return nil
}

// WaterGarden spends stars to feed the garden. Returns true when the
// watering caused at least one level-up.
func (s *Service) WaterGarden(ctx context.Context) (bool, error) {
	if s.ledger.Stars < WaterCost {
		return false, ErrInsufficientFunds
	}
	s.ledger.Stars -= WaterCost
	leveled := s.ledger.Garden.applyXP(WaterXP)
	s.ledger.Garden.LastWatered = s.Now()
	s.persist(ctx)
	s.reward(ctx, SourceWater, -WaterCost, "")
	return leveled, nil
}

// EvaluateUnlocks runs every achievement predicate against the current
// ledger and unlocks the ones that newly hold. Only the achievements
// added by this call are returned; unlocks are never removed. Call
// after any change that could satisfy a predicate.
func (s *Service) EvaluateUnlocks(ctx context.Context) []Achievement {
	var newly []Achievement
	for _, ach := range AchievementCatalog() {
		if s.ledger.HasAchievement(ach.ID) {
			continue
		}
		if ach.Unlocked(s.ledger) {
			s.ledger.Achievements = append(s.ledger.Achievements, ach.ID)
			newly = append(newly, ach)
		}
	}
	if len(newly) > 0 {
		s.persist(ctx)
	}
	return newly
}

// ToggleSound flips the sound setting and returns the new value.
func (s *Service) ToggleSound(ctx context.Context) bool {
	s.ledger.SoundEnabled = !s.ledger.SoundEnabled
	s.persist(ctx)
	return s.ledger.SoundEnabled
}

// CueFor maps a cue to itself when sound is enabled, and to CueNone
// otherwise, so the view layer can pass cues through unconditionally.
func (s *Service) CueFor(cue audio.Cue) audio.Cue {
	if !s.ledger.SoundEnabled {
		return audio.CueNone
	}
	return cue
}
