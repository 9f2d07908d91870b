// Package ledger owns the persistent player progress record: stars,
// cosmetics, the daily quest, achievements, the garden and lifetime
// stats. All mutation funnels through Service so every durable change
// is followed by a write-through save.
package ledger

import (
	"time"

	"github.com/abhisek/mathgarden/internal/store"
)

// DateFormat is the calendar-date layout used for quest rollover and
// login tracking.
const DateFormat = "2006-01-02"

// Ledger is the per-player progress and economy record.
type Ledger struct {
	Stars           int
	UnlockedAvatars []string
	CurrentAvatar   string
	UnlockedThemes  []string
	CurrentTheme    string

	// BestStreak is the longest correct-answer run ever recorded,
	// distinct from any in-session streak.
	BestStreak int

	SoundEnabled bool
	LastLogin    string

	DailyQuest   Quest
	Achievements []string
	Garden       Garden
	Stats        Stats
}

// Quest is the daily quest state. Progress only moves while the quest
// is unclaimed; a fresh quest is issued on the first access of each
// calendar date.
type Quest struct {
	Target   int
	Progress int
	Claimed  bool
	Date     string
}

// Complete reports whether the quest target has been reached.
func (q Quest) Complete() bool {
	return q.Progress >= q.Target
}

// Garden is the growth meter fed by watering.
type Garden struct {
	Level       int
	XP          int
	TreeStage   int
	LastWatered time.Time
}

// Stats is the lifetime answer record.
type Stats struct {
	TotalQuestions      int
	TotalCorrect        int
	TimeAttackHighScore int
}

// Default returns a fresh ledger for a first run.
func Default() *Ledger {
	return &Ledger{
		UnlockedAvatars: []string{DefaultAvatarID},
		CurrentAvatar:   DefaultAvatarID,
		UnlockedThemes:  []string{DefaultThemeID},
		CurrentTheme:    DefaultThemeID,
		SoundEnabled:    true,
		DailyQuest: Quest{
			Target: 20, // placeholder until the first daily rollover
		},
		Achievements: []string{},
		Garden: Garden{
			Level:     1,
			TreeStage: 1,
		},
	}
}

// HasAvatar reports whether the avatar id is unlocked.
func (l *Ledger) HasAvatar(id string) bool {
	for _, a := range l.UnlockedAvatars {
		if a == id {
			return true
		}
	}
	return false
}

// HasTheme reports whether the theme id is unlocked.
func (l *Ledger) HasTheme(id string) bool {
	for _, t := range l.UnlockedThemes {
		if t == id {
			return true
		}
	}
	return false
}

// HasAchievement reports whether the achievement id is unlocked.
func (l *Ledger) HasAchievement(id string) bool {
	for _, a := range l.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// sanitize replaces structurally invalid subtrees with defaults.
// Corrupt persisted data is recovered wholesale, never surfaced.
func (l *Ledger) sanitize() {
	def := Default()

	if l.Stars < 0 {
		l.Stars = 0
	}
	if len(l.UnlockedAvatars) == 0 {
		l.UnlockedAvatars = def.UnlockedAvatars
	}
	if l.CurrentAvatar == "" || !l.HasAvatar(l.CurrentAvatar) {
		l.CurrentAvatar = l.UnlockedAvatars[0]
	}
	if len(l.UnlockedThemes) == 0 {
		l.UnlockedThemes = def.UnlockedThemes
	}
	if l.CurrentTheme == "" || !l.HasTheme(l.CurrentTheme) {
		l.CurrentTheme = l.UnlockedThemes[0]
	}
	if l.BestStreak < 0 {
		l.BestStreak = 0
	}
	if l.Achievements == nil {
		l.Achievements = []string{}
	}
	if l.DailyQuest.Target <= 0 {
		l.DailyQuest = def.DailyQuest
	}
	if l.DailyQuest.Progress < 0 {
		l.DailyQuest.Progress = 0
	}
	if l.Garden.Level < 1 {
		l.Garden = def.Garden
	}
	if l.Garden.XP < 0 {
		l.Garden.XP = 0
	}
	l.Garden.TreeStage = treeStage(l.Garden.Level)
	if l.Stats.TotalQuestions < 0 {
		l.Stats.TotalQuestions = 0
	}
	if l.Stats.TotalCorrect < 0 {
		l.Stats.TotalCorrect = 0
	}
	if l.Stats.TotalCorrect > l.Stats.TotalQuestions {
		l.Stats.TotalCorrect = l.Stats.TotalQuestions
	}
	if l.Stats.TimeAttackHighScore < 0 {
		l.Stats.TimeAttackHighScore = 0
	}
}

// toData converts the ledger to its persisted form.
func (l *Ledger) toData() *store.LedgerData {
	data := &store.LedgerData{
		Version:         1,
		Stars:           l.Stars,
		UnlockedAvatars: append([]string(nil), l.UnlockedAvatars...),
		CurrentAvatar:   l.CurrentAvatar,
		UnlockedThemes:  append([]string(nil), l.UnlockedThemes...),
		CurrentTheme:    l.CurrentTheme,
		BestStreak:      l.BestStreak,
		SoundEnabled:    l.SoundEnabled,
		LastLogin:       l.LastLogin,
		Achievements:    append([]string(nil), l.Achievements...),
		DailyQuest: &store.QuestData{
			Target:   l.DailyQuest.Target,
			Progress: l.DailyQuest.Progress,
			Claimed:  l.DailyQuest.Claimed,
			Date:     l.DailyQuest.Date,
		},
		Garden: &store.GardenData{
			Level:     l.Garden.Level,
			XP:        l.Garden.XP,
			TreeStage: l.Garden.TreeStage,
		},
		Stats: &store.PlayerStatData{
			TotalQuestions:      l.Stats.TotalQuestions,
			TotalCorrect:        l.Stats.TotalCorrect,
			TimeAttackHighScore: l.Stats.TimeAttackHighScore,
		},
	}
	if !l.Garden.LastWatered.IsZero() {
		data.Garden.LastWatered = l.Garden.LastWatered.Format(time.RFC3339)
	}
	return data
}

// fromData converts persisted data back into a ledger, recovering
// missing or malformed subtrees with defaults.
func fromData(data *store.LedgerData) *Ledger {
	l := &Ledger{
		Stars:           data.Stars,
		UnlockedAvatars: data.UnlockedAvatars,
		CurrentAvatar:   data.CurrentAvatar,
		UnlockedThemes:  data.UnlockedThemes,
		CurrentTheme:    data.CurrentTheme,
		BestStreak:      data.BestStreak,
		SoundEnabled:    data.SoundEnabled,
		LastLogin:       data.LastLogin,
		Achievements:    data.Achievements,
	}
	if data.DailyQuest != nil {
		l.DailyQuest = Quest{
			Target:   data.DailyQuest.Target,
			Progress: data.DailyQuest.Progress,
			Claimed:  data.DailyQuest.Claimed,
			Date:     data.DailyQuest.Date,
		}
	}
	if data.Garden != nil {
		l.Garden = Garden{
			Level:     data.Garden.Level,
			XP:        data.Garden.XP,
			TreeStage: data.Garden.TreeStage,
		}
		if data.Garden.LastWatered != "" {
			if t, err := time.Parse(time.RFC3339, data.Garden.LastWatered); err == nil {
				l.Garden.LastWatered = t
			}
		}
	}
	if data.Stats != nil {
		l.Stats = Stats{
			TotalQuestions:      data.Stats.TotalQuestions,
			TotalCorrect:        data.Stats.TotalCorrect,
			TimeAttackHighScore: data.Stats.TimeAttackHighScore,
		}
	}
	l.sanitize()
	return l
}
