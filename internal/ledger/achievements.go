package ledger

// Achievement pairs an id with a side-effect-free predicate over a
// ledger snapshot. The catalog order is the evaluation order, so
// unlock notifications are deterministic.
type Achievement struct {
	ID    string
	Title string
	Icon  string

	// Unlocked must be true-stable: once it holds for a ledger it must
	// keep holding, since unlocks are never removed.
	Unlocked func(l *Ledger) bool
}

// AchievementCatalog returns all achievement definitions.
func AchievementCatalog() []Achievement {
	return []Achievement{
		{
			ID:    "first_blood",
			Title: "First Steps",
			Icon:  "👶",
			Unlocked: func(l *Ledger) bool {
				return l.Stats.TotalCorrect >= 1
			},
		},
		{
			ID:    "math_wiz",
			Title: "Math Wizard",
			Icon:  "🧙",
			Unlocked: func(l *Ledger) bool {
				return l.Stats.TotalCorrect >= 50
			},
		},
		{
			ID:    "streak_10",
			Title: "On Fire!",
			Icon:  "🔥",
			Unlocked: func(l *Ledger) bool {
				return l.BestStreak >= 10
			},
		},
		{
			ID:    "rich",
			Title: "Treasure Hunter",
			Icon:  "💎",
			Unlocked: func(l *Ledger) bool {
				return l.Stars >= 500
			},
		},
		{
			ID:    "garden_grower",
			Title: "Green Thumb",
			Icon:  "🌳",
			Unlocked: func(l *Ledger) bool {
				return l.Garden.Level >= 2
			},
		},
	}
}

// FindAchievement returns the catalog entry for id, if any.
func FindAchievement(id string) (Achievement, bool) {
	for _, a := range AchievementCatalog() {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
