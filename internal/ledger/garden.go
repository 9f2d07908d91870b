package ledger

// WaterCost is the star price of one watering.
const WaterCost = 10

// WaterXP is the experience gained per watering.
const WaterXP = 20

// MaxTreeStage is the highest visual growth tier.
const MaxTreeStage = 5

// Threshold returns the experience needed to finish the given level.
func Threshold(level int) int {
	return level * 100
}

// treeStage derives the visual tier from the garden level:
// min(5, ceil(level/2)).
func treeStage(level int) int {
	stage := (level + 1) / 2
	if stage > MaxTreeStage {
		stage = MaxTreeStage
	}
	if stage < 1 {
		stage = 1
	}
	return stage
}

// StageIcon returns the tree glyph for a growth stage (1-based).
func StageIcon(stage int) string {
	icons := []string{"🌱", "🌿", "🪴", "🌳", "🍎"}
	if stage < 1 {
		stage = 1
	}
	if stage > len(icons) {
		stage = len(icons)
	}
	return icons[stage-1]
}

// StageName returns the tree name for a growth stage (1-based).
func StageName(stage int) string {
	names := []string{"Sprout", "Sapling", "Small Tree", "Big Tree", "Apple Tree"}
	if stage < 1 {
		stage = 1
	}
	if stage > len(names) {
		stage = len(names)
	}
	return names[stage-1]
}

// applyXP adds experience and resolves any level-ups, carrying the
// remainder forward. One large gain may cross several thresholds.
func (g *Garden) applyXP(xp int) (leveledUp bool) {
	g.XP += xp
	for g.XP >= Threshold(g.Level) {
		g.XP -= Threshold(g.Level)
		g.Level++
		leveledUp = true
	}
	g.TreeStage = treeStage(g.Level)
	return leveledUp
}
