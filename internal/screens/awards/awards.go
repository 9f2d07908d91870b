// Package awards shows the daily quest, achievements and lifetime
// stats.
package awards

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathgarden/internal/ledger"
	"github.com/abhisek/mathgarden/internal/screen"
	"github.com/abhisek/mathgarden/internal/ui/components"
	"github.com/abhisek/mathgarden/internal/ui/layout"
	"github.com/abhisek/mathgarden/internal/ui/theme"
)

// AwardsScreen lists quest, achievements and stats.
type AwardsScreen struct {
	svc *ledger.Service

	notice    string
	noticeErr bool
}

var _ screen.Screen = (*AwardsScreen)(nil)
var _ screen.KeyHintProvider = (*AwardsScreen)(nil)

// New creates the awards screen.
func New(svc *ledger.Service) *AwardsScreen {
	return &AwardsScreen{svc: svc}
}

func (a *AwardsScreen) Init() tea.Cmd {
	return nil
}

func (a *AwardsScreen) Title() string {
	return "Awards"
}

func (a *AwardsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	q := a.svc.Ledger().DailyQuest
	if q.Complete() && !q.Claimed {
		hints = append([]layout.KeyHint{{Key: "C", Description: "Claim reward"}}, hints...)
	}
	return hints
}

func (a *AwardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch kmsg.String() {
	case "c", "C":
		a.claim()
	}
	return a, nil
}

func (a *AwardsScreen) claim() {
	ctx := context.Background()
	reward, err := a.svc.ClaimDailyQuest(ctx)
	switch {
	case errors.Is(err, ledger.ErrQuestIncomplete):
		a.notice = "Finish the quest first!"
		a.noticeErr = true
	case errors.Is(err, ledger.ErrQuestClaimed):
		a.notice = "Already claimed. Come back tomorrow!"
		a.noticeErr = true
	case err != nil:
		a.notice = err.Error()
		a.noticeErr = true
	default:
		a.svc.EvaluateUnlocks(ctx)
		a.notice = fmt.Sprintf("Quest reward claimed: ⭐ %d!", reward)
		a.noticeErr = false
	}
}

func (a *AwardsScreen) View(width, height int) string {
	l := a.svc.Ledger()

	var lines []string
	lines = append(lines, theme.Title.Render("🏆 Awards"))
	lines = append(lines, "")
	lines = append(lines, a.renderQuest(l)...)
	lines = append(lines, "")
	lines = append(lines, a.renderAchievements(l)...)
	lines = append(lines, "")
	lines = append(lines, a.renderStats(l)...)

	if a.notice != "" {
		style := theme.Correct
		if a.noticeErr {
			style = theme.Incorrect
		}
		lines = append(lines, "", style.Render(a.notice))
	}

	card := theme.Card.Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (a *AwardsScreen) renderQuest(l *ledger.Ledger) []string {
	q := l.DailyQuest

	header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render("📋 Daily Quest")

	var status string
	switch {
	case q.Claimed:
		status = theme.Correct.Render("Done! Come back tomorrow. ✓")
	case q.Complete():
		status = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("Complete! Press C to claim ⭐ %d", ledger.QuestReward))
	default:
		status = theme.Body.Render(
			fmt.Sprintf("Answer %d questions correctly (⭐ %d reward)", q.Target, ledger.QuestReward))
	}

	progress := q.Progress
	if progress > q.Target {
		progress = q.Target
	}
	frac := 0.0
	if q.Target > 0 {
		frac = float64(progress) / float64(q.Target)
	}
	bar := components.NewProgressBar("", frac, false, 24)

	return []string{
		header,
		status,
		bar.View() + theme.Hint.Render(fmt.Sprintf(" %d/%d", progress, q.Target)),
	}
}

func (a *AwardsScreen) renderAchievements(l *ledger.Ledger) []string {
	header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render("🎖 Achievements")

	lines := []string{header}
	for _, ach := range ledger.AchievementCatalog() {
		if l.HasAchievement(ach.ID) {
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).
				Render(fmt.Sprintf("%s  %s", ach.Icon, ach.Title)))
		} else {
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("🔒  %s", ach.Title)))
		}
	}
	return lines
}

func (a *AwardsScreen) renderStats(l *ledger.Ledger) []string {
	header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render("📊 Lifetime")

	accuracy := 0
	if l.Stats.TotalQuestions > 0 {
		accuracy = l.Stats.TotalCorrect * 100 / l.Stats.TotalQuestions
	}

	return []string{
		header,
		theme.Body.Render(fmt.Sprintf("Questions answered:   %d", l.Stats.TotalQuestions)),
		theme.Body.Render(fmt.Sprintf("Correct answers:      %d (%d%%)", l.Stats.TotalCorrect, accuracy)),
		theme.Body.Render(fmt.Sprintf("Time attack record:   %d", l.Stats.TimeAttackHighScore)),
	}
}
