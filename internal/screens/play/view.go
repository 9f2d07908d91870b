package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathgarden/internal/audio"
	sess "github.com/abhisek/mathgarden/internal/session"
	"github.com/abhisek/mathgarden/internal/ui/components"
	"github.com/abhisek/mathgarden/internal/ui/theme"
)

// renderSetup centers the setup menu under a title.
func renderSetup(title, subtitle string, menu components.Menu, width, height int) string {
	content := theme.Title.Render(title) + "\n" +
		theme.Subtitle.Render(subtitle) + "\n\n" +
		menu.View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (p *PlayScreen) View(width, height int) string {
	if p.finished {
		return p.renderSummary(width, height)
	}
	if p.showingQuit {
		return p.renderQuitConfirm(width, height)
	}

	var sections []string
	sections = append(sections, p.renderStatusLine(width))
	sections = append(sections, "")
	sections = append(sections, p.grid.View())
	sections = append(sections, theme.Hint.Render("or type it:")+" "+p.input.View())

	if p.showingFeedback {
		sections = append(sections, "", p.renderFeedback())
	}

	content := strings.Join(sections, "\n")

	card := theme.Card.Render(content)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

// renderStatusLine shows score plus either the progress bar (standard)
// or the countdown (time attack).
func (p *PlayScreen) renderStatusLine(width int) string {
	score := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("⭐ %d", p.state.Score))

	streak := lipgloss.NewStyle().
		Foreground(theme.Error).
		Render(fmt.Sprintf("🔥 %d", p.state.Streak))

	if p.state.Mode == sess.ModeTimeAttack {
		secs := int(p.remaining.Seconds())
		clockStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		if secs <= 10 {
			clockStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		}
		return score + "   " + streak + "   " + clockStyle.Render(fmt.Sprintf("⏱ %ds", secs))
	}

	bar := components.NewProgressBar("", p.state.Fraction(), false, 24)
	progress := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf(" %d/%d", p.state.Progress, sess.StandardTarget))
	return score + "   " + streak + "   " + bar.View() + progress
}

func (p *PlayScreen) renderFeedback() string {
	var line string
	if p.lastCorrect {
		line = theme.Correct.Render("✔ Correct!")
	} else {
		line = theme.Incorrect.Render(fmt.Sprintf("✘ Not quite! The answer was %d.", p.state.Current.Answer))
	}
	if p.lastCue == audio.CueCorrect {
		line += theme.Hint.Render("  ♪")
	}

	for _, ach := range p.unlocked {
		line += "\n" + lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("%s  Achievement unlocked: %s!", ach.Icon, ach.Title))
	}

	line += "\n" + theme.Hint.Render("press any key")
	return line
}

func (p *PlayScreen) renderQuitConfirm(width, height int) string {
	msg := theme.Title.Render("Leave the game?") + "\n\n" +
		theme.Body.Render("Unbanked stars from this game will be lost.") + "\n\n" +
		theme.Hint.Render("Y to leave · N to keep playing")

	card := theme.Card.Render(msg)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (p *PlayScreen) renderSummary(width, height int) string {
	var lines []string

	if p.state.Mode == sess.ModeTimeAttack {
		lines = append(lines, theme.Title.Render("⏱ Time's Up!"))
	} else {
		lines = append(lines, theme.Title.Render("🎉 Great Job!"))
	}
	lines = append(lines, "")
	lines = append(lines, theme.Body.Render(fmt.Sprintf("Questions answered:  %d", p.state.Progress)))
	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("Stars earned:        ⭐ %d", p.result.Earned)))

	if p.result.NewHighScore {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render("New time attack record!"))
	}

	for _, ach := range p.result.Unlocked {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("%s  %s unlocked!", ach.Icon, ach.Title)))
	}

	lines = append(lines, "", theme.Hint.Render("Enter to return home"))

	card := theme.Card.Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}
