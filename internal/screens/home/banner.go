package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathgarden/internal/ledger"
	"github.com/abhisek/mathgarden/internal/ui/components"
	"github.com/abhisek/mathgarden/internal/ui/theme"
)

// Block-letter title shown on roomy terminals.
const bannerFull = ` ███╗   ███╗ █████╗ ████████╗██╗  ██╗
 ████╗ ████║██╔══██╗╚══██╔══╝██║  ██║
 ██╔████╔██║███████║   ██║   ███████║
 ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║
 ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║
 ╚═╝     ╚═╝ ╚═╝  ╚═╝  ╚═╝   ╚═╝  ╚═╝
          🌱 G A R D E N 🌱`

const bannerCompact = "M · A · T · H · G · A · R · D · E · N"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(bannerCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(bannerFull))
}

// renderStatsBar renders stars, best streak and quest progress in a
// bordered box matching the content width.
func renderStatsBar(l *ledger.Ledger, cw int, compact bool) string {
	starStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	questStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			starStyle.Render(fmt.Sprintf("⭐%d", l.Stars)),
			streakStyle.Render(fmt.Sprintf("🔥%d", l.BestStreak)),
			questText(l.DailyQuest, true, questStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			starStyle.Render(fmt.Sprintf("⭐ %d STARS", l.Stars)),
			streakStyle.Render(fmt.Sprintf("🔥 %d BEST STREAK", l.BestStreak)),
			questText(l.DailyQuest, false, questStyle, dimStyle),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func questText(q ledger.Quest, compact bool, active, dim lipgloss.Style) string {
	if q.Claimed {
		if compact {
			return dim.Render("📋✓")
		}
		return dim.Render("📋 QUEST DONE")
	}
	if compact {
		return active.Render(fmt.Sprintf("📋%d/%d", q.Progress, q.Target))
	}
	return active.Render(fmt.Sprintf("📋 QUEST %d/%d", q.Progress, q.Target))
}

// renderGardenPeek shows the garden tree at its current stage so the
// home screen reflects growth at a glance.
func renderGardenPeek(g ledger.Garden, cw int) string {
	line := fmt.Sprintf("%s  %s · Lv %d",
		ledger.StageIcon(g.TreeStage),
		ledger.StageName(g.TreeStage),
		g.Level,
	)
	return lipgloss.NewStyle().
		Foreground(theme.Success).
		Width(cw).
		Align(lipgloss.Center).
		Render(line)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.BoxButton(label, i == selected, buttonWidth))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMenuCompact renders menu items as plain lines for very small
// terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Accent).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}
