package memorymatch

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathgarden/internal/memory"
	"github.com/abhisek/mathgarden/internal/ui/theme"
)

const cardWidth = 9

func (m *MemoryScreen) View(width, height int) string {
	if m.finished {
		return m.renderDone(width, height)
	}
	if m.showingQuit {
		return m.renderQuitConfirm(width, height)
	}

	status := fmt.Sprintf("Pairs: %d/%d   Moves: %d",
		m.game.MatchedPairs, memory.PairCount, m.game.Moves)

	content := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(status) + "\n\n" + m.renderBoard()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m *MemoryScreen) renderBoard() string {
	var rows []string
	for rowStart := 0; rowStart < len(m.game.Cards); rowStart += columns {
		var cells []string
		for i := rowStart; i < rowStart+columns && i < len(m.game.Cards); i++ {
			cells = append(cells, m.renderCard(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (m *MemoryScreen) renderCard(i int) string {
	card := m.game.Cards[i]

	face := "?"
	if card.FaceUp || card.Matched {
		face = card.Content
	}

	style := lipgloss.NewStyle().
		Width(cardWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch {
	case card.Matched:
		style = style.
			BorderForeground(theme.Success).
			Foreground(theme.Success)
	case card.FaceUp:
		style = style.
			BorderForeground(theme.Secondary).
			Foreground(theme.Text)
	case i == m.cursor:
		style = style.
			BorderForeground(theme.Primary).
			Foreground(theme.Primary).
			Bold(true)
	default:
		style = style.
			BorderForeground(theme.Border).
			Foreground(theme.TextDim)
	}

	return style.Render(face)
}

func (m *MemoryScreen) renderQuitConfirm(width, height int) string {
	msg := theme.Title.Render("Leave the game?") + "\n\n" +
		theme.Body.Render("The board and its bonus will be lost.") + "\n\n" +
		theme.Hint.Render("Y to leave · N to keep playing")

	card := theme.Card.Render(msg)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (m *MemoryScreen) renderDone(width, height int) string {
	var lines []string
	lines = append(lines, theme.Title.Render("🎉 All Pairs Found!"))
	lines = append(lines, "")
	lines = append(lines, theme.Body.Render(fmt.Sprintf("Moves:  %d", m.game.Moves)))
	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("Bonus:  ⭐ %d", m.bonus)))

	for _, ach := range m.unlocked {
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
