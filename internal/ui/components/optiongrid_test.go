package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testGrid() OptionGrid {
	return NewOptionGrid("3 + 4 = ?", []int{7, 8, 6, 10}, 7)
}

func TestOptionGridNavigationClamps(t *testing.T) {
	g := testGrid()

	g, _ = g.Update(keyPress('k'))
	if g.Selected != 0 {
		t.Errorf("Selected = %d, want clamped at 0", g.Selected)
	}

	for i := 0; i < 6; i++ {
		g, _ = g.Update(keyPress('j'))
	}
	if g.Selected != 3 {
		t.Errorf("Selected = %d, want clamped at 3", g.Selected)
	}

	g, _ = g.Update(keyPress('k'))
	if g.Selected != 2 {
		t.Errorf("Selected = %d, want 2", g.Selected)
	}
}

func TestOptionGridReveal(t *testing.T) {
	g := testGrid()

	g.Reveal(1)
	if !g.Submitted || g.Chosen != 1 {
		t.Errorf("grid = submitted %v chosen %d, want submitted with choice 1", g.Submitted, g.Chosen)
	}

	// Navigation is frozen after reveal.
	g, _ = g.Update(keyPress('j'))
	if g.Selected != 0 {
		t.Errorf("Selected = %d, want unchanged after reveal", g.Selected)
	}
}

func TestOptionGridRevealTypedAnswer(t *testing.T) {
	g := testGrid()

	g.Reveal(-1)
	if !g.Submitted || g.Chosen != -1 {
		t.Errorf("grid = submitted %v chosen %d, want submitted without an option", g.Submitted, g.Chosen)
	}
}
