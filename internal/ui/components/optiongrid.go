package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathgarden/internal/ui/theme"
)

// OptionGrid presents a question with numeric answer choices. After
// submission it reveals the correct choice and greys out the rest.
type OptionGrid struct {
	Question  string
	Options   []int
	Answer    int
	Selected  int
	Submitted bool
	Chosen    int
}

// NewOptionGrid creates a grid for one question.
func NewOptionGrid(question string, options []int, answer int) OptionGrid {
	return OptionGrid{
		Question: question,
		Options:  options,
		Answer:   answer,
		Chosen:   -1,
	}
}

// Init returns nil.
func (g OptionGrid) Init() tea.Cmd {
	return nil
}

// Update moves the highlight. Submission is routed by the owning
// screen, which calls Reveal with the resolved choice.
func (g OptionGrid) Update(msg tea.Msg) (OptionGrid, tea.Cmd) {
	if g.Submitted {
		return g, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if g.Selected > 0 {
			g.Selected--
		}
	case "down", "j":
		if g.Selected < len(g.Options)-1 {
			g.Selected++
		}
	}

	return g, nil
}

// View renders the question and its choices.
func (g OptionGrid) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(g.Question) + "\n\n"

	for i, opt := range g.Options {
		prefix := "  "
		if i == g.Selected && !g.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %d", prefix, i+1, opt)

		if g.Submitted {
			switch {
			case opt == g.Answer:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			case i == g.Chosen:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == g.Selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}

// Reveal marks the grid submitted with the given choice index so the
// view shows the correct answer. A negative index means the answer
// came from the typed input rather than an option.
func (g *OptionGrid) Reveal(chosen int) {
	g.Submitted = true
	g.Chosen = chosen
}
