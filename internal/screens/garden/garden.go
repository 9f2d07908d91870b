// Package garden shows the growing tree and lets the player water it.
package garden

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathgarden/internal/audio"
	"github.com/abhisek/mathgarden/internal/ledger"
	"github.com/abhisek/mathgarden/internal/screen"
	"github.com/abhisek/mathgarden/internal/ui/components"
	"github.com/abhisek/mathgarden/internal/ui/layout"
	"github.com/abhisek/mathgarden/internal/ui/theme"
)

// GardenScreen is the garden view.
type GardenScreen struct {
	svc *ledger.Service

	notice    string
	noticeErr bool
}

var _ screen.Screen = (*GardenScreen)(nil)
var _ screen.KeyHintProvider = (*GardenScreen)(nil)

// New creates the garden screen.
func New(svc *ledger.Service) *GardenScreen {
	return &GardenScreen{svc: svc}
}

func (g *GardenScreen) Init() tea.Cmd {
	return nil
}

func (g *GardenScreen) Title() string {
	return "My Garden"
}

func (g *GardenScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "W", Description: fmt.Sprintf("Water (⭐ %d)", ledger.WaterCost)},
		{Key: "Esc", Description: "Back"},
	}
}

func (g *GardenScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	switch kmsg.String() {
	case "w", "W", "enter":
		g.water()
	}
	return g, nil
}

func (g *GardenScreen) water() {
	leveled, err := g.svc.WaterGarden(context.Background())
	switch {
	case errors.Is(err, ledger.ErrInsufficientFunds):
		g.notice = fmt.Sprintf("You need ⭐ %d to water. Play to earn more!", ledger.WaterCost)
		g.noticeErr = true
	case err != nil:
		g.notice = err.Error()
		g.noticeErr = true
	case leveled:
		stage := g.svc.Ledger().Garden.TreeStage
		g.notice = fmt.Sprintf("Level up! Your %s is thriving! 🎉", ledger.StageName(stage))
		g.noticeErr = false
	default:
		g.notice = "You watered your garden. 💧"
		g.noticeErr = false
	}
	if !g.noticeErr && g.svc.CueFor(audio.CueWater) != audio.CueNone {
		g.notice += " ♪"
	}
	g.svc.EvaluateUnlocks(context.Background())
}

func (g *GardenScreen) View(width, height int) string {
	gd := g.svc.Ledger().Garden

	var lines []string
	lines = append(lines, theme.Title.Render(fmt.Sprintf("%s  %s", ledger.StageIcon(gd.TreeStage), ledger.StageName(gd.TreeStage))))
	lines = append(lines, "")
	lines = append(lines, components.BoxCard(renderTree(gd.TreeStage), 30))
	lines = append(lines, "")
	lines = append(lines, theme.Body.Render(fmt.Sprintf("Garden level %d", gd.Level)))

	threshold := ledger.Threshold(gd.Level)
	bar := components.NewProgressBar("Growth", float64(gd.XP)/float64(threshold), false, 32)
	lines = append(lines, bar.View()+theme.Hint.Render(fmt.Sprintf(" %d/%d", gd.XP, threshold)))

	if g.notice != "" {
		style := theme.Correct
		if g.noticeErr {
			style = theme.Incorrect
		}
		lines = append(lines, "", style.Render(g.notice))
	}

	water := components.NewButton(fmt.Sprintf("Water  ⭐ %d", ledger.WaterCost), true, nil)
	lines = append(lines, "", water.View())
	lines = append(lines, theme.Hint.Render(fmt.Sprintf("W or Enter to water  ·  +%d growth", ledger.WaterXP)))

	card := theme.Card.Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

// Tree art by stage, smallest to fullest.
var treeArt = []string{
	`
   .
  \|/
 --+--`,
	`
  \|/
   |
 \\|//`,
	`  (@)
 \\|//
   |
 \\|//`,
	` (@@@)
(@@@@@)
 \\|//
   |`,
	` (@@@)
(@o@o@)
 \\|//
   |`,
	`(@o@o@)
(o@@@o)
(@o@o@)
 \\|//
   |`,
}

func renderTree(stage int) string {
	if stage < 0 {
		stage = 0
	}
	if stage >= len(treeArt) {
		stage = len(treeArt) - 1
	}
	return lipgloss.NewStyle().
		Foreground(theme.Success).
		Bold(true).
		Render(treeArt[stage])
}
