// Package home is the main menu screen.
package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathgarden/internal/ledger"
	"github.com/abhisek/mathgarden/internal/problemgen"
	"github.com/abhisek/mathgarden/internal/router"
	"github.com/abhisek/mathgarden/internal/screen"
	"github.com/abhisek/mathgarden/internal/screens/awards"
	"github.com/abhisek/mathgarden/internal/screens/garden"
	"github.com/abhisek/mathgarden/internal/screens/memorymatch"
	"github.com/abhisek/mathgarden/internal/screens/play"
	"github.com/abhisek/mathgarden/internal/screens/shop"
	"github.com/abhisek/mathgarden/internal/session"
	"github.com/abhisek/mathgarden/internal/store"
	"github.com/abhisek/mathgarden/internal/ui/components"
	"github.com/abhisek/mathgarden/internal/ui/layout"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	svc        *ledger.Service
	gen        *problemgen.Generator
	events     store.EventRepo
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(svc *ledger.Service, gen *problemgen.Generator, events store.EventRepo) *HomeScreen {
	menuLabels := []string{
		"PLAY", "TIME ATTACK", "MEMORY MATCH",
		"MY GARDEN", "SHOP", "AWARDS", "EXIT",
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: play.NewSetup(svc, gen, events)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: play.New(svc, gen, events, session.ModeTimeAttack,
						session.TimeAttackOperation, session.TimeAttackDifficulty),
				}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: memorymatch.New(svc, events)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: garden.New(svc)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: shop.New(svc)}
			}
		}},
		{Label: menuLabels[5], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: awards.New(svc)}
			}
		}},
		{Label: menuLabels[6], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		svc:        svc,
		gen:        gen,
		events:     events,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "s", "S":
			h.svc.ToggleSound(context.Background())
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	sound := "Sound on"
	if h.svc.Ledger().SoundEnabled {
		sound = "Sound off"
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "S", Description: sound},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height by
	// adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)
	l := h.svc.Ledger()

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderGardenPeek(l.Garden, cw))
	}
	sections = append(sections, renderStatsBar(l, cw, compact))
	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.GardenFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
