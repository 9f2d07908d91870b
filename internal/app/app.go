// Package app wires the screens into the root Bubble Tea program.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathgarden/internal/ledger"
	"github.com/abhisek/mathgarden/internal/problemgen"
	"github.com/abhisek/mathgarden/internal/router"
	"github.com/abhisek/mathgarden/internal/screen"
	"github.com/abhisek/mathgarden/internal/screens/home"
	"github.com/abhisek/mathgarden/internal/store"
	"github.com/abhisek/mathgarden/internal/ui/layout"
	"github.com/abhisek/mathgarden/internal/ui/theme"
)

// Options carries the services the screens depend on.
type Options struct {
	Service   *ledger.Service
	Generator *problemgen.Generator
	Events    store.EventRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	svc    *ledger.Service
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model with the home screen installed.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Service, opts.Generator, opts.Events)
	return AppModel{
		svc:    opts.Service,
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens with unfinished business handle esc themselves.
			if ei, ok := m.router.Active().(screen.EscInterceptor); ok && ei.InterceptEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerStats(), m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// headerStats reads the at-a-glance numbers for the header bar.
func (m AppModel) headerStats() layout.HeaderStats {
	l := m.svc.Ledger()
	avatar := "🙂"
	if av, ok := ledger.FindAvatar(l.CurrentAvatar); ok {
		avatar = av.Icon
	}
	return layout.HeaderStats{
		Avatar:     avatar,
		Stars:      l.Stars,
		BestStreak: l.BestStreak,
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	// Roll the daily quest and apply the saved theme before the first
	// frame renders.
	opts.Service.CheckDailyQuest(context.Background())
	theme.Apply(opts.Service.Ledger().CurrentTheme)

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
