package play

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathgarden/internal/ledger"
	"github.com/abhisek/mathgarden/internal/problemgen"
	"github.com/abhisek/mathgarden/internal/router"
	"github.com/abhisek/mathgarden/internal/screen"
	"github.com/abhisek/mathgarden/internal/session"
	"github.com/abhisek/mathgarden/internal/store"
	"github.com/abhisek/mathgarden/internal/ui/components"
)

// setupStep tracks which choice the setup screen is asking for.
type setupStep int

const (
	stepOperation setupStep = iota
	stepDifficulty
)

// SetupScreen collects operation and difficulty before a standard game.
type SetupScreen struct {
	svc    *ledger.Service
	gen    *problemgen.Generator
	events store.EventRepo

	step setupStep
	op   problemgen.Operation
	menu components.Menu
}

var _ screen.Screen = (*SetupScreen)(nil)

// NewSetup creates the pre-game setup screen.
func NewSetup(svc *ledger.Service, gen *problemgen.Generator, events store.EventRepo) *SetupScreen {
	s := &SetupScreen{
		svc:    svc,
		gen:    gen,
		events: events,
	}
	s.menu = s.operationMenu()
	return s
}

func (s *SetupScreen) operationMenu() components.Menu {
	ops := problemgen.AllOperations()
	items := make([]components.MenuItem, 0, len(ops))
	for _, op := range ops {
		op := op
		items = append(items, components.MenuItem{
			Label: op.DisplayName(),
			Action: func() tea.Cmd {
				s.op = op
				s.step = stepDifficulty
				s.menu = s.difficultyMenu()
				return nil
			},
		})
	}
	return components.NewMenu(items)
}

func (s *SetupScreen) difficultyMenu() components.Menu {
	diffs := problemgen.AllDifficulties()
	items := make([]components.MenuItem, 0, len(diffs))
	for _, diff := range diffs {
		diff := diff
		items = append(items, components.MenuItem{
			Label: diff.DisplayName(),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: New(s.svc, s.gen, s.events, session.ModeStandard, s.op, diff),
					}
				}
			},
		})
	}
	return components.NewMenu(items)
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" && s.step == stepDifficulty {
		// Step back to the operation choice instead of leaving.
		s.step = stepOperation
		s.menu = s.operationMenu()
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

var _ screen.EscInterceptor = (*SetupScreen)(nil)

// InterceptEsc claims esc while on the difficulty step so it steps
// back instead of popping the screen.
func (s *SetupScreen) InterceptEsc() bool {
	return s.step == stepDifficulty
}

func (s *SetupScreen) View(width, height int) string {
	var title, subtitle string
	if s.step == stepOperation {
		title = "What do you want to practice?"
		subtitle = "Pick an operation"
	} else {
		title = s.op.DisplayName()
		subtitle = "Pick a difficulty"
	}
	return renderSetup(title, subtitle, s.menu, width, height)
}

func (s *SetupScreen) Title() string {
	return "New Game"
}
