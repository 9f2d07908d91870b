// Package memorymatch is the memory mini game screen: flip cards to
// pair each number with its picture.
package memorymatch

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/mathgarden/internal/ledger"
	"github.com/abhisek/mathgarden/internal/memory"
	"github.com/abhisek/mathgarden/internal/router"
	"github.com/abhisek/mathgarden/internal/screen"
	sess "github.com/abhisek/mathgarden/internal/session"
	"github.com/abhisek/mathgarden/internal/store"
	"github.com/abhisek/mathgarden/internal/ui/layout"
)

// columns is the board width in cards.
const columns = 4

// concealDelay is how long a mismatched pair stays visible.
const concealDelay = 900 * time.Millisecond

// concealMsg hides a mismatched pair after the display delay.
type concealMsg struct{}

// MemoryScreen runs one memory-match game.
type MemoryScreen struct {
	svc    *ledger.Service
	events store.EventRepo

	game      *memory.Game
	sessionID string
	start     time.Time
	cursor    int

	showingQuit bool
	finished    bool
	bonus       int
	unlocked    []ledger.Achievement
}

var _ screen.Screen = (*MemoryScreen)(nil)
var _ screen.KeyHintProvider = (*MemoryScreen)(nil)
var _ screen.EscInterceptor = (*MemoryScreen)(nil)

// New deals a board and starts the game.
func New(svc *ledger.Service, events store.EventRepo) *MemoryScreen {
	return &MemoryScreen{
		svc:       svc,
		events:    events,
		game:      memory.NewGame(svc.Rand),
		sessionID: uuid.New().String(),
		start:     time.Now(),
	}
}

func (m *MemoryScreen) Init() tea.Cmd {
	if m.events != nil {
		_ = m.events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID: m.sessionID,
			Action:    "start",
			Mode:      string(sess.ModeMemory),
		})
	}
	return nil
}

func (m *MemoryScreen) Title() string {
	return "Memory Match"
}

// InterceptEsc claims esc while the board is unfinished.
func (m *MemoryScreen) InterceptEsc() bool {
	return !m.finished
}

func (m *MemoryScreen) KeyHints() []layout.KeyHint {
	switch {
	case m.showingQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave game"},
			{Key: "N", Description: "Keep going"},
		}
	case m.finished:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back to menu"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓←→", Description: "Move"},
			{Key: "Enter", Description: "Flip"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (m *MemoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case concealMsg:
		m.game.ConcealMismatch()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *MemoryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if m.finished {
		switch key {
		case "enter", "esc", "q":
			return m, func() tea.Msg { return router.PopToRootMsg{} }
		}
		return m, nil
	}

	if m.showingQuit {
		switch key {
		case "y", "Y":
			m.appendEndEvent("abandon")
			return m, func() tea.Msg { return router.PopToRootMsg{} }
		case "n", "N", "esc":
			m.showingQuit = false
		}
		return m, nil
	}

	switch key {
	case "esc":
		m.showingQuit = true
		return m, nil
	case "up", "k":
		if m.cursor >= columns {
			m.cursor -= columns
		}
	case "down", "j":
		if m.cursor+columns < len(m.game.Cards) {
			m.cursor += columns
		}
	case "left", "h":
		if m.cursor%columns > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor%columns < columns-1 && m.cursor+1 < len(m.game.Cards) {
			m.cursor++
		}
	case "enter", " ":
		return m.flip()
	}

	return m, nil
}

func (m *MemoryScreen) flip() (screen.Screen, tea.Cmd) {
	res := m.game.Flip(m.cursor)
	if !res.Flipped {
		return m, nil
	}

	if res.Completed {
		m.finish()
		return m, nil
	}

	if res.Mismatched {
		return m, tea.Tick(concealDelay, func(time.Time) tea.Msg {
			return concealMsg{}
		})
	}

	return m, nil
}

// finish settles the move-count bonus into the ledger.
func (m *MemoryScreen) finish() {
	m.finished = true
	m.bonus = m.game.Bonus()

	ctx := context.Background()
	m.svc.SettleReward(ctx, ledger.SourceMemory, m.bonus)
	m.unlocked = m.svc.EvaluateUnlocks(ctx)
	m.appendEndEvent("end")
}

func (m *MemoryScreen) appendEndEvent(action string) {
	if m.events == nil {
		return
	}
	stars := 0
	if action == "end" {
		stars = m.bonus
	}
	_ = m.events.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:         m.sessionID,
		Action:            action,
		Mode:              string(sess.ModeMemory),
		QuestionsAnswered: m.game.MatchedPairs,
		StarsEarned:       stars,
		DurationSecs:      int(time.Since(m.start).Seconds()),
	})
}
