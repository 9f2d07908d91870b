// Package play hosts the quiz screens: game setup plus the standard
// and time-attack session loop.
package play

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/mathgarden/internal/audio"
	"github.com/abhisek/mathgarden/internal/ledger"
	"github.com/abhisek/mathgarden/internal/problemgen"
	"github.com/abhisek/mathgarden/internal/router"
	"github.com/abhisek/mathgarden/internal/screen"
	sess "github.com/abhisek/mathgarden/internal/session"
	"github.com/abhisek/mathgarden/internal/store"
	"github.com/abhisek/mathgarden/internal/ui/components"
	"github.com/abhisek/mathgarden/internal/ui/layout"
)

// PlayScreen runs one quiz session from first question to summary.
type PlayScreen struct {
	svc    *ledger.Service
	gen    *problemgen.Generator
	events store.EventRepo
	state  *sess.State

	grid  components.OptionGrid
	input components.TextInput

	showingFeedback bool
	showingQuit     bool
	lastCorrect     bool
	lastCue         audio.Cue
	unlocked        []ledger.Achievement

	timeExpired bool
	remaining   time.Duration

	finished bool
	result   sess.SettleResult
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.EscInterceptor = (*PlayScreen)(nil)

// New starts a session screen in the given mode.
func New(svc *ledger.Service, gen *problemgen.Generator, events store.EventRepo, mode sess.Mode, op problemgen.Operation, diff problemgen.Difficulty) *PlayScreen {
	state := sess.NewState(mode, op, diff, uuid.New().String())
	return &PlayScreen{
		svc:       svc,
		gen:       gen,
		events:    events,
		state:     state,
		remaining: sess.TimeAttackDuration,
	}
}

func (p *PlayScreen) Init() tea.Cmd {
	ctx := context.Background()
	if p.events != nil {
		_ = p.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID: p.state.SessionID,
			Action:    "start",
			Mode:      string(p.state.Mode),
		})
	}

	p.nextQuestion()

	cmds := []tea.Cmd{p.input.Init()}
	if p.state.Mode == sess.ModeTimeAttack {
		cmds = append(cmds, tickCmd())
	}
	return tea.Batch(cmds...)
}

// nextQuestion installs a fresh problem and resets the inputs.
func (p *PlayScreen) nextQuestion() {
	problem := sess.NextProblem(p.state, p.gen)
	p.grid = components.NewOptionGrid(problem.Text(), problem.Options, problem.Answer)
	p.input = components.NewTextInput("Type your answer...", true, 3)
}

func (p *PlayScreen) Title() string {
	if p.state.Mode == sess.ModeTimeAttack {
		return "Time Attack"
	}
	return "Play"
}

// InterceptEsc claims esc while the game is running so quitting goes
// through the abandon confirmation.
func (p *PlayScreen) InterceptEsc() bool {
	return !p.finished
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	switch {
	case p.showingQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave game"},
			{Key: "N", Description: "Keep going"},
		}
	case p.showingFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case p.finished:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back to menu"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Pick"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return p.handleTick()
	case feedbackDoneMsg:
		return p.handleFeedbackDone()
	case sessionEndMsg:
		return p.handleSessionEnd()
	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if !p.showingFeedback && !p.showingQuit && !p.finished {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PlayScreen) handleTick() (screen.Screen, tea.Cmd) {
	if p.finished || p.state.Mode != sess.ModeTimeAttack {
		return p, nil
	}

	elapsed := time.Since(p.state.StartTime)
	p.remaining = sess.TimeAttackDuration - elapsed
	if p.remaining <= 0 {
		p.remaining = 0
		p.timeExpired = true
		// Let an open feedback overlay finish; otherwise end now.
		if !p.showingFeedback {
			return p, func() tea.Msg { return sessionEndMsg{} }
		}
		return p, nil
	}

	return p, tickCmd()
}

func (p *PlayScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	p.showingFeedback = false
	p.unlocked = nil

	if p.timeExpired || p.state.Done() {
		return p, func() tea.Msg { return sessionEndMsg{} }
	}

	p.nextQuestion()
	return p, p.input.Init()
}

func (p *PlayScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if p.finished {
		return p, nil
	}
	p.finished = true

	ctx := context.Background()
	p.result = sess.Settle(ctx, p.state, p.svc)
	p.appendEndEvent(ctx, "end")

	return p, nil
}

func (p *PlayScreen) appendEndEvent(ctx context.Context, action string) {
	if p.events == nil {
		return
	}
	_ = p.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:         p.state.SessionID,
		Action:            action,
		Mode:              string(p.state.Mode),
		QuestionsAnswered: p.state.Progress,
		StarsEarned:       p.state.Score,
		DurationSecs:      int(time.Since(p.state.StartTime).Seconds()),
	})
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.finished {
		switch key {
		case "enter", "esc", "q":
			return p, func() tea.Msg { return router.PopToRootMsg{} }
		}
		return p, nil
	}

	if p.showingQuit {
		switch key {
		case "y", "Y":
			// Abandoning forfeits the unsettled score.
			p.appendEndEvent(context.Background(), "abandon")
			return p, func() tea.Msg { return router.PopToRootMsg{} }
		case "n", "N", "esc":
			p.showingQuit = false
		}
		return p, nil
	}

	if p.showingFeedback {
		return p, func() tea.Msg { return feedbackDoneMsg{} }
	}

	switch key {
	case "esc":
		p.showingQuit = true
		return p, nil
	case "enter":
		return p.submit()
	case "up", "down", "k", "j":
		var cmd tea.Cmd
		p.grid, cmd = p.grid.Update(msg)
		return p, cmd
	}

	// Digits go to the typed-answer input.
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// submit resolves the current answer, preferring a typed value over
// the highlighted option.
func (p *PlayScreen) submit() (screen.Screen, tea.Cmd) {
	if p.state.Current == nil {
		return p, nil
	}

	var picked int
	if typed, err := p.input.NumericValue(); err == nil {
		picked = typed
		p.grid.Reveal(-1)
	} else {
		picked = p.grid.Options[p.grid.Selected]
		p.grid.Reveal(p.grid.Selected)
	}

	ctx := context.Background()
	p.recordAnswerEvent(ctx, picked)

	outcome := sess.HandleAnswer(ctx, p.state, p.svc, picked)
	p.lastCorrect = outcome.Correct
	p.lastCue = p.svc.CueFor(outcome.Cue)
	p.unlocked = outcome.Unlocked
	p.showingFeedback = true
	p.input.Submit(outcome.Correct)

	return p, nil
}

func (p *PlayScreen) recordAnswerEvent(ctx context.Context, picked int) {
	if p.events == nil {
		return
	}
	problem := p.state.Current
	_ = p.events.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID:     p.state.SessionID,
		Mode:          string(p.state.Mode),
		Operation:     string(problem.Op),
		Difficulty:    string(p.state.Difficulty),
		QuestionText:  problem.Text(),
		CorrectAnswer: problem.Answer,
		PlayerAnswer:  picked,
		Correct:       picked == problem.Answer,
	})
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
