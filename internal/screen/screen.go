package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathgarden/internal/ui/layout"
)

// Screen is one navigable view in the application.
type Screen interface {
	// Init returns the command to run when the screen first appears.
	Init() tea.Cmd

	// Update handles a message and returns the next screen state.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen body (the frame adds header and footer).
	View(width, height int) string

	// Title is the screen name shown in the header.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscInterceptor lets a screen claim the esc key while it has
// unfinished business (an active game needs an abandon confirmation
// instead of an immediate pop).
type EscInterceptor interface {
	InterceptEsc() bool
}
