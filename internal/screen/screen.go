package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/medexpert/internal/ui/layout"
)

// Screen is a full-height view managed by the router.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content between header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens that supply their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
