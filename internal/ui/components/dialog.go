package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/medexpert/internal/ui/theme"
)

// DialogKind selects the styling of a dialog.
type DialogKind int

const (
	DialogInfo DialogKind = iota
	DialogWarning
	DialogError
)

// DialogClosedMsg is emitted when a dialog is dismissed.
type DialogClosedMsg struct{}

// Dialog is a modal message box. While open it consumes all key input;
// Enter or Esc dismisses it.
type Dialog struct {
	Kind  DialogKind
	Title string
	Body  string
	open  bool
}

// NewDialog creates an open dialog.
func NewDialog(kind DialogKind, title, body string) Dialog {
	return Dialog{Kind: kind, Title: title, Body: body, open: true}
}

// Open reports whether the dialog is showing.
func (d Dialog) Open() bool {
	return d.open
}

// Update handles key events while the dialog is open.
func (d Dialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.open {
		return d, nil
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			d.open = false
			return d, func() tea.Msg { return DialogClosedMsg{} }
		}
	}
	return d, nil
}

// View renders the dialog centered in width x height.
func (d Dialog) View(width, height int) string {
	if !d.open {
		return ""
	}

	box := theme.DialogInfo
	titleColor := theme.Primary
	switch d.Kind {
	case DialogWarning:
		box = theme.DialogWarning
		titleColor = theme.Warning
	case DialogError:
		box = theme.DialogError
		titleColor = theme.Error
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(titleColor).Bold(true).Render(d.Title))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(d.Body))
	b.WriteString("\n\n")
	b.WriteString(theme.ButtonActive.Render(" OK "))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box.Render(b.String()))
}
