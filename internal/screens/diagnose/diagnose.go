package diagnose

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/medexpert/internal/diagnosis"
	"github.com/abhisek/medexpert/internal/knowledge"
	"github.com/abhisek/medexpert/internal/router"
	"github.com/abhisek/medexpert/internal/screen"
	"github.com/abhisek/medexpert/internal/screens/history"
	"github.com/abhisek/medexpert/internal/screens/rules"
	"github.com/abhisek/medexpert/internal/ui/components"
	"github.com/abhisek/medexpert/internal/ui/layout"
	"github.com/abhisek/medexpert/internal/ui/theme"
)

const (
	focusInput = iota
	focusButton
)

// diagnosisDoneMsg carries the outcome of a diagnosis cycle.
type diagnosisDoneMsg struct {
	Result *diagnosis.Result
	Err    error
}

// DiagnoseScreen is the main screen: a symptom field and a Diagnose button.
type DiagnoseScreen struct {
	service *diagnosis.Service
	kb      *knowledge.Base
	journal *history.Journal

	input   components.TextInput
	button  components.Button
	dialog  components.Dialog
	focus   int
	pending bool
}

var _ screen.Screen = (*DiagnoseScreen)(nil)
var _ screen.KeyHintProvider = (*DiagnoseScreen)(nil)

// New creates the diagnose screen. Results are appended to journal.
func New(service *diagnosis.Service, kb *knowledge.Base, journal *history.Journal) *DiagnoseScreen {
	s := &DiagnoseScreen{
		service: service,
		kb:      kb,
		journal: journal,
		input:   components.NewTextInput("e.g. cough, fever, congestion", 0),
	}
	s.button = components.NewButton("Diagnose", s.submit)
	return s
}

func (s *DiagnoseScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *DiagnoseScreen) Title() string {
	return "Diagnose"
}

func (s *DiagnoseScreen) KeyHints() []layout.KeyHint {
	if s.dialog.Open() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "OK"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Diagnose"},
		{Key: "Tab", Description: "Focus"},
		{Key: "Ctrl+H", Description: "History"},
		{Key: "Ctrl+R", Description: "Rules"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *DiagnoseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case diagnosisDoneMsg:
		s.pending = false
		s.showOutcome(msg.Result, msg.Err)
		return s, nil

	case components.DialogClosedMsg:
		return s, s.setFocus(focusInput)
	}

	// Dialogs are modal.
	if s.dialog.Open() {
		var cmd tea.Cmd
		s.dialog, cmd = s.dialog.Update(msg)
		return s, cmd
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "shift+tab":
			if s.focus == focusInput {
				return s, s.setFocus(focusButton)
			}
			return s, s.setFocus(focusInput)
		// The result message is delivered to the active screen, so stay
		// on top until the running cycle reports back.
		case "ctrl+h":
			if s.pending {
				return s, nil
			}
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: history.New(s.journal)} }
		case "ctrl+r":
			if s.pending {
				return s, nil
			}
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: rules.New(s.kb)} }
		case "enter":
			if s.focus == focusInput {
				return s, s.submit()
			}
		}
	}

	var cmd tea.Cmd
	if s.focus == focusButton {
		s.button, cmd = s.button.Update(msg)
	} else {
		s.input, cmd = s.input.Update(msg)
	}
	return s, cmd
}

// submit runs one diagnosis cycle on the current input.
func (s *DiagnoseScreen) submit() tea.Cmd {
	if s.pending {
		return nil
	}
	s.pending = true
	text := s.input.Value()
	svc := s.service
	return func() tea.Msg {
		res, err := svc.Diagnose(context.Background(), text)
		return diagnosisDoneMsg{Result: res, Err: err}
	}
}

func (s *DiagnoseScreen) showOutcome(res *diagnosis.Result, err error) {
	switch {
	case errors.Is(err, diagnosis.ErrEmptyInput):
		s.dialog = components.NewDialog(components.DialogWarning, "Input Error", "Please enter symptoms.")
	case err != nil:
		s.dialog = components.NewDialog(components.DialogError, "Error", err.Error())
	default:
		s.journal.Add(res)
		s.dialog = components.NewDialog(components.DialogInfo, "Diagnosis Result", FormatResult(res))
	}
	s.input.Blur()
	s.button.Focused = false
}

func (s *DiagnoseScreen) setFocus(f int) tea.Cmd {
	s.focus = f
	s.button.Focused = f == focusButton
	if f == focusInput {
		return s.input.Focus()
	}
	s.input.Blur()
	return nil
}

func (s *DiagnoseScreen) View(width, height int) string {
	if s.dialog.Open() {
		return s.dialog.View(width, height)
	}

	var b strings.Builder
	b.WriteString(theme.Label.Render("Enter symptoms (comma-separated):"))
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")
	b.WriteString(s.button.View())
	if s.pending {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Diagnosing..."))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// FormatResult renders findings for the result dialog.
func FormatResult(res *diagnosis.Result) string {
	if !res.Found() {
		return "⚠ No diagnosis could be made."
	}
	blocks := make([]string, 0, len(res.Findings))
	for _, f := range res.Findings {
		blocks = append(blocks, "✓ Diagnosis: "+f.Disease+"\n✚ Treatment: "+f.Treatment)
	}
	return strings.Join(blocks, "\n\n")
}
