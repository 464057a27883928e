package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/medexpert/internal/diagnosis"
	"github.com/abhisek/medexpert/internal/router"
	"github.com/abhisek/medexpert/internal/screen"
	"github.com/abhisek/medexpert/internal/ui/layout"
	"github.com/abhisek/medexpert/internal/ui/theme"
)

// HistoryScreen lists the diagnoses made during this run.
type HistoryScreen struct {
	entries  []*diagnosis.Result
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen over a snapshot of journal.
func New(journal *Journal) *HistoryScreen {
	return &HistoryScreen{
		entries:  journal.Recent(),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No diagnoses yet this session.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, res := range s.entries {
		outcome := "Not found"
		if res.Found() {
			outcome = strings.Join(res.Diseases(), ", ")
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  →  %s",
			prefix, res.At.Format("15:04:05"), strings.Join(res.Symptoms, ", "), outcome)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := lipgloss.NewStyle().Foreground(theme.TextDim)
			if !res.Found() {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					detail.Italic(true).Render("    No diagnosis could be made.")))
				b.WriteString("\n")
			}
			for _, f := range res.Findings {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					detail.Render(fmt.Sprintf("    %s: %s", f.Disease, f.Treatment))))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
