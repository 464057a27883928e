package rules

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/medexpert/internal/knowledge"
	"github.com/abhisek/medexpert/internal/router"
	"github.com/abhisek/medexpert/internal/screen"
	"github.com/abhisek/medexpert/internal/ui/layout"
	"github.com/abhisek/medexpert/internal/ui/theme"
)

// RulesScreen browses the loaded knowledge base.
type RulesScreen struct {
	entries      []knowledge.Entry
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*RulesScreen)(nil)
var _ screen.KeyHintProvider = (*RulesScreen)(nil)

// New creates a RulesScreen over kb.
func New(kb *knowledge.Base) *RulesScreen {
	return &RulesScreen{entries: kb.Entries()}
}

func (s *RulesScreen) Init() tea.Cmd {
	return nil
}

func (s *RulesScreen) Title() string {
	return "Knowledge Base"
}

// KeyHints returns the key binding hints for the footer.
func (s *RulesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *RulesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.entries)-1 {
				s.cursor++
			}
		case "home", "g":
			s.cursor = 0
		case "end", "G":
			s.cursor = len(s.entries) - 1
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *RulesScreen) View(width, height int) string {
	if len(s.entries) == 0 {
		return ""
	}

	// The selected entry takes two lines (rule + treatment).
	s.adjustScroll(height - 1)

	nameWidth := 20
	if layout.IsCompactWidth(width) {
		nameWidth = 16
	}

	var lines []string
	for i := s.scrollOffset; i < len(s.entries) && len(lines) < height; i++ {
		e := s.entries[i]
		row := "  " + fitWidth(e.Disease, nameWidth) + "  " + strings.Join(e.Symptoms, " + ")

		if i == s.cursor {
			lines = append(lines, theme.Selected.Render("▸"+row[1:]))
			lines = append(lines, theme.Hint.Render(fmt.Sprintf("    %*s%s", nameWidth, "", e.Treatment)))
			continue
		}
		lines = append(lines, theme.Unselected.Render(row))
	}

	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

// fitWidth truncates or pads s to exactly width terminal cells.
func fitWidth(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// adjustScroll keeps the cursor inside a viewport of height rows.
func (s *RulesScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}
