package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/medexpert/internal/diagnosis"
	"github.com/abhisek/medexpert/internal/knowledge"
	"github.com/abhisek/medexpert/internal/router"
	"github.com/abhisek/medexpert/internal/screens/rules"
)

func newTestModel() AppModel {
	kb := knowledge.Default()
	return newAppModel(Options{Knowledge: kb, Service: diagnosis.NewService(kb, nil)})
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestEscPopsPushedScreen(t *testing.T) {
	m := newTestModel()
	m.router.Push(rules.New(knowledge.Default()))
	require.Equal(t, 2, m.router.Depth())

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	msg := cmd()
	assert.IsType(t, router.PopScreenMsg{}, msg)

	m.Update(msg)
	assert.Equal(t, 1, m.router.Depth())
}

func TestWindowSizeTracked(t *testing.T) {
	updated, _ := newTestModel().Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m := updated.(AppModel)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 30, m.height)
	assert.Equal(t, 15, m.rules)
}

func TestRootScreenContent(t *testing.T) {
	m := newTestModel()
	content := m.router.View(100, 24)
	assert.Contains(t, content, "Enter symptoms (comma-separated):")
	assert.Contains(t, content, "Diagnose")
}

func TestFooterHintsFromActiveScreen(t *testing.T) {
	m := newTestModel()
	hints := m.footerHints(m.router.Active())
	require.NotEmpty(t, hints)
	assert.Equal(t, "Diagnose", hints[0].Description)
}

func typeText(m AppModel, text string) {
	for _, r := range text {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestNavigationWhileDiagnosingKeepsResult(t *testing.T) {
	m := newTestModel()
	typeText(m, "cough, fever, congestion")

	_, pending := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pending == nil {
		t.Fatal("expected Enter to start a diagnosis")
	}

	// History is not opened while the cycle is still running.
	if _, cmd := m.Update(tea.KeyPressMsg{Code: 'h', Mod: tea.ModCtrl}); cmd != nil {
		m.Update(cmd())
	}
	if m.router.Depth() != 1 {
		t.Fatalf("expected depth 1 while diagnosing, got %d", m.router.Depth())
	}

	m.Update(pending())
	view := m.router.View(100, 30)
	if !strings.Contains(view, "Diagnosis Result") || !strings.Contains(view, "Influenza") {
		t.Fatalf("expected result dialog, got:\n%s", view)
	}

	// Dismiss, press Esc, then diagnose again.
	_, closeCmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if closeCmd == nil {
		t.Fatal("expected Enter to dismiss the dialog")
	}
	m.Update(closeCmd())
	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})

	if strings.Contains(m.router.View(100, 30), "Diagnosing...") {
		t.Error("screen should not be stuck diagnosing")
	}

	_, again := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if again == nil {
		t.Fatal("second Enter should start another diagnosis")
	}
	m.Update(again())
	if !strings.Contains(m.router.View(100, 30), "Diagnosis Result") {
		t.Error("expected a second result dialog")
	}

	// The history screen now lists the run.
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'h', Mod: tea.ModCtrl})
	if cmd != nil {
		t.Fatal("history should not open while the result dialog is up")
	}
}

func TestHistoryOpensAfterDiagnosis(t *testing.T) {
	m := newTestModel()
	typeText(m, "wheezing, shortness of breath, chest tightness")

	_, pending := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m.Update(pending())
	_, closeCmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m.Update(closeCmd())

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'h', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected Ctrl+H to open history")
	}
	m.Update(cmd())
	if m.router.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", m.router.Depth())
	}
	if view := m.router.View(120, 30); !strings.Contains(view, "Asthma") {
		t.Errorf("history should list Asthma, got:\n%s", view)
	}
}
