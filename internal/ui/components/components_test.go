package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestDialogDismiss(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{
		{Code: tea.KeyEnter},
		{Code: tea.KeyEscape},
	} {
		d := NewDialog(DialogWarning, "Input Error", "Please enter symptoms.")
		if !d.Open() {
			t.Fatal("new dialog should be open")
		}

		d, cmd := d.Update(key)
		if d.Open() {
			t.Errorf("%s should dismiss the dialog", key.String())
		}
		if cmd == nil {
			t.Fatalf("%s should emit a command", key.String())
		}
		if _, ok := cmd().(DialogClosedMsg); !ok {
			t.Errorf("expected DialogClosedMsg after %s", key.String())
		}
	}
}

func TestDialogOnlyEnterOrEscDismiss(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{
		{Code: tea.KeySpace, Text: " "},
		{Code: 'q', Text: "q"},
		{Code: tea.KeyTab},
	} {
		d := NewDialog(DialogWarning, "Input Error", "Please enter symptoms.")
		d, cmd := d.Update(key)
		if !d.Open() {
			t.Errorf("%s should not dismiss the dialog", key.String())
		}
		if cmd != nil {
			t.Errorf("%s should not produce a command", key.String())
		}
	}
}

func TestDialogView(t *testing.T) {
	d := NewDialog(DialogInfo, "Diagnosis Result", "Diagnosis: Influenza")
	view := d.View(80, 20)
	if !strings.Contains(view, "Diagnosis Result") || !strings.Contains(view, "Diagnosis: Influenza") {
		t.Errorf("dialog view missing title or body:\n%s", view)
	}

	d, _ = d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := d.View(80, 20); got != "" {
		t.Errorf("closed dialog should render nothing, got %q", got)
	}
}

func TestButtonPressOnlyWhenFocused(t *testing.T) {
	pressed := 0
	b := NewButton("Diagnose", func() tea.Cmd {
		pressed++
		return nil
	})

	b, _ = b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed != 0 {
		t.Errorf("unfocused button pressed %d times", pressed)
	}

	b.Focused = true
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed != 1 {
		t.Errorf("expected 1 press, got %d", pressed)
	}
}

func TestTextInputValue(t *testing.T) {
	ti := NewTextInput("cough, fever", 0)
	if !ti.Focused() {
		t.Error("new input should be focused")
	}

	ti.SetValue("cough, fever")
	if ti.Value() != "cough, fever" {
		t.Errorf("value = %q", ti.Value())
	}

	ti.Blur()
	if ti.Focused() {
		t.Error("input should be blurred")
	}
}
