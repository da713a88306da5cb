package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

type actionMsg string

func testMenu() Menu {
	return NewMenu([]MenuItem{
		{Label: "START", Action: func() tea.Cmd { return func() tea.Msg { return actionMsg("start") } }},
		{Label: "WORDS", Action: func() tea.Cmd { return func() tea.Msg { return actionMsg("words") } }},
		{Label: "EXIT"},
	})
}

func TestMenu_NavigationWraps(t *testing.T) {
	m := testMenu()

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 2 {
		t.Errorf("Selected after up = %d, want 2", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 0 {
		t.Errorf("Selected after down = %d, want 0", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command from enter")
	}
	if got := cmd(); got != actionMsg("words") {
		t.Errorf("action = %v, want words", got)
	}
}

func TestMenu_NumberShortcut(t *testing.T) {
	m := testMenu()
	m, cmd := m.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	if cmd == nil || cmd() != actionMsg("start") {
		t.Error("expected '1' to trigger START")
	}

	m, cmd = m.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2", m.Selected)
	}
	if cmd != nil {
		t.Error("item without action should return nil command")
	}

	_, cmd = m.Update(tea.KeyPressMsg{Code: '9', Text: "9"})
	if cmd != nil {
		t.Error("out of range shortcut should be ignored")
	}
}

func TestMenu_View(t *testing.T) {
	v := testMenu().View(20)
	for _, label := range []string{"START", "WORDS", "EXIT", "▸"} {
		if !strings.Contains(v, label) {
			t.Errorf("menu view missing %q", label)
		}
	}
}

func TestTextInput_MarkCorrectLocks(t *testing.T) {
	ti := NewTextInput("Type the past tense...", 40)
	ti.Model.SetValue("went")

	ti.Mark(true)
	if !ti.Locked() {
		t.Fatal("expected input to be locked after a correct mark")
	}

	ti, _ = ti.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if ti.Value() != "went" {
		t.Errorf("Value = %q, want %q", ti.Value(), "went")
	}
	if !strings.Contains(ti.View(), "✓") {
		t.Error("expected check mark in view")
	}
}

func TestTextInput_MarkIncorrectStaysEditable(t *testing.T) {
	ti := NewTextInput("", 40)
	ti.Mark(false)
	if ti.Locked() {
		t.Error("incorrect mark should not lock the input")
	}
	if !strings.Contains(ti.View(), "✗") {
		t.Error("expected cross mark in view")
	}
}

func TestProgressBar_Clamps(t *testing.T) {
	for _, pct := range []float64{-1, 0, 0.5, 1, 2} {
		v := NewProgressBar("", pct, true, 30).View()
		if v == "" {
			t.Errorf("empty view for percent %v", pct)
		}
	}
}

func TestButton_View(t *testing.T) {
	b := NewButton("Next Word", "Enter", true)
	v := b.View()
	if !strings.Contains(v, "Next Word") || !strings.Contains(v, "[Enter]") {
		t.Errorf("unexpected button view %q", v)
	}
}
