package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tensequiz/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with quiz styling. A locked input
// ignores keystrokes and shows a result mark.
type TextInput struct {
	Model    textinput.Model
	MaxWidth int
	locked   bool
	marked   bool
	correct  bool
}

// NewTextInput creates a new focused, styled text input.
func NewTextInput(placeholder string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:    ti,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Locked inputs drop key presses.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.locked {
		if _, ok := msg.(tea.KeyMsg); ok {
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.marked {
		if t.correct {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Mark shows a result mark next to the input. A correct mark also locks it.
func (t *TextInput) Mark(correct bool) {
	t.marked = true
	t.correct = correct
	t.locked = correct
	if correct {
		t.Model.Blur()
	}
}

// Locked reports whether the input ignores key presses.
func (t TextInput) Locked() bool {
	return t.locked
}
