package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tensequiz/internal/ui/theme"
)

// Button is a styled, keyboard-labelled action.
type Button struct {
	Label  string
	Key    string // Shortcut shown after the label, e.g. "Enter"
	Active bool
	Style  lipgloss.Style
}

// NewButton creates a new button using the primary style.
func NewButton(label, key string, active bool) Button {
	return Button{
		Label:  label,
		Key:    key,
		Active: active,
		Style:  theme.ButtonActive,
	}
}

// View renders the button.
func (b Button) View() string {
	label := "▸ " + b.Label
	if b.Key != "" {
		label += " [" + b.Key + "]"
	}
	if b.Active {
		return b.Style.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
