package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tensequiz/internal/ui/theme"
)

// MenuItem is a single selectable entry.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a vertical menu. Arrows move the selection and wrap around;
// number keys 1-9 trigger an item directly.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first item selected.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		m.Selected = (m.Selected - 1 + len(m.Items)) % len(m.Items)
		return m, nil
	case "down", "j":
		m.Selected = (m.Selected + 1) % len(m.Items)
		return m, nil
	case "enter":
		return m, m.activate(m.Selected)
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Items) {
		m.Selected = n - 1
		return m, m.activate(m.Selected)
	}
	return m, nil
}

func (m Menu) activate(i int) tea.Cmd {
	if item := m.Items[i]; item.Action != nil {
		return item.Action()
	}
	return nil
}

// View renders each item as a fixed-width button.
func (m Menu) View(buttonWidth int) string {
	selected := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Accent).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent)

	normal := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	buttons := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		if i == m.Selected {
			buttons = append(buttons, selected.Render("▸ "+item.Label))
		} else {
			buttons = append(buttons, normal.Render(item.Label))
		}
	}
	return strings.Join(buttons, "\n")
}
