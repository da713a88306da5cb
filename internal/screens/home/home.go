package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tensequiz/internal/catalog"
	"github.com/abhisek/tensequiz/internal/router"
	"github.com/abhisek/tensequiz/internal/screen"
	"github.com/abhisek/tensequiz/internal/ui/components"
	"github.com/abhisek/tensequiz/internal/ui/layout"
)

// Menu labels, in display order.
const (
	LabelStart = "START QUIZ"
	LabelWords = "WORD LIST"
	LabelExit  = "EXIT"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu    components.Menu
	catalog catalog.Catalog
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. newQuiz and newWords build the screens pushed
// by the first two menu entries.
func New(c catalog.Catalog, newQuiz, newWords func() screen.Screen) *HomeScreen {
	items := []components.MenuItem{
		{Label: LabelStart, Action: push(newQuiz)},
		{Label: LabelWords, Action: push(newWords)},
		{Label: LabelExit, Action: func() tea.Cmd { return tea.Quit }},
	}
	return &HomeScreen{
		menu:    components.NewMenu(items),
		catalog: c,
	}
}

func push(factory func() screen.Screen) func() tea.Cmd {
	return func() tea.Cmd {
		s := factory()
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: s}
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "1-3", Description: "Shortcut"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer
	termHeight := height + layout.HeaderHeight + layout.FooterHeight
	compact := termHeight < 28 || width < 80

	cw := components.ContentWidth(width)

	var present, past string
	if entries := h.catalog.Entries(); len(entries) > 0 {
		present, past = entries[0].Present, entries[0].Past
	}

	sections := []string{
		renderTitle(cw, compact),
		renderWordsBar(h.catalog.Len(), present, past, cw),
		lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(h.menu.View(buttonWidth)),
	}

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return components.CabinetFrame(strings.Join(sections, sep), width, height)
}
