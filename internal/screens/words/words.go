package words

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tensequiz/internal/catalog"
	"github.com/abhisek/tensequiz/internal/screen"
	"github.com/abhisek/tensequiz/internal/speech"
	"github.com/abhisek/tensequiz/internal/ui/layout"
	"github.com/abhisek/tensequiz/internal/ui/theme"
)

type spokenMsg struct {
	Err error
}

// WordsScreen lists the catalog. Enter pronounces the selected word in
// both tenses.
type WordsScreen struct {
	entries   []catalog.Entry
	announcer speech.Announcer
	selected  int
	offset    int
	notice    string
}

var _ screen.Screen = (*WordsScreen)(nil)
var _ screen.KeyHintProvider = (*WordsScreen)(nil)

// New creates a WordsScreen. A nil announcer disables pronunciation.
func New(c catalog.Catalog, announcer speech.Announcer) *WordsScreen {
	if announcer == nil {
		announcer = speech.Nop{}
	}
	return &WordsScreen{
		entries:   c.Entries(),
		announcer: announcer,
	}
}

func (s *WordsScreen) Init() tea.Cmd {
	return nil
}

func (s *WordsScreen) Title() string {
	return "Word List"
}

func (s *WordsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Pronounce"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *WordsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spokenMsg:
		if msg.Err != nil {
			s.notice = "Sorry, text-to-speech is not available."
		}
		return s, nil

	case tea.KeyMsg:
		s.notice = ""
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
		case "home", "g":
			s.selected = 0
		case "end", "G":
			s.selected = len(s.entries) - 1
		case "enter":
			return s, s.pronounce()
		}
	}
	return s, nil
}

func (s *WordsScreen) pronounce() tea.Cmd {
	if len(s.entries) == 0 {
		return nil
	}
	e := s.entries[s.selected]
	text := e.Present + catalog.Delimiter + e.Past
	a := s.announcer
	return func() tea.Msg {
		return spokenMsg{Err: a.Speak(context.Background(), text)}
	}
}

func (s *WordsScreen) View(width, height int) string {
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No words loaded.")
	}

	// Header row, blank line, rows, blank line, notice.
	rows := height - 4
	if rows < 1 {
		rows = 1
	}
	s.scrollTo(rows)

	headStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)
	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		headStyle.Render(formatRow("  ", "#", "Present", "Past", "Meaning"))))
	b.WriteString("\n\n")

	end := min(s.offset+rows, len(s.entries))
	for i := s.offset; i < end; i++ {
		e := s.entries[i]
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		line := formatRow(prefix, fmt.Sprintf("%d", e.ID), e.Present, e.Past, e.Translation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Italic(true).Render(s.notice)))
	}
	return b.String()
}

// scrollTo keeps the selected row inside the visible window.
func (s *WordsScreen) scrollTo(rows int) {
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+rows {
		s.offset = s.selected - rows + 1
	}
}

func formatRow(prefix, id, present, past, meaning string) string {
	return fmt.Sprintf("%s%-3s %-12s %-12s %s", prefix, id, present, past, meaning)
}
