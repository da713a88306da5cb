package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tensequiz/internal/router"
	"github.com/abhisek/tensequiz/internal/screen"
	"github.com/abhisek/tensequiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	cardEnd      = 500 * time.Millisecond
	bannerEnd    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// Tagline is shown under the banner.
const Tagline = "6학년 영어 단어 (과거형) 연습"

// flashcard flips between the two tenses while the splash plays.
var flashcardFrames = [][2]string{
	{"go", "went"},
	{"eat", "ate"},
	{"see", "saw"},
	{"make", "made"},
}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before handing over to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, w.renderFlashcard())

	if w.elapsed >= bannerEnd {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().
				Foreground(theme.Text).
				Bold(true).
				Render(Tagline),
			"",
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Render("press any key to continue"),
		)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderFlashcard shows a present-tense word, then flips it to the past
// tense once the card phase is over.
func (w *WelcomeScreen) renderFlashcard() string {
	frame := flashcardFrames[(w.tickCount/5)%len(flashcardFrames)]

	word := frame[0]
	style := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	if w.elapsed >= cardEnd && (w.tickCount/5)%2 == 1 {
		word = frame[1]
		style = style.Foreground(theme.Accent)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(18).
		Align(lipgloss.Center).
		Padding(1, 0).
		Render(style.Render(word))
}
