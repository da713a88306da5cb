package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/tensequiz/internal/catalog"
	"github.com/abhisek/tensequiz/internal/quiz"
	"github.com/abhisek/tensequiz/internal/router"
	"github.com/abhisek/tensequiz/internal/screen"
	"github.com/abhisek/tensequiz/internal/screens/home"
	quizscreen "github.com/abhisek/tensequiz/internal/screens/quiz"
	"github.com/abhisek/tensequiz/internal/screens/welcome"
	"github.com/abhisek/tensequiz/internal/screens/words"
	"github.com/abhisek/tensequiz/internal/speech"
	"github.com/abhisek/tensequiz/internal/ui/layout"
)

// Options holds the dependencies of a run.
type Options struct {
	Catalog   catalog.Catalog
	Rand      quiz.Rand
	Announcer speech.Announcer
	Logger    zerolog.Logger

	// SkipWelcome starts on the home screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel wires the screens for opts. It fails only when the catalog
// is empty.
func newAppModel(opts Options) (AppModel, error) {
	if opts.Catalog.Len() == 0 {
		return AppModel{}, catalog.ErrEmpty
	}
	if opts.Rand == nil {
		opts.Rand = quiz.NewRandFromTime()
	}
	if opts.Announcer == nil {
		opts.Announcer = speech.Nop{}
	}

	newQuiz := func() screen.Screen {
		// Cannot fail: the catalog was checked above.
		s, _ := quiz.NewSession(opts.Catalog, opts.Rand)
		opts.Logger.Info().
			Str("event", "start").
			Int("words", s.Len()).
			Msg("quiz started")
		return quizscreen.New(s, opts.Announcer, opts.Logger)
	}
	newWords := func() screen.Screen {
		return words.New(opts.Catalog, opts.Announcer)
	}
	newHome := func() screen.Screen {
		return home.New(opts.Catalog, newQuiz, newWords)
	}

	var first screen.Screen
	if opts.SkipWelcome {
		first = newHome()
	} else {
		first = welcome.New(newHome)
	}
	return AppModel{router: router.New(first)}, nil
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		if hints := kp.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return fmt.Errorf("starting quiz: %w", err)
	}

	p := tea.NewProgram(model)
	_, err = p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
