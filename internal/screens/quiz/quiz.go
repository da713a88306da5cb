package quiz

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	qz "github.com/abhisek/tensequiz/internal/quiz"
	"github.com/abhisek/tensequiz/internal/screen"
	"github.com/abhisek/tensequiz/internal/speech"
	"github.com/abhisek/tensequiz/internal/ui/components"
	"github.com/abhisek/tensequiz/internal/ui/layout"
)

// SpeechUnavailableNotice is shown when pronunciation cannot be played.
const SpeechUnavailableNotice = "Sorry, text-to-speech is not available."

const inputWidth = 32

// QuizScreen runs one quiz session.
type QuizScreen struct {
	session   *qz.Session
	announcer speech.Announcer
	log       zerolog.Logger
	input     components.TextInput
	notice    string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over s. A nil announcer disables speech.
func New(s *qz.Session, announcer speech.Announcer, log zerolog.Logger) *QuizScreen {
	if announcer == nil {
		announcer = speech.Nop{}
	}
	q := &QuizScreen{
		session:   s,
		announcer: announcer,
		log:       log,
	}
	q.resetInput()
	return q
}

func (q *QuizScreen) resetInput() {
	q.input = components.NewTextInput(q.session.Display().Placeholder, inputWidth)
}

func (q *QuizScreen) Init() tea.Cmd {
	q.logWord("word")
	return q.input.Init()
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

// Status returns the progress text for the header.
func (q *QuizScreen) Status() string {
	if q.session.Completed() {
		return "Complete"
	}
	return q.session.Display().ProgressText
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.session.Completed() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start over"},
			{Key: "Esc", Description: "Home"},
		}
	}
	switch q.session.Status() {
	case qz.StatusCorrect:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next word"},
			{Key: "1", Description: "Say present"},
			{Key: "2", Description: "Say past"},
			{Key: "Esc", Description: "Home"},
		}
	case qz.StatusIncorrect:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Check"},
			{Key: "Tab", Description: "Show hint"},
			{Key: "Ctrl+R", Description: "Restart"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "Ctrl+R", Description: "Restart"},
		{Key: "Esc", Description: "Home"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case speechResultMsg:
		return q.handleSpeechResult(msg)
	case tea.KeyPressMsg:
		return q.handleKey(msg)
	}

	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	return q, cmd
}

func (q *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	q.notice = ""

	switch msg.String() {
	case "ctrl+r":
		return q.restart()
	case "enter":
		return q.enter()
	case "tab":
		q.session.RevealHint()
		if q.session.HintRevealed() {
			q.log.Debug().Str("event", "hint").Msg("hint revealed")
		}
		return q, nil
	case "1", "2":
		if q.session.Status() == qz.StatusCorrect && !q.session.Completed() {
			return q, q.speak(msg.String() == "1")
		}
	}

	if q.session.Completed() {
		return q, nil
	}

	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	q.session.SetInput(q.input.Value())
	return q, cmd
}

func (q *QuizScreen) enter() (screen.Screen, tea.Cmd) {
	if q.session.Completed() {
		return q.restart()
	}

	if q.session.Status() == qz.StatusCorrect {
		q.session.Advance()
		if q.session.Completed() {
			st := q.session.Stats()
			q.log.Info().
				Str("event", "complete").
				Int("words", st.Words).
				Int("attempts", st.Attempts).
				Int("first_try_correct", st.FirstTryCorrect).
				Msg("quiz completed")
			return q, nil
		}
		q.resetInput()
		q.logWord("advance")
		return q, q.input.Init()
	}

	answer := q.input.Value()
	before := q.session.Stats().Attempts
	q.session.Submit(answer)
	if q.session.Stats().Attempts == before {
		return q, nil
	}

	correct := q.session.Status() == qz.StatusCorrect
	q.input.Mark(correct)

	entry, _ := q.session.Active()
	q.log.Info().
		Str("event", "submit").
		Int("word_id", entry.ID).
		Stringer("direction", q.session.Direction()).
		Bool("correct", correct).
		Msg("answer checked")
	q.log.Debug().Str("event", "submit").Str("input", answer).Msg("raw answer")
	return q, nil
}

func (q *QuizScreen) restart() (screen.Screen, tea.Cmd) {
	q.session.Restart()
	q.notice = ""
	q.resetInput()
	q.log.Info().Str("event", "restart").Int("words", q.session.Len()).Msg("quiz restarted")
	q.logWord("word")
	return q, q.input.Init()
}

// speak asks the announcer to pronounce one tense of the active word.
func (q *QuizScreen) speak(present bool) tea.Cmd {
	d := q.session.Display()
	text := d.Past
	if present {
		text = d.Present
	}
	a := q.announcer
	return func() tea.Msg {
		return speechResultMsg{Text: text, Err: a.Speak(context.Background(), text)}
	}
}

func (q *QuizScreen) handleSpeechResult(msg speechResultMsg) (screen.Screen, tea.Cmd) {
	if msg.Err == nil {
		return q, nil
	}
	q.notice = SpeechUnavailableNotice
	lvl := zerolog.WarnLevel
	if !errors.Is(msg.Err, speech.ErrCapabilityUnavailable) {
		lvl = zerolog.ErrorLevel
	}
	q.log.WithLevel(lvl).
		Err(msg.Err).
		Str("event", "speech").
		Str("text", msg.Text).
		Msg("speech failed")
	return q, nil
}

func (q *QuizScreen) logWord(event string) {
	entry, ok := q.session.Active()
	if !ok {
		return
	}
	q.log.Debug().
		Str("event", event).
		Int("word_id", entry.ID).
		Int("position", q.session.Position()).
		Stringer("direction", q.session.Direction()).
		Msg("word shown")
}
