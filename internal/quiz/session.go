package quiz

import (
	"strings"

	"github.com/abhisek/tensequiz/internal/catalog"
)

// Session is the state of one pass through a shuffled catalog.
//
// Transitions never fail: a call whose precondition does not hold leaves the
// session unchanged. Session is not safe for concurrent use; the UI loop is
// its only writer.
type Session struct {
	catalog catalog.Catalog
	rng     Rand

	sequence     []catalog.Entry
	position     int
	direction    Direction
	input        string
	status       Status
	hintRevealed bool
	completed    bool

	// missed is true once the active word has had a wrong attempt.
	missed bool
	stats  Stats
}

// NewSession starts a run over a shuffled copy of c.
// It returns catalog.ErrEmpty if c has no entries.
func NewSession(c catalog.Catalog, r Rand) (*Session, error) {
	if c.Len() == 0 {
		return nil, catalog.ErrEmpty
	}
	s := &Session{catalog: c, rng: r}
	s.Restart()
	return s, nil
}

// Restart reshuffles the catalog and resets the run. It is always allowed.
func (s *Session) Restart() {
	s.sequence = Shuffle(s.rng, s.catalog.Entries())
	s.position = 0
	s.input = ""
	s.status = StatusPending
	s.hintRevealed = false
	s.completed = false
	s.missed = false
	s.stats = Stats{Words: len(s.sequence)}
	s.direction = RandomDirection(s.rng)
}

// SetInput records the current text entry without checking it.
func (s *Session) SetInput(text string) {
	if s.completed || s.status == StatusCorrect {
		return
	}
	s.input = text
}

// Submit checks rawInput against the expected form of the active word.
// Blank input is ignored. A wrong answer hides any revealed hint.
func (s *Session) Submit(rawInput string) {
	if s.completed || s.status == StatusCorrect {
		return
	}
	if strings.TrimSpace(rawInput) == "" {
		return
	}

	s.input = rawInput
	s.stats.Attempts++

	if CheckAnswer(rawInput, s.ExpectedField()) {
		s.status = StatusCorrect
		s.stats.Answered++
		if !s.missed {
			s.stats.FirstTryCorrect++
		}
		return
	}

	s.status = StatusIncorrect
	s.hintRevealed = false
	s.missed = true
}

// RevealHint shows the hint for the active word after a wrong answer.
func (s *Session) RevealHint() {
	if s.completed || s.status != StatusIncorrect {
		return
	}
	s.hintRevealed = true
}

// Advance moves past a correctly answered word. On the last word it marks
// the run completed and leaves the position where it is.
func (s *Session) Advance() {
	if s.completed || s.status != StatusCorrect {
		return
	}
	if s.position+1 >= len(s.sequence) {
		s.completed = true
		return
	}
	s.position++
	s.input = ""
	s.status = StatusPending
	s.hintRevealed = false
	s.missed = false
	s.direction = RandomDirection(s.rng)
}

// Active returns the word being asked. ok is false once the run is completed.
func (s *Session) Active() (entry catalog.Entry, ok bool) {
	if s.completed {
		return catalog.Entry{}, false
	}
	return s.sequence[s.position], true
}

// PromptField returns the tense field shown to the learner.
func (s *Session) PromptField() string {
	e, ok := s.Active()
	if !ok {
		return ""
	}
	if s.direction == PresentToPast {
		return e.Present
	}
	return e.Past
}

// ExpectedField returns the tense field the learner must produce,
// delimiter and all.
func (s *Session) ExpectedField() string {
	e, ok := s.Active()
	if !ok {
		return ""
	}
	if s.direction == PresentToPast {
		return e.Past
	}
	return e.Present
}

// Hint returns the hint for the active word, or "" unless a hint is revealed.
func (s *Session) Hint() string {
	if !s.HintRevealed() {
		return ""
	}
	return GenerateHint(s.ExpectedField())
}

// Progress returns (position+1)/len, the fraction shown in the progress bar.
func (s *Session) Progress() float64 {
	return float64(s.position+1) / float64(len(s.sequence))
}

func (s *Session) Position() int        { return s.position }
func (s *Session) Len() int             { return len(s.sequence) }
func (s *Session) Direction() Direction { return s.direction }
func (s *Session) Status() Status       { return s.status }
func (s *Session) Input() string        { return s.input }
func (s *Session) Completed() bool      { return s.completed }
func (s *Session) Stats() Stats         { return s.stats }

// HintRevealed reports whether the hint is showing. A correct answer leaves
// the underlying flag alone, but hints only ever show for a wrong answer.
func (s *Session) HintRevealed() bool {
	return s.hintRevealed && s.status == StatusIncorrect
}

// Sequence returns a copy of the shuffled run order.
func (s *Session) Sequence() []catalog.Entry {
	cp := make([]catalog.Entry, len(s.sequence))
	copy(cp, s.sequence)
	return cp
}
