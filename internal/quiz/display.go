package quiz

import "fmt"

// Fixed bilingual labels.
const (
	LabelPresent       = "Present Tense (현재형)"
	LabelPast          = "Past Tense (과거형)"
	PlaceholderPast    = "Type the past tense..."
	PlaceholderPresent = "Type the present tense..."
)

// Display is the read-only projection of a Session that screens render.
type Display struct {
	Completed bool

	PromptLabel string
	PromptWord  string
	Translation string
	AnswerLabel string
	Placeholder string

	// Present and Past are shown together once the word is answered.
	Present string
	Past    string

	Input  string
	Status Status
	Hint   string // Empty unless a hint is showing

	Progress     float64
	ProgressText string

	Stats Stats
}

// Display builds the projection for the current state.
func (s *Session) Display() Display {
	d := Display{
		Completed: s.completed,
		Input:     s.input,
		Status:    s.status,
		Stats:     s.stats,
	}
	if s.completed {
		return d
	}

	e := s.sequence[s.position]
	d.PromptWord = s.PromptField()
	d.Translation = e.Translation
	d.Present = e.Present
	d.Past = e.Past
	d.Hint = s.Hint()
	d.Progress = s.Progress()
	d.ProgressText = fmt.Sprintf("Word %d / %d", s.position+1, len(s.sequence))

	if s.direction == PresentToPast {
		d.PromptLabel = LabelPresent
		d.AnswerLabel = LabelPast
		d.Placeholder = PlaceholderPast
	} else {
		d.PromptLabel = LabelPast
		d.AnswerLabel = LabelPresent
		d.Placeholder = PlaceholderPresent
	}
	return d
}
