package quiz

// Direction determines which tense is shown and which is asked for.
type Direction int

const (
	PresentToPast Direction = iota // Show present, ask for past
	PastToPresent                  // Show past, ask for present
)

func (d Direction) String() string {
	switch d {
	case PresentToPast:
		return "present-to-past"
	case PastToPresent:
		return "past-to-present"
	default:
		return "unknown"
	}
}

// Status is the result of the learner's attempts on the active word.
type Status int

const (
	StatusPending   Status = iota // No submission yet
	StatusCorrect                 // Answered correctly; input is locked
	StatusIncorrect               // Last submission was wrong
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusCorrect:
		return "correct"
	case StatusIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// Stats summarizes a run for the completion screen.
type Stats struct {
	Words           int // Entries in the run
	Answered        int // Words answered correctly so far
	Attempts        int // Non-empty submissions
	FirstTryCorrect int // Words answered correctly with no wrong attempt
}
