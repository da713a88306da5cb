package speech

import (
	"context"
	"errors"
	"strings"

	"github.com/abhisek/tensequiz/internal/catalog"
)

// ErrCapabilityUnavailable is returned when no speech engine can be used.
var ErrCapabilityUnavailable = errors.New("text-to-speech is not available")

// Announcer speaks text aloud. Speak starts playback and returns without
// waiting for it to finish; a new request supersedes any in-flight one.
type Announcer interface {
	Speak(ctx context.Context, text string) error
}

// Split breaks a tense field into separate utterances, one per variant.
// Blank parts are dropped.
func Split(text string) []string {
	var out []string
	for _, part := range strings.Split(text, catalog.Delimiter) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Nop is an Announcer for platforms without speech, or when speech is
// disabled.
type Nop struct{}

func (Nop) Speak(context.Context, string) error {
	return ErrCapabilityUnavailable
}
