package speech

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const (
	// DefaultVoice is the fixed locale every utterance is spoken in.
	DefaultVoice = "en-US"

	// DefaultRate is the playback rate relative to the engine default.
	DefaultRate = 0.9

	// engineWPM is the default words-per-minute of espeak and say.
	engineWPM = 175
)

// candidates are tried in order when no command is configured.
var candidates = []string{"espeak-ng", "espeak", "say"}

// Runner executes one utterance. It must return when ctx is cancelled.
type Runner func(ctx context.Context, name string, args ...string) error

func execRunner(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// Options configures a CommandAnnouncer.
type Options struct {
	Command string  // Engine binary; empty means auto-detect
	Voice   string  // Locale tag, e.g. "en-US"
	Rate    float64 // Relative rate, e.g. 0.9
}

// CommandAnnouncer speaks through an external TTS program such as espeak-ng
// or macOS say.
type CommandAnnouncer struct {
	path  string
	voice string
	rate  float64
	run   Runner
	log   zerolog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Option customizes a CommandAnnouncer.
type Option func(*CommandAnnouncer)

// WithRunner replaces process execution, mainly for tests.
func WithRunner(r Runner) Option {
	return func(a *CommandAnnouncer) { a.run = r }
}

// WithLogger sets the logger used for playback failures.
func WithLogger(l zerolog.Logger) Option {
	return func(a *CommandAnnouncer) { a.log = l }
}

// NewCommandAnnouncer resolves a speech engine. It returns
// ErrCapabilityUnavailable when none is installed.
func NewCommandAnnouncer(opts Options, options ...Option) (*CommandAnnouncer, error) {
	path, err := resolve(opts.Command)
	if err != nil {
		return nil, err
	}

	a := &CommandAnnouncer{
		path:  path,
		voice: opts.Voice,
		rate:  opts.Rate,
		run:   execRunner,
		log:   zerolog.Nop(),
	}
	if a.voice == "" {
		a.voice = DefaultVoice
	}
	if a.rate <= 0 {
		a.rate = DefaultRate
	}
	for _, o := range options {
		o(a)
	}
	return a, nil
}

func resolve(command string) (string, error) {
	if command != "" {
		path, err := exec.LookPath(command)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrCapabilityUnavailable, err)
		}
		return path, nil
	}
	for _, c := range candidates {
		if path, err := exec.LookPath(c); err == nil {
			return path, nil
		}
	}
	return "", ErrCapabilityUnavailable
}

// Speak cancels any in-flight playback and speaks each variant of text in
// turn in the background.
func (a *CommandAnnouncer) Speak(ctx context.Context, text string) error {
	parts := Split(text)
	if len(parts) == 0 {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopLocked()

	playCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	a.cancel = cancel
	a.done = done

	go func() {
		defer close(done)
		defer cancel()
		for _, p := range parts {
			if playCtx.Err() != nil {
				return
			}
			if err := a.run(playCtx, a.path, a.args(p)...); err != nil && playCtx.Err() == nil {
				a.log.Warn().Err(err).Str("engine", a.path).Msg("speech playback failed")
				return
			}
		}
	}()
	return nil
}

// Stop cancels in-flight playback and waits for it to end.
func (a *CommandAnnouncer) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
}

// Wait blocks until the current playback, if any, finishes.
func (a *CommandAnnouncer) Wait() {
	a.mu.Lock()
	done := a.done
	a.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (a *CommandAnnouncer) stopLocked() {
	if a.cancel == nil {
		return
	}
	a.cancel()
	<-a.done
	a.cancel = nil
	a.done = nil
}

// args builds the engine command line for one utterance.
func (a *CommandAnnouncer) args(text string) []string {
	wpm := strconv.Itoa(int(engineWPM * a.rate))
	switch filepath.Base(a.path) {
	case "say":
		// say picks its voice from the system locale.
		return []string{"-r", wpm, text}
	default:
		return []string{"-v", espeakVoice(a.voice), "-s", wpm, text}
	}
}

// espeakVoice converts a BCP 47 tag into espeak's voice naming ("en-us").
func espeakVoice(tag string) string {
	return strings.ToLower(tag)
}
