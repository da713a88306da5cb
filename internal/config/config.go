package config

import (
	"errors"
	"fmt"
	"slices"
)

// Config is the root application configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Quiz   QuizConfig   `yaml:"quiz"`
	Speech SpeechConfig `yaml:"speech"`
}

// LogConfig holds logging settings. The terminal belongs to the UI, so logs
// only go to a file; an empty File discards them.
type LogConfig struct {
	Level  string `yaml:"level"  env:"TENSEQUIZ_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"TENSEQUIZ_LOG_FORMAT" env-default:"json"`
	File   string `yaml:"file"   env:"TENSEQUIZ_LOG_FILE"`
}

// QuizConfig holds quiz run settings.
type QuizConfig struct {
	// Seed makes shuffles and directions reproducible. Zero seeds from the clock.
	Seed uint64 `yaml:"seed" env:"TENSEQUIZ_SEED" env-default:"0"`
	// WordsFile replaces the built-in word list with a local JSON file.
	WordsFile string `yaml:"words_file" env:"TENSEQUIZ_WORDS"`
}

// SpeechConfig holds text-to-speech settings.
type SpeechConfig struct {
	Enabled bool    `yaml:"enabled" env:"TENSEQUIZ_SPEECH"         env-default:"true"`
	Command string  `yaml:"command" env:"TENSEQUIZ_SPEECH_COMMAND"`
	Voice   string  `yaml:"voice"   env:"TENSEQUIZ_SPEECH_VOICE"   env-default:"en-US"`
	Rate    float64 `yaml:"rate"    env:"TENSEQUIZ_SPEECH_RATE"    env-default:"0.9"`
}

var logFormats = []string{"json", "pretty"}

var logLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(logLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format: must be one of %v, got %q", logFormats, c.Log.Format))
	}
	if c.Speech.Rate <= 0 {
		errs = append(errs, fmt.Errorf("speech.rate: must be positive, got %v", c.Speech.Rate))
	}
	if c.Speech.Voice == "" {
		errs = append(errs, errors.New("speech.voice: must not be empty"))
	}
	return errors.Join(errs...)
}
