package cmd

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/tensequiz/internal/app"
	"github.com/abhisek/tensequiz/internal/catalog"
	"github.com/abhisek/tensequiz/internal/config"
	"github.com/abhisek/tensequiz/internal/logger"
	"github.com/abhisek/tensequiz/internal/quiz"
	"github.com/abhisek/tensequiz/internal/speech"
)

// loadConfig reads the config and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("words") {
		cfg.Quiz.WordsFile, _ = flags.GetString("words")
	}
	if flags.Lookup("seed") != nil && flags.Changed("seed") {
		cfg.Quiz.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Lookup("no-speech") != nil {
		if off, _ := flags.GetBool("no-speech"); off {
			cfg.Speech.Enabled = false
		}
	}
	return cfg, nil
}

// loadCatalog returns the configured word list, or the built-in one.
func loadCatalog(cfg *config.Config) (catalog.Catalog, error) {
	if cfg.Quiz.WordsFile == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.LoadFile(cfg.Quiz.WordsFile)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("load word list: %w", err)
	}
	return c, nil
}

// newAnnouncer builds the speech engine. A missing engine is not fatal:
// the quiz runs and shows a notice when pronunciation is requested.
func newAnnouncer(cfg config.SpeechConfig, log zerolog.Logger) speech.Announcer {
	if !cfg.Enabled {
		log.Info().Msg("speech disabled")
		return speech.Nop{}
	}
	a, err := speech.NewCommandAnnouncer(speech.Options{
		Command: cfg.Command,
		Voice:   cfg.Voice,
		Rate:    cfg.Rate,
	}, speech.WithLogger(log))
	if err != nil {
		if !errors.Is(err, speech.ErrCapabilityUnavailable) {
			log.Error().Err(err).Msg("speech engine failed")
		} else {
			log.Warn().Err(err).Msg("no speech engine found")
		}
		return speech.Nop{}
	}
	return a
}

// runApp loads configuration, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logFile, err := logger.OpenFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()

	log := logger.Setup(cfg.Log.Level, cfg.Log.Format, logFile).
		With().
		Str("run_id", uuid.New().String()).
		Logger()

	c, err := loadCatalog(cfg)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.Quiz.WordsFile).Msg("word list rejected")
		return err
	}

	var rng quiz.Rand
	if cfg.Quiz.Seed != 0 {
		rng = quiz.NewRand(cfg.Quiz.Seed)
	} else {
		rng = quiz.NewRandFromTime()
	}

	announcer := newAnnouncer(cfg.Speech, log)
	if ca, ok := announcer.(*speech.CommandAnnouncer); ok {
		defer ca.Stop()
	}

	skipIntro, _ := cmd.Flags().GetBool("skip-intro")

	log.Info().
		Int("words", c.Len()).
		Uint64("seed", cfg.Quiz.Seed).
		Bool("speech", cfg.Speech.Enabled).
		Msg("run started")

	err = app.Run(app.Options{
		Catalog:     c,
		Rand:        rng,
		Announcer:   announcer,
		Logger:      log,
		SkipWelcome: skipIntro,
	})
	log.Info().Err(err).Msg("run finished")
	return err
}
