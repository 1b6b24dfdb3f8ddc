package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"gitfortune/internal/config"
	"gitfortune/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

// effectiveConfig returns a copy of the loaded config with command-line
// overrides applied and re-validated.
func (c *commandContext) effectiveConfig(cmd *cobra.Command, flags *matchFlags, args []string) (*config.Config, error) {
	base, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	cfg := *base
	cfg.Corpus.Paths = append([]string(nil), base.Corpus.Paths...)

	if len(args) > 0 {
		cfg.Corpus.Paths = append([]string(nil), args...)
	}
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("noise") {
		cfg.Matching.NoiseWords = flags.noise
	}
	if flags.caseSensitive {
		cfg.Matching.CaseFold = false
	}
	if flags.words {
		cfg.Matching.Scoring = "words"
	}
	if flags.first {
		cfg.Matching.TieBreak = "first"
	}
	if changed("seed") {
		cfg.Matching.Seed = flags.seed
	}
	if flags.debug {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return &cfg, nil
}

// newLogger builds the run logger; every line carries the run id. The
// returned func closes the optional log file.
func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, func() error, error) {
	logger, closeLog, err := logging.NewFromConfig(cfg, w)
	if err != nil {
		return nil, closeLog, err
	}
	return logger.With(logging.String(logging.FieldRunID, uuid.NewString())), closeLog, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
