package config

import (
	"errors"
	"fmt"

	"gitfortune/internal/fortune"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCorpus(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCorpus() error {
	if _, err := fortune.ParseJoinMode(c.Corpus.Join); err != nil {
		return fmt.Errorf("corpus.join: %w (want concat or newline)", err)
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.NoiseWords < 0 {
		return errors.New("matching.noise_words must be zero or positive")
	}
	if _, err := fortune.MetricFor(c.Matching.Scoring); err != nil {
		return fmt.Errorf("matching.scoring: %w (want counts or words)", err)
	}
	if _, err := fortune.ParseTieBreak(c.Matching.TieBreak); err != nil {
		return fmt.Errorf("matching.tie_break: %w (want random or first)", err)
	}
	return nil
}

func (c *Config) validateInput() error {
	if c.Input.GitTimeoutSeconds < 0 {
		return errors.New("input.git_timeout_seconds must be zero or positive")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Color {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("output.color must be auto, always, or never, got %q", c.Output.Color)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
