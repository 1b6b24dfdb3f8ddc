package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeCorpus(); err != nil {
		return err
	}
	c.normalizeMatching()
	c.normalizeInput()
	c.Output.Color = lowerTrim(c.Output.Color, defaultColorMode)
	return c.normalizeLogging()
}

func (c *Config) normalizeCorpus() error {
	if len(c.Corpus.Paths) == 0 {
		if value, ok := os.LookupEnv(corpusEnvVar); ok {
			c.Corpus.Paths = filepath.SplitList(value)
		}
	}
	paths := make([]string, 0, len(c.Corpus.Paths))
	for i, p := range c.Corpus.Paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		expanded, err := expandPath(p)
		if err != nil {
			return fmt.Errorf("corpus.paths[%d]: %w", i, err)
		}
		paths = append(paths, expanded)
	}
	c.Corpus.Paths = paths
	c.Corpus.Join = lowerTrim(c.Corpus.Join, "concat")
	return nil
}

func (c *Config) normalizeMatching() {
	c.Matching.Scoring = lowerTrim(c.Matching.Scoring, "counts")
	c.Matching.TieBreak = lowerTrim(c.Matching.TieBreak, "random")
}

func (c *Config) normalizeInput() {
	c.Input.GitBinary = strings.TrimSpace(c.Input.GitBinary)
	if c.Input.GitBinary == "" {
		c.Input.GitBinary = defaultGitBinary
	}
	c.Input.Revision = strings.TrimSpace(c.Input.Revision)
	if c.Input.Revision == "" {
		c.Input.Revision = defaultRevision
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = lowerTrim(c.Logging.Format, defaultLogFormat)
	c.Logging.Level = lowerTrim(c.Logging.Level, defaultLogLevel)
	if strings.TrimSpace(c.Logging.File) == "" {
		c.Logging.File = ""
		return nil
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

func lowerTrim(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}
