package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"gitfortune/internal/commitmsg"
	"gitfortune/internal/config"
	"gitfortune/internal/fortune"
	"gitfortune/internal/logging"
	"gitfortune/internal/stopwatch"
)

func runMatch(cmd *cobra.Command, ctx *commandContext, flags *matchFlags, args []string) error {
	cfg, err := ctx.effectiveConfig(cmd, flags, args)
	if err != nil {
		return err
	}
	stderr := cmd.ErrOrStderr()
	logger, closeLog, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	var timer stopwatch.Timer = stopwatch.Nop()
	if flags.debug {
		timer = stopwatch.New(logger)
	}

	matcher, err := buildMatcher(cfg, timer, logger)
	if err != nil {
		return err
	}
	if flags.debug {
		fmt.Fprintln(stderr, renderWordCounts(matcher.TopWords(cfg.Matching.NoiseWords)))
	}

	reader := commitmsg.Reader{
		Source: commitmsg.Git{
			Binary:   cfg.Input.GitBinary,
			Revision: cfg.Input.Revision,
			Timeout:  cfg.GitTimeout(),
		},
		Stdin:           cmd.InOrStdin(),
		StdinIsTerminal: isTerminal(cmd.InOrStdin()),
		ForceStdin:      flags.stdin,
		AllowEmpty:      flags.debug,
		Logger:          logger,
	}
	input, origin, err := reader.Read(cmd.Context())
	if err != nil {
		return err
	}
	logger.Debug("input acquired", logging.String("origin", string(origin)), logging.Int("bytes", len(input)))

	timer.Restart()
	result, err := matcher.Match(input)
	if err != nil {
		return err
	}
	timer.Lap("scoring all fortune cookies")

	if flags.debug {
		logger.Debug("relevant words for matching", logging.Strings("words", result.Relevant.Sorted()))
		fmt.Fprintln(stderr, renderCandidates(result.Best))
	}

	text := result.Chosen.Entry.Text
	if flags.debug {
		mark := plainMark
		if colorEnabled(cfg.Output.Color, cmd.OutOrStdout()) {
			mark = greenMark
		}
		text = fortune.Highlight(text, result.Relevant, mark)
	}
	return writeFortune(cmd.OutOrStdout(), text)
}

// buildMatcher loads the configured corpus and indexes it.
func buildMatcher(cfg *config.Config, timer stopwatch.Timer, logger *slog.Logger) (*fortune.Matcher, error) {
	logger = logging.NewComponentLogger(logger, "corpus")
	join, err := fortune.ParseJoinMode(cfg.Corpus.Join)
	if err != nil {
		return nil, err
	}
	metric, err := fortune.MetricFor(cfg.Matching.Scoring)
	if err != nil {
		return nil, err
	}
	tieBreak, err := fortune.ParseTieBreak(cfg.Matching.TieBreak)
	if err != nil {
		return nil, err
	}

	timer.Restart()
	var texts []string
	if cfg.UsesBundledCorpus() {
		texts, err = fortune.LoadBundled(join)
	} else {
		texts, err = fortune.LoadFiles(cfg.Corpus.Paths, join)
	}
	if err != nil {
		return nil, err
	}
	timer.Lap("reading fortunes from files")
	logger.Debug("loaded fortunes",
		logging.Int("entries", len(texts)),
		logging.Bool("bundled", cfg.UsesBundledCorpus()),
		logging.Strings("paths", cfg.Corpus.Paths),
	)

	var rng *rand.Rand
	if cfg.Matching.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Matching.Seed, cfg.Matching.Seed))
	}
	matcher, err := fortune.NewMatcher(texts, fortune.Options{
		Fold:       cfg.Matching.CaseFold,
		NoiseWords: cfg.Matching.NoiseWords,
		Metric:     metric,
		Chooser:    fortune.NewChooser(tieBreak, rng),
	})
	if err != nil {
		return nil, err
	}
	timer.Lap("counted words")
	return matcher, nil
}

// writeFortune prints text, adding a final newline only when missing.
func writeFortune(w io.Writer, text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(w, text)
	return err
}
