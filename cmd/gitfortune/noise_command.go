package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"gitfortune/internal/fortune"
	"gitfortune/internal/stopwatch"
)

type noiseReport struct {
	Entries int             `json:"entries"`
	Limit   int             `json:"limit"`
	Words   []noiseWordJSON `json:"words"`
}

type noiseWordJSON struct {
	Rank  int    `json:"rank"`
	Word  string `json:"word"`
	Count int    `json:"count"`
}

func newNoiseCommand(ctx *commandContext, flags *matchFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "noise [corpus files...]",
		Short: "List the most frequent corpus words ignored when matching",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.effectiveConfig(cmd, flags, args)
			if err != nil {
				return err
			}
			logger, closeLog, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()
			matcher, err := buildMatcher(cfg, stopwatch.Nop(), logger)
			if err != nil {
				return err
			}
			words := matcher.TopWords(cfg.Matching.NoiseWords)

			if asJSON {
				return writeNoiseJSON(cmd, noiseReportFor(len(matcher.Entries()), cfg.Matching.NoiseWords, words))
			}
			out := cmd.OutOrStdout()
			if len(words) == 0 {
				fmt.Fprintln(out, "No noise words (filter disabled or corpus has no words)")
				return nil
			}
			fmt.Fprintln(out, renderWordCounts(words))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func noiseReportFor(entries, limit int, words []fortune.WordCount) noiseReport {
	report := noiseReport{
		Entries: entries,
		Limit:   limit,
		Words:   make([]noiseWordJSON, 0, len(words)),
	}
	for i, wc := range words {
		report.Words = append(report.Words, noiseWordJSON{Rank: i + 1, Word: wc.Word, Count: wc.Count})
	}
	return report
}

func writeNoiseJSON(cmd *cobra.Command, report noiseReport) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
