package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"gitfortune/internal/config"
	"gitfortune/internal/deps"
	"gitfortune/internal/logging"
	"gitfortune/internal/stopwatch"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigValidateCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "List your fortune files under [corpus] paths, or leave it empty to use the bundled fortunes.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file and corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out := cmd.OutOrStdout()
			colorize := colorEnabled(cfg.Output.Color, out)

			path := ctx.configPath
			if path == "" {
				path = "(none)"
			}
			fmt.Fprintf(out, "Config path: %s\n", path)
			if !ctx.configExists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}

			git := deps.LookGit(cfg.Input.GitBinary)
			fmt.Fprintln(out, renderStatusLine("Git", gitStatusKind(git), gitStatusMessage(git), colorize))

			matcher, err := buildMatcher(cfg, stopwatch.Nop(), logging.NewNop())
			if err != nil {
				fmt.Fprintln(out, renderStatusLine("Corpus", statusError, err.Error(), colorize))
				return fmt.Errorf("load corpus: %w", err)
			}
			source := "bundled"
			if !cfg.UsesBundledCorpus() {
				source = strings.Join(cfg.Corpus.Paths, ", ")
			}
			fmt.Fprintln(out, renderStatusLine("Corpus", statusOK, fmt.Sprintf("%d fortunes (%s)", len(matcher.Entries()), source), colorize))
			fmt.Fprintln(out, renderStatusLine("Case folding", statusInfo, yesNo(cfg.Matching.CaseFold), colorize))
			fmt.Fprintln(out, renderStatusLine("Scoring", statusInfo, fmt.Sprintf("%s, %d noise words, %s tie break", cfg.Matching.Scoring, cfg.Matching.NoiseWords, cfg.Matching.TieBreak), colorize))
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func gitStatusKind(status deps.GitStatus) statusKind {
	if status.Available {
		return statusOK
	}
	return statusWarn
}

func gitStatusMessage(status deps.GitStatus) string {
	if status.Available {
		return status.Path
	}
	return status.Detail + "; pipe text with --stdin instead"
}
