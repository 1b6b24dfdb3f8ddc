package main

import (
	"github.com/spf13/cobra"
)

// matchFlags holds root-level overrides of the loaded configuration.
type matchFlags struct {
	debug         bool
	stdin         bool
	words         bool
	first         bool
	caseSensitive bool
	noise         int
	seed          uint64
}

func newRootCommand() *cobra.Command {
	var configFlag string
	flags := &matchFlags{}

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "gitfortune [flags] [corpus files...]",
		Short: "Find a fortune cookie matching the latest commit message",
		Long: "gitfortune scores every fortune in the corpus against the message of the\n" +
			"latest git commit (or text read from stdin) and prints the closest match.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, ctx, flags, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().IntVar(&flags.noise, "noise", 0, "Number of most frequent corpus words to ignore")
	rootCmd.PersistentFlags().BoolVar(&flags.caseSensitive, "case-sensitive", false, "Compare words without case folding")

	rootCmd.Flags().BoolVar(&flags.debug, "debug", false, "Enable performance and partial result debugging")
	rootCmd.Flags().BoolVar(&flags.stdin, "stdin", false, "Read match text from stdin instead of analyzing the git HEAD")
	rootCmd.Flags().BoolVar(&flags.words, "words", false, "Break score ties by vocabulary size")
	rootCmd.Flags().BoolVar(&flags.first, "first", false, "Pick the first of equally good fortunes instead of a random one")
	rootCmd.Flags().Uint64Var(&flags.seed, "seed", 0, "Seed for the random tie break")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newNoiseCommand(ctx, flags))

	return rootCmd
}
