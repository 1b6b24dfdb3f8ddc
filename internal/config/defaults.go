package config

import "gitfortune/internal/fortune"

const (
	defaultConfigPath  = "~/.config/gitfortune/config.toml"
	projectConfigName  = "gitfortune.toml"
	corpusEnvVar       = "GITFORTUNE_CORPUS"
	defaultGitBinary   = "git"
	defaultRevision    = "HEAD"
	defaultColorMode   = "auto"
	defaultLogFormat   = "console"
	defaultLogLevel    = "warn"
	defaultCaseFolding = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Corpus: Corpus{
			Join: string(fortune.JoinConcat),
		},
		Matching: Matching{
			NoiseWords: fortune.DefaultNoiseWords,
			Scoring:    string(fortune.ScoringCounts),
			CaseFold:   defaultCaseFolding,
			TieBreak:   string(fortune.TieRandom),
		},
		Input: Input{
			GitBinary: defaultGitBinary,
			Revision:  defaultRevision,
		},
		Output: Output{
			Color: defaultColorMode,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
