package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config file did not exist; defaults were used")
	requireContains(t, out, "Git:")
	requireContains(t, out, "(bundled)")
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(env.baseDir, "conf", "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init to refuse overwriting an existing file")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, []string{"--config", target, "config", "validate"}, "")
	if err != nil {
		t.Fatalf("validate sample config: %v", err)
	}
	requireContains(t, out, "Config path: "+target)
	requireNotContains(t, out, "defaults were used")
}

func TestConfigInitDefaultPath(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"config", "init"}, ""); err != nil {
		t.Fatalf("config init: %v", err)
	}
	expected := filepath.Join(env.homeDir, ".config", "gitfortune", "config.toml")
	if _, err := os.Stat(expected); err != nil {
		t.Fatalf("expected config at %s: %v", expected, err)
	}
}

func TestConfigValidateReportsCorpusFailure(t *testing.T) {
	env := setupCLITestEnv(t)
	cfgPath := env.writeConfig(t, "[corpus]\npaths = [\"missing-fortunes\"]\n")

	out, _, err := runCLI(t, []string{"--config", cfgPath, "config", "validate"}, "")
	if err == nil {
		t.Fatal("expected validate to fail for a missing corpus file")
	}
	requireContains(t, out, "[ERROR]")
}

func TestConfigRejectsUnknownKeys(t *testing.T) {
	env := setupCLITestEnv(t)
	cfgPath := env.writeConfig(t, "[matching]\nnoise = 5\n")

	if _, _, err := runCLI(t, []string{"--config", cfgPath, "config", "validate"}, ""); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestConfigValidateWarnsWithoutGit(t *testing.T) {
	env := setupCLITestEnv(t)
	cfgPath := env.writeConfig(t, "[input]\ngit_binary = \"gitfortune-no-such-git\"\n")

	out, _, err := runCLI(t, []string{"--config", cfgPath, "config", "validate"}, "")
	if err != nil {
		t.Fatalf("missing git must not fail validation: %v", err)
	}
	requireContains(t, out, "[WARN]")
	requireContains(t, out, "--stdin")
	requireContains(t, out, "Configuration valid")
}
