package commitmsg

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
)

type stubSource struct {
	msg   string
	err   error
	calls int
}

func (s *stubSource) Message(context.Context) (string, error) {
	s.calls++
	return s.msg, s.err
}

func TestReadPrefersGit(t *testing.T) {
	src := &stubSource{msg: "Fix parser crash\n"}
	text, origin, err := Reader{Source: src, Stdin: strings.NewReader("ignored")}.Read(context.Background())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if text != "Fix parser crash\n" || origin != OriginGit {
		t.Fatalf("Read() = %q, %q", text, origin)
	}
}

func TestReadForceStdinSkipsGit(t *testing.T) {
	src := &stubSource{msg: "from git"}
	text, origin, err := Reader{Source: src, Stdin: strings.NewReader("from stdin"), ForceStdin: true}.Read(context.Background())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if text != "from stdin" || origin != OriginStdin {
		t.Fatalf("Read() = %q, %q", text, origin)
	}
	if src.calls != 0 {
		t.Fatalf("git consulted %d times", src.calls)
	}
}

func TestReadFallsBackToStdin(t *testing.T) {
	src := &stubSource{err: errors.New("not a git repository")}
	text, origin, err := Reader{Source: src, Stdin: strings.NewReader("piped text")}.Read(context.Background())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if text != "piped text" || origin != OriginStdin {
		t.Fatalf("Read() = %q, %q", text, origin)
	}
}

func TestReadFallbackFailures(t *testing.T) {
	gitErr := errors.New("not a git repository")
	tests := []struct {
		name   string
		reader Reader
	}{
		{
			name:   "empty stdin",
			reader: Reader{Source: &stubSource{err: gitErr}, Stdin: strings.NewReader("  \n")},
		},
		{
			name:   "terminal stdin",
			reader: Reader{Source: &stubSource{err: gitErr}, Stdin: strings.NewReader("x"), StdinIsTerminal: true},
		},
		{
			name:   "broken stdin",
			reader: Reader{Source: &stubSource{err: gitErr}, Stdin: iotest.ErrReader(errors.New("boom"))},
		},
		{
			name:   "no source",
			reader: Reader{Stdin: strings.NewReader("x")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.reader.Read(context.Background())
			if !errors.Is(err, ErrInputAcquisition) {
				t.Fatalf("expected ErrInputAcquisition, got %v", err)
			}
		})
	}
}

func TestReadAllowEmptyFallback(t *testing.T) {
	r := Reader{Source: &stubSource{err: errors.New("no git")}, Stdin: strings.NewReader(""), AllowEmpty: true}
	text, origin, err := r.Read(context.Background())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if text != "" || origin != OriginStdin {
		t.Fatalf("Read() = %q, %q", text, origin)
	}
}

func TestGitMessage(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
			"GIT_CONFIG_GLOBAL=/dev/null", "GIT_CONFIG_NOSYSTEM=1",
		)
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}
	run("init", "-q")
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	run("add", "a.txt")
	run("commit", "-q", "-m", "Teach the parser about fortunes", "-m", "Second paragraph.")

	msg, err := Git{Dir: dir}.Message(context.Background())
	if err != nil {
		t.Fatalf("Message: %v", err)
	}
	if !strings.HasPrefix(msg, "Teach the parser about fortunes\n\nSecond paragraph.") {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestGitMessageOutsideRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))
	if _, err := (Git{Dir: dir}).Message(context.Background()); err == nil {
		t.Fatal("expected error outside a repository")
	}
}

func TestGitMissingBinary(t *testing.T) {
	_, err := Git{Binary: "definitely-not-git-binary"}.Message(context.Background())
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
}
