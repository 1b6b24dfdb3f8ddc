// Package commitmsg obtains the text to match against: the latest commit
// message from git, or standard input when git is unavailable or the caller
// asks for it.
package commitmsg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"gitfortune/internal/logging"
)

// ErrInputAcquisition marks a run with no usable input text.
var ErrInputAcquisition = errors.New("input acquisition error")

// Origin names where the input text came from.
type Origin string

const (
	OriginGit   Origin = "git"
	OriginStdin Origin = "stdin"
)

// MessageSource returns a commit message.
type MessageSource interface {
	Message(ctx context.Context) (string, error)
}

// Git reads the full message of a revision with `git show`.
type Git struct {
	Binary   string
	Revision string
	// Dir is the working directory; empty uses the current one.
	Dir string
	// Timeout bounds the git call when positive.
	Timeout time.Duration
}

// Message implements MessageSource.
func (g Git) Message(ctx context.Context) (string, error) {
	binary := strings.TrimSpace(g.Binary)
	if binary == "" {
		binary = "git"
	}
	revision := strings.TrimSpace(g.Revision)
	if revision == "" {
		revision = "HEAD"
	}

	gitCtx := ctx
	var cancel context.CancelFunc
	if g.Timeout > 0 {
		gitCtx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(gitCtx, binary, "show", "--format=%B", "-s", revision)
	cmd.Dir = g.Dir
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git show %s: %w", revision, err)
	}
	return string(output), nil
}

// Reader picks between git and standard input.
type Reader struct {
	Source MessageSource
	Stdin  io.Reader
	// StdinIsTerminal disables the silent fallback, which would otherwise
	// wait for keyboard input.
	StdinIsTerminal bool
	// ForceStdin skips git entirely.
	ForceStdin bool
	// AllowEmpty accepts an empty or unusable fallback instead of failing.
	AllowEmpty bool
	Logger     *slog.Logger
}

// Read returns the input text and where it came from. A git failure falls
// back to standard input; the fallback must yield text unless AllowEmpty.
func (r Reader) Read(ctx context.Context) (string, Origin, error) {
	logger := logging.NewComponentLogger(r.Logger, "input")
	if r.ForceStdin {
		text, err := r.readStdin()
		return text, OriginStdin, err
	}
	if r.Source == nil {
		return "", "", fmt.Errorf("%w: no message source configured", ErrInputAcquisition)
	}

	msg, gitErr := r.Source.Message(ctx)
	if gitErr == nil {
		return msg, OriginGit, nil
	}
	if ctx.Err() != nil {
		return "", "", ctx.Err()
	}
	logger.Warn("commit message lookup failed; falling back to stdin", logging.Error(gitErr))

	if r.StdinIsTerminal && !r.AllowEmpty {
		return "", "", fmt.Errorf("%w: failed to query git commit info and stdin is a terminal: %w", ErrInputAcquisition, gitErr)
	}
	text, err := r.readStdin()
	if err != nil {
		return "", "", err
	}
	if strings.TrimSpace(text) == "" && !r.AllowEmpty {
		return "", "", fmt.Errorf("%w: failed to query git commit info and stdin was empty: %w", ErrInputAcquisition, gitErr)
	}
	return text, OriginStdin, nil
}

func (r Reader) readStdin() (string, error) {
	if r.Stdin == nil {
		return "", nil
	}
	data, err := io.ReadAll(r.Stdin)
	if err != nil {
		return "", fmt.Errorf("%w: read stdin: %w", ErrInputAcquisition, err)
	}
	return string(data), nil
}
