// Package deps reports on the external programs gitfortune shells out to.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// GitStatus describes whether the configured git binary can be run. Git is
// optional: without it, input must be piped on stdin.
type GitStatus struct {
	Command   string
	Path      string
	Available bool
	Detail    string
}

// LookGit resolves binary on PATH, or as a path when it contains a slash.
func LookGit(binary string) GitStatus {
	status := GitStatus{Command: strings.TrimSpace(binary)}
	if status.Command == "" {
		status.Detail = "git binary not configured"
		return status
	}
	path, err := exec.LookPath(status.Command)
	if err != nil {
		status.Detail = fmt.Sprintf("binary %q not found", status.Command)
		return status
	}
	status.Path = path
	status.Available = true
	return status
}
