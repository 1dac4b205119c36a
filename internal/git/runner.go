package git

import (
	"os/exec"
	"strings"
)

// CommandRunner executes a command in a directory and returns its combined
// output. Tests swap in a recording implementation.
type CommandRunner interface {
	Run(dir, name string, args ...string) (string, error)
}

// ExecRunner runs commands through os/exec
type ExecRunner struct{}

// NewExecRunner creates the default runner
func NewExecRunner() ExecRunner {
	return ExecRunner{}
}

// Run executes the command and returns trimmed combined output.
// The output is returned even when the command fails, so callers can
// inspect what the tool printed.
func (ExecRunner) Run(dir, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(output)), err
}
