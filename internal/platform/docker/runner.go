package docker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// RunResult is the outcome of a shell command. A non-zero exit code is a
// result, not an error.
type RunResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Succeeded reports whether the command exited with status zero.
func (r *RunResult) Succeeded() bool {
	return r != nil && r.ExitCode == 0
}

// Runner runs shell commands on the docker host. The error is reserved for
// failures to run the command at all.
type Runner interface {
	Run(ctx context.Context, command string, stdin io.Reader) (*RunResult, error)
}

// LocalRunner runs commands on this machine through sh -c.
type LocalRunner struct {
	// Shell defaults to "sh".
	Shell string
}

// NewLocalRunner creates a runner for the local machine.
func NewLocalRunner() *LocalRunner {
	return &LocalRunner{Shell: "sh"}
}

// Run implements Runner.
func (r *LocalRunner) Run(ctx context.Context, command string, stdin io.Reader) (*RunResult, error) {
	shell := r.Shell
	if shell == "" {
		shell = "sh"
	}

	// #nosec G204 - commands are assembled from quoted arguments by this package
	cmd := exec.CommandContext(ctx, shell, "-c", command)
	cmd.Stdin = stdin
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &RunResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	return nil, fmt.Errorf("failed to run %q: %w", command, err)
}

// Quote returns s quoted for a POSIX shell.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.IndexFunc(s, needsQuoting) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func needsQuoting(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	return !strings.ContainsRune("-_./:=@,+%", r)
}

// command joins args into one shell command line.
func command(args ...string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = Quote(a)
	}
	return strings.Join(quoted, " ")
}
