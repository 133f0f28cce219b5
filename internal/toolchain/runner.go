package toolchain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Runner starts package manager and node subprocesses.
type Runner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger

	// For mocking in tests
	commandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// RunnerOptions configures a Runner. Nil streams fall back to the process's
// own stdio.
type RunnerOptions struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// NewRunner returns a Runner. opts may be nil.
func NewRunner(opts *RunnerOptions) *Runner {
	if opts == nil {
		opts = &RunnerOptions{}
	}
	r := &Runner{
		stdin:       opts.Stdin,
		stdout:      opts.Stdout,
		stderr:      opts.Stderr,
		logger:      opts.Logger,
		commandFunc: exec.CommandContext,
	}
	if r.stdin == nil {
		r.stdin = os.Stdin
	}
	if r.stdout == nil {
		r.stdout = os.Stdout
	}
	if r.stderr == nil {
		r.stderr = os.Stderr
	}
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}
	return r
}

// Run executes name in dir with inherited stdio and blocks until it exits.
// Both a failed start and a non-zero exit are errors.
func (r *Runner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := r.commandFunc(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	r.logger.Debug("running command", "dir", dir, "command", CommandLine(name, args...))
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}

// Output executes name in dir and returns its combined stdout and stderr.
func (r *Runner) Output(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := r.commandFunc(ctx, name, args...)
	cmd.Dir = dir

	r.logger.Debug("probing command", "dir", dir, "command", CommandLine(name, args...))
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("%s failed: %w", name, err)
	}
	return string(out), nil
}

// Succeeds reports whether name runs and exits zero. Output is discarded.
func (r *Runner) Succeeds(ctx context.Context, dir, name string, args ...string) bool {
	cmd := r.commandFunc(ctx, name, args...)
	cmd.Dir = dir
	return cmd.Run() == nil
}

// CommandLine renders a command the way it is reported to the user.
func CommandLine(name string, args ...string) string {
	parts := append([]string{name}, args...)
	return strings.Join(parts, " ")
}
