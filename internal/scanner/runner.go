package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"dhi-workshop/internal/logger"
)

// CommandRunner is an interface for running external commands
type CommandRunner interface {
	// LookPath resolves an executable name to a path.
	LookPath(name string) (string, error)
	// Run runs name with args, streaming its output to stdout and stderr.
	Run(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error
}

// ExecRunner is the default implementation using os/exec
type ExecRunner struct{}

var _ CommandRunner = (*ExecRunner)(nil)

// LookPath resolves name on PATH.
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run runs the command and waits for it. A non-zero exit is returned as an
// error carrying the exit status.
func (r *ExecRunner) Run(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	logger.DebugContext(ctx, "Running command",
		slog.String("command", name),
		slog.String("args", strings.Join(args, " ")))

	// nolint:gosec // name is the configured scanner or runtime binary, args are built here
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s exited with status %d: %w", name, exitErr.ExitCode(), err)
		}
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}
