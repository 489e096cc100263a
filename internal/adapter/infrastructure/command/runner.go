// Package command provides the external command runner adapter.
package command

import (
	"context"
	"io"
	"os/exec"

	"golang-netup/internal/pkg/logging"
	"golang-netup/internal/port"
)

// RunnerAdapter is an adapter that implements the CommandRunner port using
// the os/exec package. Subprocess output is discarded; the only observable
// result is the success boolean.
type RunnerAdapter struct{}

// Ensure RunnerAdapter implements the CommandRunner port
var _ port.CommandRunner = (*RunnerAdapter)(nil)

// NewRunnerAdapter creates a new command runner adapter.
func NewRunnerAdapter() *RunnerAdapter {
	return &RunnerAdapter{}
}

// Run executes the command, blocks until it terminates, and reports
// whether it exited successfully. Launch failures (command missing,
// permission denied) count as failures like any nonzero exit.
func (r *RunnerAdapter) Run(ctx context.Context, name string, args ...string) bool {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	if err := cmd.Run(); err != nil {
		logging.WithComponent("exec").WithError(err).
			WithField("command", name).Debug("Command did not succeed")
		return false
	}
	return true
}
