// Package system runs external processes for red-panda.
//
// The installer shells out to git-adjacent tooling, vendor scripts and the
// dependency probes. All of them go through types.Runner so installers can be
// exercised in tests without spawning anything.
package system

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	rperrors "github.com/bjk2k/red-panda/pkg/errors"
	"github.com/bjk2k/red-panda/pkg/logging"
	"github.com/bjk2k/red-panda/pkg/types"
)

// ExecRunner implements types.Runner with os/exec.
type ExecRunner struct {
	logger zerolog.Logger
}

// NewRunner creates a runner backed by real processes.
func NewRunner() *ExecRunner {
	return &ExecRunner{
		logger: logging.GetLogger("system.runner"),
	}
}

// Run starts the command, waits for it and captures stdout and stderr.
// No timeout is applied; only ctx cancellation stops a hung process.
func (r *ExecRunner) Run(ctx context.Context, c types.Command) (types.CommandResult, error) {
	if c.Name == "" {
		return types.CommandResult{}, rperrors.New(rperrors.ErrInvalidInput, "command name is empty")
	}

	logging.LogCommand(r.logger, c.Name, c.Args)

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := types.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, rperrors.Wrapf(ctxErr, rperrors.ErrCommandFailed, "%s interrupted", c.Name)
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		r.logger.Error().
			Err(err).
			Str("command", c.Name).
			Strs("args", c.Args).
			Msg("Command could not be started")
		return result, rperrors.Wrapf(err, rperrors.ErrCommandSpawn, "failed to start %s", c.Name).
			WithDetail("command", c.Name)
	}

	r.logger.Debug().
		Str("command", c.Name).
		Int("exitCode", result.ExitCode).
		Str("stdout", result.Stdout).
		Str("stderr", result.Stderr).
		Msg("Command finished")

	return result, nil
}

// RequireSuccess turns a non-zero exit into an ErrCommandFailed error.
func RequireSuccess(c types.Command, result types.CommandResult) error {
	if result.Success() {
		return nil
	}
	msg := strings.TrimSpace(result.Stderr)
	if msg == "" {
		msg = "no stderr output"
	}
	return rperrors.Newf(rperrors.ErrCommandFailed, "%s exited with status %d: %s",
		Describe(c), result.ExitCode, msg).
		WithDetail("exitCode", result.ExitCode)
}

// Describe renders a command the way a user would type it.
func Describe(c types.Command) string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Verify interface compliance
var _ types.Runner = (*ExecRunner)(nil)
