// Package deps verifies that the external tools red-panda drives are
// installed before anything on disk is touched.
package deps

import (
	"context"

	rperrors "github.com/bjk2k/red-panda/pkg/errors"
	"github.com/bjk2k/red-panda/pkg/logging"
	"github.com/bjk2k/red-panda/pkg/types"
)

// Checker probes each tool by running it with a version flag.
type Checker struct {
	runner      types.Runner
	tools       []string
	versionFlag string
}

// NewChecker creates a Checker for tools, probed with versionFlag.
func NewChecker(runner types.Runner, tools []string, versionFlag string) *Checker {
	return &Checker{
		runner:      runner,
		tools:       tools,
		versionFlag: versionFlag,
	}
}

// Check returns an ErrDependencyMissing error for the first tool that cannot
// be launched. A tool that launches but exits non-zero counts as present.
func (c *Checker) Check(ctx context.Context) error {
	logger := logging.GetLogger("deps")

	for _, tool := range c.tools {
		cmd := types.Command{Name: tool}
		if c.versionFlag != "" {
			cmd.Args = []string{c.versionFlag}
		}

		res, err := c.runner.Run(ctx, cmd)
		if err != nil {
			logger.Error().Err(err).Str("tool", tool).Msg("Required tool is missing")
			return rperrors.Wrapf(err, rperrors.ErrDependencyMissing, "required tool %q is not installed", tool).
				WithDetail("tool", tool)
		}

		logger.Debug().Str("tool", tool).Int("exitCode", res.ExitCode).Msg("Found required tool")
	}
	return nil
}

// Tools returns the tools this checker probes, in order.
func (c *Checker) Tools() []string {
	return append([]string(nil), c.tools...)
}
