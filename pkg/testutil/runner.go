package testutil

import (
	"context"
	"os/exec"
	"sync"

	rperrors "github.com/bjk2k/red-panda/pkg/errors"
	"github.com/bjk2k/red-panda/pkg/types"
)

// RunnerHandler scripts the outcome of one command.
type RunnerHandler func(cmd types.Command) (types.CommandResult, error)

// FakeRunner records every command and answers from per-name handlers.
// Commands without a handler succeed with empty output.
type FakeRunner struct {
	mu       sync.Mutex
	Calls    []types.Command
	handlers map[string]RunnerHandler
}

// NewFakeRunner creates an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{handlers: make(map[string]RunnerHandler)}
}

// On scripts the outcome for every command named name.
func (f *FakeRunner) On(name string, handler RunnerHandler) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[name] = handler
	return f
}

// Missing makes name fail to launch, like an uninstalled binary.
func (f *FakeRunner) Missing(name string) *FakeRunner {
	return f.On(name, func(types.Command) (types.CommandResult, error) {
		cause := &exec.Error{Name: name, Err: exec.ErrNotFound}
		return types.CommandResult{}, rperrors.Wrapf(cause, rperrors.ErrCommandSpawn, "failed to start %s", name)
	})
}

// Exit makes name exit with code and the given stdout.
func (f *FakeRunner) Exit(name string, code int, stdout string) *FakeRunner {
	return f.On(name, func(types.Command) (types.CommandResult, error) {
		return types.CommandResult{ExitCode: code, Stdout: stdout}, nil
	})
}

// Run implements types.Runner.
func (f *FakeRunner) Run(_ context.Context, cmd types.Command) (types.CommandResult, error) {
	f.mu.Lock()
	f.Calls = append(f.Calls, cmd)
	handler, ok := f.handlers[cmd.Name]
	f.mu.Unlock()

	if !ok {
		return types.CommandResult{}, nil
	}
	return handler(cmd)
}

// Names returns the command names in call order.
func (f *FakeRunner) Names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		names[i] = c.Name
	}
	return names
}

// Verify interface compliance
var _ types.Runner = (*FakeRunner)(nil)
