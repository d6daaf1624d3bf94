// Package types holds the small interfaces shared between red-panda packages.
package types

import (
	"context"
	"io/fs"
)

// FS is the filesystem interface required for red-panda operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Rename(oldpath, newpath string) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
	Lstat(name string) (fs.FileInfo, error)
}

// Command describes one external process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current one.
	Dir string
	// Env is appended to the current environment.
	Env []string
}

// CommandResult is what a finished process left behind.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the process exited with status zero.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// Runner spawns external processes. Run returns an error only when the
// process could not be started; a non-zero exit is reported in the result.
type Runner interface {
	Run(ctx context.Context, cmd Command) (CommandResult, error)
}

// Reporter receives user-facing progress, rendered as a shallow tree:
//
//	[O] Step
//	 |- Detail
//	    |- Note
type Reporter interface {
	Step(format string, args ...any)
	Detail(format string, args ...any)
	Note(format string, args ...any)
	// Output relays captured process output verbatim.
	Output(text string)
}
