package features

import (
	"context"
)

// Built-in feature names
const (
	Zsh        = "zsh"
	Neovim     = "neovim"
	PublicKeys = "pubkeys"
	Tmux       = "tmux"
	SecretKeys = "secretkeys"
)

// Env is the on-disk context an installer runs in. The orchestrator owns
// every path in it.
type Env struct {
	InstallationRoot string
	DotfilesRoot     string
	Home             string
	ConfigHome       string
}

// Installer performs one feature's installation
type Installer interface {
	Install(ctx context.Context, env Env) error
}

// Preflighter is implemented by installers that can reject a run before
// anything is mutated.
type Preflighter interface {
	Preflight(ctx context.Context, env Env) error
}

// InstallerFunc adapts a function to Installer
type InstallerFunc func(ctx context.Context, env Env) error

func (f InstallerFunc) Install(ctx context.Context, env Env) error {
	return f(ctx, env)
}

// Feature is a named, installable unit
type Feature struct {
	Name        string
	Description string
	Installer   Installer
}

// Preflight runs the installer's preflight, if it has one.
func (f Feature) Preflight(ctx context.Context, env Env) error {
	if p, ok := f.Installer.(Preflighter); ok {
		return p.Preflight(ctx, env)
	}
	return nil
}
