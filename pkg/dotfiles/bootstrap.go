package dotfiles

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bjk2k/red-panda/pkg/config"
	"github.com/bjk2k/red-panda/pkg/errors"
	"github.com/bjk2k/red-panda/pkg/filesystem"
	"github.com/bjk2k/red-panda/pkg/logging"
	"github.com/bjk2k/red-panda/pkg/system"
	"github.com/bjk2k/red-panda/pkg/types"
)

// Interpreter runs the install entrypoint
const Interpreter = "bash"

// Repository is the subset of git operations the bootstrapper needs
type Repository interface {
	Clone(ctx context.Context, url, dest string) error
	IsRepository(path string) bool
	Restore(root, subpath string) error
}

// Layout is the part of the install layout the bootstrapper works in.
// paths.Paths satisfies it.
type Layout interface {
	InstallationRoot() string
	DotfilesRoot() string
	MarkerFile() string
}

// Bootstrapper clones and prepares the dotfiles checkout
type Bootstrapper struct {
	source         string
	installScript  string
	packageIgnore  []string
	strictInstall  bool
	markerVariable string

	repo     Repository
	runner   types.Runner
	fs       types.FS
	reporter types.Reporter
	logger   zerolog.Logger
}

// NewBootstrapper creates a Bootstrapper from the resolved configuration.
func NewBootstrapper(cfg *config.Config, repo Repository, runner types.Runner, fsys types.FS, reporter types.Reporter) *Bootstrapper {
	return &Bootstrapper{
		source:         cfg.Sources.Dotfiles,
		installScript:  cfg.Dotfiles.InstallScript,
		packageIgnore:  cfg.Dotfiles.PackageIgnore,
		strictInstall:  cfg.Dotfiles.StrictInstall,
		markerVariable: cfg.Layout.MarkerVariable,
		repo:           repo,
		runner:         runner,
		fs:             fsys,
		reporter:       reporter,
		logger:         logging.GetLogger("dotfiles"),
	}
}

// Setup clones the dotfiles into layout.DotfilesRoot, runs the install
// entrypoint, writes the marker file and resets every stow package. Any step
// failing aborts the remaining ones; nothing is rolled back.
func (b *Bootstrapper) Setup(ctx context.Context, layout Layout) error {
	done := logging.LogOperationStart(b.logger, "dotfiles bootstrap")
	defer done()

	dotfilesRoot := layout.DotfilesRoot()

	if err := b.fetch(ctx, dotfilesRoot); err != nil {
		return err
	}

	if err := b.runInstallScript(ctx, dotfilesRoot); err != nil {
		return err
	}

	if err := b.WriteMarker(layout.MarkerFile(), layout.InstallationRoot()); err != nil {
		return err
	}

	packages, err := b.Packages(dotfilesRoot)
	if err != nil {
		return err
	}
	for _, name := range packages {
		if err := b.ResetPackage(dotfilesRoot, name); err != nil {
			return err
		}
	}
	b.logger.Info().Int("packages", len(packages)).Msg("Dotfiles bootstrapped")
	return nil
}

func (b *Bootstrapper) fetch(ctx context.Context, dotfilesRoot string) error {
	exists, err := filesystem.Exists(b.fs, dotfilesRoot)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", dotfilesRoot)
	}

	if exists {
		if b.repo.IsRepository(dotfilesRoot) {
			b.reporter.Step("Refreshing dotfiles in %s", dotfilesRoot)
			b.logger.Info().Str("path", dotfilesRoot).Msg("Removing existing dotfiles checkout")
		} else {
			b.reporter.Step("Replacing non-repository directory %s", dotfilesRoot)
			b.logger.Warn().Str("path", dotfilesRoot).Msg("Dotfiles root exists but is not a repository, removing it")
		}
		if err := b.fs.RemoveAll(dotfilesRoot); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to remove %s", dotfilesRoot)
		}
	} else {
		b.reporter.Step("Fetching dotfiles into %s", dotfilesRoot)
	}

	b.reporter.Detail("Cloning %s", b.source)
	return b.repo.Clone(ctx, b.source, dotfilesRoot)
}

func (b *Bootstrapper) runInstallScript(ctx context.Context, dotfilesRoot string) error {
	cmd := types.Command{
		Name: Interpreter,
		Args: []string{b.installScript},
		Dir:  dotfilesRoot,
	}

	b.reporter.Detail("Triggering %s", b.installScript)
	res, err := b.runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	b.reporter.Output(res.Stdout)
	b.reporter.Note(">> exit status %d", res.ExitCode)

	if res.Success() {
		return nil
	}
	if b.strictInstall {
		return system.RequireSuccess(cmd, res)
	}
	b.logger.Warn().
		Int("exitCode", res.ExitCode).
		Str("stderr", strings.TrimSpace(res.Stderr)).
		Msg("Dotfiles install script exited non-zero, continuing")
	return nil
}

// MarkerContent is the single line written to the marker file.
func (b *Bootstrapper) MarkerContent(installationRoot string) string {
	return fmt.Sprintf("export %s=\"%s\"\n", b.markerVariable, installationRoot)
}

// WriteMarker truncates and rewrites the environment marker file at path.
func (b *Bootstrapper) WriteMarker(path, installationRoot string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "marker file path is empty")
	}

	b.reporter.Detail("Writing %s", path)
	if err := b.fs.WriteFile(path, []byte(b.MarkerContent(installationRoot)), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write marker file %s", path)
	}
	return nil
}

// Packages lists the stow packages in dotfilesRoot: non-hidden top-level
// directories not matching any package_ignore glob, sorted by name.
func (b *Bootstrapper) Packages(dotfilesRoot string) ([]string, error) {
	entries, err := b.fs.ReadDir(dotfilesRoot)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read dotfiles root").
			WithDetail("path", dotfilesRoot)
	}

	var packages []string
	for _, entry := range entries {
		name := entry.Name()

		if strings.HasPrefix(name, ".") {
			b.logger.Trace().Str("name", name).Msg("Skipping hidden entry")
			continue
		}
		if !entry.IsDir() {
			continue
		}
		if b.ignored(name) {
			b.logger.Trace().Str("name", name).Msg("Skipping ignored package")
			continue
		}
		packages = append(packages, name)
	}

	sort.Strings(packages)
	return packages, nil
}

func (b *Bootstrapper) ignored(name string) bool {
	for _, pattern := range b.packageIgnore {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// ResetPackage restores every tracked file of a stow package to HEAD, in the
// index and the worktree. Running it on a clean package changes nothing.
func (b *Bootstrapper) ResetPackage(dotfilesRoot, name string) error {
	b.reporter.Note("Resetting package %s", name)
	if err := b.repo.Restore(dotfilesRoot, name); err != nil {
		return errors.Wrapf(err, errors.ErrRestoreFailed, "failed to reset package %s", name).
			WithDetail("package", name)
	}
	return nil
}
