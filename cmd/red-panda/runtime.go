package redpanda

import (
	"io"

	"github.com/bjk2k/red-panda/pkg/commands/install"
	"github.com/bjk2k/red-panda/pkg/config"
	"github.com/bjk2k/red-panda/pkg/deps"
	"github.com/bjk2k/red-panda/pkg/dotfiles"
	"github.com/bjk2k/red-panda/pkg/features"
	"github.com/bjk2k/red-panda/pkg/filesystem"
	"github.com/bjk2k/red-panda/pkg/git"
	"github.com/bjk2k/red-panda/pkg/system"
	"github.com/bjk2k/red-panda/pkg/ui"
)

// runtime wires the real collaborators for one command invocation
type runtime struct {
	cfg      *config.Config
	printer  *ui.Printer
	deps     features.Deps
	registry *features.Registry
}

func newRuntime(cfg *config.Config, out, progress io.Writer) *runtime {
	printer := ui.NewPrinter(out, ui.FormatAuto)

	gitClient := git.NewClient()
	gitClient.Progress = progress

	collaborators := features.Deps{
		Runner:   system.NewRunner(),
		Git:      gitClient,
		FS:       filesystem.NewOS(),
		Reporter: printer,
	}

	return &runtime{
		cfg:      cfg,
		printer:  printer,
		deps:     collaborators,
		registry: features.NewDefaultRegistry(cfg, collaborators),
	}
}

func (r *runtime) installOptions(dir string, names []string, all, dryRun bool) install.Options {
	checker := deps.NewChecker(r.deps.Runner, r.cfg.Dependencies.Tools, r.cfg.Dependencies.VersionFlag)
	bootstrapper := dotfiles.NewBootstrapper(r.cfg, r.deps.Git, r.deps.Runner, r.deps.FS, r.deps.Reporter)

	return install.Options{
		InstallDir:   dir,
		Features:     names,
		All:          all,
		DryRun:       dryRun,
		Config:       r.cfg,
		Registry:     r.registry,
		Checker:      checker,
		Bootstrapper: bootstrapper,
		FS:           r.deps.FS,
		Reporter:     r.printer,
	}
}
