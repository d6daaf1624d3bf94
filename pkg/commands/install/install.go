package install

import (
	"context"
	"strings"

	"github.com/bjk2k/red-panda/pkg/config"
	"github.com/bjk2k/red-panda/pkg/dotfiles"
	"github.com/bjk2k/red-panda/pkg/errors"
	"github.com/bjk2k/red-panda/pkg/features"
	"github.com/bjk2k/red-panda/pkg/logging"
	"github.com/bjk2k/red-panda/pkg/paths"
	"github.com/bjk2k/red-panda/pkg/types"
)

// DependencyChecker verifies required tools before any mutation
type DependencyChecker interface {
	Check(ctx context.Context) error
}

// Bootstrapper prepares the dotfiles checkout
type Bootstrapper interface {
	Setup(ctx context.Context, layout dotfiles.Layout) error
}

// Options defines the options for Run.
type Options struct {
	// InstallDir is the existing, writable target directory.
	InstallDir string
	// Features are installed in the order given. Ignored when All is set.
	Features []string
	// All installs every registered feature in canonical order.
	All bool
	// DryRun resolves and returns the plan without touching anything.
	DryRun bool

	Config       *config.Config
	Registry     *features.Registry
	Checker      DependencyChecker
	Bootstrapper Bootstrapper
	FS           types.FS
	Reporter     types.Reporter
}

// Result describes what Run planned and did.
type Result struct {
	InstallationRoot string
	DotfilesRoot     string
	// Plan is the resolved feature sequence.
	Plan []string
	// Installed lists the features whose installer completed, in order.
	Installed []string
	DryRun    bool
}

// Run installs the requested features into opts.InstallDir.
//
// Validation, plan resolution, preflight and the dependency check all happen
// before the first mutation. After that the dotfiles are bootstrapped and
// each feature installs in plan order; the first failure aborts the run and
// nothing already applied is rolled back.
func Run(ctx context.Context, opts Options) (*Result, error) {
	log := logging.GetLogger("commands.install")
	log.Debug().Str("command", "Install").Strs("features", opts.Features).Bool("all", opts.All).Msg("Executing command")

	if err := paths.ValidateInstallDir(opts.InstallDir); err != nil {
		return nil, err
	}

	layout, err := paths.New(opts.InstallDir, opts.Config.Layout)
	if err != nil {
		return nil, err
	}

	plan, err := Plan(opts.Registry, opts.Features, opts.All)
	if err != nil {
		return nil, err
	}

	result := &Result{
		InstallationRoot: layout.InstallationRoot(),
		DotfilesRoot:     layout.DotfilesRoot(),
		Plan:             names(plan),
		DryRun:           opts.DryRun,
	}

	env := features.Env{
		InstallationRoot: layout.InstallationRoot(),
		DotfilesRoot:     layout.DotfilesRoot(),
		Home:             layout.Home(),
		ConfigHome:       layout.ConfigHome(),
	}

	if opts.DryRun {
		opts.Reporter.Step("Dry run: would invite red pandas into the %s directory", layout.Target())
		opts.Reporter.Detail("Installation root: %s", env.InstallationRoot)
		opts.Reporter.Detail("Dotfiles: %s", env.DotfilesRoot)
		opts.Reporter.Detail("Features: %s", strings.Join(result.Plan, ", "))
		log.Info().Str("command", "Install").Bool("dryRun", true).Msg("Command finished")
		return result, nil
	}

	for _, f := range plan {
		if err := f.Preflight(ctx, env); err != nil {
			return result, err
		}
	}

	if err := opts.Checker.Check(ctx); err != nil {
		return result, err
	}

	opts.Reporter.Step("Inviting some red pandas into the %s directory", layout.Target())
	if err := opts.FS.MkdirAll(env.InstallationRoot, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", env.InstallationRoot)
	}

	if err := opts.Bootstrapper.Setup(ctx, layout); err != nil {
		return result, err
	}

	opts.Reporter.Step("Installing features: %s", strings.Join(result.Plan, ", "))
	for _, f := range plan {
		if err := ctx.Err(); err != nil {
			return result, errors.Wrap(err, errors.ErrCommandFailed, "installation interrupted")
		}

		done := logging.LogOperationStart(log, "install "+f.Name)
		err := f.Installer.Install(ctx, env)
		done()
		if err != nil {
			return result, err
		}
		result.Installed = append(result.Installed, f.Name)
	}

	log.Info().Str("command", "Install").Int("featureCount", len(result.Installed)).Msg("Command finished")
	return result, nil
}

// Plan resolves the install plan: every feature in canonical order when all
// is set, otherwise requested in the given order. An empty plan is rejected.
func Plan(reg *features.Registry, requested []string, all bool) ([]features.Feature, error) {
	if all {
		return reg.All(), nil
	}
	if len(requested) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "at least one feature is required").
			WithDetail("available", strings.Join(reg.Names(), ", "))
	}
	return reg.Resolve(requested)
}

func names(plan []features.Feature) []string {
	out := make([]string, len(plan))
	for i, f := range plan {
		out[i] = f.Name
	}
	return out
}
