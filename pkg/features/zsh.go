package features

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bjk2k/red-panda/pkg/config"
	"github.com/bjk2k/red-panda/pkg/errors"
	"github.com/bjk2k/red-panda/pkg/filesystem"
	"github.com/bjk2k/red-panda/pkg/logging"
	"github.com/bjk2k/red-panda/pkg/shellrc"
	"github.com/bjk2k/red-panda/pkg/system"
	"github.com/bjk2k/red-panda/pkg/types"
)

// VendorScriptName is the downloaded oh-my-zsh installer under the installation root
const VendorScriptName = "ohmyzsh-install.sh"

// Downloader fetches the vendor installer
const Downloader = "curl"

// packageResetter restores a dotfiles package to its committed state
type packageResetter interface {
	ResetPackage(dotfilesRoot, name string) error
}

type zshInstaller struct {
	shell    config.Shell
	url      string
	packages packageResetter
	runner   types.Runner
	fs       types.FS
	reporter types.Reporter
	logger   zerolog.Logger
}

func newZshInstaller(shell config.Shell, url string, packages packageResetter, deps Deps) *zshInstaller {
	return &zshInstaller{
		shell:    shell,
		url:      url,
		packages: packages,
		runner:   deps.Runner,
		fs:       deps.FS,
		reporter: deps.Reporter,
		logger:   logging.GetLogger("features.zsh"),
	}
}

// Install downloads and runs the vendor installer, swaps the user's rc file
// back into place and resets the zsh dotfiles package.
func (z *zshInstaller) Install(ctx context.Context, env Env) error {
	if strings.TrimSpace(z.url) == "" {
		return errors.New(errors.ErrSourceUnset, "zsh: no installer URL configured").
			WithDetail("feature", Zsh)
	}

	script := filepath.Join(env.InstallationRoot, VendorScriptName)

	z.reporter.Detail("Downloading oh-my-zsh installer into %s", script)
	download := types.Command{
		Name: Downloader,
		Args: []string{"-fsSL", "-o", script, z.url},
	}
	if err := z.run(ctx, download); err != nil {
		return err
	}

	z.reporter.Note("Triggering install script...")
	install := types.Command{
		Name: z.shell.Interpreter,
		Args: append([]string{script}, z.shell.InstallerArgs...),
		Dir:  env.Home,
	}
	if err := z.run(ctx, install); err != nil {
		return err
	}

	if err := z.removeScript(script); err != nil {
		return err
	}

	z.reporter.Note("Restoring %s", z.shell.RCFile)
	swap := shellrc.New(z.fs, env.Home, z.shell.RCFile, z.shell.VendorBackupSuffix)
	if err := swap.Run(); err != nil {
		return err
	}
	z.logger.Debug().Stringer("branch", swap.Branch()).Msg("Shell rc swap finished")

	return z.packages.ResetPackage(env.DotfilesRoot, Zsh)
}

func (z *zshInstaller) run(ctx context.Context, cmd types.Command) error {
	res, err := z.runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	z.reporter.Output(res.Stdout)
	z.reporter.Note(">> exit status %d", res.ExitCode)
	return system.RequireSuccess(cmd, res)
}

func (z *zshInstaller) removeScript(script string) error {
	ok, err := filesystem.Exists(z.fs, script)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", script)
	}
	if !ok {
		return nil
	}
	if err := z.fs.Remove(script); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to remove %s", script)
	}
	return nil
}
