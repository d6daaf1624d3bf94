package features

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/bjk2k/red-panda/pkg/errors"
	"github.com/bjk2k/red-panda/pkg/logging"
	"github.com/bjk2k/red-panda/pkg/system"
	"github.com/bjk2k/red-panda/pkg/types"
)

// Companion repository directories under the installation root
const (
	NeovimDir     = "configurations-neovim"
	TmuxDir       = "configurations-tmux"
	PublicKeysDir = "public-keys"
)

// NeovimSetupScript is run from the neovim clone with the installation root
const NeovimSetupScript = "setup.sh"

// cloner is the only git operation companion features need
type cloner interface {
	Clone(ctx context.Context, url, dest string) error
}

// link describes a symlink placed after cloning: ConfigHome/<name> -> clone/<target>
type link struct {
	name   string
	target string
}

// companionInstaller clones a configuration repository into the installation
// root, optionally runs its setup script and links it into ConfigHome.
type companionInstaller struct {
	label    string
	url      string
	dir      string
	setup    bool
	link     *link
	git      cloner
	runner   types.Runner
	fs       types.FS
	reporter types.Reporter
	logger   zerolog.Logger
}

func newCompanion(label, url, dir string, deps Deps) *companionInstaller {
	return &companionInstaller{
		label:    label,
		url:      url,
		dir:      dir,
		git:      deps.Git,
		runner:   deps.Runner,
		fs:       deps.FS,
		reporter: deps.Reporter,
		logger:   logging.GetLogger("features." + label),
	}
}

func newNeovimInstaller(url string, deps Deps) *companionInstaller {
	c := newCompanion(Neovim, url, NeovimDir, deps)
	c.setup = true
	c.link = &link{name: "nvim", target: filepath.Join("vscode", "nvim")}
	return c
}

func newTmuxInstaller(url string, deps Deps) *companionInstaller {
	c := newCompanion(Tmux, url, TmuxDir, deps)
	c.link = &link{name: "tmux", target: "."}
	return c
}

func newPublicKeysInstaller(url string, deps Deps) *companionInstaller {
	return newCompanion(PublicKeys, url, PublicKeysDir, deps)
}

// Destination returns where the repository is cloned for env.
func (c *companionInstaller) Destination(env Env) string {
	return filepath.Join(env.InstallationRoot, c.dir)
}

func (c *companionInstaller) Install(ctx context.Context, env Env) error {
	dest := c.Destination(env)

	c.reporter.Detail("Downloading %s configuration into %s", c.label, dest)
	if err := c.git.Clone(ctx, c.url, dest); err != nil {
		return errors.Wrapf(err, errors.GetErrorCode(err), "%s: clone failed", c.label).
			WithDetail("feature", c.label)
	}

	if c.setup {
		if err := c.runSetup(ctx, env, dest); err != nil {
			return err
		}
	}

	if c.link != nil {
		if err := c.createLink(env, dest); err != nil {
			return err
		}
	}
	return nil
}

func (c *companionInstaller) runSetup(ctx context.Context, env Env, dest string) error {
	cmd := types.Command{
		Name: "bash",
		Args: []string{filepath.Join(dest, NeovimSetupScript), env.InstallationRoot},
	}

	c.reporter.Note("Triggering install script...")
	res, err := c.runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	c.reporter.Output(res.Stdout)
	c.reporter.Note(">> exit status %d", res.ExitCode)

	return system.RequireSuccess(cmd, res)
}

func (c *companionInstaller) createLink(env Env, dest string) error {
	linkPath := filepath.Join(env.ConfigHome, c.link.name)
	target := filepath.Clean(filepath.Join(dest, c.link.target))

	c.reporter.Note("Linking %s configuration", c.label)
	if err := c.fs.MkdirAll(env.ConfigHome, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", env.ConfigHome)
	}
	if err := c.fs.Symlink(target, linkPath); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to link %s to %s", linkPath, target).
			WithDetail("link", linkPath).
			WithDetail("target", target)
	}
	c.logger.Info().Str("link", linkPath).Str("target", target).Msg("Linked configuration")
	return nil
}
