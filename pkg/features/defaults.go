package features

import (
	"fmt"

	"github.com/bjk2k/red-panda/pkg/config"
	"github.com/bjk2k/red-panda/pkg/dotfiles"
	"github.com/bjk2k/red-panda/pkg/types"
)

// Deps are the side-effecting collaborators installers are built from
type Deps struct {
	Runner   types.Runner
	Git      dotfiles.Repository
	FS       types.FS
	Reporter types.Reporter
}

// NewDefaultRegistry registers the built-in features in canonical order.
func NewDefaultRegistry(cfg *config.Config, deps Deps) *Registry {
	reg := NewRegistry()
	packages := dotfiles.NewBootstrapper(cfg, deps.Git, deps.Runner, deps.FS, deps.Reporter)

	for _, f := range []Feature{
		{
			Name:        Zsh,
			Description: "oh-my-zsh with the zsh dotfiles package",
			Installer:   newZshInstaller(cfg.Shell, cfg.Sources.ZshInstaller, packages, deps),
		},
		{
			Name:        Neovim,
			Description: "neovim configuration, linked into ~/.config/nvim",
			Installer:   newNeovimInstaller(cfg.Sources.Neovim, deps),
		},
		{
			Name:        PublicKeys,
			Description: "public keys repository",
			Installer:   newPublicKeysInstaller(cfg.Sources.PublicKeys, deps),
		},
		{
			Name:        Tmux,
			Description: "tmux configuration, linked into ~/.config/tmux",
			Installer:   newTmuxInstaller(cfg.Sources.Tmux, deps),
		},
		{
			Name:        SecretKeys,
			Description: "secret keys (not implemented)",
			Installer:   secretKeysInstaller{},
		},
	} {
		if err := reg.Register(f); err != nil {
			panic(fmt.Sprintf("failed to register feature %s: %v", f.Name, err))
		}
	}
	return reg
}
