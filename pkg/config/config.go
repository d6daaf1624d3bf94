package config

// Config is the fully resolved red-panda configuration.
type Config struct {
	Sources      Sources      `koanf:"sources" toml:"sources"`
	Layout       Layout       `koanf:"layout" toml:"layout"`
	Dependencies Dependencies `koanf:"dependencies" toml:"dependencies"`
	Dotfiles     Dotfiles     `koanf:"dotfiles" toml:"dotfiles"`
	Shell        Shell        `koanf:"shell" toml:"shell"`
}

// Sources holds the remote endpoints each feature installs from.
// An empty URL is allowed; the feature using it fails at its clone step.
type Sources struct {
	Dotfiles     string `koanf:"dotfiles" toml:"dotfiles"`
	Neovim       string `koanf:"neovim" toml:"neovim"`
	Tmux         string `koanf:"tmux" toml:"tmux"`
	PublicKeys   string `koanf:"pubkeys" toml:"pubkeys"`
	ZshInstaller string `koanf:"zsh_installer" toml:"zsh_installer"`
}

// Layout names the directories and files created on disk.
type Layout struct {
	HollowDir      string `koanf:"hollow_dir" toml:"hollow_dir"`
	DotfilesDir    string `koanf:"dotfiles_dir" toml:"dotfiles_dir"`
	MarkerFile     string `koanf:"marker_file" toml:"marker_file"`
	MarkerVariable string `koanf:"marker_variable" toml:"marker_variable"`
}

// Dependencies lists the external tools that must launch before any mutation.
type Dependencies struct {
	Tools       []string `koanf:"tools" toml:"tools"`
	VersionFlag string   `koanf:"version_flag" toml:"version_flag"`
}

// Dotfiles controls the dotfiles bootstrap.
type Dotfiles struct {
	InstallScript string   `koanf:"install_script" toml:"install_script"`
	PackageIgnore []string `koanf:"package_ignore" toml:"package_ignore"`
	// StrictInstall makes a non-zero exit of the install entrypoint fatal.
	StrictInstall bool `koanf:"strict_install" toml:"strict_install"`
}

// Shell controls the zsh feature's vendor installer and rc file handling.
type Shell struct {
	Interpreter        string   `koanf:"interpreter" toml:"interpreter"`
	InstallerArgs      []string `koanf:"installer_args" toml:"installer_args"`
	RCFile             string   `koanf:"rc_file" toml:"rc_file"`
	VendorBackupSuffix string   `koanf:"vendor_backup_suffix" toml:"vendor_backup_suffix"`
}
