package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/bjk2k/red-panda/pkg/config"
	"github.com/bjk2k/red-panda/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// ConfigDirName is the directory under HOME that feature configs are linked into
const ConfigDirName = ".config"

func init() {
	// HOME is swapped per test and per run; never serve a stale value.
	homedir.DisableCache = true
}

// Paths provides the on-disk layout for one installation run
type Paths interface {
	Target() string
	InstallationRoot() string
	DotfilesRoot() string
	Home() string
	ConfigHome() string
	MarkerFile() string
}

type paths struct {
	target           string
	installationRoot string
	dotfilesRoot     string
	home             string
	markerFile       string
}

// New creates the layout rooted at target. target is made absolute; HOME must
// be set.
func New(target string, layout config.Layout) (Paths, error) {
	home, err := Home()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(ExpandHome(target))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", target)
	}

	marker, err := homedir.Expand(layout.MarkerFile)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid marker file path %q", layout.MarkerFile)
	}
	if marker != "" && !filepath.IsAbs(marker) {
		marker = filepath.Join(home, marker)
	}

	return &paths{
		target:           abs,
		installationRoot: filepath.Join(abs, layout.HollowDir),
		dotfilesRoot:     filepath.Join(abs, layout.DotfilesDir),
		home:             home,
		markerFile:       marker,
	}, nil
}

func (p *paths) Target() string {
	return p.target
}

func (p *paths) InstallationRoot() string {
	return p.installationRoot
}

func (p *paths) DotfilesRoot() string {
	return p.dotfilesRoot
}

func (p *paths) Home() string {
	return p.home
}

func (p *paths) ConfigHome() string {
	return filepath.Join(p.home, ConfigDirName)
}

func (p *paths) MarkerFile() string {
	return p.markerFile
}

// Home returns $HOME. Unlike os.UserHomeDir there is no fallback: an unset or
// empty HOME is an ErrHomeUnset error.
func Home() (string, error) {
	home := strings.TrimSpace(os.Getenv(EnvHome))
	if home == "" {
		return "", errors.New(errors.ErrHomeUnset, "HOME environment variable is not set")
	}
	return home, nil
}

// ExpandHome expands a leading ~ to the user's home directory.
// Paths it cannot expand are returned unchanged.
func ExpandHome(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}
