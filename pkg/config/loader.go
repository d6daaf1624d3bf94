package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	rperrors "github.com/bjk2k/red-panda/pkg/errors"
	"github.com/bjk2k/red-panda/pkg/logging"
)

const (
	// EnvConfigFile points at a user config file, overriding the XDG location.
	EnvConfigFile = "RED_PANDA_CONFIG"

	// EnvPrefix prefixes environment overrides, e.g. RED_PANDA_SOURCES__PUBKEYS.
	EnvPrefix = "RED_PANDA_"

	appDirName     = "red-panda"
	configFileName = "config.toml"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// LoadOptions selects the user configuration file.
type LoadOptions struct {
	// File is an explicit config file. It must exist when set.
	File string
}

// DefaultFile returns the user config file location used when neither
// LoadOptions.File nor RED_PANDA_CONFIG is set.
func DefaultFile() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appDirName, configFileName)
	}
	return filepath.Join(xdg.ConfigHome, appDirName, configFileName)
}

// Default returns the configuration built from the embedded defaults only.
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, rperrors.Wrap(err, rperrors.ErrConfigParse, "failed to load defaults")
	}
	return unmarshal(k)
}

// Load resolves the configuration: embedded defaults, then the user file,
// then environment overrides.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, rperrors.Wrap(err, rperrors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	path, explicit := userFile(opts)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, rperrors.Wrapf(err, rperrors.ErrConfigParse, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
	} else if explicit {
		return nil, rperrors.Wrapf(err, rperrors.ErrConfigLoad, "config file %s is not readable", path)
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, rperrors.Wrap(err, rperrors.ErrConfigLoad, "failed to load env vars")
	}

	return unmarshal(k)
}

func userFile(opts LoadOptions) (string, bool) {
	if opts.File != "" {
		return opts.File, true
	}
	if path := os.Getenv(EnvConfigFile); path != "" {
		return path, true
	}
	return DefaultFile(), false
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, rperrors.Wrap(err, rperrors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// ActiveFile returns the user config file Load reads for opts, or "" when
// there is none and only defaults and environment apply.
func ActiveFile(opts LoadOptions) string {
	path, _ := userFile(opts)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
