package config

import (
	toml "github.com/pelletier/go-toml/v2"

	rperrors "github.com/bjk2k/red-panda/pkg/errors"
)

// RenderTOML renders the effective configuration in the same shape as the
// user config file, so the output can be saved and edited.
func RenderTOML(cfg *Config) (string, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", rperrors.Wrap(err, rperrors.ErrInternal, "failed to render configuration")
	}
	return string(out), nil
}
