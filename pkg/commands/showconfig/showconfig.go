package showconfig

import (
	"github.com/bjk2k/red-panda/pkg/config"
	"github.com/bjk2k/red-panda/pkg/logging"
)

// Options defines the options for Show.
type Options struct {
	Config *config.Config
	// Load is what the configuration was loaded with.
	Load config.LoadOptions
}

// Result is the rendered configuration.
type Result struct {
	// Source is the user config file in effect, empty for defaults only.
	Source string
	TOML   string
}

// Show renders the effective configuration as TOML.
func Show(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.showconfig")
	log.Debug().Str("command", "Config").Msg("Executing command")

	out, err := config.RenderTOML(opts.Config)
	if err != nil {
		return nil, err
	}

	return &Result{
		Source: config.ActiveFile(opts.Load),
		TOML:   out,
	}, nil
}
