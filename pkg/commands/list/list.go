package list

import (
	"github.com/bjk2k/red-panda/pkg/features"
	"github.com/bjk2k/red-panda/pkg/logging"
)

// FeatureInfo is one row of the listing.
type FeatureInfo struct {
	Name        string
	Description string
}

// Result is the feature listing in canonical order.
type Result struct {
	Features []FeatureInfo
}

// Names returns the listed names in order.
func (r *Result) Names() []string {
	out := make([]string, len(r.Features))
	for i, f := range r.Features {
		out[i] = f.Name
	}
	return out
}

// Features lists every registered feature. It runs no dependency check and
// touches nothing on disk.
func Features(reg *features.Registry) *Result {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "List").Msg("Executing command")

	all := reg.All()
	result := &Result{Features: make([]FeatureInfo, len(all))}
	for i, f := range all {
		result.Features[i] = FeatureInfo{Name: f.Name, Description: f.Description}
	}

	log.Info().Str("command", "List").Int("featureCount", len(result.Features)).Msg("Command finished")
	return result
}
