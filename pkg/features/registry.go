package features

import (
	"strings"

	"github.com/bjk2k/red-panda/pkg/errors"
	"github.com/bjk2k/red-panda/pkg/registry"
)

// Registry is the ordered feature table
type Registry struct {
	items registry.Registry[Feature]
}

// NewRegistry creates an empty feature registry.
func NewRegistry() *Registry {
	return &Registry{items: registry.New[Feature]()}
}

// Register appends f to the canonical order.
func (r *Registry) Register(f Feature) error {
	if f.Installer == nil {
		return errors.Newf(errors.ErrInvalidInput, "feature %q has no installer", f.Name)
	}
	return r.items.Register(f.Name, f)
}

// Names returns every feature name in canonical order.
func (r *Registry) Names() []string {
	return r.items.List()
}

// Lookup returns the named feature or an ErrUnknownFeature error.
func (r *Registry) Lookup(name string) (Feature, error) {
	f, err := r.items.Get(name)
	if err != nil {
		return Feature{}, errors.Wrapf(err, errors.ErrUnknownFeature, "unknown feature %q", name).
			WithDetail("feature", name).
			WithDetail("available", strings.Join(r.Names(), ", "))
	}
	return f, nil
}

// All returns every feature in canonical order.
func (r *Registry) All() []Feature {
	names := r.Names()
	all := make([]Feature, 0, len(names))
	for _, name := range names {
		if f, err := r.items.Get(name); err == nil {
			all = append(all, f)
		}
	}
	return all
}

// Resolve maps names to features in the order given. Duplicates are kept;
// the first unknown name fails the whole resolution.
func (r *Registry) Resolve(names []string) ([]Feature, error) {
	plan := make([]Feature, 0, len(names))
	for _, name := range names {
		f, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		plan = append(plan, f)
	}
	return plan, nil
}
