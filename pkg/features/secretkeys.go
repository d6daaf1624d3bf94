package features

import (
	"context"

	"github.com/bjk2k/red-panda/pkg/errors"
)

// secretKeysInstaller is a placeholder; both entry points refuse to run.
type secretKeysInstaller struct{}

func (secretKeysInstaller) Preflight(context.Context, Env) error {
	return notImplemented()
}

func (secretKeysInstaller) Install(context.Context, Env) error {
	return notImplemented()
}

func notImplemented() error {
	return errors.New(errors.ErrNotImplemented, "secretkeys: installing secret keys is not implemented").
		WithDetail("feature", SecretKeys)
}
