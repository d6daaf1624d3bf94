package paths

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/bjk2k/red-panda/pkg/errors"
)

// ValidateInstallDir checks that dir exists, is a directory and is writable by
// the current user. Nothing is created or modified.
func ValidateInstallDir(dir string) error {
	if dir == "" {
		return errors.New(errors.ErrInstallDirInvalid, "no installation directory given")
	}

	path := ExpandHome(dir)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrInstallDirInvalid, "%s does not exist", dir).
				WithDetail("path", path)
		}
		return errors.Wrapf(err, errors.ErrInstallDirInvalid, "cannot inspect %s", dir).
			WithDetail("path", path)
	}

	if !info.IsDir() {
		return errors.Newf(errors.ErrInstallDirInvalid, "%s is not a directory", dir).
			WithDetail("path", path)
	}

	// Mode bits first: a read-only directory is rejected even for root.
	if info.Mode().Perm()&0200 == 0 {
		return errors.Newf(errors.ErrInstallDirInvalid, "%s is read-only", dir).
			WithDetail("path", path).
			WithDetail("mode", info.Mode().Perm().String())
	}

	if err := unix.Access(path, unix.W_OK); err != nil {
		return errors.Wrapf(err, errors.ErrInstallDirInvalid, "%s is not writable", dir).
			WithDetail("path", path)
	}

	return nil
}
