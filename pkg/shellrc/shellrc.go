// Package shellrc swaps the shell rc file a vendor installer wrote back out
// for the user's own.
//
// The oh-my-zsh installer replaces ~/.zshrc with its template and, when it
// found an existing file, keeps that as ~/.zshrc.pre-oh-my-zsh. Swap moves
// the vendor file aside and puts the user's file back:
//
//	VendorInstalled --Backup--> BackedUp --Restore--> Restored
//
// Restore prefers the vendor's own backup (RestoredFromVendorBackup) and
// otherwise moves the .bak file back into place (RestoredFromBak).
package shellrc

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/bjk2k/red-panda/pkg/errors"
	"github.com/bjk2k/red-panda/pkg/filesystem"
	"github.com/bjk2k/red-panda/pkg/logging"
	"github.com/bjk2k/red-panda/pkg/types"
)

// BackupSuffix is appended to the rc file when it is moved aside
const BackupSuffix = ".bak"

// State of a Swap
type State int

const (
	VendorInstalled State = iota
	BackedUp
	Restored
)

func (s State) String() string {
	switch s {
	case VendorInstalled:
		return "VendorInstalled"
	case BackedUp:
		return "BackedUp"
	case Restored:
		return "Restored"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Branch records which file Restore put back
type Branch int

const (
	NotRestored Branch = iota
	RestoredFromVendorBackup
	RestoredFromBak
)

func (b Branch) String() string {
	switch b {
	case NotRestored:
		return "NotRestored"
	case RestoredFromVendorBackup:
		return "RestoredFromVendorBackup"
	case RestoredFromBak:
		return "RestoredFromBak"
	default:
		return fmt.Sprintf("Branch(%d)", int(b))
	}
}

// Swap is a single-use rc file swap
type Swap struct {
	fs     types.FS
	logger zerolog.Logger

	rcFile       string
	backupFile   string
	vendorBackup string

	state  State
	branch Branch
}

// New prepares a swap of home/rcFile. vendorSuffix names the vendor's backup,
// e.g. ".pre-oh-my-zsh".
func New(fsys types.FS, home, rcFile, vendorSuffix string) *Swap {
	rc := filepath.Join(home, rcFile)
	return &Swap{
		fs:           fsys,
		logger:       logging.GetLogger("shellrc"),
		rcFile:       rc,
		backupFile:   rc + BackupSuffix,
		vendorBackup: rc + vendorSuffix,
		state:        VendorInstalled,
	}
}

func (s *Swap) State() State {
	return s.state
}

func (s *Swap) Branch() Branch {
	return s.branch
}

// Run performs Backup then Restore.
func (s *Swap) Run() error {
	if err := s.Backup(); err != nil {
		return err
	}
	return s.Restore()
}

// Backup renames the rc file to its .bak name. A missing rc file is an error.
func (s *Swap) Backup() error {
	if err := s.expect(VendorInstalled, "backup"); err != nil {
		return err
	}

	if ok, err := filesystem.Exists(s.fs, s.rcFile); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", s.rcFile)
	} else if !ok {
		return errors.Newf(errors.ErrFileNotFound, "%s not found; the shell installer did not create it", s.rcFile).
			WithDetail("path", s.rcFile)
	}

	if err := s.rename(s.rcFile, s.backupFile); err != nil {
		return err
	}

	s.state = BackedUp
	return nil
}

// Restore puts the user's rc file back in place.
func (s *Swap) Restore() error {
	if err := s.expect(BackedUp, "restore"); err != nil {
		return err
	}

	ok, err := filesystem.Exists(s.fs, s.vendorBackup)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", s.vendorBackup)
	}

	source, branch := s.backupFile, RestoredFromBak
	if ok {
		source, branch = s.vendorBackup, RestoredFromVendorBackup
	}

	if err := s.rename(source, s.rcFile); err != nil {
		return err
	}

	s.state = Restored
	s.branch = branch
	s.logger.Info().
		Str("rc", s.rcFile).
		Str("from", source).
		Stringer("branch", branch).
		Msg("Restored shell rc file")
	return nil
}

func (s *Swap) expect(want State, transition string) error {
	if s.state != want {
		return errors.Newf(errors.ErrInvalidState, "cannot %s rc file in state %s", transition, s.state).
			WithDetail("state", s.state.String())
	}
	return nil
}

func (s *Swap) rename(from, to string) error {
	s.logger.Debug().Str("from", from).Str("to", to).Msg("Renaming")
	if err := s.fs.Rename(from, to); err != nil {
		code := errors.ErrFileRename
		if os.IsNotExist(err) {
			code = errors.ErrFileNotFound
		}
		return errors.Wrapf(err, code, "failed to rename %s to %s", from, to)
	}
	return nil
}
