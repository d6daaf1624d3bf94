// pkg/shellrc/shellrc_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Temp directories
// PURPOSE: Test both restore branches and invalid transitions of the rc swap

package shellrc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjk2k/red-panda/pkg/errors"
	"github.com/bjk2k/red-panda/pkg/filesystem"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSwap_RestoresVendorBackup(t *testing.T) {
	home := t.TempDir()
	write(t, filepath.Join(home, ".zshrc"), "vendor template")
	write(t, filepath.Join(home, ".zshrc.pre-oh-my-zsh"), "user rc")

	s := New(filesystem.NewOS(), home, ".zshrc", ".pre-oh-my-zsh")
	require.NoError(t, s.Run())

	assert.Equal(t, Restored, s.State())
	assert.Equal(t, RestoredFromVendorBackup, s.Branch())
	assert.Equal(t, "user rc", read(t, filepath.Join(home, ".zshrc")))
	assert.Equal(t, "vendor template", read(t, filepath.Join(home, ".zshrc.bak")))
	assert.NoFileExists(t, filepath.Join(home, ".zshrc.pre-oh-my-zsh"))
}

func TestSwap_RestoresBakWithoutVendorBackup(t *testing.T) {
	home := t.TempDir()
	write(t, filepath.Join(home, ".zshrc"), "vendor template")

	s := New(filesystem.NewOS(), home, ".zshrc", ".pre-oh-my-zsh")
	require.NoError(t, s.Run())

	assert.Equal(t, Restored, s.State())
	assert.Equal(t, RestoredFromBak, s.Branch())
	assert.Equal(t, "vendor template", read(t, filepath.Join(home, ".zshrc")))
	assert.NoFileExists(t, filepath.Join(home, ".zshrc.bak"))
}

func TestSwap_MissingRCFile(t *testing.T) {
	home := t.TempDir()

	s := New(filesystem.NewOS(), home, ".zshrc", ".pre-oh-my-zsh")
	err := s.Run()

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
	assert.Equal(t, VendorInstalled, s.State())
	assert.Equal(t, NotRestored, s.Branch())
}

func TestSwap_InvalidTransitions(t *testing.T) {
	home := t.TempDir()
	write(t, filepath.Join(home, ".zshrc"), "vendor template")

	s := New(filesystem.NewOS(), home, ".zshrc", ".pre-oh-my-zsh")

	err := s.Restore()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidState))

	require.NoError(t, s.Backup())
	assert.Equal(t, BackedUp, s.State())

	err = s.Backup()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidState))

	require.NoError(t, s.Restore())

	err = s.Run()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidState))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "VendorInstalled", VendorInstalled.String())
	assert.Equal(t, "BackedUp", BackedUp.String())
	assert.Equal(t, "Restored", Restored.String())
	assert.Equal(t, "RestoredFromBak", RestoredFromBak.String())
}
