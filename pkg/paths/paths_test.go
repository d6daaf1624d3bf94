// pkg/paths/paths_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Temp directories, HOME isolation
// PURPOSE: Test layout derivation and install-dir validation

package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjk2k/red-panda/pkg/config"
	"github.com/bjk2k/red-panda/pkg/errors"
)

func testLayout() config.Layout {
	return config.Layout{
		HollowDir:      "red-panda-hollow",
		DotfilesDir:    ".red-panda-dotfiles",
		MarkerFile:     "~/.red_panda_setup.sh",
		MarkerVariable: "RED_PANDA_ROOT",
	}
}

func TestNew_Layout(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	target := t.TempDir()

	p, err := New(target, testLayout())
	require.NoError(t, err)

	assert.Equal(t, target, p.Target())
	assert.Equal(t, filepath.Join(target, "red-panda-hollow"), p.InstallationRoot())
	assert.Equal(t, filepath.Join(target, ".red-panda-dotfiles"), p.DotfilesRoot())
	assert.Equal(t, home, p.Home())
	assert.Equal(t, filepath.Join(home, ".config"), p.ConfigHome())
	assert.Equal(t, filepath.Join(home, ".red_panda_setup.sh"), p.MarkerFile())
}

func TestNew_RelativeTargetIsMadeAbsolute(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p, err := New("some/dir", testLayout())
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(p.Target()))
	assert.True(t, filepath.IsAbs(p.InstallationRoot()))
}

func TestNew_RelativeMarkerIsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	layout := testLayout()
	layout.MarkerFile = ".panda"
	p, err := New(t.TempDir(), layout)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".panda"), p.MarkerFile())
}

func TestNew_HomeUnset(t *testing.T) {
	t.Setenv("HOME", "")

	_, err := New(t.TempDir(), testLayout())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrHomeUnset))
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tilde alone", "~", home},
		{"tilde prefix", "~/dotfiles", filepath.Join(home, "dotfiles")},
		{"absolute", "/etc/hosts", "/etc/hosts"},
		{"relative", "foo/bar", "foo/bar"},
		{"other user is untouched", "~bob/x", "~bob/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}

func TestValidateInstallDir(t *testing.T) {
	base := t.TempDir()

	file := filepath.Join(base, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	readOnly := filepath.Join(base, "ro")
	require.NoError(t, os.Mkdir(readOnly, 0555))
	t.Cleanup(func() { _ = os.Chmod(readOnly, 0755) })

	tests := []struct {
		name    string
		dir     string
		wantErr bool
	}{
		{"writable directory", base, false},
		{"missing", filepath.Join(base, "nope"), true},
		{"regular file", file, true},
		{"read-only directory", readOnly, true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInstallDir(tt.dir)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInstallDirInvalid), "got %v", err)
		})
	}
}

func TestValidateInstallDir_DoesNotMutate(t *testing.T) {
	base := t.TempDir()
	missing := filepath.Join(base, "missing")

	_ = ValidateInstallDir(missing)

	_, err := os.Stat(missing)
	assert.True(t, os.IsNotExist(err))
}
