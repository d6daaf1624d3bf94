// pkg/git/git_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: go-git fixture repositories, git binary for local clones
// PURPOSE: Test clone, repository probing and scoped restore

package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjk2k/red-panda/pkg/errors"
	"github.com/bjk2k/red-panda/pkg/git"
	"github.com/bjk2k/red-panda/pkg/testutil"
)

var dotfiles = map[string]string{
	"install.sh":      "#!/bin/bash\nstow zsh tmux\n",
	"zsh/.zshrc":      "export ZSH=pandas\n",
	"zsh/aliases.zsh": "alias ll='ls -l'\n",
	"tmux/.tmux.conf": "set -g mouse on\n",
}

func TestClone_FromLocalFixture(t *testing.T) {
	testutil.RequireGitBinary(t)
	remote := testutil.NewFixtureRepo(t, dotfiles)
	dest := filepath.Join(t.TempDir(), "clone")

	client := git.NewClient()
	require.NoError(t, client.Clone(context.Background(), remote, dest))

	content, err := os.ReadFile(filepath.Join(dest, "zsh", ".zshrc"))
	require.NoError(t, err)
	assert.Equal(t, "export ZSH=pandas\n", string(content))
	assert.True(t, client.IsRepository(dest))
}

func TestClone_EmptyURL(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "public-keys")

	err := git.NewClient().Clone(context.Background(), "", dest)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceUnset))
	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr), "no directory should be created")
}

func TestClone_DestinationExists(t *testing.T) {
	dest := t.TempDir()
	marker := testutil.WriteFile(t, dest, "keep.txt", "mine")

	err := git.NewClient().Clone(context.Background(), "https://example.invalid/repo.git", dest)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDestinationExists))
	_, statErr := os.Stat(marker)
	assert.NoError(t, statErr, "an existing destination must not be touched")
}

func TestClone_FailureRemovesPartialDirectory(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "configurations-tmux")
	missing := filepath.Join(t.TempDir(), "no-such-remote")

	err := git.NewClient().Clone(context.Background(), missing, dest)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCloneFailed))
	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}

func TestIsRepository(t *testing.T) {
	client := git.NewClient()

	assert.False(t, client.IsRepository(filepath.Join(t.TempDir(), "absent")))
	assert.False(t, client.IsRepository(t.TempDir()))
	assert.True(t, client.IsRepository(testutil.NewFixtureRepo(t, dotfiles)))
}

func TestRestore_DiscardsChangesInPackageOnly(t *testing.T) {
	repo := testutil.NewFixtureRepo(t, dotfiles)
	client := git.NewClient()

	testutil.WriteFile(t, repo, "zsh/.zshrc", "overwritten by vendor\n")
	require.NoError(t, os.Remove(filepath.Join(repo, "zsh", "aliases.zsh")))
	testutil.WriteFile(t, repo, "tmux/.tmux.conf", "local tweak\n")

	require.NoError(t, client.Restore(repo, "zsh"))

	content, err := os.ReadFile(filepath.Join(repo, "zsh", ".zshrc"))
	require.NoError(t, err)
	assert.Equal(t, "export ZSH=pandas\n", string(content))

	_, err = os.Stat(filepath.Join(repo, "zsh", "aliases.zsh"))
	assert.NoError(t, err, "deleted tracked file should come back")

	content, err = os.ReadFile(filepath.Join(repo, "tmux", ".tmux.conf"))
	require.NoError(t, err)
	assert.Equal(t, "local tweak\n", string(content), "other packages are not touched")
}

func TestRestore_IsIdempotent(t *testing.T) {
	repo := testutil.NewFixtureRepo(t, dotfiles)
	client := git.NewClient()
	before := testutil.ListTree(t, repo)

	require.NoError(t, client.Restore(repo, "zsh"))
	require.NoError(t, client.Restore(repo, "zsh"))

	assert.Equal(t, before, testutil.ListTree(t, repo))
	content, err := os.ReadFile(filepath.Join(repo, "zsh", ".zshrc"))
	require.NoError(t, err)
	assert.Equal(t, "export ZSH=pandas\n", string(content))
}

func TestRestore_LeavesUntrackedFiles(t *testing.T) {
	repo := testutil.NewFixtureRepo(t, dotfiles)
	untracked := testutil.WriteFile(t, repo, "zsh/.zcompdump", "cache")

	require.NoError(t, git.NewClient().Restore(repo, "zsh"))

	_, err := os.Stat(untracked)
	assert.NoError(t, err)
}

func TestRestore_UntrackedPackageIsNoop(t *testing.T) {
	repo := testutil.NewFixtureRepo(t, dotfiles)
	testutil.WriteFile(t, repo, "scratch/notes.txt", "hi")

	assert.NoError(t, git.NewClient().Restore(repo, "scratch"))
}

func TestRestore_NotARepository(t *testing.T) {
	err := git.NewClient().Restore(t.TempDir(), "zsh")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotRepository))
}
