// pkg/testutil/git.go
// DEPENDENCIES: go-git
// PURPOSE: Git doubles: an in-process fake and real fixture repositories

package testutil

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	rperrors "github.com/bjk2k/red-panda/pkg/errors"
)

// FakeGit stands in for git.Client. Clone materialises the files registered
// for a URL plus an empty .git directory.
type FakeGit struct {
	mu       sync.Mutex
	repos    map[string]map[string]string
	Cloned   []string
	Restored []string
	// RestoreErr, when set, is returned by every Restore call.
	RestoreErr error
}

// NewFakeGit creates a FakeGit with no known remotes.
func NewFakeGit() *FakeGit {
	return &FakeGit{repos: make(map[string]map[string]string)}
}

// AddRemote registers a cloneable URL and the files it contains.
func (g *FakeGit) AddRemote(url string, files map[string]string) *FakeGit {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.repos[url] = files
	return g
}

// Clone mirrors git.Client.Clone's contract.
func (g *FakeGit) Clone(_ context.Context, url, dest string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if url == "" {
		return rperrors.New(rperrors.ErrSourceUnset, "no source repository configured")
	}
	if _, err := os.Lstat(dest); err == nil {
		return rperrors.Newf(rperrors.ErrDestinationExists, "destination %s already exists", dest)
	}
	files, ok := g.repos[url]
	if !ok {
		return rperrors.Newf(rperrors.ErrCloneFailed, "failed to clone %s", url)
	}

	if err := os.MkdirAll(filepath.Join(dest, ".git"), 0755); err != nil {
		return err
	}
	for rel, content := range files {
		path := filepath.Join(dest, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	g.Cloned = append(g.Cloned, dest)
	return nil
}

// IsRepository reports whether path has a .git directory.
func (g *FakeGit) IsRepository(path string) bool {
	info, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil && info.IsDir()
}

// Restore records root/subpath.
func (g *FakeGit) Restore(root, subpath string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Restored = append(g.Restored, filepath.Join(root, subpath))
	return g.RestoreErr
}

// RequireGitBinary skips the test when no git binary is available. go-git's
// local file transport shells out to git-upload-pack.
func RequireGitBinary(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

// NewFixtureRepo creates a real repository with files committed at HEAD and
// returns its path, usable as a clone URL.
func NewFixtureRepo(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "remote")
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("Failed to init fixture repo: %v", err)
	}
	for rel, content := range files {
		WriteFile(t, dir, rel, content)
	}

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to open fixture worktree: %v", err)
	}
	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		t.Fatalf("Failed to stage fixture files: %v", err)
	}
	_, err = wt.Commit("fixture", &git.CommitOptions{
		Author: &object.Signature{Name: "Red Panda", Email: "panda@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("Failed to commit fixture: %v", err)
	}
	return dir
}
