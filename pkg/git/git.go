// Package git wraps the handful of go-git operations red-panda needs:
// cloning a source repository, probing whether a directory is a checkout,
// and restoring a tracked subtree to its committed state.
package git

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/rs/zerolog"

	rperrors "github.com/bjk2k/red-panda/pkg/errors"
	"github.com/bjk2k/red-panda/pkg/logging"
)

// Client performs repository operations against the local filesystem.
type Client struct {
	logger zerolog.Logger
	// Progress receives the remote's sideband output during clones.
	Progress io.Writer
}

// NewClient creates a git client.
func NewClient() *Client {
	return &Client{
		logger: logging.GetLogger("git"),
	}
}

// Clone clones url into dest. dest must not exist; it is never reused.
// A directory left behind by a failed clone is removed.
func (c *Client) Clone(ctx context.Context, url, dest string) error {
	if strings.TrimSpace(url) == "" {
		return rperrors.New(rperrors.ErrSourceUnset, "no source repository configured").
			WithDetail("destination", dest)
	}

	if _, err := os.Lstat(dest); err == nil {
		return rperrors.Newf(rperrors.ErrDestinationExists, "destination %s already exists", dest).
			WithDetail("destination", dest)
	} else if !os.IsNotExist(err) {
		return rperrors.Wrapf(err, rperrors.ErrFileAccess, "cannot inspect %s", dest)
	}

	done := logging.LogOperationStart(c.logger, "clone")
	defer done()
	c.logger.Info().Str("url", url).Str("destination", dest).Msg("Cloning repository")

	_, err := git.PlainCloneContext(ctx, dest, false, &git.CloneOptions{
		URL:      url,
		Progress: c.Progress,
	})
	if err != nil {
		_ = os.RemoveAll(dest)
		return rperrors.Wrapf(err, rperrors.ErrCloneFailed, "failed to clone %s", url).
			WithDetail("url", url).
			WithDetail("destination", dest)
	}
	return nil
}

// IsRepository reports whether path is the root of a git checkout.
// Parent directories are not searched.
func (c *Client) IsRepository(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

// Restore discards index and worktree changes to every tracked file under
// subpath (relative to root), bringing it back to HEAD. Files that are not
// tracked are left alone. Restoring an already pristine subtree is a no-op.
func (c *Client) Restore(root, subpath string) error {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return rperrors.Wrapf(err, rperrors.ErrNotRepository, "%s is not a repository", root)
	}

	files, err := trackedFiles(repo, subpath)
	if err != nil {
		return rperrors.Wrapf(err, rperrors.ErrRestoreFailed, "failed to list tracked files in %s", subpath)
	}
	if len(files) == 0 {
		c.logger.Debug().Str("root", root).Str("path", subpath).Msg("Nothing tracked, skipping restore")
		return nil
	}

	wt, err := repo.Worktree()
	if err != nil {
		return rperrors.Wrapf(err, rperrors.ErrRestoreFailed, "failed to open worktree of %s", root)
	}

	c.logger.Debug().Str("root", root).Str("path", subpath).Int("files", len(files)).Msg("Restoring tracked files")
	if err := wt.Restore(&git.RestoreOptions{Staged: true, Worktree: true, Files: files}); err != nil {
		return rperrors.Wrapf(err, rperrors.ErrRestoreFailed, "failed to restore %s", subpath).
			WithDetail("root", root)
	}
	return nil
}

func trackedFiles(repo *git.Repository, subpath string) ([]string, error) {
	head, err := repo.Head()
	if err != nil {
		return nil, err
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, err
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, err
	}

	prefix := filepath.ToSlash(filepath.Clean(subpath))
	var files []string
	err = tree.Files().ForEach(func(f *object.File) error {
		if prefix == "." || f.Name == prefix || strings.HasPrefix(f.Name, prefix+"/") {
			files = append(files, f.Name)
		}
		return nil
	})
	return files, err
}
