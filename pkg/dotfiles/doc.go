// Package dotfiles bootstraps the dotfiles checkout every installation run
// starts from.
//
// Setup always produces a fresh clone: an existing checkout is deleted and
// cloned again, so local edits under DotfilesRoot do not survive a run. After
// cloning it runs the repository's install entrypoint, writes the environment
// marker file that exports the installation root, and resets every stow
// package (non-hidden top-level directory) to its committed state.
package dotfiles
