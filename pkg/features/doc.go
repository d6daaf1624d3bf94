// Package features defines the closed set of installable features and the
// routine behind each one.
//
// A Feature pairs a stable name with an Installer. NewDefaultRegistry
// registers the built-in features in their canonical order:
//
//	zsh, neovim, pubkeys, tmux, secretkeys
//
// That order is what `list` prints and what `full-install` installs. Adding a
// feature means writing its Installer and registering it in
// NewDefaultRegistry; nothing else changes.
//
// Installers that can tell up front that they will fail implement
// Preflighter. The orchestrator runs every planned preflight before touching
// the filesystem.
package features
