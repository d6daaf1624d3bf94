// Package filesystem provides filesystem implementations for red-panda.
//
// This package contains the OS-backed implementation of the types.FS
// interface used by the installers and the dotfiles bootstrapper.
package filesystem
