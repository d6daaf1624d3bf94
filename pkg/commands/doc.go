// Package commands groups the operations behind each CLI command. Every
// subpackage exposes plain functions taking an Options struct and returning a
// result, so the cobra layer only parses flags and renders.
//
//   - install: validate, plan, preflight, check dependencies, bootstrap
//     dotfiles and run each feature installer (install and full-install)
//   - list: the feature table in canonical order
//   - showconfig: the effective configuration as TOML
package commands
