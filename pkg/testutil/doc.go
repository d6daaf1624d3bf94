// Package testutil provides shared helpers for red-panda tests: an isolated
// home directory, a scriptable process runner, an in-process git double and
// real go-git fixture repositories.
package testutil
