// Package registry provides a generic, type-safe, insertion-ordered
// registry. The feature table is built on it: registration order is the
// canonical order used for listing and for "install everything".
package registry
