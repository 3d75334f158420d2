// Package project derives the identity of a cargo project: a human-readable
// name taken from Cargo.toml (or the directory name) plus a short fingerprint
// of the project path. The combined identifier names the project's slot under
// the shared target root.
package project
