// Package linker maintains the convenience symlink in a project directory
// (by default `target`) that points at the project's redirected target
// directory. Every problem degrades to a logged warning: the link helps IDEs
// find build output but the build itself never depends on it.
package linker
