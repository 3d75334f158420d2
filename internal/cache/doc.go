// Package cache manages the shared target root: one subdirectory per project
// identifier, written by cargo and removed only by an explicit purge. All
// filesystem access goes through afero so the store can run against an
// in-memory filesystem in tests.
package cache
