// Package cli defines the Cobra command tree for rcargo. The root command
// treats its arguments as opaque cargo arguments and either passes them
// through or redirects cargo's target directory; `size` and `purge` manage
// the cached target directories. Command implementations delegate to internal
// packages and only handle flag parsing, output and user interaction.
package cli
