// Package cargoargs classifies cargo argument lists. It does not understand
// cargo's grammar: it scans tokens, which is enough to tell a build from a
// registry or informational command.
package cargoargs

import "strings"

// nonBuildTokens short-circuit classification wherever they appear.
var nonBuildTokens = map[string]bool{
	"-h":        true,
	"--help":    true,
	"-V":        true,
	"--version": true,
	"--list":    true,
	"help":      true,
	"version":   true,
	"search":    true,
	"login":     true,
	"logout":    true,
	"owner":     true,
	"yank":      true,
	"publish":   true,
	"cache":     true,
}

// nonBuildSubcommands only count when they are the subcommand itself.
var nonBuildSubcommands = map[string]bool{
	"new":            true,
	"init":           true,
	"search":         true,
	"login":          true,
	"logout":         true,
	"owner":          true,
	"yank":           true,
	"publish":        true,
	"locate-project": true,
	"verify-project": true,
	"pkgid":          true,
	"help":           true,
	"version":        true,
}

// RequiresTargetDir reports whether running cargo with args produces build
// output that should be redirected.
//
// A flag value that happens to equal a listed token (e.g. `--bin publish`)
// classifies as non-build.
func RequiresTargetDir(args []string) bool {
	if len(args) == 0 {
		return false
	}

	for _, arg := range args {
		if nonBuildTokens[arg] {
			return false
		}
	}

	if sub, ok := Subcommand(args); ok && nonBuildSubcommands[sub] {
		return false
	}
	return true
}

// Subcommand returns the first argument that is not a flag.
func Subcommand(args []string) (string, bool) {
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			return arg, true
		}
	}
	return "", false
}

// WantsVersion reports whether a version flag appears before the subcommand,
// i.e. the flag belongs to the wrapper rather than to a cargo subcommand.
func WantsVersion(args []string) bool {
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			return false
		}
		if arg == "-V" || arg == "--version" {
			return true
		}
	}
	return false
}
