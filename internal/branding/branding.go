// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork can rename the tool or point it at another
// default cache root without touching code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName          string `yaml:"cli_name"`
	DisplayName      string `yaml:"display_name"`
	Description      string `yaml:"description"`
	HomeDir          string `yaml:"home_dir"`
	EnvPrefix        string `yaml:"env_prefix"`
	WrappedTool      string `yaml:"wrapped_tool"`
	TargetDirEnv     string `yaml:"target_dir_env"`
	DefaultTargetDir string `yaml:"default_target_dir"`
	DefaultLinkName  string `yaml:"default_link_name"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:          "rcargo",
			DisplayName:      "RCargo",
			Description:      "A wrapper for Rust's cargo to use a per-project target directory on a fast storage",
			HomeDir:          ".rcargo",
			EnvPrefix:        "RCARGO",
			WrappedTool:      "cargo",
			TargetDirEnv:     "CARGO_TARGET_DIR",
			DefaultTargetDir: "/tmp/rcargo_targets",
			DefaultLinkName:  "target",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "rcargo").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name used as the prefix of
// informational lines (e.g., "RCargo").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".rcargo").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "RCARGO").
func EnvPrefix() string { load(); return defaults.EnvPrefix }


// WrappedTool returns the executable name of the wrapped build tool.
func WrappedTool() string { load(); return defaults.WrappedTool }

// TargetDirEnv returns the wrapped tool's output-directory variable.
func TargetDirEnv() string { load(); return defaults.TargetDirEnv }

// DefaultTargetDir returns the cache root used when nothing overrides it.
func DefaultTargetDir() string { load(); return defaults.DefaultTargetDir }

// DefaultLinkName returns the file name of the convenience symlink.
func DefaultLinkName() string { load(); return defaults.DefaultLinkName }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("target_dir") → "RCARGO_TARGET_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
