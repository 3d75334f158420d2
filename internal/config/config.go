package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rcargo-labs/rcargo/internal/branding"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys, shared by the config file and the RCARGO_* variables.
const (
	KeyTargetDir    = "target_dir"
	KeyNoTargetLink = "no_target_link"
	KeyLinkName     = "target_link_name"
	KeyLogLevel     = "log_level"
	KeyCargo        = "cargo"
)

// Config is resolved once at startup and passed to every command.
type Config struct {
	TargetDir    string
	NoTargetLink bool
	LinkName     string
	LogLevel     string
	CargoBin     string

	// File is the config file that was consulted, whether or not it exists.
	File string
	// Warnings collects problems with the config file; they never stop a run.
	Warnings []string
}

// Dir returns the rcargo home directory (~/.rcargo), honoring RCARGO_HOME.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.rcargo/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load resolves the configuration from the environment and FilePath().
func Load() (*Config, error) {
	return LoadFile(FilePath())
}

// LoadFile resolves the configuration using path as the config file. A
// missing file is fine; an unreadable or invalid one is reported in Warnings
// and ignored.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(branding.EnvPrefix())
	for _, key := range []string{KeyTargetDir, KeyNoTargetLink, KeyLinkName} {
		if err := v.BindEnv(key); err != nil {
			return nil, eris.Wrapf(err, "binding %s", key)
		}
	}
	if err := v.BindEnv(KeyLogLevel, branding.EnvVar("LOG")); err != nil {
		return nil, eris.Wrapf(err, "binding %s", KeyLogLevel)
	}
	if err := v.BindEnv(KeyCargo, branding.EnvVar("CARGO")); err != nil {
		return nil, eris.Wrapf(err, "binding %s", KeyCargo)
	}

	v.SetDefault(KeyTargetDir, branding.DefaultTargetDir())
	v.SetDefault(KeyNoTargetLink, "")
	v.SetDefault(KeyLinkName, branding.DefaultLinkName())
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyCargo, branding.WrappedTool())

	cfg := &Config{File: path}
	if err := readFile(v, path); err != nil {
		cfg.Warnings = append(cfg.Warnings, err.Error())
	}

	cfg.TargetDir = nonEmpty(v.GetString(KeyTargetDir), branding.DefaultTargetDir())
	cfg.NoTargetLink = IsTruthy(v.GetString(KeyNoTargetLink))
	cfg.LinkName = nonEmpty(v.GetString(KeyLinkName), branding.DefaultLinkName())
	cfg.LogLevel = v.GetString(KeyLogLevel)
	cfg.CargoBin = nonEmpty(v.GetString(KeyCargo), branding.WrappedTool())
	return cfg, nil
}

// readFile validates path and merges it into v. A missing file is not an error.
func readFile(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return eris.Wrapf(err, "reading config file %s", path)
	}

	result, err := Validate(data)
	if err != nil {
		return eris.Wrapf(err, "config file %s ignored", path)
	}
	if !result.Valid {
		return eris.Errorf("config file %s ignored: %s", path, result)
	}

	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	if err := v.ReadInConfig(); err != nil {
		return eris.Wrapf(err, "config file %s ignored", path)
	}
	return nil
}

// IsTruthy reports whether an opt-out variable is switched on: "1" or "true"
// in any case. Everything else, including "yes", is false.
func IsTruthy(value string) bool {
	value = strings.TrimSpace(value)
	return value == "1" || strings.EqualFold(value, "true")
}

func nonEmpty(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
