package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rcargo-labs/rcargo/internal/branding"
	"github.com/rcargo-labs/rcargo/internal/cache"
	"github.com/rcargo-labs/rcargo/internal/cargoargs"
	"github.com/rcargo-labs/rcargo/internal/config"
	"github.com/rcargo-labs/rcargo/internal/logging"
	"github.com/rcargo-labs/rcargo/internal/platform"
	"github.com/rcargo-labs/rcargo/internal/wrapped"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// BuildInfo is injected via ldflags at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// ExitError carries the wrapped tool's exit code up to main. It is not
// printed: cargo has already reported whatever went wrong.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// app holds everything resolved once per invocation.
type app struct {
	info BuildInfo

	loadConfig func() (*config.Config, error)
	getwd      func() (string, error)
	fs         afero.Fs
	linker     platform.Linker

	cfg *config.Config
	log zerolog.Logger
}

func newApp(info BuildInfo) *app {
	return &app{
		info:       info,
		loadConfig: config.Load,
		getwd:      os.Getwd,
		fs:         afero.NewOsFs(),
		linker:     platform.Default(),
		log:        logging.Nop(),
	}
}

func (a *app) store() *cache.Store {
	return cache.NewStore(a.fs, a.cfg.TargetDir)
}

func (a *app) runner(cmd *cobra.Command) *wrapped.Runner {
	return &wrapped.Runner{
		Bin:    a.cfg.CargoBin,
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   branding.CLIName() + " [cargo arguments...]",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` runs cargo with CARGO_TARGET_DIR pointing at a per-project directory
under a shared root on fast storage (` + branding.DefaultTargetDir() + ` unless RCARGO_TARGET_DIR is set).

Any arguments that are not an rcargo subcommand are handed to cargo unchanged.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
			for _, w := range cfg.Warnings {
				a.log.Warn().Msg(w)
			}
			a.log.Debug().
				Str("target_dir", cfg.TargetDir).
				Str("link_name", cfg.LinkName).
				Bool("no_target_link", cfg.NoTargetLink).
				Str("cargo", cfg.CargoBin).
				Msg("configuration resolved")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cargoargs.WantsVersion(args) {
				return a.printVersion(cmd)
			}
			return a.runCargo(cmd, args)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// `rcargo help build` is `cargo help build`.
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:                "help",
		Hidden:             true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCargo(cmd, append([]string{"help"}, args...))
		},
	})

	rootCmd.AddCommand(newSizeCmd(a))
	rootCmd.AddCommand(newPurgeCmd(a))
	return rootCmd
}

// Execute runs the root command and returns the process exit code.
func Execute(version, commit, date string) int {
	rootCmd := newRootCmd(newApp(BuildInfo{Version: version, Commit: commit, Date: date}))
	return exitCode(rootCmd.ExecuteContext(context.Background()), os.Stderr)
}

// exitCode maps a command error to an exit code, printing it unless it is a
// mirrored child exit status.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}
