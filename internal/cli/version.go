package cli

import (
	"fmt"

	"github.com/rcargo-labs/rcargo/internal/branding"
	"github.com/spf13/cobra"
)

// printVersion prints rcargo's version followed by cargo's. A failing cargo
// is reported on stderr whatever the log level, but does not fail the command.
func (a *app) printVersion(cmd *cobra.Command) error {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", branding.CLIName(), a.info.Version)
	a.log.Debug().Str("commit", a.info.Commit).Str("date", a.info.Date).Msg("build info")

	version, err := a.runner(cmd).Version(cmd.Context())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Failed to get %s version: %v\n", a.cfg.CargoBin, err)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), version)
	return nil
}
