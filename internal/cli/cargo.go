package cli

import (
	"fmt"

	"github.com/rcargo-labs/rcargo/internal/branding"
	"github.com/rcargo-labs/rcargo/internal/cargoargs"
	"github.com/rcargo-labs/rcargo/internal/linker"
	"github.com/rcargo-labs/rcargo/internal/project"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

// runCargo runs cargo with args, redirecting its target directory when the
// arguments describe a build.
func (a *app) runCargo(cmd *cobra.Command, args []string) error {
	runner := a.runner(cmd)

	if !cargoargs.RequiresTargetDir(args) {
		a.log.Debug().Strs("args", args).Msg("passing through without redirect")
		code, err := runner.Run(cmd.Context(), args, nil)
		return exitResult(code, err)
	}

	projectPath, err := a.getwd()
	if err != nil {
		return eris.Wrap(err, "getting current directory")
	}

	id := project.Resolve(projectPath)
	targetDir := a.store().ProjectDir(id.String())
	a.log.Debug().Str("project", projectPath).Str("identifier", id.String()).Msg("project resolved")

	fmt.Fprintf(cmd.OutOrStdout(), "%s: Target directory redirected to: %s\n", branding.DisplayName(), targetDir)

	code, err := runner.Run(cmd.Context(), args, map[string]string{
		branding.TargetDirEnv(): targetDir,
	})
	if err != nil || code != 0 {
		return exitResult(code, err)
	}

	linker.New(a.linker, a.log).EnsureTargetLink(a.cfg, projectPath, targetDir)
	return nil
}

func exitResult(code int, err error) error {
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}
