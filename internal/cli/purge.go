package cli

import (
	"fmt"

	"github.com/rcargo-labs/rcargo/internal/cache"
	"github.com/rcargo-labs/rcargo/internal/project"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

func newPurgeCmd(a *app) *cobra.Command {
	var all, yes bool

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Purge cached target directories",
		Long: `Delete the current project's cached target directory, or with --all every
cached target directory. Asks for confirmation unless --yes is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				return a.purgeAll(cmd, yes)
			}
			return a.purgeProject(cmd, yes)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Purge all cached project target directories")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")
	return cmd
}

func (a *app) purgeProject(cmd *cobra.Command, yes bool) error {
	out := cmd.OutOrStdout()

	projectPath, err := a.getwd()
	if err != nil {
		return eris.Wrap(err, "getting current directory")
	}
	id := project.Resolve(projectPath)
	store := a.store()
	dir := store.ProjectDir(id.String())

	exists, err := store.Exists(dir)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintf(out, "Current project '%s' has no cached target directory to purge\n", id.Name)
		return nil
	}

	size, err := store.Size(dir)
	if err != nil {
		return err
	}
	sizeStr := cache.FormatSize(size)

	ok := yes
	if !ok {
		ok, err = confirm(cmd.InOrStdin(), out,
			fmt.Sprintf("Are you sure you want to purge project '%s' cache (%s)?", id.Name, sizeStr))
		if err != nil {
			return err
		}
	}
	if !ok {
		fmt.Fprintln(out, "Purge cancelled.")
		return nil
	}

	if err := store.Remove(dir); err != nil {
		return err
	}
	fmt.Fprintf(out, "Purged current project '%s' cache (freed %s)\n", id.Name, sizeStr)
	return nil
}

func (a *app) purgeAll(cmd *cobra.Command, yes bool) error {
	out := cmd.OutOrStdout()
	store := a.store()

	exists, err := store.RootExists()
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintln(out, "No cached target directories found to purge")
		return nil
	}

	size, err := store.Size(store.Root())
	if err != nil {
		return err
	}
	sizeStr := cache.FormatSize(size)

	ok := yes
	if !ok {
		ok, err = confirm(cmd.InOrStdin(), out,
			fmt.Sprintf("Are you sure you want to purge ALL cached target directories (%s)?", sizeStr))
		if err != nil {
			return err
		}
	}
	if !ok {
		fmt.Fprintln(out, "Purge cancelled.")
		return nil
	}

	if err := store.Reset(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Purged all cached target directories (freed %s)\n", sizeStr)
	return nil
}
