package cli

import (
	"fmt"
	"io"

	"github.com/rcargo-labs/rcargo/internal/cache"
	"github.com/rcargo-labs/rcargo/internal/project"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

func newSizeCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "size",
		Short: "Show target directory sizes",
		Long: `Show how much space the redirected target directories use.

Inside a cargo project this reports the current project's cache; elsewhere,
or with --all, it lists every cached project and the total.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSize(cmd.OutOrStdout(), all)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show all cached project target sizes")
	return cmd
}

func (a *app) runSize(out io.Writer, all bool) error {
	store := a.store()
	if all {
		return showAllSizes(out, store)
	}

	projectPath, err := a.getwd()
	if err != nil {
		return eris.Wrap(err, "getting current directory")
	}
	if !project.IsCargoProject(projectPath) {
		return showAllSizes(out, store)
	}

	id := project.Resolve(projectPath)
	dir := store.ProjectDir(id.String())
	exists, err := store.Exists(dir)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintf(out, "Current project '%s' has no cached target directory\n", id.Name)
		return nil
	}

	size, err := store.Size(dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Current project '%s' target size: %s\n", id.Name, cache.FormatSize(size))
	return nil
}

func showAllSizes(out io.Writer, store *cache.Store) error {
	exists, err := store.RootExists()
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintln(out, "No cached target directories found")
		return nil
	}

	entries, err := store.Entries()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "All cached project target directories:")
	for _, e := range entries {
		fmt.Fprintf(out, "  %s: %s\n", e.Name, cache.FormatSize(e.Size))
	}
	fmt.Fprintf(out, "Total cache size: %s\n", cache.FormatSize(cache.Total(entries)))
	return nil
}
