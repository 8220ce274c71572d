package commands

import (
	"github.com/FloatyJellyfish/mod-updater/internal/app"
	"github.com/spf13/cobra"
)

// target reads the pack-defaulted target of a command.
func target(cmd *cobra.Command, args []string) (app.Target, error) {
	filter, err := filterFlags(cmd)
	if err != nil {
		return app.Target{}, err
	}
	return app.Target{
		Items:       args,
		Loader:      filter.Loader,
		GameVersion: filter.PlatformVersion,
	}, nil
}

func (c *CLI) newCompatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compat [mods...]",
		Short: "Show the game versions every mod supports",
		Long:  "Show the game versions every mod supports. Without arguments the mods and loader come from the pack file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := loaderFlag(cmd)
			if err != nil {
				return err
			}
			return c.app.Compat(cmd.Context(), app.Target{Items: args, Loader: loader})
		},
	}
	addLoaderFlag(cmd)
	return cmd
}

func (c *CLI) newDownloadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download [mods...]",
		Short: "Download mods into the current directory",
		Long:  "Download mods into the current directory. Missing mods, loader and game version come from the pack file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := target(cmd, args)
			if err != nil {
				return err
			}
			latest, err := cmd.Flags().GetBool("latest")
			if err != nil {
				return err
			}
			batch, err := c.batch(cmd)
			if err != nil {
				return err
			}
			t.SelectLatest = latest || batch
			return c.app.Download(cmd.Context(), t)
		},
	}
	addLoaderFlag(cmd)
	addGameVersionFlag(cmd)
	cmd.Flags().Bool("latest", false, "Take the newest version and its primary file without asking")
	return cmd
}

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [mods...]",
		Short: "Replace mods with their newest version",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := target(cmd, args)
			if err != nil {
				return err
			}
			return c.app.Update(cmd.Context(), t)
		},
	}
	addLoaderFlag(cmd)
	addGameVersionFlag(cmd)
	return cmd
}

func (c *CLI) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <mods...>",
		Short: "Delete mods and stop tracking them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Remove(cmd.Context(), args)
		},
	}
}

func (c *CLI) newRollbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rollback <mods...>",
		Short: "Reinstall the previously installed version of mods",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Rollback(cmd.Context(), args)
		},
	}
}
