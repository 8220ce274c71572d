package commands

import (
	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newVersionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "versions <mod>",
		Short: "List all versions of a mod",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := filterFlags(cmd)
			if err != nil {
				return err
			}
			return c.app.Versions(cmd.Context(), args[0], filter)
		},
	}
	addLoaderFlag(cmd)
	addGameVersionFlag(cmd)
	return cmd
}

func (c *CLI) newLatestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "latest <mod> <loader> [game-version]",
		Short: "Show the latest version of a mod for a loader",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := domain.ParseLoader(args[1])
			if err != nil {
				return err
			}
			filter := domain.VersionFilter{Loader: loader}
			if len(args) == 3 {
				filter.PlatformVersion = args[2]
			}
			return c.app.Latest(cmd.Context(), args[0], filter)
		},
	}
}

func (c *CLI) newChangelogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "changelog <mod>",
		Short: "Show the changelog of the latest version of a mod",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := filterFlags(cmd)
			if err != nil {
				return err
			}
			return c.app.Changelog(cmd.Context(), args[0], filter)
		},
	}
	addLoaderFlag(cmd)
	addGameVersionFlag(cmd)
	return cmd
}

func (c *CLI) newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search Modrinth for mods",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := filterFlags(cmd)
			if err != nil {
				return err
			}
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return err
			}
			return c.app.Search(cmd.Context(), domain.SearchQuery{
				Query:           args[0],
				Loader:          filter.Loader,
				PlatformVersion: filter.PlatformVersion,
				Limit:           limit,
			})
		},
	}
	addLoaderFlag(cmd)
	addGameVersionFlag(cmd)
	cmd.Flags().Int("limit", 10, "Maximum number of results")
	return cmd
}

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed mods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.List(cmd.Context())
		},
	}
}
