package commands

import (
	"fmt"

	"github.com/FloatyJellyfish/mod-updater/internal/build"
	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (commit %s, built %s)\n",
				domain.AppName, build.Version, build.Commit, build.Date)
		},
	}
}
