// Package commands implements the CLI commands for mod-updater.
package commands

import (
	"context"
	"io"

	"github.com/FloatyJellyfish/mod-updater/internal/adapters/detector"
	"github.com/FloatyJellyfish/mod-updater/internal/app"
	"github.com/FloatyJellyfish/mod-updater/internal/build"
	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

// Application is the part of app.App the CLI drives.
type Application interface {
	Versions(ctx context.Context, item string, filter domain.VersionFilter) error
	Latest(ctx context.Context, item string, filter domain.VersionFilter) error
	Changelog(ctx context.Context, item string, filter domain.VersionFilter) error
	Search(ctx context.Context, query domain.SearchQuery) error
	List(ctx context.Context) error
	Compat(ctx context.Context, target app.Target) error
	Download(ctx context.Context, target app.Target) error
	Update(ctx context.Context, target app.Target) error
	Remove(ctx context.Context, items []string) error
	Rollback(ctx context.Context, items []string) error
}

// CLI represents the command line interface for mod-updater.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	detect  func() detector.PromptMode
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           domain.AppName,
		Short:         "Keep a set of Modrinth mods installed and up to date",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().String("prompt", "auto", "Ask when several versions or files match: auto, always or never")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		detect:  detector.DetectEnvironment,
	}

	rootCmd.AddCommand(
		c.newVersionsCmd(),
		c.newLatestCmd(),
		c.newChangelogCmd(),
		c.newSearchCmd(),
		c.newCompatCmd(),
		c.newDownloadCmd(),
		c.newUpdateCmd(),
		c.newRemoveCmd(),
		c.newRollbackCmd(),
		c.newListCmd(),
		c.newVersionCmd(),
	)

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets stdout and stderr of the root command. Used for testing.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

// SetPromptDetector replaces terminal detection. Used for testing.
func (c *CLI) SetPromptDetector(detect func() detector.PromptMode) {
	c.detect = detect
}

// batch reports whether choices must be made without asking.
func (c *CLI) batch(cmd *cobra.Command) (bool, error) {
	flag, err := cmd.Flags().GetString("prompt")
	if err != nil {
		return false, err
	}
	switch flag {
	case "auto", "always", "never", "":
	default:
		return false, zerr.With(zerr.New("invalid --prompt value, expected auto, always or never"), "prompt", flag)
	}
	return detector.ResolveMode(c.detect(), flag) == detector.ModeBatch, nil
}

func addLoaderFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("loader", "l", "", "Mod loader: fabric, forge, neoforge, quilt or liteloader")
}

func addGameVersionFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("game-version", "g", "", "Game version, e.g. 1.21.4")
}

func loaderFlag(cmd *cobra.Command) (domain.Loader, error) {
	raw, err := cmd.Flags().GetString("loader")
	if err != nil {
		return "", err
	}
	if raw == "" {
		return "", nil
	}
	return domain.ParseLoader(raw)
}

// filterFlags reads the -l and -g flags.
func filterFlags(cmd *cobra.Command) (domain.VersionFilter, error) {
	loader, err := loaderFlag(cmd)
	if err != nil {
		return domain.VersionFilter{}, err
	}
	gv, err := cmd.Flags().GetString("game-version")
	if err != nil {
		return domain.VersionFilter{}, err
	}
	return domain.VersionFilter{Loader: loader, PlatformVersion: gv}, nil
}
