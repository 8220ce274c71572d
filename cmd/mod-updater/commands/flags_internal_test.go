package commands

import (
	"testing"

	"github.com/FloatyJellyfish/mod-updater/internal/adapters/detector"
	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterFlags(t *testing.T) {
	cmd := &cobra.Command{}
	addLoaderFlag(cmd)
	addGameVersionFlag(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"-l", "Fabric", "-g", "1.21.4"}))

	filter, err := filterFlags(cmd)
	require.NoError(t, err)
	assert.Equal(t, domain.VersionFilter{Loader: domain.LoaderFabric, PlatformVersion: "1.21.4"}, filter)
}

func TestFlagLookupErrors(t *testing.T) {
	t.Run("loader not registered", func(t *testing.T) {
		_, err := loaderFlag(&cobra.Command{})
		require.Error(t, err)
	})

	t.Run("game version not registered", func(t *testing.T) {
		cmd := &cobra.Command{}
		addLoaderFlag(cmd)

		_, err := filterFlags(cmd)
		require.Error(t, err)
	})

	t.Run("prompt not registered", func(t *testing.T) {
		c := &CLI{detect: func() detector.PromptMode { return detector.ModeInteractive }}

		_, err := c.batch(&cobra.Command{})
		require.Error(t, err)
	})

	t.Run("latest not registered", func(t *testing.T) {
		c := &CLI{detect: func() detector.PromptMode { return detector.ModeInteractive }}
		cmd := c.newDownloadCmd()
		cmd.ResetFlags()
		addLoaderFlag(cmd)
		addGameVersionFlag(cmd)

		err := cmd.RunE(cmd, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "latest")
	})
}
