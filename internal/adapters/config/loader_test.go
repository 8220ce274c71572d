package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/FloatyJellyfish/mod-updater/internal/adapters/config"
	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	"github.com/FloatyJellyfish/mod-updater/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestPackLoader_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	path := createFile(t, t.TempDir(), domain.PackFileName, `
loader: Fabric
game_version: "1.21.4"
mods:
  - sodium
  - " iris "
  - lithium
`)

	pack, err := config.NewPackLoader(path, config.NewOSFS(), mockLogger).Load()
	require.NoError(t, err)

	assert.Equal(t, domain.LoaderFabric, pack.Loader)
	assert.Equal(t, "1.21.4", pack.GameVersion)
	assert.Equal(t, []string{"sodium", "iris", "lithium"}, pack.Mods)
}

func TestPackLoader_Load_WarnsOnEmptyPack(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	path := createFile(t, t.TempDir(), domain.PackFileName, "loader: quilt\ngame_version: 1.20.1\n")

	pack, err := config.NewPackLoader(path, nil, mockLogger).Load()
	require.NoError(t, err)
	assert.Empty(t, pack.Mods)
}

func TestPackLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "unknown loader",
			content: "loader: rift\ngame_version: 1.21\nmods: [a]\n",
			wantErr: domain.ErrUnknownLoader,
		},
		{
			name:    "missing game version",
			content: "loader: forge\nmods: [a]\n",
			wantErr: domain.ErrMissingGameVersion,
		},
		{
			name:    "duplicate mods",
			content: "loader: forge\ngame_version: 1.21\nmods: [a, b, a]\n",
			wantErr: domain.ErrDuplicateItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createFile(t, t.TempDir(), domain.PackFileName, tt.content)
			_, err := config.NewPackLoader(path, nil, nil).Load()
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("invalid yaml", func(t *testing.T) {
		path := createFile(t, t.TempDir(), domain.PackFileName, "loader: [unterminated\n")
		_, err := config.NewPackLoader(path, nil, nil).Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrPackParseFailed.Error())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.NewPackLoader(filepath.Join(t.TempDir(), "nope.yaml"), nil, nil).Load()
		require.ErrorIs(t, err, domain.ErrPackReadFailed)
	})
}
