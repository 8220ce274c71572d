package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/FloatyJellyfish/mod-updater/internal/adapters/telemetry"
	"github.com/FloatyJellyfish/mod-updater/internal/app"
	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	"github.com/FloatyJellyfish/mod-updater/internal/core/ports/mocks"
	"github.com/FloatyJellyfish/mod-updater/internal/engine/resolver"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	registry  *mocks.MockRegistry
	manifests *mocks.MockManifestStore
	reporter  *mocks.MockReporter
	logger    *mocks.MockLogger
	provider  componentsProvider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		registry:  mocks.NewMockRegistry(ctrl),
		manifests: mocks.NewMockManifestStore(ctrl),
		reporter:  mocks.NewMockReporter(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	application := app.New(
		f.registry,
		resolver.New(f.registry, 1),
		mocks.NewMockChooser(ctrl),
		f.manifests,
		mocks.NewMockPackLoader(ctrl),
		f.reporter,
		mocks.NewMockMarkdownRenderer(ctrl),
		f.logger,
	).WithTracer(telemetry.NewNoOpTracer()).WithDir(t.TempDir())

	f.provider = func(context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: f.logger}, func() {}, nil
	}
	return f
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	f := newFixture(t)

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), f.provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that fatal errors are logged and exit with 1.
func TestRun_ExecutionError(t *testing.T) {
	f := newFixture(t)

	f.registry.EXPECT().ListVersions(gomock.Any(), "ghost", domain.VersionFilter{}).Return(nil, domain.ErrNotFound)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	exitCode := run(context.Background(), []string{"versions", "ghost"}, new(bytes.Buffer), f.provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_ItemFailureIsNotLoggedTwice verifies that per-item failures only set the exit code.
func TestRun_ItemFailureIsNotLoggedTwice(t *testing.T) {
	f := newFixture(t)

	f.manifests.EXPECT().Load().Return(domain.NewManifest(), nil)
	f.manifests.EXPECT().Save(gomock.Any()).Return(nil)
	f.reporter.EXPECT().Outcomes("rollback", gomock.Len(1))
	f.logger.EXPECT().Error(gomock.Any()).Times(0)

	exitCode := run(context.Background(), []string{"rollback", "sodium"}, new(bytes.Buffer), f.provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_CanceledContext verifies that a canceled context reaches the registry.
func TestRun_CanceledContext(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.registry.EXPECT().ListVersions(gomock.Any(), "sodium", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ domain.VersionFilter) ([]domain.Release, error) {
			return nil, ctx.Err()
		})
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, context.Canceled)
	})

	exitCode := run(ctx, []string{"versions", "sodium"}, new(bytes.Buffer), f.provider)
	assert.Equal(t, 1, exitCode)
}
