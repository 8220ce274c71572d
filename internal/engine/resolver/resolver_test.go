package resolver_test

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	"github.com/FloatyJellyfish/mod-updater/internal/core/ports/mocks"
	"github.com/FloatyJellyfish/mod-updater/internal/engine/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

var base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func pv(version string, day int) domain.PlatformVersion {
	return domain.PlatformVersion{Version: version, Channel: domain.ChannelStable, Published: base.AddDate(0, 0, day)}
}

var catalog = []domain.PlatformVersion{
	pv("1.21.4", 300),
	pv("1.21.3", 280),
	pv("1.21.1", 200),
	pv("1.20.1", 10),
}

func releases(versions ...[]string) []domain.Release {
	out := make([]domain.Release, len(versions))
	for i, v := range versions {
		out[i] = domain.Release{ID: fmt.Sprintf("r%d", i), GameVersions: v}
	}
	return out
}

func TestResolve_Intersection(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRegistry(ctrl)

	filter := domain.VersionFilter{Loader: domain.LoaderFabric}
	registry.EXPECT().ListPlatformVersions(gomock.Any()).Return(catalog, nil).Times(1)
	registry.EXPECT().ListVersions(gomock.Any(), "sodium", filter).
		Return(releases([]string{"1.21.4"}, []string{"1.21.3", "1.20.1"}), nil)
	registry.EXPECT().ListVersions(gomock.Any(), "iris", filter).
		Return(releases([]string{"1.20.1", "1.21.4", "1.21.1"}), nil)

	result, err := resolver.New(registry, 4).Resolve(context.Background(), []string{"sodium", "iris"}, domain.LoaderFabric)
	require.NoError(t, err)

	assert.Equal(t, []string{"1.21.4", "1.20.1"}, domain.VersionStrings(result.Versions))
	assert.Empty(t, result.Unsupported)
}

func TestResolve_EmptyItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRegistry(ctrl)

	result, err := resolver.New(registry, 4).Resolve(context.Background(), nil, domain.LoaderFabric)
	require.NoError(t, err)
	assert.Empty(t, result.Versions)
	assert.Empty(t, result.Unsupported)
}

func TestResolve_ItemWithoutReleases(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRegistry(ctrl)

	registry.EXPECT().ListPlatformVersions(gomock.Any()).Return(catalog, nil)
	registry.EXPECT().ListVersions(gomock.Any(), "sodium", gomock.Any()).
		Return(releases([]string{"1.21.4"}), nil)
	registry.EXPECT().ListVersions(gomock.Any(), "forge-only", gomock.Any()).
		Return(nil, nil)

	result, err := resolver.New(registry, 2).Resolve(context.Background(), []string{"sodium", "forge-only"}, domain.LoaderFabric)
	require.NoError(t, err)
	assert.Empty(t, result.Versions)
	assert.Equal(t, []string{"forge-only"}, result.Unsupported)
}

func TestResolve_UnknownVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRegistry(ctrl)

	registry.EXPECT().ListPlatformVersions(gomock.Any()).Return(catalog, nil)
	registry.EXPECT().ListVersions(gomock.Any(), "sodium", gomock.Any()).
		Return(releases([]string{"1.21.4", "9.9.9"}), nil)

	_, err := resolver.New(registry, 1).Resolve(context.Background(), []string{"sodium"}, domain.LoaderFabric)
	require.ErrorIs(t, err, domain.ErrInvalidPlatformVersion)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "sodium", zErr.Metadata()["item"])
	assert.Equal(t, "9.9.9", zErr.Metadata()["version"])
}

func TestResolve_FetchFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRegistry(ctrl)

	registry.EXPECT().ListPlatformVersions(gomock.Any()).Return(catalog, nil)
	registry.EXPECT().ListVersions(gomock.Any(), "ghost", gomock.Any()).
		Return(nil, zerr.Wrap(domain.ErrNotFound, "list versions"))
	registry.EXPECT().ListVersions(gomock.Any(), "sodium", gomock.Any()).
		Return(releases([]string{"1.21.4"}), nil).AnyTimes()

	_, err := resolver.New(registry, 1).Resolve(context.Background(), []string{"ghost", "sodium"}, domain.LoaderFabric)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolve_CatalogFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRegistry(ctrl)

	registry.EXPECT().ListPlatformVersions(gomock.Any()).Return(nil, zerr.Wrap(domain.ErrRegistryUnavailable, "catalog"))

	_, err := resolver.New(registry, 1).Resolve(context.Background(), []string{"sodium"}, domain.LoaderFabric)
	require.ErrorIs(t, err, domain.ErrRegistryUnavailable)
}

func TestResolve_DuplicateItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRegistry(ctrl)

	_, err := resolver.New(registry, 1).Resolve(context.Background(), []string{"sodium", "sodium"}, domain.LoaderFabric)
	require.ErrorIs(t, err, domain.ErrDuplicateItem)
}

func TestResolve_TiesKeepDiscoveryOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockRegistry(ctrl)

	tied := []domain.PlatformVersion{pv("b", 5), pv("a", 5), pv("c", 9)}
	registry.EXPECT().ListPlatformVersions(gomock.Any()).Return(tied, nil)
	registry.EXPECT().ListVersions(gomock.Any(), "x", gomock.Any()).Return(releases([]string{"b", "a", "c"}), nil)

	result, err := resolver.New(registry, 1).Resolve(context.Background(), []string{"x"}, domain.LoaderQuilt)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, domain.VersionStrings(result.Versions))
}

// fakeRegistry serves fixed per-item version sets.
type fakeRegistry struct {
	catalog  []domain.PlatformVersion
	mu       sync.Mutex
	supports map[string][]string
}

func (f *fakeRegistry) ListPlatformVersions(context.Context) ([]domain.PlatformVersion, error) {
	return f.catalog, nil
}

func (f *fakeRegistry) ListVersions(_ context.Context, item string, _ domain.VersionFilter) ([]domain.Release, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.supports[item]) == 0 {
		return nil, nil
	}
	return releases(f.supports[item]), nil
}

func (f *fakeRegistry) Search(context.Context, domain.SearchQuery) ([]domain.SearchHit, error) {
	return nil, nil
}

func (f *fakeRegistry) Download(context.Context, domain.File) ([]byte, error) {
	return nil, nil
}

func TestResolve_IntersectionProperty(t *testing.T) {
	pool := make([]domain.PlatformVersion, 12)
	for i := range pool {
		pool[i] = pv(fmt.Sprintf("1.%d", i), i)
	}
	names := domain.VersionStrings(pool)

	rapid.Check(t, func(t *rapid.T) {
		itemCount := rapid.IntRange(1, 5).Draw(t, "items")
		reg := &fakeRegistry{catalog: pool, supports: make(map[string][]string)}
		items := make([]string, itemCount)
		for i := range items {
			items[i] = fmt.Sprintf("mod-%d", i)
			reg.supports[items[i]] = rapid.SliceOfDistinct(rapid.SampledFrom(names), rapid.ID[string]).Draw(t, items[i])
		}

		result, err := resolver.New(reg, 3).Resolve(context.Background(), items, domain.LoaderFabric)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var want []string
		for i := len(pool) - 1; i >= 0; i-- {
			v := pool[i].Version
			everywhere := true
			for _, item := range items {
				if !slices.Contains(reg.supports[item], v) {
					everywhere = false
					break
				}
			}
			if everywhere {
				want = append(want, v)
			}
		}

		got := domain.VersionStrings(result.Versions)
		if !slices.Equal(want, got) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for _, item := range items {
			if len(reg.supports[item]) == 0 && !slices.Contains(result.Unsupported, item) {
				t.Fatalf("%s has no releases but is not reported unsupported", item)
			}
		}
	})
}
