// Package modrinth implements the Registry port against the Modrinth v2 API.
package modrinth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	gocache "github.com/patrickmn/go-cache"
	"go.trai.ch/zerr"
)

const (
	// maxJSONResponseBytes bounds API responses (16 MB).
	maxJSONResponseBytes = 16 << 20

	// maxDownloadBytes bounds a single downloaded file (512 MB).
	maxDownloadBytes = 512 << 20

	// DefaultCatalogTTL is how long the game version catalog is reused.
	DefaultCatalogTTL = 10 * time.Minute

	catalogCacheKey = "game_versions"
)

// Client implements ports.Registry using the Modrinth HTTP API.
// Every call is a single attempt; there are no retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	catalogTTL time.Duration
	cache      *gocache.Cache
}

// ClientOption configures a Client during construction.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client, useful for tests or proxy configurations.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithBaseURL overrides the API base URL, primarily for test servers.
func WithBaseURL(base string) ClientOption {
	return func(cl *Client) {
		cl.baseURL = strings.TrimRight(base, "/")
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(cl *Client) {
		cl.userAgent = ua
	}
}

// WithCatalogTTL sets how long the game version catalog is cached.
// A non-positive ttl disables caching.
func WithCatalogTTL(ttl time.Duration) ClientOption {
	return func(cl *Client) {
		cl.catalogTTL = ttl
	}
}

// NewClient creates a Client with defaults for the public Modrinth API.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    domain.DefaultRegistryURL,
		userAgent:  domain.UserAgent("dev"),
		catalogTTL: DefaultCatalogTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.catalogTTL > 0 {
		c.cache = gocache.New(c.catalogTTL, 2*c.catalogTTL)
	}
	return c
}

// ListVersions returns the releases of item, newest first, exactly as the registry orders them.
func (c *Client) ListVersions(
	ctx context.Context,
	item string,
	filter domain.VersionFilter,
) ([]domain.Release, error) {
	if strings.TrimSpace(item) == "" {
		return nil, zerr.Wrap(domain.ErrEmptyItem, "list versions")
	}

	query := url.Values{}
	if filter.Loader != "" {
		query.Set("loaders", jsonArray(filter.Loader.String()))
	}
	if filter.PlatformVersion != "" {
		query.Set("game_versions", jsonArray(filter.PlatformVersion))
	}

	endpoint := c.baseURL + "/project/" + url.PathEscape(item) + "/version"
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var versions []versionResponse
	if err := c.getJSON(ctx, "list versions", endpoint, &versions); err != nil {
		return nil, zerr.With(err, "item", item)
	}

	releases := make([]domain.Release, len(versions))
	for i, v := range versions {
		releases[i] = v.toDomain()
	}
	return releases, nil
}

// ListPlatformVersions returns the game version catalog.
// Successful responses are cached for the configured TTL.
func (c *Client) ListPlatformVersions(ctx context.Context) ([]domain.PlatformVersion, error) {
	if c.cache != nil {
		if cached, ok := c.cache.Get(catalogCacheKey); ok {
			if versions, ok := cached.([]domain.PlatformVersion); ok {
				return slices.Clone(versions), nil
			}
		}
	}

	var tags []gameVersionResponse
	if err := c.getJSON(ctx, "list game versions", c.baseURL+"/tag/game_version", &tags); err != nil {
		return nil, err
	}

	versions := make([]domain.PlatformVersion, len(tags))
	for i, tag := range tags {
		versions[i] = tag.toDomain()
	}

	if c.cache != nil {
		c.cache.SetDefault(catalogCacheKey, slices.Clone(versions))
	}
	return versions, nil
}

// Search queries projects. Loader and game version become exact-match facets.
func (c *Client) Search(ctx context.Context, q domain.SearchQuery) ([]domain.SearchHit, error) {
	facets := [][]string{{"project_type:mod"}}
	if q.Loader != "" {
		facets = append(facets, []string{"categories:" + q.Loader.String()})
	}
	if q.PlatformVersion != "" {
		facets = append(facets, []string{"versions:" + q.PlatformVersion})
	}
	encodedFacets, err := json.Marshal(facets)
	if err != nil {
		return nil, zerr.Wrap(err, "encode search facets")
	}

	query := url.Values{}
	query.Set("query", q.Query)
	query.Set("facets", string(encodedFacets))
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}

	var resp searchResponse
	if err := c.getJSON(ctx, "search", c.baseURL+"/search?"+query.Encode(), &resp); err != nil {
		return nil, zerr.With(err, "query", q.Query)
	}

	hits := make([]domain.SearchHit, len(resp.Hits))
	for i, h := range resp.Hits {
		hits[i] = h.toDomain()
	}
	return hits, nil
}

// Download fetches the complete contents of file.
func (c *Client) Download(ctx context.Context, file domain.File) ([]byte, error) {
	resp, err := c.doRequest(ctx, "download", file.URL)
	if err != nil {
		return nil, zerr.With(err, "file", file.Filename)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if err := checkStatus(resp, "download", file.URL); err != nil {
		return nil, zerr.With(err, "file", file.Filename)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadBytes+1))
	if err != nil {
		return nil, transportError("download", file.URL, err)
	}
	if len(data) > maxDownloadBytes {
		tooLarge := zerr.With(zerr.Wrap(domain.ErrRegistryUnavailable, "download exceeds size limit"), "file", file.Filename)
		return nil, zerr.With(tooLarge, "limit_bytes", maxDownloadBytes)
	}
	return data, nil
}

// getJSON issues a GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, op, endpoint string, out any) error {
	resp, err := c.doRequest(ctx, op, endpoint)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if err := checkStatus(resp, op, endpoint); err != nil {
		return err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxJSONResponseBytes))
	if err != nil {
		return transportError(op, endpoint, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		parseErr := zerr.With(zerr.Wrap(domain.ErrRegistryUnavailable, op+": undecodable response"), "url", endpoint)
		return zerr.With(parseErr, "cause", err.Error())
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, op, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, transportError(op, endpoint, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(op, endpoint, err)
	}
	return resp, nil
}

// checkStatus classifies non-2xx responses.
func checkStatus(resp *http.Response, op, endpoint string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var sentinel error
	switch resp.StatusCode {
	case http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case http.StatusBadRequest:
		sentinel = domain.ErrInvalidRequest
	default:
		sentinel = domain.ErrRegistryUnavailable
	}

	statusErr := zerr.With(zerr.Wrap(sentinel, op), "status_code", resp.StatusCode)
	return zerr.With(statusErr, "url", endpoint)
}

func transportError(op, endpoint string, cause error) error {
	err := zerr.With(zerr.Wrap(domain.ErrRegistryUnavailable, op), "url", endpoint)
	return zerr.With(err, "cause", cause.Error())
}

// jsonArray renders a single value the way the API expects array filters: ["value"].
func jsonArray(value string) string {
	encoded, _ := json.Marshal([]string{value})
	return string(encoded)
}
