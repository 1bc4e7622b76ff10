package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"vizdash/internal/platform/logger"
)

// CachedFetcher keeps one file per url in dir plus a .meta sidecar
// with Revalidate set, cached files are checked with a conditional GET and
// served from disk on 304 or when the origin cannot be reached
type CachedFetcher struct {
	dir        string
	client     *http.Client
	revalidate bool
	now        func() time.Time
}

// cacheMeta is the sidecar json, only the validators we send back are kept
type cacheMeta struct {
	URL          string    `json:"url"`
	ETag         string    `json:"etag,omitempty"`
	LastModified string    `json:"last_modified,omitempty"`
	Size         int64     `json:"size,omitempty"`
	FetchedAt    time.Time `json:"fetched_at"`
	LastChecked  time.Time `json:"last_checked"`
}

// CachedOption configures the fetcher
type CachedOption func(*CachedFetcher)

// WithRevalidate enables conditional GETs for cached files
func WithRevalidate(on bool) CachedOption {
	return func(c *CachedFetcher) { c.revalidate = on }
}

// NewCachedFetcher builds a caching fetcher over dir
// base may be nil and its client is reused when present
func NewCachedFetcher(dir string, base *HTTPFetcher, opts ...CachedOption) *CachedFetcher {
	c := &CachedFetcher{dir: dir, client: base.client(), now: time.Now}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Path returns where url is cached
func (c *CachedFetcher) Path(url string) string {
	sum := sha256.Sum256([]byte(url))
	name := path.Base(stripQuery(url))
	if name == "." || name == "/" {
		name = "data"
	}
	return filepath.Join(c.dir, hex.EncodeToString(sum[:8])+"-"+name)
}

// Fetch implements Fetcher
func (c *CachedFetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	file := c.Path(url)
	metaPath := file + ".meta"
	log := logger.Named("fetch").With().Str("url", url).Logger()

	if fi, err := os.Stat(file); err == nil && fi.Mode().IsRegular() {
		if !c.revalidate {
			log.Debug().Str("path", file).Msg("cache hit")
			return os.Open(file)
		}
		rc, err := c.conditional(ctx, url, file, metaPath)
		if err == nil {
			return rc, nil
		}
		log.Warn().Err(err).Str("path", file).Msg("revalidation failed; serving cached copy")
		return os.Open(file)
	}

	resp, err := get(ctx, c.client, url, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, statusError(resp.StatusCode, url)
	}
	log.Debug().Str("path", file).Msg("cache miss")
	return c.store(resp, url, file, metaPath)
}

// conditional revalidates a cached file, 304 serves the file and 200 replaces it
func (c *CachedFetcher) conditional(ctx context.Context, url, file, metaPath string) (io.ReadCloser, error) {
	h := http.Header{}
	meta, _ := loadMeta(metaPath)
	if meta != nil {
		if meta.ETag != "" {
			h.Set("If-None-Match", meta.ETag)
		}
		if meta.LastModified != "" {
			h.Set("If-Modified-Since", meta.LastModified)
		}
	}
	resp, err := get(ctx, c.client, url, h)
	if err != nil {
		return nil, err
	}
	switch resp.StatusCode {
	case http.StatusNotModified:
		_ = resp.Body.Close()
		if meta == nil {
			meta = &cacheMeta{URL: url}
		}
		meta.LastChecked = c.now().UTC()
		_ = saveMeta(metaPath, meta)
		return os.Open(file)
	case http.StatusOK:
		return c.store(resp, url, file, metaPath)
	default:
		_ = resp.Body.Close()
		return nil, statusError(resp.StatusCode, url)
	}
}

// store writes the body atomically, then the sidecar, and opens the result
func (c *CachedFetcher) store(resp *http.Response, url, file, metaPath string) (io.ReadCloser, error) {
	defer resp.Body.Close()
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return nil, err
	}
	tmp := file + ".part"
	out, err := os.Create(tmp)
	if err != nil {
		return nil, err
	}
	n, werr := io.Copy(out, resp.Body)
	cerr := out.Close()
	if werr != nil || cerr != nil {
		_ = os.Remove(tmp)
		if werr != nil {
			return nil, werr
		}
		return nil, cerr
	}
	if err := os.Rename(tmp, file); err != nil {
		_ = os.Remove(tmp)
		return nil, err
	}

	now := c.now().UTC()
	_ = saveMeta(metaPath, &cacheMeta{
		URL:          url,
		ETag:         strings.TrimSpace(resp.Header.Get("ETag")),
		LastModified: strings.TrimSpace(resp.Header.Get("Last-Modified")),
		Size:         n,
		FetchedAt:    now,
		LastChecked:  now,
	})
	return os.Open(file)
}

func loadMeta(p string) (*cacheMeta, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	var m cacheMeta
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// saveMeta writes the sidecar atomically
func saveMeta(p string, m *cacheMeta) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	tmp := p + ".part"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}
