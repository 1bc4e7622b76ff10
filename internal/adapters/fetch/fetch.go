// Package fetch downloads remote dataset files, optionally through an on disk cache
package fetch

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	perr "vizdash/internal/platform/errors"
)

// Fetcher returns the raw bytes of a remote file
type Fetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// HTTPFetcher fetches straight from the origin
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher returns a fetcher whose client gives up after timeout, zero means never
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{Client: &http.Client{Timeout: timeout}}
}

// Fetch implements Fetcher
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	resp, err := get(ctx, f.client(), url, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, statusError(resp.StatusCode, url)
	}
	return resp.Body, nil
}

func (f *HTTPFetcher) client() *http.Client {
	if f == nil || f.Client == nil {
		return http.DefaultClient
	}
	return f.Client
}

func get(ctx context.Context, c *http.Client, url string, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "fetch %s", url)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	resp, err := c.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "fetch %s", url)
	}
	return resp, nil
}

func statusError(code int, url string) error {
	if code == http.StatusNotFound {
		return perr.NotFoundf("fetch %s: not found", url)
	}
	return perr.Unavailablef("fetch %s: unexpected status %d", url, code)
}

// Open fetches url and undoes gzip when the name ends in .gz
func Open(ctx context.Context, f Fetcher, url string) (io.ReadCloser, error) {
	rc, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(strings.ToLower(stripQuery(url)), ".gz") {
		return rc, nil
	}
	gz, err := gzip.NewReader(rc)
	if err != nil {
		_ = rc.Close()
		return nil, perr.Wrapf(err, perr.ErrorCodeLoad, "gunzip %s", url)
	}
	return &gzipBody{gz: gz, body: rc}, nil
}

func stripQuery(url string) string {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		return url[:i]
	}
	return url
}

// gzipBody closes both the decompressor and the underlying body
type gzipBody struct {
	gz   *gzip.Reader
	body io.ReadCloser
}

func (b *gzipBody) Read(p []byte) (int, error) { return b.gz.Read(p) }

func (b *gzipBody) Close() error {
	gerr := b.gz.Close()
	if err := b.body.Close(); err != nil {
		return err
	}
	if gerr != nil {
		return fmt.Errorf("gzip close: %w", gerr)
	}
	return nil
}
