// Package fetcher retrieves raw source files from the upstream repository
// over HTTP.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/eqdomains/eqdomains/internal/domain"
	"github.com/eqdomains/eqdomains/internal/logging"
)

const userAgent = "eqdomains"

// RawFetcher implements domain.SourceFetcher against a raw-content URL
// layout of <base>/<ref>/<path>.
type RawFetcher struct {
	baseURL string
	client  *http.Client
}

var _ domain.SourceFetcher = (*RawFetcher)(nil)

// New creates a RawFetcher. Timeout bounds the whole request including the
// body read; zero means no limit.
func New(baseURL string, timeout time.Duration) *RawFetcher {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		ForceAttemptHTTP2:   true,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &RawFetcher{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Transport: transport, Timeout: timeout},
	}
}

// FetchText downloads one source file at ref and returns the body as text.
// Any transport failure or non-200 status is an error; the caller treats
// those as fatal.
func (f *RawFetcher) FetchText(ctx context.Context, ref, path string) (string, error) {
	url := fmt.Sprintf("%s/%s/%s", f.baseURL, ref, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}

	logging.L().Debug().
		Str("url", url).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("fetched source file")

	return string(body), nil
}
