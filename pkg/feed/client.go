// Package feed fetches the USGS earthquake summary feed.
package feed

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"tableflip.dev/quake/pkg/quake"
)

// ErrFetchFailed is reported when the feed answers with a non-2xx status.
var ErrFetchFailed = errors.New("Failed to fetch earthquake data")

// Result is the outcome of one successful fetch.
type Result struct {
	Feed    Feed
	Events  []quake.Event
	Skipped int
}

// Fetcher loads one feed snapshot. *Client implements it; tests substitute
// fakes.
type Fetcher interface {
	Fetch(ctx context.Context) (Result, error)
}

var _ Fetcher = (*Client)(nil)

// Client performs feed requests. The zero value is not usable; use New.
type Client struct {
	url       string
	feed      Feed
	userAgent string
	http      *http.Client
}

// Options configures a Client.
type Options struct {
	Feed      Feed
	Timeout   time.Duration
	UserAgent string
	// URL overrides Feed.URL(); used by tests.
	URL string
	// HTTPClient overrides the default transport.
	HTTPClient *http.Client
}

// New builds a client for a single feed.
func New(opts Options) *Client {
	if opts.Feed.Name == "" {
		opts.Feed, _ = Lookup(DefaultFeed)
	}
	url := opts.URL
	if url == "" {
		url = opts.Feed.URL()
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 60 * time.Second,
				}).DialContext,
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		}
	}
	return &Client{
		url:       url,
		feed:      opts.Feed,
		userAgent: opts.UserAgent,
		http:      hc,
	}
}

// Feed reports which feed the client reads.
func (c *Client) Feed() Feed { return c.feed }

// Fetch issues one GET and decodes the envelope. Non-2xx answers yield
// ErrFetchFailed; transport and decode errors are returned as they are.
func (c *Client) Fetch(ctx context.Context) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Accept", "application/geo+json, application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, ErrFetchFailed
	}

	decoded, err := quake.Decode(resp.Body)
	if err != nil {
		return Result{}, err
	}
	return Result{Feed: c.feed, Events: decoded.Events, Skipped: decoded.Skipped}, nil
}
