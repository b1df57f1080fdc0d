// Package playstore implements providers.Provider by scraping the public
// Google Play web store. Search and detail pages embed their data as
// AF_initDataCallback JSON blobs, which are located with goquery and read
// with gjson paths.
package playstore

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/sw33tLie/playscope/pkg/providers"
	"github.com/sw33tLie/playscope/pkg/whttp"
)

const (
	DefaultBaseURL   = "https://play.google.com"
	DefaultTimeout   = 30 * time.Second
	DefaultRetries   = 3
	DefaultRateLimit = 2.0 // requests per second

	providerName = "playstore"
)

// Logger is satisfied by logrus and most leveled loggers.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{})  {}

// Options configures a Client. Zero values fall back to the defaults above.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	Retries   int
	RateLimit float64
	Proxy     string
	Log       Logger
}

// Client talks to the Play Store. Requests are paced by a token bucket, so a
// long multi-country run stays polite.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
	limiter *rate.Limiter
	log     Logger
}

var _ providers.Provider = (*Client)(nil)

// New builds a Client.
func New(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	retries := opts.Retries
	switch {
	case retries == 0:
		retries = DefaultRetries
	case retries < 0: // disabled
		retries = 0
	}
	limit := opts.RateLimit
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	log := opts.Log
	if log == nil {
		log = nopLogger{}
	}

	httpClient, err := whttp.NewClient(whttp.ClientOptions{
		Timeout:  timeout,
		RetryMax: retries,
		Proxy:    opts.Proxy,
		Logf:     log.Debugf,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid proxy %q: %w", opts.Proxy, err)
	}

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		limiter: rate.NewLimiter(rate.Limit(limit), 1),
		log:     log,
	}, nil
}

func (c *Client) Name() string { return providerName }

// get fetches path with the locale parameters added. A 404 maps to
// providers.ErrNotFound, any other non-2xx status to ErrUnexpectedStatus.
func (c *Client) get(ctx context.Context, path string, query url.Values, loc providers.Locale) (*whttp.WHTTPRes, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	query.Set("hl", loc.Lang)
	query.Set("gl", loc.Country)

	res, err := whttp.SendHTTPRequest(ctx, &whttp.WHTTPReq{
		Method:  http.MethodGet,
		URL:     c.baseURL + path,
		Query:   query,
		Headers: []whttp.WHTTPHeader{{Name: "Accept-Language", Value: loc.Lang}},
	}, c.http)
	if err != nil {
		return nil, err
	}

	switch {
	case res.StatusCode == http.StatusNotFound:
		return nil, providers.ErrNotFound
	case res.StatusCode < 200 || res.StatusCode > 299:
		if res.HTTPTitle != "" {
			return nil, fmt.Errorf("%w: %d (%s)", providers.ErrUnexpectedStatus, res.StatusCode, res.HTTPTitle)
		}
		return nil, fmt.Errorf("%w: %d", providers.ErrUnexpectedStatus, res.StatusCode)
	}
	return res, nil
}

func (c *Client) wrap(op, target string, loc providers.Locale, err error) error {
	return &providers.Error{Provider: providerName, Op: op, Target: target, Locale: loc, Err: err}
}
