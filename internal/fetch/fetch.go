// Package fetch downloads remote BEACON dumps over HTTP(S).
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vvka-141/beacon/internal/retry"
	"github.com/vvka-141/beacon/pkg/beacon"
)

// Fetcher defaults, also used by the config layer when nothing overrides them.
const (
	// DefaultTimeout bounds each download attempt.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is sent with every request.
	DefaultUserAgent = "BEACON-Parser-Validator/1.0"
	// DefaultRetries is the number of retries after the first attempt.
	DefaultRetries = 2

	// DefaultMaxBytes bounds a download; dumps are buffered whole.
	DefaultMaxBytes int64 = 512 << 20

	acceptHeader = "text/plain, text/*;q=0.9, */*;q=0.1"
)

// ErrTooLarge is returned when a response body exceeds the size limit.
var ErrTooLarge = errors.New("response body too large")

// HTTPStatusError reports a response with status >= 400.
type HTTPStatusError struct {
	URL    string
	Status int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP %d %s from %s", e.Status, http.StatusText(e.Status), e.URL)
}

// StatusCode lets the retry classifier inspect the status.
func (e *HTTPStatusError) StatusCode() int { return e.Status }

// Fetcher downloads a URL, retrying transient failures.
type Fetcher struct {
	client    *http.Client
	userAgent string
	retries   int
	maxBytes  int64
	backoff   []retry.BackoffOption
	logger    beacon.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.client.Timeout = d }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// WithRetries sets how many times a transient failure is retried.
func WithRetries(n int) Option {
	return func(f *Fetcher) { f.retries = n }
}

// WithMaxBytes caps the accepted body size.
func WithMaxBytes(n int64) Option {
	return func(f *Fetcher) { f.maxBytes = n }
}

// WithTransport injects a custom round tripper (tests, proxies).
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Fetcher) { f.client.Transport = rt }
}

// WithBackoff passes options to the retry backoff.
func WithBackoff(opts ...retry.BackoffOption) Option {
	return func(f *Fetcher) { f.backoff = append(f.backoff, opts...) }
}

// WithLogger sets the logger used for retry and progress messages.
func WithLogger(l beacon.Logger) Option {
	return func(f *Fetcher) {
		if l != nil {
			f.logger = l
		}
	}
}

// New creates a Fetcher with defaults matching the command-line tool.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
		retries:   DefaultRetries,
		maxBytes:  DefaultMaxBytes,
		logger:    nopLogger{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads rawURL and returns the body. Failures wrap
// beacon.ErrSourceUnavailable; HTTP errors also wrap *HTTPStatusError.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: not an http(s) URL: %s", beacon.ErrSourceUnavailable, rawURL)
	}

	executor := retry.NewExecutor(
		retry.NewHTTPErrorClassifier(),
		retry.NewExponentialBackoff(f.retries, f.backoff...),
	).WithOnRetry(func(attempt int, err error, delay time.Duration) {
		f.logger.Info("Download attempt %d failed (%v), retrying in %s", attempt+1, err, delay)
	})

	var body []byte
	f.logger.Info("Downloading %s", rawURL)
	err = executor.Execute(ctx, func(ctx context.Context) error {
		var getErr error
		body, getErr = f.get(ctx, u.String())
		return getErr
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", beacon.ErrSourceUnavailable, err)
	}

	f.logger.Verbose("Downloaded %d bytes from %s", len(body), rawURL)
	return body, nil
}

func (f *Fetcher) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, &HTTPStatusError{URL: target, Status: resp.StatusCode}
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "text/") {
		f.logger.Verbose("Unexpected content type %q from %s", ct, target)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, f.maxBytes)
	}
	return body, nil
}

type nopLogger struct{}

func (nopLogger) Verbose(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})    {}
func (nopLogger) Error(string, ...interface{})   {}
