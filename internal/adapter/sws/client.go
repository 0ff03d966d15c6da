// Package sws is the HTTP client for the Student Web Service REST API.
package sws

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/swsgraph/internal/config"
	"github.com/heartmarshall/swsgraph/internal/domain"
	"github.com/heartmarshall/swsgraph/pkg/ctxutil"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// DefaultBaseURL is the production SWS v5 endpoint.
	DefaultBaseURL = "https://ws.admin.washington.edu/student/v5/"

	// ActAsHeader carries the identity SWS evaluates the request as.
	ActAsHeader = "X-UW-Act-as"

	defaultTimeout    = 10 * time.Second
	defaultRetryDelay = 500 * time.Millisecond
	maxBodyBytes      = 10 << 20
)

// Client fetches SWS resources. It is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	retryDelay time.Duration
	httpClient *http.Client
	cache      *expirable.LRU[string, []byte]
	group      singleflight.Group
	log        *slog.Logger
}

// Option customizes a Client built with NewWithURL.
type Option func(*Client)

// WithRetryDelay sets the pause before the single retry.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) { c.retryDelay = d }
}

// WithToken sends a static bearer token on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithResponseCache enables the shared response cache. A non-positive ttl or
// size leaves it disabled.
func WithResponseCache(ttl time.Duration, size int) Option {
	return func(c *Client) {
		if ttl > 0 && size > 0 {
			c.cache = expirable.NewLRU[string, []byte](size, nil, ttl)
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a Client from configuration, loading the TLS client
// certificate and CA bundle if configured.
func New(cfg config.SWSConfig, cacheCfg config.CacheConfig, logger *slog.Logger) (*Client, error) {
	transport, err := newTransport(cfg)
	if err != nil {
		return nil, fmt.Errorf("sws: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	return NewWithURL(base, logger,
		WithHTTPClient(&http.Client{Timeout: timeout, Transport: transport}),
		WithRetryDelay(cfg.RetryDelay),
		WithToken(cfg.Token),
		WithResponseCache(cacheCfg.ResponseTTL, cacheCfg.ResponseSize),
	), nil
}

// NewWithURL creates a Client with a custom base URL and no response cache
// unless one is passed in opts.
func NewWithURL(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	c := &Client{
		baseURL:    baseURL,
		retryDelay: defaultRetryDelay,
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        logger.With("adapter", "sws"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CacheLen reports the number of cached responses.
func (c *Client) CacheLen() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

// Ping fetches the current term, bypassing the response cache.
func (c *Client) Ping(ctx context.Context) error {
	actAs, _ := ctxutil.ImpersonateFromCtx(ctx)
	path := "term/" + domain.CurrentTermKey + ".json"
	_, err := c.fetch(ctx, path, c.baseURL+path, actAs)
	return err
}

// get fetches path (relative to the base URL) and decodes the JSON body into
// out. Identical concurrent requests share one upstream call.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	actAs, _ := ctxutil.ImpersonateFromCtx(ctx)
	key := actAs + "|" + reqURL

	if c.cache != nil {
		if body, ok := c.cache.Get(key); ok {
			c.log.DebugContext(ctx, "sws cache hit", slog.String("path", path))
			return decode(path, body, out)
		}
	}

	// The shared fetch outlives any single caller's cancellation; each caller
	// still stops waiting when its own context is done.
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		body, err := c.fetch(shared, path, reqURL, actAs)
		if err == nil && c.cache != nil {
			c.cache.Add(key, body)
		}
		return body, err
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return res.Err
		}
		return decode(path, res.Val.([]byte), out)
	case <-ctx.Done():
		return fmt.Errorf("sws: %s: %w", path, ctx.Err())
	}
}

func decode(path string, body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("sws: %s: decode json: %w", path, err)
	}
	return nil
}

// fetch performs the GET and maps non-2xx statuses to domain errors. Errors
// name only the base-relative path, never the host or query.
func (c *Client) fetch(ctx context.Context, path, reqURL, actAs string) ([]byte, error) {
	c.log.DebugContext(ctx, "sws request", slog.String("url", reqURL), slog.String("act_as", actAs))

	start := time.Now()
	resp, err := c.doWithRetry(ctx, reqURL, actAs)
	if err != nil {
		c.log.ErrorContext(ctx, "sws request failed", slog.String("url", reqURL), slog.String("error", err.Error()))
		if ue, ok := err.(*url.Error); ok {
			err = ue.Err
		}
		return nil, fmt.Errorf("sws: GET %s: %w: %w", path, domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("sws: read body: %w: %w", domain.ErrUpstream, err)
	}

	c.log.DebugContext(ctx, "sws response",
		slog.String("url", reqURL),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}
	return nil, statusError(path, resp.StatusCode, body)
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, reqURL, actAs string) (*http.Response, error) {
	resp, err := c.do(ctx, reqURL, actAs)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "sws retry", slog.String("url", reqURL), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	timer := time.NewTimer(c.retryDelay)
	select {
	case <-timer.C:
	case <-ctx.Done():
		timer.Stop()
		return nil, ctx.Err()
	}

	return c.do(ctx, reqURL, actAs)
}

func (c *Client) do(ctx context.Context, reqURL, actAs string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if actAs != "" {
		req.Header.Set(ActAsHeader, actAs)
	}
	return c.httpClient.Do(req)
}

// errorBody is the shape SWS uses for error payloads.
type errorBody struct {
	StatusDescription string `json:"StatusDescription"`
	Message           string `json:"Message"`
}

func statusError(path string, status int, body []byte) error {
	msg := errorMessage(body)
	if status == http.StatusBadRequest {
		if msg == "" {
			msg = "rejected by SWS"
		}
		return fmt.Errorf("sws: GET %s: %w", path, domain.NewValidationError("request", msg))
	}
	return &domain.UpstreamError{Resource: path, Status: status, Message: msg}
}

func errorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Message != "" {
			return eb.Message
		}
		if eb.StatusDescription != "" {
			return eb.StatusDescription
		}
	}
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}

