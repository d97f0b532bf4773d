package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
)

// AuthMode selects how an operation authenticates itself, replacing the
// implicit "use auth" flag of older clients with an explicit variant.
type AuthMode int

const (
	// Anonymous sends the request without an Authorization header, even
	// when a token has been acquired.
	Anonymous AuthMode = iota

	// Bearer attaches "Authorization: Bearer <token>" when a token is
	// set; without one the request goes out unauthenticated.
	Bearer
)

// Client is a connection-pooling client for the Banking REST API. It is
// intended for serial use by one logical caller; the token acquired by
// [Client.Authenticate] and the closed state are still guarded so that
// concurrent readers observe a consistent view.
type Client struct {
	baseURL string
	options *Options
	http    *resty.Client

	mu     sync.RWMutex
	token  string
	closed bool
}

// New creates a Client for the service at baseURL. A trailing slash on
// baseURL is stripped. Options with invalid values are silently ignored;
// the combined configuration is validated before the client is returned.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("base URL must be set")
	}

	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	c := &Client{
		baseURL: baseURL,
		options: options,
		token:   options.authToken,
	}

	c.http = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(options.timeout).
		SetRetryCount(options.retryCount).
		SetRetryWaitTime(options.retryWaitTime).
		SetRetryMaxWaitTime(options.retryMaxWaitTime).
		SetHeaders(options.requestHeaders).
		AddRetryCondition(options.retryPolicy)

	c.http.AddRetryHook(func(r *resty.Response, err error) {
		if err != nil {
			options.requestLogger.Warnf("retrying %s %s: %v",
				r.Request.Method, r.Request.URL, err)
			return
		}
		options.requestLogger.Warnf("retrying %s %s: status %d",
			r.Request.Method, r.Request.URL, r.StatusCode())
	})

	options.requestLogger.Debugf("banking client initialized with base URL: %s", baseURL)

	return c, nil
}

// BaseURL returns the normalized service URL the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Token returns the currently stored bearer token, or the empty string
// when none has been acquired.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Close releases all pooled connections. It is idempotent; any operation
// attempted after Close fails with [ErrClosed] without touching the
// network.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true

	c.http.GetClient().CloseIdleConnections()
	c.options.requestLogger.Debugf("banking client closed")
}

// newRequest builds a request carrying the client's default headers and,
// in [Bearer] mode with a token set, the Authorization header. It fails
// with [ErrClosed] once the client has been closed.
func (c *Client) newRequest(ctx context.Context, mode AuthMode) (*resty.Request, error) {
	c.mu.RLock()
	closed, token := c.closed, c.token
	c.mu.RUnlock()

	if closed {
		return nil, ErrClosed
	}

	req := c.http.R().SetContext(ctx)
	if mode == Bearer && token != "" {
		req.SetAuthToken(token)
	}

	return req, nil
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}
