package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"
)

// Client is an HTTP client for the Campfire Manager API. Construct it with
// [New], then call [Client.Connect] before issuing requests.
//
// A connected Client may serve concurrent requests. The auth token is read
// when each request is constructed, so [Client.SetAuthToken] and
// [Client.ClearAuthToken] affect subsequent requests only, never ones
// already in flight.
type Client struct {
	baseURL   string
	options   *Options
	http      *resty.Client
	connected bool
	authToken string
}

// New creates a Client for the API at baseURL. Invalid option values are
// ignored; [Client.Connect] validates the resulting configuration.
func New(baseURL string, opts ...Option) *Client {
	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	return &Client{
		baseURL:   baseURL,
		options:   options,
		authToken: options.authToken,
	}
}

// Connect validates the configuration, builds the underlying HTTP client and
// pings the backend's health endpoint. Calling Connect on an already
// connected client is a no-op.
func (c *Client) Connect(ctx context.Context) error {
	if c == nil {
		return errors.New("campfire client is nil")
	}

	if c.connected {
		return nil
	}

	if c.baseURL == "" {
		return errors.New("base URL must be set")
	}

	if err := c.options.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	c.http = resty.New().
		SetBaseURL(c.baseURL).
		SetHeaders(c.options.requestHeaders).
		SetRetryCount(c.options.retryCount).
		SetRetryWaitTime(c.options.retryWaitTime).
		SetRetryMaxWaitTime(c.options.retryMaxWaitTime).
		AddRetryCondition(c.options.retryPolicy).
		SetLogger(c.options.requestLogger).
		SetDisableWarn(true)

	resp, err := c.http.R().SetContext(ctx).Get("/health/")
	if err != nil {
		return fmt.Errorf("failed to ping campfire manager API: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("failed to ping campfire manager API: status %d", resp.StatusCode())
	}

	c.connected = true

	return nil
}

// Close releases idle connections held by the client.
func (c *Client) Close() {
	if c == nil || c.http == nil {
		return
	}

	c.http.GetClient().CloseIdleConnections()
	c.connected = false
}

// SetAuthToken stores the session token attached to authenticated requests.
// Setting a new token replaces the previous one.
func (c *Client) SetAuthToken(token string) {
	c.authToken = token
}

// ClearAuthToken drops the stored session token. Subsequent authenticated
// requests are sent without an Authorization header.
func (c *Client) ClearAuthToken() {
	c.authToken = ""
}

func (c *Client) ready() error {
	if c == nil {
		return errors.New("campfire client is nil")
	}

	if !c.connected {
		return errors.New("client not connected - call Connect() first")
	}

	return nil
}

// newRequest builds a request, attaching the Authorization header when the
// operation is authenticated and a token is currently held.
func (c *Client) newRequest(ctx context.Context, authenticated bool) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if authenticated && c.authToken != "" {
		req.SetHeader("Authorization", c.options.authScheme+" "+c.authToken)
	}

	return req
}

func (c *Client) get(ctx context.Context, path string, query url.Values, authenticated bool) (*resty.Response, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	req := c.newRequest(ctx, authenticated)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}

	return resp, nil
}

func (c *Client) post(ctx context.Context, path string, body any, authenticated bool) (*resty.Response, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	req := c.newRequest(ctx, authenticated)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", path, err)
	}

	return resp, nil
}

func (c *Client) delete(ctx context.Context, path string, authenticated bool) (*resty.Response, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	resp, err := c.newRequest(ctx, authenticated).Delete(path)
	if err != nil {
		return nil, fmt.Errorf("DELETE %s: %w", path, err)
	}

	return resp, nil
}
