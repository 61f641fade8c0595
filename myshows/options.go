package myshows

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-call HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client. The caller is
// responsible for attaching a cookie jar if cookie-based sessions are
// expected.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithRPCURL overrides the RPC endpoint. Used in tests.
func WithRPCURL(url string) Option {
	return func(c *Client) {
		c.rpcURL = url
	}
}

// WithAuthURL overrides the session endpoint. Used in tests.
func WithAuthURL(url string) Option {
	return func(c *Client) {
		c.authURL = url
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}
