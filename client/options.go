package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Option configures a Client during construction in New.
//
// Options run before the transport chain is assembled, so their order does
// not matter: WithHTTPClient followed by WithDebugLogging behaves the same as
// the reverse.
type Option func(*Client) error

// WithShopID binds the client to a shop. Shop-scoped operations fail with
// ErrShopIDRequired on a client without one.
func WithShopID(shopID string) Option {
	return func(c *Client) error {
		c.shopID = strings.TrimSpace(shopID)
		return nil
	}
}

// WithBaseURL overrides DefaultBaseURL, e.g. to point at a test server.
// A trailing slash is dropped.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if baseURL == "" {
			return fmt.Errorf("base url cannot be empty")
		}
		c.baseURL = strings.TrimRight(baseURL, "/")
		return nil
	}
}

// WithHTTPClient uses a copy of hc for all requests. Its Transport becomes the
// innermost round tripper, so it observes the Authorization header.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		cp := *hc
		timeout := c.http.Timeout
		c.http = &cp
		if c.http.Timeout == 0 {
			c.http.Timeout = timeout
		}
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// The SDK sets no timeout of its own; without this option (or a context
// deadline) the transport's defaults apply. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging logs each request/response at debug level when enabled is
// true. Do not enable this option in production: bodies are dumped verbatim.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = c.debug || enabled
		return nil
	}
}
