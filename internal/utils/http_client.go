package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithBaseURL("http://localhost:8080"))
//	resp, err := client.R().Get("/api/rooms")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures the underlying resty.Client at construction.
type HTTPClientOption func(c *resty.Client)

// WithBaseURL sets the URL relative request paths are resolved against.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(baseURL)
	}
}

// WithTimeout sets the total time budget of a single request.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetTimeout(timeout)
	}
}

// WithHeader sets a header sent with every request.
func WithHeader(key, value string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetHeader(key, value)
	}
}

// WithTransport replaces the client's round tripper.
func WithTransport(rt http.RoundTripper) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetTransport(rt)
	}
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Each call returns an independent client with its own configuration,
// connection pool, and state. Automatic retries are disabled: failures are
// surfaced once and retrying is left to the caller.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	c := resty.New().SetRetryCount(0)
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return &HTTPClient{Client: c}
}
