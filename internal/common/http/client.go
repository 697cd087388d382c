// internal/common/http/client.go
// Package http wraps the outbound HTTP client shared by the gateway and the
// idea request client. Per-request deadlines come from the request context;
// the client timeout is the hard upper bound.
package http

import (
	"net/http"
	"time"
)

type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}
