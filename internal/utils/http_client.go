package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is sent by the vault client on every request.
const UserAgent = "go-pass-vault-client"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an HTTPClient for baseURL with a per-request
// timeout. JSON is accepted by default and every request carries a fresh
// X-Trace-ID so client and server logs can be correlated.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 15*time.Second)
//	resp, err := client.R().Get("/api/version")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	ids := NewUUIDGenerator()

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent).
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if r.Header.Get(TraceIDHeader) == "" {
				r.SetHeader(TraceIDHeader, ids.Generate())
			}
			return nil
		})

	return &HTTPClient{Client: client}
}
