package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client for talking to the user API over HTTP.
// The *resty.Client is embedded so every resty method is available
// directly, while callers can hang extra behavior off the wrapper type.
//
// Example usage:
//
//	httpClient := utils.NewHTTPClient()
//	resp, err := httpClient.R().
//	    SetHeader("Accept", "application/json").
//	    Get("http://localhost:8080/users")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an HTTPClient backed by a freshly configured
// resty.Client. Every call produces an independent instance with its own
// connection pool, so separate API clients never share transport state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
