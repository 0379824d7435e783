package myhttpclient

import (
	"context"
	"time"
)

const (
	defaultTimeout = 10 * time.Second
)

//go:generate mockgen -source=api.go -package myhttpclient -destination http_sender_mock.go HTTPSender
type HTTPSender interface {
	// Send posts a json body and returns the status code and the raw response body.
	// An empty bearerToken results in a request without Authorization header.
	Send(c context.Context, method string, url string, bearerToken string, body []byte) (int, []byte, error)
}

// New returns a json sender that gives up on every single call after timeout.
func New(timeout time.Duration) HTTPSender {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return newJSONHTTPClient(timeout)
}
