package client

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// DefaultRetryPolicy is the retry condition installed on [Client]. It only
// takes effect when retries are enabled with [WithRetryCount]; the client
// performs no retries by default, matching the backend's own contract.
//
// When active, it retries on HTTP 429 (rate limit) and 5xx server errors,
// and on transient connection errors. It never retries on context
// cancellation, deadline exceeded, or DNS resolution failures. Supply a
// custom function via [WithRetryPolicy] to override this behaviour.
func DefaultRetryPolicy(r *resty.Response, err error) bool {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}

		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return false
		}

		// Transient connection errors are worth another attempt.
		return true
	}

	return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
}
