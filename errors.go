package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// APIError is an application-level failure reported by the backend: any
// response with a non-2xx status. Detail carries the backend's "detail"
// message when the error body contains one, or the operation's fallback
// message otherwise.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return e.Detail
}

func newAPIError(resp *resty.Response, fallback string) *APIError {
	detail := fallback

	// Error bodies are not guaranteed to be JSON; anything unparseable
	// keeps the fallback message.
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.Detail != "" {
		detail = payload.Detail
	}

	return &APIError{
		StatusCode: resp.StatusCode(),
		Detail:     detail,
	}
}

// parseResponse applies the backend's uniform response contract: non-2xx
// statuses become an *APIError, 204 and empty bodies yield a nil result,
// and any other 2xx body must be valid JSON.
func parseResponse[T any](resp *resty.Response, fallback string) (*T, error) {
	if resp.IsError() {
		return nil, newAPIError(resp, fallback)
	}

	if resp.StatusCode() == http.StatusNoContent {
		return nil, nil
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return nil, nil
	}

	out := new(T)
	if err := json.Unmarshal(body, out); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", resp.Request.URL, err)
	}

	return out, nil
}
