// Package clients holds the typed HTTP proxies for the other services' read
// endpoints. Each call is one round trip, no retries and no caching here;
// timeout policy lives on the underlying http.Client.
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// getJSON performs a GET and decodes a 200 body into out. A 404 becomes
// ErrNotFound, other non-2xx statuses become a StatusError, transport
// failures (including timeouts) wrap ErrUnavailable, and an undecodable 200
// body wraps ErrBadResponse.
func getJSON(ctx context.Context, hc *http.Client, service, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", service, err)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", service, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", service, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return &StatusError{Service: service, Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w: decode response: %v", service, ErrBadResponse, err)
	}
	return nil
}
