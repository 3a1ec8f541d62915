package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/pzkt/cgs-set-builders/internal/metrics"
)

// ErrNotFound is returned when a provider has no card for the lookup key.
var ErrNotFound = errors.New("card not found")

// ErrTransient marks failures that might succeed on another attempt: network
// errors, unexpected status codes and undecodable bodies.
var ErrTransient = errors.New("transient provider error")

const defaultUserAgent = "cgs-set-builders/1.0"

// apiClient is the HTTP plumbing shared by every provider: a timeout, a
// request rate limit and status handling.
type apiClient struct {
	provider  string
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

func newAPIClient(provider string, timeout time.Duration, requestsPerSecond float64) apiClient {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}

	return apiClient{
		provider: provider,
		client: &http.Client{
			Timeout: timeout,
		},
		limiter:   rate.NewLimiter(limit, 1),
		userAgent: defaultUserAgent,
	}
}

// getJSON performs one GET and decodes a 200 body into out.
func (c apiClient) getJSON(ctx context.Context, reqURL string, header http.Header, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(c.provider, "error").Inc()
		return fmt.Errorf("%w: %s request failed: %w", ErrTransient, c.provider, err)
	}
	defer resp.Body.Close()

	metrics.ProviderRequestsTotal.WithLabelValues(c.provider, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s API returned status %d", ErrTransient, c.provider, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode %s response: %w", ErrTransient, c.provider, err)
	}

	return nil
}

// flexString decodes a JSON string or number into its text form. Providers
// are inconsistent about quoting HP and damage values.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(text)
	return nil
}
