package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/quannhg/graduation-invitation/internal/models"
)

// AppsScriptClient talks to the spreadsheet-backed Apps Script web app.
// The same URL accepts RSVP POSTs and answers personalization GETs.
type AppsScriptClient struct {
	BaseURL string
	Client  HTTPDoer
}

// NewAppsScriptClient builds a client with a traced transport. A zero timeout
// means calls are bounded only by the caller's context.
func NewAppsScriptClient(baseURL string, timeout time.Duration) *AppsScriptClient {
	return &AppsScriptClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *AppsScriptClient) Configured() bool {
	return c != nil && endpointConfigured(c.BaseURL)
}

// Submit posts the RSVP and ignores whatever comes back. The endpoint's
// cross-origin setup never let the page read the reply, so only a transport
// failure counts as an error.
func (c *AppsScriptClient) Submit(ctx context.Context, sub models.Submission) error {
	if !c.Configured() {
		return ErrEndpointNotConfigured
	}

	data, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver submission: %w", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	return nil
}

// Lookup fetches the personalized copy for an inviter token.
func (c *AppsScriptClient) Lookup(ctx context.Context, inviter string) (*models.Personalization, error) {
	if !c.Configured() {
		return nil, ErrEndpointNotConfigured
	}
	if inviter == "" {
		return nil, fmt.Errorf("inviter cannot be empty")
	}

	endpointURL, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint url: %w", err)
	}
	q := endpointURL.Query()
	q.Set("inviter", inviter)
	endpointURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpointURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(respBody))
	}

	var res models.Personalization
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &res, nil
}
