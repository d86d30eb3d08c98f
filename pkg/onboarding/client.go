// Package onboarding submits free-form integration descriptions to the
// onboarding endpoint. It shares no state or logic with the composer; the
// payload passes through untouched.
package onboarding

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// DefaultPath is the onboarding endpoint path relative to the service base.
const DefaultPath = "/onboarding/integration"

// Description is the free-form submission payload.
type Description struct {
	ClientName  string `json:"clientName"`
	Contact     string `json:"contact,omitempty"`
	Description string `json:"description"`
}

// Client posts descriptions to the onboarding endpoint.
type Client struct {
	http    *http.Client
	baseURL string
	path    string
}

// Option customises the client.
type Option func(*Client)

// WithHTTPClient injects a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithPath overrides the endpoint path.
func WithPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.path = path
		}
	}
}

// NewClient constructs a Client targeting the given service base URL.
func NewClient(baseURL string, options ...Option) *Client {
	c := &Client{
		http:    http.DefaultClient,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		path:    DefaultPath,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Submit posts the description. The response body is discarded; only the
// status matters to the caller.
func (c *Client) Submit(ctx context.Context, desc Description) error {
	if desc.Description == "" {
		return errors.New("onboarding: description is required")
	}

	payload, err := json.Marshal(desc)
	if err != nil {
		return fmt.Errorf("onboarding: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New("onboarding: unexpected status " + resp.Status)
	}
	return nil
}
